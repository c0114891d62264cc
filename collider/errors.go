package collider

import "fmt"

func colliderErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
