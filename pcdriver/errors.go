package pcdriver

import "fmt"

func pcdriverErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
