package meek

import "fmt"

func meekErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
