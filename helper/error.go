package helper

import "fmt"

// NewError wraps err with the action that failed.
// The cause stays reachable through errors.Is and errors.As.
func NewError(action string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("error in %s: %w", action, err)
}
