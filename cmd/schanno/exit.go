package schanno

import "fmt"

// ExitError asks main to exit with Code without printing an error. The
// command has already reported what went wrong.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
