package main

import "fmt"

// exitError carries a handler's non-zero status out of cobra. The handler has
// already reported the failure, so main prints nothing for it.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}
