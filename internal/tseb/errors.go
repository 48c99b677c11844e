package tseb

import (
	"errors"
	"fmt"
)

// ErrNotReady is returned by Run when the last Load left the parameter
// mapping incomplete.
var ErrNotReady = errors.New("model will not be run due to errors in the input data")

// UnknownModelError reports a resolved model name that matches none of the
// registered variants.
type UnknownModelError struct {
	Name string
}

// Error implements the error interface for UnknownModelError.
func (e *UnknownModelError) Error() string {
	return fmt.Sprintf("unknown model %q", e.Name)
}
