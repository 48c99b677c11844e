package config

import "fmt"

// MissingParameterError reports a required configuration key that is not
// present in the file.
type MissingParameterError struct {
	Name string
}

// Error implements the error interface for MissingParameterError.
func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing parameter %q", e.Name)
}

// CoercionError reports a configuration key whose value is present but
// cannot be parsed as the requested type.
type CoercionError struct {
	Name string
	Type string // "int" or "float"
}

// Error implements the error interface for CoercionError.
func (e *CoercionError) Error() string {
	return fmt.Sprintf("could not parse parameter %q as type %s", e.Name, e.Type)
}
