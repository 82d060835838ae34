package params

import (
	"errors"
	"fmt"
)

// ErrMissingParameter indicates a required parameter was not provided at
// model construction.
var ErrMissingParameter = errors.New("required parameter not provided")

// MissingParameterError reports which required parameter was absent.
type MissingParameterError struct {
	// Param is the name of the missing parameter.
	Param string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s is a required parameter", e.Param)
}

func (e *MissingParameterError) Unwrap() error {
	return ErrMissingParameter
}
