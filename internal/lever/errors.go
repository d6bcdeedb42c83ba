package lever

import (
	"errors"
	"fmt"
)

// Domain errors for lever mechanics.
var (
	// ErrNonPositiveArm indicates a configuration with a zero or negative arm length.
	ErrNonPositiveArm = errors.New("lever: arm length must be positive")

	// ErrUnknownKind indicates a configuration with an unrecognized geometry kind.
	ErrUnknownKind = errors.New("lever: unknown geometry kind")

	// ErrOutOfDomain indicates an evaluation input outside its valid range.
	ErrOutOfDomain = errors.New("lever: input out of domain")
)

// ConfigurationError reports an invalid lever configuration. It is raised
// once, when a configuration set is constructed, and is fatal: evaluation
// never sees an invalid configuration.
type ConfigurationError struct {
	ConfigID string
	Field    string
	Value    float64
	Wrapped  error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration %s: %s = %g: %v", e.ConfigID, e.Field, e.Value, e.Wrapped)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Wrapped
}

// InvalidInputError reports an out-of-domain evaluation input that the
// caller failed to clamp. Inputs are never silently corrected.
type InvalidInputError struct {
	Param   string
	Value   float64
	Wrapped error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s = %g: %v", e.Param, e.Value, e.Wrapped)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Wrapped
}

func invalidInput(param string, value float64) error {
	return &InvalidInputError{Param: param, Value: value, Wrapped: ErrOutOfDomain}
}
