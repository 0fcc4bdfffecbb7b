package diagnostic

import (
	"errors"
	"fmt"
)

//go:generate go tool stringer -type=Reason -linecomment -output=reason_string.go

// Reason classifies a ConfigError.
type Reason int

const (
	_ Reason = iota // zero value is not a valid reason

	ReasonEmptyEntry     // empty-entry
	ReasonInvalidPath    // invalid-path
	ReasonCyclicAlias    // cyclic-alias
	ReasonUnknownOption  // unknown-option
	ReasonUnknownKind    // unknown-kind
	ReasonInvalidPattern // invalid-pattern
	ReasonInvalidValue   // invalid-value
)

// ConfigError is the only error kind produced while resolving a build
// configuration. Configuration errors are never transient.
type ConfigError struct {
	// Reason is the machine readable classification.
	Reason Reason
	// Field is the dotted configuration path the error refers to,
	// e.g. "module.rules[0].use[1].options.presets".
	Field string
	// Message is the human-readable description.
	Message string
}

// Errorf builds a ConfigError with a formatted message.
func Errorf(reason Reason, field, format string, args ...any) *ConfigError {
	return &ConfigError{
		Reason:  reason,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("config error (%s): %s", e.Reason, e.Message)
	}

	return fmt.Sprintf("config error (%s) at %s: %s", e.Reason, e.Field, e.Message)
}

// Is reports whether err is a ConfigError carrying the given reason.
func Is(err error, reason Reason) bool {
	var ce *ConfigError
	if !errors.As(err, &ce) {
		return false
	}

	return ce.Reason == reason
}
