package metadata_resolver

import (
	"errors"
	"fmt"
)

// ErrNoDirectiveAnnotation is the sentinel wrapped by the ResolutionError a
// directive lookup produces when the type carries no directive or component
// annotation. MaybeResolveDirective downgrades exactly this failure.
var ErrNoDirectiveAnnotation = errors.New("no Directive annotation found")

// ResolutionError reports a structural error in the declarative input. The
// message names the offending type or property and the problematic values.
type ResolutionError struct {
	msg     string
	wrapped error
}

func (e *ResolutionError) Error() string {
	return e.msg
}

func (e *ResolutionError) Unwrap() error {
	return e.wrapped
}

// resolutionErrorf builds a ResolutionError; %w wrapping is honored.
func resolutionErrorf(format string, args ...interface{}) *ResolutionError {
	err := fmt.Errorf(format, args...)
	return &ResolutionError{msg: err.Error(), wrapped: errors.Unwrap(err)}
}
