package either

import (
	"errors"
	"fmt"
)

// Side names one of the two variants of an Either.
type Side string

const (
	SideLeft  Side = "Left"
	SideRight Side = "Right"
)

var (
	// ErrNotPresent matches any *NotPresentError with errors.Is.
	ErrNotPresent = errors.New("either: value not present")

	// ErrNullArgument matches any *NullArgumentError with errors.Is.
	ErrNullArgument = errors.New("either: nil argument")
)

// NotPresentError reports access to the side an Either does not hold.
type NotPresentError struct {
	Side Side
}

func (e *NotPresentError) Error() string {
	return fmt.Sprintf("Not a %s", e.Side)
}

func (e *NotPresentError) Is(target error) bool {
	return target == ErrNotPresent
}

// NullArgumentError reports a required function argument that was nil.
// It is raised with panic since passing nil is a programming error.
type NullArgumentError struct {
	Arg string
}

func (e *NullArgumentError) Error() string {
	return fmt.Sprintf("%s cannot be nil", e.Arg)
}

func (e *NullArgumentError) Is(target error) bool {
	return target == ErrNullArgument
}

func nilArg(arg string) *NullArgumentError {
	return &NullArgumentError{Arg: arg}
}
