// Package either provides Either, a value holding exactly one of two
// types: a Left or a Right.
package either

import "fmt"

// Either represents one of two values (left or right).
// The zero value is a Left holding the zero value of L.
// An Either is immutable; every operation returns a new value.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left returns a new Either with a left value.
func Left[L, R any](val L) Either[L, R] {
	return Either[L, R]{left: val}
}

// Right returns a new Either with a right value.
func Right[L, R any](val R) Either[L, R] {
	return Either[L, R]{right: val, isRight: true}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// LeftValue returns the left value or a *NotPresentError if e is a Right.
func (e Either[L, R]) LeftValue() (L, error) {
	if e.isRight {
		var l L
		return l, &NotPresentError{Side: SideLeft}
	}
	return e.left, nil
}

// RightValue returns the right value or a *NotPresentError if e is a Left.
func (e Either[L, R]) RightValue() (R, error) {
	if !e.isRight {
		var r R
		return r, &NotPresentError{Side: SideRight}
	}
	return e.right, nil
}

// MustLeft is like LeftValue but panics if e is a Right.
func (e Either[L, R]) MustLeft() L {
	l, err := e.LeftValue()
	if err != nil {
		panic(err)
	}
	return l
}

// MustRight is like RightValue but panics if e is a Left.
func (e Either[L, R]) MustRight() R {
	r, err := e.RightValue()
	if err != nil {
		panic(err)
	}
	return r
}

func (e Either[L, R]) LeftOrElse(other L) L {
	if e.isRight {
		return other
	}
	return e.left
}

func (e Either[L, R]) RightOrElse(other R) R {
	if e.isRight {
		return e.right
	}
	return other
}

// OptionalLeft returns the left value and true if e is a Left.
// Only the variant is checked, a nil left value still reports true.
func (e Either[L, R]) OptionalLeft() (L, bool) {
	if e.isRight {
		var l L
		return l, false
	}
	return e.left, true
}

// OptionalRight returns the right value and true if e is a Right.
// Only the variant is checked, a nil right value still reports true.
func (e Either[L, R]) OptionalRight() (R, bool) {
	if !e.isRight {
		var r R
		return r, false
	}
	return e.right, true
}

// Value returns whichever value is held.
// Use Fold to branch on the typed values.
func (e Either[L, R]) Value() any {
	if e.isRight {
		return e.right
	}
	return e.left
}

// Swap turns a Left into a Right and a Right into a Left.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right[%v]", e.right)
	}
	return fmt.Sprintf("Left[%v]", e.left)
}
