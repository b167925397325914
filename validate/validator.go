// Package validate runs go-playground validation and reports the
// result as an Either.
package validate

import (
	"errors"
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	play "github.com/go-playground/validator/v10"
	"github.com/miruken-go/either"
)

type (
	// Options configures Struct.
	Options struct {
		translator ut.Translator
	}

	// Option sets a Struct option.
	Option func(*Options)
)

// WithTranslator reports field errors using messages from translator.
func WithTranslator(translator ut.Translator) Option {
	return func(o *Options) {
		o.translator = translator
	}
}

// Struct validates target and returns it as a Right if valid.
// Field errors are returned as a Left *Outcome keyed by field path.
// Misuse of the validator, such as passing a non struct, panics.
func Struct[T any](
	validate *play.Validate,
	target T,
	opts ...Option,
) either.Either[*Outcome, T] {
	if validate == nil {
		panic("validate cannot be nil")
	}
	var options Options
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	err := validate.Struct(target)
	if err == nil {
		return either.Right[*Outcome](target)
	}
	switch e := err.(type) {
	case play.ValidationErrors:
		outcome := &Outcome{}
		if options.translator == nil {
			buildOutcome(outcome, e)
		} else {
			translateOutcome(outcome, e, options.translator)
		}
		return either.Left[*Outcome, T](outcome)
	default:
		panic(fmt.Errorf("unexpected validation error: %w", err))
	}
}

func buildOutcome(
	outcome *Outcome,
	fieldErrors play.ValidationErrors,
) {
	for _, err := range fieldErrors {
		outcome.AddError(fieldPath(err.StructNamespace()), err)
	}
}

func translateOutcome(
	outcome *Outcome,
	fieldErrors play.ValidationErrors,
	translator ut.Translator,
) {
	for field, msg := range fieldErrors.Translate(translator) {
		outcome.AddError(fieldPath(field), errors.New(msg))
	}
}

func fieldPath(ns string) string {
	var path string
	parts := strings.SplitN(ns, ".", 2)
	if len(parts) > 1 {
		path = parts[1]
	}
	return path
}
