// Package config loads configuration sections into Eithers.
// https://github.com/knadh/koanf
package config

import (
	"fmt"

	"github.com/imdario/mergo"
	"github.com/knadh/koanf"
	"github.com/miruken-go/either"
)

// MissingError reports a configuration path with no values.
type MissingError struct {
	Path string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("config: path %q not found", e.Path)
}

// Load unmarshals the section at path into a T.
// Fields are matched using the `path` struct tag.
func Load[T any](k *koanf.Koanf, path string) either.Either[error, T] {
	if k == nil {
		panic("k cannot be nil")
	}
	var out T
	if path != "" && !k.Exists(path) {
		return either.Left[error, T](&MissingError{path})
	}
	if err := k.UnmarshalWithConf(path, &out,
		koanf.UnmarshalConf{Tag: "path"}); err != nil {
		return either.Left[error, T](err)
	}
	return either.Right[error](out)
}

// LoadOrDefault is like Load but fills zero fields from defaults.
// A missing path yields the defaults.
// T must be a struct or map; any other T, pointers included, yields
// a Left of mergo.ErrNotSupported.
func LoadOrDefault[T any](
	k *koanf.Koanf,
	path string,
	defaults T,
) either.Either[error, T] {
	loaded := Load[T](k, path)
	if err, ok := loaded.OptionalLeft(); ok {
		if _, missing := err.(*MissingError); !missing {
			return loaded
		}
		loaded = either.Right[error](*new(T))
	}
	return either.FlatMapRight(loaded, func(out T) either.Either[error, T] {
		if err := mergo.Merge(&out, defaults); err != nil {
			return either.Left[error, T](err)
		}
		return either.Right[error](out)
	})
}
