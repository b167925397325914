package either

import "github.com/hashicorp/go-multierror"

// FromResult turns the conventional (value, error) pair into an Either.
func FromResult[R any](r R, err error) Either[error, R] {
	if err != nil {
		return Left[error, R](err)
	}
	return Right[error](r)
}

// Try calls f and captures its result with FromResult.
func Try[R any](f func() (R, error)) Either[error, R] {
	if f == nil {
		panic(nilArg("f"))
	}
	return FromResult(f())
}

// ToResult turns an Either back into a (value, error) pair.
func ToResult[R any](e Either[error, R]) (R, error) {
	if e.isRight {
		return e.right, nil
	}
	var r R
	return r, e.left
}

// Collect returns all right values, or every left error combined.
func Collect[R any](es []Either[error, R]) ([]R, error) {
	var errs *multierror.Error
	rights := make([]R, 0, len(es))
	for _, e := range es {
		if e.isRight {
			rights = append(rights, e.right)
		} else {
			errs = multierror.Append(errs, e.left)
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return rights, nil
}
