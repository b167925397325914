package either

// Seq (seq)
func Seq[L, R, R2 any](_ Either[L, R], e Either[L, R2]) Either[L, R2] {
	return e
}

// Map (bimap)
// Map transforms whichever side is held. Both funcs are checked before
// the variant and a nil func panics with *NullArgumentError.
func Map[L, R, L2, R2 any](
	e Either[L, R],
	left func(L) L2,
	right func(R) R2,
) Either[L2, R2] {
	if left == nil {
		panic(nilArg("left"))
	}
	if right == nil {
		panic(nilArg("right"))
	}
	if e.isRight {
		return Right[L2](right(e.right))
	}
	return Left[L2, R2](left(e.left))
}

// MapLeft (mapLeft)
// MapLeft transforms a left value and passes a right value through.
// A nil f panics with *NullArgumentError.
func MapLeft[L, R, L2 any](e Either[L, R], f func(L) L2) Either[L2, R] {
	if f == nil {
		panic(nilArg("f"))
	}
	if e.isRight {
		return Right[L2](e.right)
	}
	return Left[L2, R](f(e.left))
}

// MapRight (map/fmap)
// MapRight transforms a right value and passes a left value through.
// A nil f panics with *NullArgumentError.
func MapRight[L, R, R2 any](e Either[L, R], f func(R) R2) Either[L, R2] {
	if f == nil {
		panic(nilArg("f"))
	}
	if e.isRight {
		return Right[L](f(e.right))
	}
	return Left[L, R2](e.left)
}

// FlatMap applies left or right and returns the result as is,
// so either side may switch variants. Both funcs are checked before the
// variant and a nil func panics with *NullArgumentError.
func FlatMap[L, R, L2, R2 any](
	e Either[L, R],
	left func(L) Either[L2, R2],
	right func(R) Either[L2, R2],
) Either[L2, R2] {
	if left == nil {
		panic(nilArg("left"))
	}
	if right == nil {
		panic(nilArg("right"))
	}
	if e.isRight {
		return right(e.right)
	}
	return left(e.left)
}

// FlatMapLeft (flatMap over the left)
// FlatMapLeft returns f applied to a left value and passes a right value
// through. A nil f panics with *NullArgumentError.
func FlatMapLeft[L, R, L2 any](
	e Either[L, R],
	f func(L) Either[L2, R],
) Either[L2, R] {
	if f == nil {
		panic(nilArg("f"))
	}
	if e.isRight {
		return Right[L2](e.right)
	}
	return f(e.left)
}

// FlatMapRight (flatMap/bind/chain/liftM)
// FlatMapRight returns f applied to a right value and passes a left value
// through. A nil f panics with *NullArgumentError.
func FlatMapRight[L, R, R2 any](
	e Either[L, R],
	f func(R) Either[L, R2],
) Either[L, R2] {
	if f == nil {
		panic(nilArg("f"))
	}
	if e.isRight {
		return f(e.right)
	}
	return Left[L, R2](e.left)
}

// Apply (apply/<*>/ap)
// Apply maps e with the func held by ef, or returns the left of ef.
func Apply[L, R, R2 any](
	ef Either[L, func(R) R2],
	e Either[L, R],
) Either[L, R2] {
	if !ef.isRight {
		return Left[L, R2](ef.left)
	}
	if ef.right == nil {
		panic(nilArg("ef"))
	}
	return MapRight(e, ef.right)
}
