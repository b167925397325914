package either

// Fold (fold/either)
// Fold applies left or right to the held value. Both funcs are checked
// before the variant and a nil func panics with *NullArgumentError.
func Fold[L, R, T any](
	e Either[L, R],
	left func(L) T,
	right func(R) T,
) T {
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

// Transform applies f to the whole Either.
func Transform[L, R, T any](e Either[L, R], f func(Either[L, R]) T) T {
	if f == nil {
		panic(nilArg("f"))
	}
	return f(e)
}

// FoldLeft returns the right value, or converts the left value to a R.
func (e Either[L, R]) FoldLeft(left func(L) R) R {
	if left == nil {
		panic(nilArg("left"))
	}
	if e.isRight {
		return e.right
	}
	return left(e.left)
}

// FoldRight returns the left value, or converts the right value to a L.
func (e Either[L, R]) FoldRight(right func(R) L) L {
	if right == nil {
		panic(nilArg("right"))
	}
	if e.isRight {
		return right(e.right)
	}
	return e.left
}
