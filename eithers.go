package either

// Merge returns the held value of an Either whose sides share a type.
func Merge[T any](e Either[T, T]) T {
	if e.isRight {
		return e.right
	}
	return e.left
}

// LeftFlatten returns a func collapsing an Either[T, T] into a Left.
func LeftFlatten[T, U any]() func(Either[T, T]) Either[T, U] {
	return func(e Either[T, T]) Either[T, U] {
		return Left[T, U](Merge(e))
	}
}

// RightFlatten returns a func collapsing an Either[T, T] into a Right.
func RightFlatten[T, U any]() func(Either[T, T]) Either[U, T] {
	return func(e Either[T, T]) Either[U, T] {
		return Right[U](Merge(e))
	}
}

// FlattenLeft collapses a nested left Either into a single Left.
func FlattenLeft[L, R any](e Either[Either[L, L], R]) Either[L, R] {
	return FlatMapLeft(e, LeftFlatten[L, R]())
}

// FlattenRight collapses a nested right Either into a single Right.
func FlattenRight[L, R any](e Either[L, Either[R, R]]) Either[L, R] {
	return FlatMapRight(e, RightFlatten[R, L]())
}

// Flatten collapses nested Eithers on both sides.
func Flatten[L, R any](e Either[Either[L, L], Either[R, R]]) Either[L, R] {
	return FlatMap(e, LeftFlatten[L, R](), RightFlatten[R, L]())
}
