package either

// Lefts returns the left values of es in order.
func Lefts[L, R any](es []Either[L, R]) []L {
	var out []L
	for _, e := range es {
		if !e.isRight {
			out = append(out, e.left)
		}
	}
	return out
}

// Rights returns the right values of es in order.
func Rights[L, R any](es []Either[L, R]) []R {
	var out []R
	for _, e := range es {
		if e.isRight {
			out = append(out, e.right)
		}
	}
	return out
}

// Partition splits es into its left and right values.
func Partition[L, R any](es []Either[L, R]) (lefts []L, rights []R) {
	for _, e := range es {
		if e.isRight {
			rights = append(rights, e.right)
		} else {
			lefts = append(lefts, e.left)
		}
	}
	return
}

// Sequence returns the first Left in es, or a Right of all right values.
func Sequence[L, R any](es []Either[L, R]) Either[L, []R] {
	rights := make([]R, 0, len(es))
	for _, e := range es {
		if !e.isRight {
			return Left[L, []R](e.left)
		}
		rights = append(rights, e.right)
	}
	return Right[L](rights)
}
