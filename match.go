package either

// Match tests the left value with left or the right value with right.
// Both predicates are required even though only one is called.
func (e Either[L, R]) Match(left func(L) bool, right func(R) bool) bool {
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

// MatchLeft reports whether e is a Left whose value satisfies left.
func (e Either[L, R]) MatchLeft(left func(L) bool) bool {
	if left == nil {
		panic(nilArg("left"))
	}
	return !e.isRight && left(e.left)
}

// MatchRight reports whether e is a Right whose value satisfies right.
func (e Either[L, R]) MatchRight(right func(R) bool) bool {
	if right == nil {
		panic(nilArg("right"))
	}
	return e.isRight && right(e.right)
}

// FilterLeft returns the left value and true if e is a Left
// whose value satisfies left.
func (e Either[L, R]) FilterLeft(left func(L) bool) (L, bool) {
	if left == nil {
		panic(nilArg("left"))
	}
	if !e.isRight && left(e.left) {
		return e.left, true
	}
	var l L
	return l, false
}

// FilterRight returns the right value and true if e is a Right
// whose value satisfies right.
func (e Either[L, R]) FilterRight(right func(R) bool) (R, bool) {
	if right == nil {
		panic(nilArg("right"))
	}
	if e.isRight && right(e.right) {
		return e.right, true
	}
	var r R
	return r, false
}
