package either

// Peek calls left or right with the held value and returns e.
func (e Either[L, R]) Peek(left func(L), right func(R)) Either[L, R] {
	e.ForEach(left, right)
	return e
}

func (e Either[L, R]) PeekLeft(left func(L)) Either[L, R] {
	e.ForEachLeft(left)
	return e
}

func (e Either[L, R]) PeekRight(right func(R)) Either[L, R] {
	e.ForEachRight(right)
	return e
}

// ForEach calls left or right with the held value.
// Both actions are required even though only one is called.
func (e Either[L, R]) ForEach(left func(L), right func(R)) {
	if left == nil {
		panic(nilArg("left"))
	}
	if right == nil {
		panic(nilArg("right"))
	}
	if e.isRight {
		right(e.right)
	} else {
		left(e.left)
	}
}

func (e Either[L, R]) ForEachLeft(left func(L)) {
	if left == nil {
		panic(nilArg("left"))
	}
	if !e.isRight {
		left(e.left)
	}
}

func (e Either[L, R]) ForEachRight(right func(R)) {
	if right == nil {
		panic(nilArg("right"))
	}
	if e.isRight {
		right(e.right)
	}
}
