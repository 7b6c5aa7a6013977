package util

// Either provides a simple encoding for a disjoint union of two types, with
// the two alternatives conventionally called "left" and "right".  Like Option,
// it is a value type which compares structurally.
type Either[L any, R any] struct {
	// Indicates which alternative is held
	left bool
	// Left alternative (when left holds)
	lhs L
	// Right alternative (when !left holds)
	rhs R
}

// Left constructs an either holding the left alternative.
func Left[L any, R any](val L) Either[L, R] {
	var empty R
	return Either[L, R]{true, val, empty}
}

// Right constructs an either holding the right alternative.
func Right[L any, R any](val R) Either[L, R] {
	var empty L
	return Either[L, R]{false, empty, val}
}

// IsLeft indicates whether this either holds the left alternative.
func (e Either[L, R]) IsLeft() bool {
	return e.left
}

// IsRight indicates whether this either holds the right alternative.
func (e Either[L, R]) IsRight() bool {
	return !e.left
}

// UnwrapLeft returns the left alternative, or panics if the right is held.
func (e Either[L, R]) UnwrapLeft() L {
	if !e.left {
		panic("cannot unwrap left of a right either")
	}
	//
	return e.lhs
}

// UnwrapRight returns the right alternative, or panics if the left is held.
func (e Either[L, R]) UnwrapRight() R {
	if e.left {
		panic("cannot unwrap right of a left either")
	}
	//
	return e.rhs
}
