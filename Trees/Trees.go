package Trees

// Binary is the read capability every algorithm in this package works on.
// N is a handle to a node, usually a pointer; the zero value of N must report
// Nil()==true and stands for both an absent child and the empty tree.
// Value, Left and Right are only called on handles that aren't Nil.
// Functions over Binary are implemented iteratively unless noted, and none of
// them cache anything: every call recomputes from the current structure.
type Binary[T any, N any] interface {
	Nil() bool
	Value() T
	Left() N
	Right() N
}

// Mutable adds child replacement to Binary. Passing the zero N detaches.
type Mutable[T any, N any] interface {
	Binary[T, N]
	SetLeft(N)
	SetRight(N)
}

// Side of a child relative to its parent.
type Side byte

const (
	LeftSide Side = iota
	RightSide
)

func (s Side) String() string {
	if s == LeftSide {
		return "left"
	}
	return "right"
}

// child returns the side child of n.
func child[T any, N Binary[T, N]](n N, s Side) N {
	if s == LeftSide {
		return n.Left()
	}
	return n.Right()
}

// sideOf returns which side of its parent the level-order index i>0 sits on.
func sideOf(i uint) Side {
	if i&1 == 1 {
		return LeftSide
	}
	return RightSide
}
