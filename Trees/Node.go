package Trees

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"golang.org/x/exp/constraints"
)

// Node of a binary tree. A node exclusively owns its children and has no
// parent pointer. The nil *Node is the empty tree.
type Node[T constraints.Ordered] struct {
	V    T
	L, R *Node[T]
}

// Leaf node holding v.
func Leaf[T constraints.Ordered](v T) *Node[T] {
	return &Node[T]{V: v}
}

// NewNode holding v with children l and r, either of which can be nil.
func NewNode[T constraints.Ordered](v T, l, r *Node[T]) *Node[T] {
	return &Node[T]{V: v, L: l, R: r}
}

func (u *Node[T]) Nil() bool           { return u == nil }
func (u *Node[T]) Value() T            { return u.V }
func (u *Node[T]) Left() *Node[T]      { return u.L }
func (u *Node[T]) Right() *Node[T]     { return u.R }
func (u *Node[T]) SetLeft(n *Node[T])  { u.L = n }
func (u *Node[T]) SetRight(n *Node[T]) { u.R = n }

// GoString is the debug form Node(v), e.g. Node(1) or Node("a").
func (u *Node[T]) GoString() string {
	if u == nil {
		return "Node(nil)"
	}
	return fmt.Sprintf("Node(%#v)", u.V)
}

// String is the pretty print of the tree rooted at u.
func (u *Node[T]) String() string {
	return Pretty[T](u)
}

// Pretty print the tree rooted at u, see [Pretty].
func (u *Node[T]) Pretty(opts ...PrintOption) string {
	return Pretty[T](u, opts...)
}

// Equal reports whether the trees at u and o have the same shape and values.
// Time: O(min(n, m)); Space: O(h)
func (u *Node[T]) Equal(o *Node[T]) bool {
	return Equal[T](u, o)
}

// Clone the tree rooted at u.
// Time: O(n); Space: O(h)
func (u *Node[T]) Clone() *Node[T] {
	if u == nil {
		return nil
	}
	root := &Node[T]{V: u.V}
	st := arraystack.New() // [2]*Node{src, dst}
	st.Push([2]*Node[T]{u, root})
	for !st.Empty() {
		top, _ := st.Pop()
		p := top.([2]*Node[T])
		if p[0].L != nil {
			p[1].L = &Node[T]{V: p[0].L.V}
			st.Push([2]*Node[T]{p[0].L, p[1].L})
		}
		if p[0].R != nil {
			p[1].R = &Node[T]{V: p[0].R.V}
			st.Push([2]*Node[T]{p[0].R, p[1].R})
		}
	}
	return root
}

// Properties of the tree rooted at u, see [Inspect].
func (u *Node[T]) Properties() Properties[T] {
	return Inspect[T](u)
}

func (u *Node[T]) Height() int       { return u.Properties().Height }
func (u *Node[T]) Size() int         { return u.Properties().Size }
func (u *Node[T]) LeafCount() int    { return u.Properties().LeafCount }
func (u *Node[T]) MinLeafDepth() int { return u.Properties().MinLeafDepth }
func (u *Node[T]) MaxLeafDepth() int { return u.Properties().MaxLeafDepth }
func (u *Node[T]) IsBalanced() bool  { return u.Properties().Balanced }
func (u *Node[T]) IsBST() bool       { return u.Properties().BST }
func (u *Node[T]) IsComplete() bool  { return u.Properties().Complete }
func (u *Node[T]) IsPerfect() bool   { return u.Properties().Perfect }
func (u *Node[T]) IsStrict() bool    { return u.Properties().Strict }
func (u *Node[T]) IsMaxHeap() bool   { return u.Properties().MaxHeap }
func (u *Node[T]) IsMinHeap() bool   { return u.Properties().MinHeap }
func (u *Node[T]) IsSymmetric() bool { return IsSymmetric[T](u) }

// MinValue of the tree. False if the tree is empty.
func (u *Node[T]) MinValue() (T, bool) {
	p := u.Properties()
	return p.MinValue, p.Size > 0
}

// MaxValue of the tree. False if the tree is empty.
func (u *Node[T]) MaxValue() (T, bool) {
	p := u.Properties()
	return p.MaxValue, p.Size > 0
}

// Get the node at level-order index i, see [Get].
func (u *Node[T]) Get(i uint) (*Node[T], error) {
	return Get[T](u, i)
}

// Values is the dense list of the tree rooted at u, see [Values].
func (u *Node[T]) Values() ([]Slot[T], error) {
	return Values[T](u)
}

// Values2 is the compact list of the tree rooted at u, see [Values2].
func (u *Node[T]) Values2() []Slot[T] {
	return Values2[T](u)
}

// Equal reports whether a and b have the same shape and values.
// Time: O(min(n, m)); Space: O(h)
func Equal[T comparable, N Binary[T, N]](a, b N) bool {
	st := arraystack.New()
	st.Push([2]N{a, b})
	for !st.Empty() {
		top, _ := st.Pop()
		p := top.([2]N)
		if p[0].Nil() || p[1].Nil() {
			if p[0].Nil() != p[1].Nil() {
				return false
			}
			continue
		}
		if p[0].Value() != p[1].Value() {
			return false
		}
		st.Push([2]N{p[0].Right(), p[1].Right()})
		st.Push([2]N{p[0].Left(), p[1].Left()})
	}
	return true
}
