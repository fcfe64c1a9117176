package Trees

import (
	"math"
	"math/bits"

	"github.com/g-m-twostay/go-bintree/Queues"
)

// Level-order indices number the slots of a perfect tree breadth first: the
// root is 0 and the children of i are 2i+1 and 2i+2. Written 1-based, the bits
// of i+1 below its leading one spell the path from the root, 0 for left and 1
// for right. Indices are computed, never stored in nodes.

// Parent index of i>0.
func Parent(i uint) uint {
	return (i - 1) >> 1
}

// Depth of the slot i, the root being depth 0.
func Depth(i uint) int {
	if i == math.MaxUint {
		return bits.UintSize
	}
	return bits.Len(i+1) - 1
}

// Get the node at level-order index i. A gap on the path, or a path running
// past a leaf, is an ErrIndexOutOfRange error.
// Time: O(log i); Space: O(1)
func Get[T any, N Binary[T, N]](root N, i uint) (N, error) {
	if n, ok := walk[T](root, i); ok {
		return n, nil
	}
	var zero N
	return zero, markf(ErrIndexOutOfRange, "node missing at index %d", i)
}

// walk down the path of i.
func walk[T any, N Binary[T, N]](root N, i uint) (n N, ok bool) {
	if root.Nil() || i == math.MaxUint {
		return
	}
	p := i + 1
	n = root
	for k := bits.Len(p) - 2; k >= 0; k-- {
		if (p>>k)&1 == 0 {
			n = n.Left()
		} else {
			n = n.Right()
		}
		if n.Nil() {
			return n, false
		}
	}
	return n, true
}

// Set the subtree at level-order index i to sub, replacing whatever was there.
// Index 0 installs sub as the root, which is the only index an empty tree
// accepts. Otherwise the parent slot must hold a node, else the error is marked
// ErrStructuralConflict. A zero sub detaches the slot. On error nothing changes.
// Attaching a subtree that is already part of the tree yields a graph that
// isn't a tree; see [Validate].
// Time: O(log i); Space: O(1)
func Set[T any, N Mutable[T, N]](root *N, i uint, sub N) error {
	if i == 0 {
		*root = sub
		return nil
	}
	if (*root).Nil() {
		return markf(ErrStructuralConflict, "parent node missing at index %d", Parent(i))
	}
	p, ok := walk[T](*root, Parent(i))
	if !ok {
		return markf(ErrStructuralConflict, "parent node missing at index %d", Parent(i))
	}
	if sideOf(i) == LeftSide {
		p.SetLeft(sub)
	} else {
		p.SetRight(sub)
	}
	return nil
}

// Delete the subtree at level-order index i. Deleting 0 empties the tree.
// An empty slot is an ErrIndexOutOfRange error and changes nothing.
// Time: O(log i); Space: O(1)
func Delete[T any, N Mutable[T, N]](root *N, i uint) error {
	if _, ok := walk[T](*root, i); !ok {
		return markf(ErrIndexOutOfRange, "no node to delete at index %d", i)
	}
	var zero N
	if i == 0 {
		*root = zero
		return nil
	}
	p, _ := walk[T](*root, Parent(i))
	if sideOf(i) == LeftSide {
		p.SetLeft(zero)
	} else {
		p.SetRight(zero)
	}
	return nil
}

// IndexOf target in the tree, compared by identity.
// Time: O(n); Space: O(w)
func IndexOf[T any, N interface {
	comparable
	Binary[T, N]
}](root, target N) (uint, bool) {
	if root.Nil() || target.Nil() {
		return 0, false
	}
	q := Queues.MakeArrayQueue[indexed[N]](8)
	for q.Push(indexed[N]{root, 0}); !q.Empty(); {
		s, _ := q.Pop()
		if s.n == target {
			return s.i, true
		}
		if l := s.n.Left(); !l.Nil() {
			q.Push(indexed[N]{l, 2*s.i + 1})
		}
		if r := s.n.Right(); !r.Nil() {
			q.Push(indexed[N]{r, 2*s.i + 2})
		}
	}
	return 0, false
}

// indexed pairs a node with its level-order index in breadth first walks.
type indexed[N any] struct {
	n N
	i uint
}
