package Trees

import (
	"unsafe"

	"github.com/cornelk/hashmap"

	"github.com/g-m-twostay/go-bintree/Queues"
)

// Validate that the node graph under u is a tree: no node is reachable twice,
// which rules out cycles and shared subtrees, and no value is NaN. Violations
// are ErrMalformedInput errors naming the offending node and the level-order
// index at which it was reached.
// Time: O(n); Space: O(n)
func (u *Node[T]) Validate() error {
	if u == nil {
		return nil
	}
	seen := hashmap.New[uintptr, uint]()
	q := Queues.MakeArrayQueue[indexed[*Node[T]]](8)
	for q.Push(indexed[*Node[T]]{u, 0}); !q.Empty(); {
		s, _ := q.Pop()
		if !seen.Insert(uintptr(unsafe.Pointer(s.n)), s.i) {
			return markf(ErrMalformedInput, "cyclic reference at %s (level-order index %d)", s.n.GoString(), s.i)
		}
		if isNaN(s.n.V) {
			return markf(ErrMalformedInput, "invalid node value at index %d", s.i)
		}
		if s.n.L != nil {
			q.Push(indexed[*Node[T]]{s.n.L, 2*s.i + 1})
		}
		if s.n.R != nil {
			q.Push(indexed[*Node[T]]{s.n.R, 2*s.i + 2})
		}
	}
	return nil
}

// isNaN is only true for floating point NaN, the one value unequal to itself.
func isNaN[T comparable](v T) bool {
	return v != v
}
