package Trees

import (
	"math/rand/v2"

	"github.com/petar/GoLLRB/llrb"
	"golang.org/x/exp/constraints"

	"github.com/g-m-twostay/go-bintree/Sets/BitSet"
)

// MaxHeight a generator accepts.
const MaxHeight = 9

// Generator of random trees over a value Domain. Values are distinct within
// one tree. A Generator is not safe for concurrent use.
type Generator[T constraints.Ordered] struct {
	rnd    *rand.Rand
	domain Domain[T]
}

// NewGenerator drawing from domain; equal seeds give equal trees.
func NewGenerator[T constraints.Ordered](domain Domain[T], seed uint64) *Generator[T] {
	return &Generator[T]{rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), domain}
}

// Tree of exactly the given height with distinct values 0..n-1 in random
// places. A perfect tree fills every level.
func Tree(height int, perfect bool) (*Node[int], error) {
	return NewGenerator(Ints(0), rand.Uint64()).Tree(height, perfect)
}

// BST of exactly the given height with distinct values 0..n-1.
func BST(height int, perfect bool) (*Node[int], error) {
	return NewGenerator(Ints(0), rand.Uint64()).BST(height, perfect)
}

// Heap of exactly the given height with distinct values 0..n-1.
func Heap(height int, isMax, perfect bool) (*Node[int], error) {
	return NewGenerator(Ints(0), rand.Uint64()).Heap(height, isMax, perfect)
}

func slotCount(height int) int {
	return 1<<(height+1) - 1
}

// check height and that the domain can fill at least minNodes.
func (u *Generator[T]) check(height int, minNodes func() int) error {
	if height < 0 || height > MaxHeight {
		return markf(ErrInvalidArgument, "height must be an int between 0 - %d", MaxHeight)
	}
	if n := minNodes(); n > u.domain.Cap() {
		return markf(ErrInvalidArgument, "value domain of %d can't fill %d distinct nodes", u.domain.Cap(), n)
	}
	return nil
}

// shape picks the occupied level-order slots of a tree of exactly height:
// every slot when perfect, otherwise one random root-to-depth path plus random
// children of occupied slots, never more than the domain can fill.
func (u *Generator[T]) shape(height int, perfect bool) *BitSet.BitSet {
	total := uint(slotCount(height))
	s := BitSet.New(total)
	if perfect {
		for i := uint(0); i < total; i++ {
			s.Put(i)
		}
		return s
	}
	for i, d := uint(0), 0; ; d++ {
		s.Put(i)
		if d == height {
			break
		}
		i = 2*i + 1 + uint(u.rnd.IntN(2))
	}
	limit := uint(u.domain.Cap())
	for i := uint(1); i < total && s.Size() < limit; i++ {
		if !s.Has(i) && s.Has(Parent(i)) && u.rnd.IntN(2) == 0 {
			s.Put(i)
		}
	}
	return s
}

// fill the slots of s in level order with vs. len(vs)==s.Size().
func fill[T constraints.Ordered](s *BitSet.BitSet, vs []T) (*Node[T], error) {
	slots := make([]Slot[T], s.Len())
	k := 0
	s.Range(func(i uint) bool {
		slots[i] = Some(vs[k])
		k++
		return true
	})
	return Build(slots)
}

// Tree of exactly the given height with values in random places.
func (u *Generator[T]) Tree(height int, perfect bool) (*Node[T], error) {
	if err := u.check(height, func() int {
		if perfect {
			return slotCount(height)
		}
		return height + 1
	}); err != nil {
		return nil, err
	}
	s := u.shape(height, perfect)
	vs := u.domain.Sample(u.rnd, int(s.Size()))
	u.rnd.Shuffle(len(vs), func(i, j int) { vs[i], vs[j] = vs[j], vs[i] })
	return fill(s, vs)
}

type poolItem[T constraints.Ordered] struct {
	v T
}

func (a poolItem[T]) Less(b llrb.Item) bool {
	return a.v < b.(poolItem[T]).v
}

// BST of exactly the given height. A perfect BST splits its sorted values at
// the middle; otherwise the randomly placed values of a Tree go through an
// ordered pool and come back out in order.
func (u *Generator[T]) BST(height int, perfect bool) (*Node[T], error) {
	if perfect {
		if err := u.check(height, func() int { return slotCount(height) }); err != nil {
			return nil, err
		}
		return fromSorted(u.domain.Sample(u.rnd, slotCount(height))), nil
	}
	root, err := u.Tree(height, false)
	if err != nil {
		return nil, err
	}
	pool := llrb.New()
	LevelOrder[T](root, func(n *Node[T]) bool {
		pool.InsertNoReplace(poolItem[T]{n.V})
		return true
	})
	InOrder[T](root, func(n *Node[T]) bool {
		n.V = pool.DeleteMin().(poolItem[T]).v
		return true
	})
	return root, nil
}

// Heap of exactly the given height: a complete tree of 2^height to
// 2^(height+1)-1 nodes, or all of them when perfect, sift-down heapified.
func (u *Generator[T]) Heap(height int, isMax, perfect bool) (*Node[T], error) {
	if err := u.check(height, func() int {
		if perfect {
			return slotCount(height)
		}
		return 1 << height
	}); err != nil {
		return nil, err
	}
	n := slotCount(height)
	if !perfect {
		lo := 1 << height
		n = lo + u.rnd.IntN(min(n, u.domain.Cap())-lo+1)
	}
	vs := u.domain.Sample(u.rnd, n)
	u.rnd.Shuffle(len(vs), func(i, j int) { vs[i], vs[j] = vs[j], vs[i] })
	if isMax {
		heapify(vs, func(a, b T) bool { return a > b })
	} else {
		heapify(vs, func(a, b T) bool { return a < b })
	}
	return Build(Slots(vs...))
}

// heapify vs in place so that no element is above its parent.
// Time: O(n); Space: O(1)
func heapify[T any](vs []T, above func(a, b T) bool) {
	for i := len(vs)/2 - 1; i >= 0; i-- {
		for j := i; ; {
			c := 2*j + 1
			if c >= len(vs) {
				break
			}
			if c+1 < len(vs) && above(vs[c+1], vs[c]) {
				c++
			}
			if !above(vs[c], vs[j]) {
				break
			}
			vs[j], vs[c] = vs[c], vs[j]
			j = c
		}
	}
}

type sortedRange[T constraints.Ordered] struct {
	n      *Node[T]
	lo, hi int
}

// fromSorted builds the BST of the ascending vs that always roots a range at
// its middle value, so an odd 2^k-1 values give a perfect tree.
// Time: O(n); Space: O(log n)
func fromSorted[T constraints.Ordered](vs []T) *Node[T] {
	if len(vs) == 0 {
		return nil
	}
	root := new(Node[T])
	st := []sortedRange[T]{{root, 0, len(vs)}} //[lo,hi)
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		mid := top.lo + (top.hi-top.lo)/2
		top.n.V = vs[mid]
		if top.lo < mid {
			top.n.L = new(Node[T])
			st = append(st, sortedRange[T]{top.n.L, top.lo, mid})
		}
		if mid+1 < top.hi {
			top.n.R = new(Node[T])
			st = append(st, sortedRange[T]{top.n.R, mid + 1, top.hi})
		}
	}
	return root
}
