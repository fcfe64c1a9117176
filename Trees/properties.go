package Trees

import (
	"math"

	"github.com/emirpasic/gods/stacks/arraystack"
	"golang.org/x/exp/constraints"
)

// Properties of a tree, as computed by [Inspect].
// The empty tree has Height -1, Size 0, leaf depths -1 and every flag true;
// MinValue and MaxValue are only meaningful when Size>0.
type Properties[T constraints.Ordered] struct {
	Height       int
	Size         int
	LeafCount    int
	MinLeafDepth int
	MaxLeafDepth int
	MinValue     T
	MaxValue     T
	Balanced     bool // heights of the two subtrees of every node differ by at most 1
	BST          bool // strict: left subtree < node < right subtree everywhere
	Complete     bool // every level full except possibly the last, which is packed left
	Perfect      bool // every internal node has two children and all leaves share a depth
	Strict       bool // every node has zero or two children
	MaxHeap      bool // complete and no child greater than its parent
	MinHeap      bool // complete and no child less than its parent
	Symmetric    bool // mirror image of itself
}

// Map keyed by the property names used in the properties table. The min and
// max values are left out for the empty tree.
func (p Properties[T]) Map() map[string]any {
	m := map[string]any{
		"height":         p.Height,
		"size":           p.Size,
		"leaf_count":     p.LeafCount,
		"min_leaf_depth": p.MinLeafDepth,
		"max_leaf_depth": p.MaxLeafDepth,
		"is_balanced":    p.Balanced,
		"is_bst":         p.BST,
		"is_complete":    p.Complete,
		"is_perfect":     p.Perfect,
		"is_strict":      p.Strict,
		"is_max_heap":    p.MaxHeap,
		"is_min_heap":    p.MinHeap,
		"is_symmetric":   p.Symmetric,
	}
	if p.Size > 0 {
		m["min_node_value"] = p.MinValue
		m["max_node_value"] = p.MaxValue
	}
	return m
}

// PropertyNames in table order.
var PropertyNames = []string{
	"height", "size", "is_max_heap", "is_min_heap", "is_perfect", "is_strict",
	"is_complete", "leaf_count", "min_node_value", "max_node_value",
	"min_leaf_depth", "max_leaf_depth", "is_balanced", "is_bst", "is_symmetric",
}

func emptyProperties[T constraints.Ordered]() Properties[T] {
	return Properties[T]{
		Height: -1, MinLeafDepth: -1, MaxLeafDepth: -1,
		Balanced: true, BST: true, Complete: true, Perfect: true, Strict: true,
		MaxHeap: true, MinHeap: true, Symmetric: true,
	}
}

// inspectFrame is a stack entry of Inspect. idx is the level-order index of n,
// meaningless once overflow is set.
type inspectFrame[N any] struct {
	n        N
	depth    int
	idx      uint
	overflow bool
	done     bool
}

// summary of a finished subtree. maxOrd and minOrd only cover heap ordering;
// completeness is decided for the whole tree at the end.
type summary[T any] struct {
	v, min, max                 T
	height, size, leaves        int
	minLeaf, maxLeaf            int
	balanced, bst, strict, perf bool
	maxOrd, minOrd              bool
}

// Inspect computes every structural property of the tree in one post-order
// pass, plus a separate mirror walk for Symmetric. The level-order index is
// threaded through the same pass; the tree is complete iff the largest index
// equals Size-1.
// Time: O(n); Space: O(h)
func Inspect[T constraints.Ordered, N Binary[T, N]](root N) Properties[T] {
	if root.Nil() {
		return emptyProperties[T]()
	}
	var maxIdx uint
	var overflow bool
	st, sums := arraystack.New(), arraystack.New()
	st.Push(inspectFrame[N]{n: root})
	for !st.Empty() {
		top, _ := st.Pop()
		fr := top.(inspectFrame[N])
		l, r := fr.n.Left(), fr.n.Right()
		if !fr.done {
			if fr.overflow {
				overflow = true
			} else if fr.idx > maxIdx {
				maxIdx = fr.idx
			}
			fr.done = true
			st.Push(fr)
			co := fr.overflow || fr.idx > (math.MaxUint-2)/2
			ci := 2*fr.idx + 1
			if !r.Nil() {
				st.Push(inspectFrame[N]{n: r, depth: fr.depth + 1, idx: ci + 1, overflow: co})
			}
			if !l.Nil() {
				st.Push(inspectFrame[N]{n: l, depth: fr.depth + 1, idx: ci, overflow: co})
			}
			continue
		}
		v := fr.n.Value()
		s := summary[T]{v: v, min: v, max: v, size: 1, balanced: true, bst: true, strict: true, perf: true, maxOrd: true, minOrd: true}
		var ls, rs summary[T]
		hasL, hasR := !l.Nil(), !r.Nil()
		if hasR {
			x, _ := sums.Pop()
			rs = x.(summary[T])
		}
		if hasL {
			x, _ := sums.Pop()
			ls = x.(summary[T])
		}
		lh, rh := -1, -1
		if !hasL && !hasR {
			s.leaves, s.minLeaf, s.maxLeaf = 1, fr.depth, fr.depth
		} else {
			s.minLeaf, s.maxLeaf = math.MaxInt, -1
		}
		for _, c := range [2]struct {
			s   *summary[T]
			has bool
		}{{&ls, hasL}, {&rs, hasR}} {
			if !c.has {
				continue
			}
			s.size += c.s.size
			s.leaves += c.s.leaves
			s.min, s.max = min(s.min, c.s.min), max(s.max, c.s.max)
			s.minLeaf, s.maxLeaf = min(s.minLeaf, c.s.minLeaf), max(s.maxLeaf, c.s.maxLeaf)
			s.balanced = s.balanced && c.s.balanced
			s.bst = s.bst && c.s.bst
			s.strict = s.strict && c.s.strict
			s.maxOrd = s.maxOrd && c.s.maxOrd && c.s.v <= v
			s.minOrd = s.minOrd && c.s.minOrd && c.s.v >= v
		}
		if hasL {
			lh = ls.height
			s.bst = s.bst && ls.max < v
		}
		if hasR {
			rh = rs.height
			s.bst = s.bst && v < rs.min
		}
		s.height = 1 + max(lh, rh)
		s.balanced = s.balanced && lh-rh <= 1 && rh-lh <= 1
		s.strict = s.strict && hasL == hasR
		s.perf = !hasL && !hasR || hasL && hasR && ls.perf && rs.perf && lh == rh
		sums.Push(s)
	}
	x, _ := sums.Pop()
	s := x.(summary[T])
	complete := !overflow && maxIdx == uint(s.size-1)
	return Properties[T]{
		Height:       s.height,
		Size:         s.size,
		LeafCount:    s.leaves,
		MinLeafDepth: s.minLeaf,
		MaxLeafDepth: s.maxLeaf,
		MinValue:     s.min,
		MaxValue:     s.max,
		Balanced:     s.balanced,
		BST:          s.bst,
		Complete:     complete,
		Perfect:      s.perf,
		Strict:       s.strict,
		MaxHeap:      complete && s.maxOrd,
		MinHeap:      complete && s.minOrd,
		Symmetric:    IsSymmetric[T](root),
	}
}
