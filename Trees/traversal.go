package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/g-m-twostay/go-bintree/Queues"
)

// LevelOrder calls f on every node breadth first, left to right, until f
// returns false.
// Time: O(n); Space: O(w)
func LevelOrder[T any, N Binary[T, N]](root N, f func(N) bool) {
	if root.Nil() {
		return
	}
	q := Queues.MakeArrayQueue[N](8)
	for q.Push(root); !q.Empty(); {
		n, _ := q.Pop()
		if !f(n) {
			return
		}
		if l := n.Left(); !l.Nil() {
			q.Push(l)
		}
		if r := n.Right(); !r.Nil() {
			q.Push(r)
		}
	}
}

// PreOrder calls f on every node, parent before children, until f returns false.
// Time: O(n); Space: O(h)
func PreOrder[T any, N Binary[T, N]](root N, f func(N) bool) {
	st := arraystack.New()
	if !root.Nil() {
		st.Push(root)
	}
	for !st.Empty() {
		top, _ := st.Pop()
		n := top.(N)
		if !f(n) {
			return
		}
		if r := n.Right(); !r.Nil() {
			st.Push(r)
		}
		if l := n.Left(); !l.Nil() {
			st.Push(l)
		}
	}
}

// InOrder calls f on every node, left subtree first, until f returns false.
// Time: O(n); Space: O(h)
func InOrder[T any, N Binary[T, N]](root N, f func(N) bool) {
	st := arraystack.New()
	for cur := root; !cur.Nil(); cur = cur.Left() {
		st.Push(cur)
	}
	for !st.Empty() {
		top, _ := st.Pop()
		n := top.(N)
		if !f(n) {
			return
		}
		for cur := n.Right(); !cur.Nil(); cur = cur.Left() {
			st.Push(cur)
		}
	}
}

// visit is a post-order stack entry; done marks the second visit.
type visit[N any] struct {
	n    N
	done bool
}

// PostOrder calls f on every node, children before parent, until f returns false.
// Time: O(n); Space: O(h)
func PostOrder[T any, N Binary[T, N]](root N, f func(N) bool) {
	st := arraystack.New()
	if !root.Nil() {
		st.Push(visit[N]{n: root})
	}
	for !st.Empty() {
		top, _ := st.Pop()
		fr := top.(visit[N])
		if fr.done {
			if !f(fr.n) {
				return
			}
			continue
		}
		st.Push(visit[N]{fr.n, true})
		if r := fr.n.Right(); !r.Nil() {
			st.Push(visit[N]{n: r})
		}
		if l := fr.n.Left(); !l.Nil() {
			st.Push(visit[N]{n: l})
		}
	}
}

// Levels of the tree, top down. Nil for the empty tree.
func Levels[T any, N Binary[T, N]](root N) (levels [][]N) {
	if root.Nil() {
		return
	}
	q := Queues.MakeArrayQueue[N](8)
	for q.Push(root); !q.Empty(); {
		// The queue holds exactly the next level here.
		level := make([]N, q.Size())
		for i := range level {
			level[i], _ = q.Pop()
			if l := level[i].Left(); !l.Nil() {
				q.Push(l)
			}
			if r := level[i].Right(); !r.Nil() {
				q.Push(r)
			}
		}
		levels = append(levels, level)
	}
	return
}

// Leaves in breadth first order.
func Leaves[T any, N Binary[T, N]](root N) (leaves []N) {
	LevelOrder[T](root, func(n N) bool {
		if n.Left().Nil() && n.Right().Nil() {
			leaves = append(leaves, n)
		}
		return true
	})
	return
}

// GetParent of child within the tree at root, compared by identity. Returns
// false if child is root, absent, or not in the tree.
// Time: O(n); Space: O(h)
func GetParent[T any, N interface {
	comparable
	Binary[T, N]
}](root, child N) (parent N, ok bool) {
	if child.Nil() {
		return
	}
	PreOrder[T](root, func(n N) bool {
		if n.Left() == child || n.Right() == child {
			parent, ok = n, true
			return false
		}
		return true
	})
	return
}

// IsSymmetric reports whether the tree is a mirror image of itself.
// Time: O(n); Space: O(w)
func IsSymmetric[T comparable, N Binary[T, N]](root N) bool {
	if root.Nil() {
		return true
	}
	q := Queues.MakeArrayQueue[[2]N](8)
	for q.Push([2]N{root.Left(), root.Right()}); !q.Empty(); {
		p, _ := q.Pop()
		if p[0].Nil() || p[1].Nil() {
			if p[0].Nil() != p[1].Nil() {
				return false
			}
			continue
		}
		if p[0].Value() != p[1].Value() {
			return false
		}
		q.Push([2]N{p[0].Left(), p[1].Right()})
		q.Push([2]N{p[0].Right(), p[1].Left()})
	}
	return true
}
