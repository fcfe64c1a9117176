package Trees

import (
	"fmt"
	"strings"

	"github.com/g-m-twostay/go-bintree/Queues"
)

// Edge from a parent to one of its children, by node id.
type Edge struct {
	Parent, Child uint
	Side          Side
}

// Graph is a renderer-neutral view of a tree. Node ids are the breadth first
// visiting order, so the root is 0 and ids are dense.
type Graph struct {
	Edges  []Edge
	Labels map[uint]string
}

// Export the tree as a Graph in one breadth first walk.
// Time: O(n); Space: O(n)
func Export[T any, N Binary[T, N]](root N) Graph {
	g := Graph{Labels: map[uint]string{}}
	if root.Nil() {
		return g
	}
	var next uint
	q := Queues.MakeArrayQueue[indexed[N]](8)
	for q.Push(indexed[N]{root, next}); !q.Empty(); {
		s, _ := q.Pop()
		g.Labels[s.i] = fmt.Sprint(s.n.Value())
		for _, side := range [2]Side{LeftSide, RightSide} {
			c := child[T](s.n, side)
			if c.Nil() {
				continue
			}
			next++
			g.Edges = append(g.Edges, Edge{s.i, next, side})
			q.Push(indexed[N]{c, next})
		}
	}
	return g
}

// Dot renders g in the Graphviz DOT language. An only child gets an invisible
// sibling so it keeps its side.
func (g Graph) Dot() string {
	var sb strings.Builder
	sb.WriteString("digraph {\n  node [shape=circle];\n")
	for id := uint(0); id < uint(len(g.Labels)); id++ {
		fmt.Fprintf(&sb, "  n%d [label=%q];\n", id, g.Labels[id])
	}
	invis := func(p uint) {
		fmt.Fprintf(&sb, "  x%d [style=invis];\n  n%d -> x%d [style=invis];\n", p, p, p)
	}
	for i := 0; i < len(g.Edges); i++ {
		e := g.Edges[i]
		pair := i+1 < len(g.Edges) && g.Edges[i+1].Parent == e.Parent
		if !pair && e.Side == RightSide {
			invis(e.Parent)
		}
		fmt.Fprintf(&sb, "  n%d -> n%d;\n", e.Parent, e.Child)
		if pair {
			i++
			fmt.Fprintf(&sb, "  n%d -> n%d;\n", e.Parent, g.Edges[i].Child)
		} else if e.Side == LeftSide {
			invis(e.Parent)
		}
	}
	sb.WriteString("}")
	return sb.String()
}
