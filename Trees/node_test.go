package Trees

import (
	"fmt"
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestNode_GoString(t *testing.T) {
	require.Equal(t, "Node(1)", Leaf(1).GoString())
	require.Equal(t, `Node("a")`, Leaf("a").GoString())
	require.Equal(t, "Node(1.5)", fmt.Sprintf("%#v", Leaf(1.5)))
	var n *Node[int]
	require.Equal(t, "Node(nil)", n.GoString())
	require.Equal(t, "", n.String())
}

func TestNode_EqualClone(t *testing.T) {
	a := sixNodes()
	b := a.Clone()
	require.True(t, a.Equal(b))
	require.NotSame(t, a.L, b.L)

	b.L.R.L.V = 60
	require.False(t, a.Equal(b))
	b.L.R.L.V = 6
	b.L.R.R = Leaf(7)
	require.False(t, a.Equal(b))
	require.False(t, b.Equal(a))

	var empty *Node[int]
	require.True(t, empty.Equal(nil))
	require.False(t, empty.Equal(a))
	require.Nil(t, empty.Clone())
}

func collect(walk func(*Node[int], func(*Node[int]) bool), root *Node[int]) (out []*Node[int]) {
	walk(root, func(n *Node[int]) bool {
		out = append(out, n)
		return true
	})
	return
}

func TestTraversals(t *testing.T) {
	n1 := Leaf(1)
	pre, in, post, level := PreOrder[int, *Node[int]], InOrder[int, *Node[int]], PostOrder[int, *Node[int]], LevelOrder[int, *Node[int]]
	check := func(levels [][]*Node[int], leaves, inorder, preorder, postorder, levelorder []*Node[int]) {
		t.Helper()
		require.Equal(t, levels, Levels[int](n1))
		require.Equal(t, leaves, Leaves[int](n1))
		require.Equal(t, inorder, collect(in, n1))
		require.Equal(t, preorder, collect(pre, n1))
		require.Equal(t, postorder, collect(post, n1))
		require.Equal(t, levelorder, collect(level, n1))
	}
	type ns = []*Node[int]
	check([][]*Node[int]{{n1}}, ns{n1}, ns{n1}, ns{n1}, ns{n1}, ns{n1})

	n2 := Leaf(2)
	n1.L = n2
	check([][]*Node[int]{{n1}, {n2}}, ns{n2}, ns{n2, n1}, ns{n1, n2}, ns{n2, n1}, ns{n1, n2})

	n3 := Leaf(3)
	n1.R = n3
	check([][]*Node[int]{{n1}, {n2, n3}}, ns{n2, n3}, ns{n2, n1, n3}, ns{n1, n2, n3}, ns{n2, n3, n1}, ns{n1, n2, n3})

	n4, n5 := Leaf(4), Leaf(5)
	n2.L, n2.R = n4, n5
	check([][]*Node[int]{{n1}, {n2, n3}, {n4, n5}}, ns{n3, n4, n5},
		ns{n4, n2, n5, n1, n3}, ns{n1, n2, n4, n5, n3}, ns{n4, n5, n2, n3, n1}, ns{n1, n2, n3, n4, n5})

	var visited int
	PreOrder[int](n1, func(*Node[int]) bool {
		visited++
		return visited < 2
	})
	require.Equal(t, 2, visited)

	var empty *Node[int]
	require.Empty(t, collect(in, empty))
	require.Empty(t, Levels[int](empty))
}

func TestGetParent(t *testing.T) {
	root := sixNodes()
	for _, c := range []struct{ parent, child *Node[int] }{
		{root, root.L}, {root, root.R}, {root.L, root.L.L}, {root.L.R, root.L.R.L},
	} {
		p, ok := GetParent[int](root, c.child)
		require.True(t, ok)
		require.Same(t, c.parent, p)
	}
	_, ok := GetParent[int](root, root)
	require.False(t, ok)
	_, ok = GetParent[int](root, Leaf(4))
	require.False(t, ok)
	_, ok = GetParent[int](root, nil)
	require.False(t, ok)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Leaf(1).Validate())
	require.NoError(t, sixNodes().Validate())
	var empty *Node[int]
	require.NoError(t, empty.Validate())

	root := NewNode(1, Leaf(2), nil)
	root.L.R = root
	err := root.Validate()
	require.True(t, errors.Is(err, ErrMalformedInput))
	require.EqualError(t, err, "cyclic reference at Node(1) (level-order index 4)")

	shared := Leaf(9)
	root = NewNode(1, shared, shared)
	require.True(t, errors.Is(root.Validate(), ErrMalformedInput))

	require.True(t, errors.Is(NewNode(1.0, nil, Leaf(math.NaN())).Validate(), ErrMalformedInput))
	require.EqualError(t, NewNode(1.0, nil, Leaf(math.NaN())).Validate(), "invalid node value at index 2")
}

func TestSide(t *testing.T) {
	require.Equal(t, LeftSide, sideOf(1))
	require.Equal(t, RightSide, sideOf(2))
	require.Equal(t, "left", LeftSide.String())
	require.Equal(t, "right", RightSide.String())
}
