package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/g-m-twostay/go-bintree/Trees"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := newCLI()
	var out, stderr bytes.Buffer
	c.Root.SetOut(&out)
	c.Root.SetErr(&stderr)
	c.Root.SetArgs(args)
	err := c.Root.Execute()
	return out.String(), err
}

func TestBuild(t *testing.T) {
	out, err := run(t, "build", "[1, 2, 3]")
	require.NoError(t, err)
	require.Equal(t, "  1\n / \\\n2   3\n", out)

	out, err = run(t, "build", "1", "None", "3")
	require.NoError(t, err)
	require.Equal(t, "1\n \\\n  3\n", out)

	out, err = run(t, "build", "--compact", "-f", "dense", "1, None, 2, None, 3")
	require.NoError(t, err)
	require.Equal(t, "[1, None, 2, None, None, None, 3]\n", out)

	out, err = run(t, "build", "--letters", "-f", "compact", "[a, b, c]")
	require.NoError(t, err)
	require.Equal(t, "[a, b, c]\n", out)

	_, err = run(t, "build", "[1, x]")
	require.True(t, errors.Is(err, Trees.ErrMalformedInput))

	_, err = run(t, "build", "-f", "yaml", "[1]")
	require.EqualError(t, err, `unknown format "yaml"`)
}

func TestProps(t *testing.T) {
	out, err := run(t, "props", "[2, 1, 3]")
	require.NoError(t, err)
	rows := map[string]string{}
	for _, line := range strings.Split(out, "\n") {
		if f := strings.Fields(line); len(f) == 5 && f[0] == "|" {
			rows[f[1]] = f[3]
		}
	}
	require.Equal(t, "1", rows["height"])
	require.Equal(t, "3", rows["size"])
	require.Equal(t, "true", rows["is_bst"])
	require.Equal(t, "false", rows["is_max_heap"])
	require.Equal(t, "3", rows["max_node_value"])

	out, err = run(t, "props", "[]")
	require.NoError(t, err)
	require.NotContains(t, out, "min_node_value")
	require.Contains(t, out, "-1")
}

func TestEdges(t *testing.T) {
	out, err := run(t, "edges", "[1, 2, 3, None, 4]")
	require.NoError(t, err)
	require.Equal(t, "0(1) -> 1(2) left\n0(1) -> 2(3) right\n1(2) -> 3(4) right\n", out)

	out, err = run(t, "edges", "--dot", "[1]")
	require.NoError(t, err)
	require.Equal(t, "digraph {\n  node [shape=circle];\n  n0 [label=\"1\"];\n}\n", out)
}

func TestGen(t *testing.T) {
	a, err := run(t, "gen", "bst", "--height", "4", "--seed", "3", "-f", "compact")
	require.NoError(t, err)
	b, err := run(t, "gen", "bst", "--height", "4", "--seed", "3", "-f", "compact")
	require.NoError(t, err)
	require.Equal(t, a, b)

	vs, err := Trees.ParseInts(a)
	require.NoError(t, err)
	root, err := Trees.Build2(vs)
	require.NoError(t, err)
	require.Equal(t, 4, root.Height())
	require.True(t, root.IsBST())

	out, err := run(t, "gen", "heap", "--min", "--perfect", "--height", "2", "-f", "dense")
	require.NoError(t, err)
	vs, err = Trees.ParseInts(out)
	require.NoError(t, err)
	root, err = Trees.Build(vs)
	require.NoError(t, err)
	require.True(t, root.IsMinHeap())
	require.Equal(t, 7, root.Size())

	_, err = run(t, "gen", "tree", "--letters", "--perfect", "--height", "5")
	require.True(t, errors.Is(err, Trees.ErrInvalidArgument))

	_, err = run(t, "gen", "tree", "--height", "10")
	require.EqualError(t, err, "height must be an int between 0 - 9")

	_, err = run(t, "gen", "forest")
	require.Error(t, err)
}
