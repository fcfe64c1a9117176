package Trees

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

func TestPretty(t *testing.T) {
	datadriven.RunTest(t, "testdata/print", func(t *testing.T, d *datadriven.TestData) string {
		if d.Cmd != "print" {
			d.Fatalf(t, "unknown command %q", d.Cmd)
		}
		var opts []PrintOption
		if d.HasArg("index") {
			opts = append(opts, WithIndex())
		}
		if d.HasArg("delimiter") {
			var delim string
			d.ScanArgs(t, "delimiter", &delim)
			opts = append(opts, WithDelimiter(delim))
		}
		if d.HasArg("type") {
			vs, err := ParseStrings(d.Input)
			require.NoError(t, err)
			root, err := Build(vs)
			require.NoError(t, err)
			return root.Pretty(opts...)
		}
		vs, err := ParseInts(d.Input)
		require.NoError(t, err)
		root, err := Build(vs)
		require.NoError(t, err)
		return root.Pretty(opts...)
	})
}

// refBox is the recursive box composition the iterative printer must match.
func refBox[T constraints.Ordered](n *Node[T], idx uint, index bool, delim string) (box []string, width, start, end int) {
	if n == nil {
		return nil, 0, 0, 0
	}
	label := fmt.Sprint(n.V)
	if index {
		label = fmt.Sprintf("%d%s%v", idx, delim, n.V)
	}
	gap := len(label)
	lb, lw, ls, le := refBox(n.L, 2*idx+1, index, delim)
	rb, rw, rs, re := refBox(n.R, 2*idx+2, index, delim)
	var l1, l2 strings.Builder
	if lw > 0 {
		lr := (ls+le)/2 + 1
		l1.WriteString(strings.Repeat(" ", lr+1) + strings.Repeat("_", lw-lr))
		l2.WriteString(strings.Repeat(" ", lr) + "/" + strings.Repeat(" ", lw-lr))
		start = lw + 1
		gap++
	}
	l1.WriteString(label)
	l2.WriteString(strings.Repeat(" ", len(label)))
	if rw > 0 {
		rr := (rs + re) / 2
		l1.WriteString(strings.Repeat("_", rr) + strings.Repeat(" ", rw-rr+1))
		l2.WriteString(strings.Repeat(" ", rr) + "\\" + strings.Repeat(" ", rw-rr))
		gap++
	}
	box = []string{l1.String(), l2.String()}
	for i := 0; i < max(len(lb), len(rb)); i++ {
		ll, rl := strings.Repeat(" ", lw), strings.Repeat(" ", rw)
		if i < len(lb) {
			ll = lb[i]
		}
		if i < len(rb) {
			rl = rb[i]
		}
		box = append(box, ll+strings.Repeat(" ", gap)+rl)
	}
	return box, len(box[0]), start, start + len(label) - 1
}

func refPretty[T constraints.Ordered](n *Node[T], index bool, delim string) string {
	box, _, _, _ := refBox(n, 0, index, delim)
	for i := range box {
		box[i] = strings.TrimRight(box[i], " ")
	}
	for len(box) > 0 && box[len(box)-1] == "" {
		box = box[:len(box)-1]
	}
	return strings.Join(box, "\n")
}

func TestPretty_MatchesRecursive(t *testing.T) {
	g := NewGenerator(Ints(1000), 7)
	for h := 0; h <= 6; h++ {
		for i := 0; i < 20; i++ {
			root, err := g.Tree(h, false)
			require.NoError(t, err)
			if got, want := root.Pretty(), refPretty(root, false, "-"); got != want {
				t.Fatalf("height %d:\n%s\nwant:\n%s", h, got, want)
			}
			if got, want := root.Pretty(WithIndex(), WithDelimiter("~")), refPretty(root, true, "~"); got != want {
				t.Fatalf("height %d with index:\n%s\nwant:\n%s", h, got, want)
			}
		}
	}
}

func TestPretty_Tall(t *testing.T) {
	root := Leaf(0)
	cur := root
	for i := 1; i < 1000; i++ {
		cur.R = Leaf(i % 10)
		cur = cur.R
	}
	s := root.String()
	lines := strings.Split(s, "\n")
	require.Len(t, lines, 2*1000-1)
	require.Equal(t, "0", lines[0])
	require.False(t, strings.HasSuffix(s, "\n"))
}
