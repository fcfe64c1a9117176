package Trees

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
)

type printConfig struct {
	index bool
	delim string
}

// PrintOption configures [Pretty].
type PrintOption func(*printConfig)

// WithIndex prefixes every label with the node's level-order index, as
// "{index}{delimiter}{value}".
func WithIndex() PrintOption {
	return func(c *printConfig) { c.index = true }
}

// WithDelimiter between index and value when WithIndex is set. Default "-".
func WithDelimiter(d string) PrintOption {
	return func(c *printConfig) { c.delim = d }
}

func (c *printConfig) label(v any, i uint) []rune {
	if c.index {
		return []rune(fmt.Sprintf("%d%s%v", i, c.delim, v))
	}
	return []rune(fmt.Sprint(v))
}

// box is the layout of a subtree: it spans width columns, and its root label
// starts at column start. Child boxes are placed relative to it when painting.
type box struct {
	label        []rune
	width, start int
	l, r         *box
}

func (b *box) end() int {
	return b.start + len(b.label) - 1
}

type layoutFrame[N any] struct {
	n    N
	idx  uint
	done bool
}

// layout computes boxes bottom up. A box is its left box, one column of
// branch, the label, one column of branch, and its right box, side by side.
func layout[T any, N Binary[T, N]](root N, cfg *printConfig) *box {
	st, boxes := arraystack.New(), arraystack.New()
	st.Push(layoutFrame[N]{n: root})
	for !st.Empty() {
		top, _ := st.Pop()
		fr := top.(layoutFrame[N])
		l, r := fr.n.Left(), fr.n.Right()
		if !fr.done {
			fr.done = true
			st.Push(fr)
			if !r.Nil() {
				st.Push(layoutFrame[N]{n: r, idx: 2*fr.idx + 2})
			}
			if !l.Nil() {
				st.Push(layoutFrame[N]{n: l, idx: 2*fr.idx + 1})
			}
			continue
		}
		bx := &box{label: cfg.label(fr.n.Value(), fr.idx)}
		if !r.Nil() {
			x, _ := boxes.Pop()
			bx.r = x.(*box)
		}
		if !l.Nil() {
			x, _ := boxes.Pop()
			bx.l = x.(*box)
			bx.start = bx.l.width + 1
		}
		bx.width = bx.start + len(bx.label)
		if bx.r != nil {
			bx.width += bx.r.width + 1
		}
		boxes.Push(bx)
	}
	x, _ := boxes.Pop()
	return x.(*box)
}

type placed struct {
	b        *box
	row, col int
}

// Pretty renders the tree as ASCII art, each subtree hanging below its parent
// joined by "/" and "\" branches, with "_" runs extending the parent's line
// toward the middle of each child label:
//
//	        __7
//	       /   \
//	    __3     2
//	   /   \     \
//	  6     9     1
//	 / \
//	5   8
//
// Lines carry no trailing spaces and there is no leading or trailing newline.
// The empty tree renders as "".
// Time: O(n + output); Space: O(output)
func Pretty[T any, N Binary[T, N]](root N, opts ...PrintOption) string {
	if root.Nil() {
		return ""
	}
	cfg := printConfig{delim: "-"}
	for _, o := range opts {
		o(&cfg)
	}
	var b board
	st := arraystack.New()
	st.Push(placed{layout[T](root, &cfg), 0, 0})
	for !st.Empty() {
		top, _ := st.Pop()
		p := top.(placed)
		at := p.col + p.b.start
		after := at + len(p.b.label)
		b.write(p.row, at, p.b.label)
		if l := p.b.l; l != nil {
			lRoot := (l.start+l.end())/2 + 1
			b.repeat(p.row, p.col+lRoot+1, l.width-lRoot, '_')
			b.write(p.row+1, p.col+lRoot, []rune{'/'})
			st.Push(placed{l, p.row + 2, p.col})
		}
		if r := p.b.r; r != nil {
			rRoot := (r.start + r.end()) / 2
			b.repeat(p.row, after, rRoot, '_')
			b.write(p.row+1, after+rRoot, []rune{'\\'})
			st.Push(placed{r, p.row + 2, after + 1})
		}
	}
	return b.render()
}
