package Trees

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"

	"github.com/g-m-twostay/go-bintree/Queues"
)

// Slot is one entry of a list representation; Ok==false marks a gap.
type Slot[T any] struct {
	V  T
	Ok bool
}

// Some slot holding v.
func Some[T any](v T) Slot[T] {
	return Slot[T]{V: v, Ok: true}
}

// Gap slot.
func Gap[T any]() (s Slot[T]) {
	return
}

func (s Slot[T]) String() string {
	if !s.Ok {
		return "None"
	}
	return fmt.Sprint(s.V)
}

// Slots wraps every value in vs. Convenient for lists without gaps.
func Slots[T any](vs ...T) []Slot[T] {
	ss := make([]Slot[T], len(vs))
	for i, v := range vs {
		ss[i] = Some(v)
	}
	return ss
}

// MaxDenseLen bounds the length of a dense list produced by [Values]. A sparse
// tree of height h needs up to 2^(h+1)-1 slots, so a chain of 23 nodes is the
// longest that always fits. At the bound a []Slot[int] takes 64 MiB.
const MaxDenseLen = 1 << 22

func trimGaps[T any](vs []Slot[T]) []Slot[T] {
	for len(vs) > 0 && !vs[len(vs)-1].Ok {
		vs = vs[:len(vs)-1]
	}
	return vs
}

// Build a tree from its dense list: the node at index i sits at level-order
// index i and gaps are absent nodes. Trailing gaps are ignored, and an empty or
// all-gap list gives the empty tree. A value whose parent slot is a gap is an
// ErrMalformedInput error.
// Time: O(len(values)); Space: O(len(values))
func Build[T constraints.Ordered](values []Slot[T]) (*Node[T], error) {
	values = trimGaps(values)
	if len(values) == 0 {
		return nil, nil
	}
	nodes := make([]*Node[T], len(values))
	for i, s := range values {
		if !s.Ok {
			continue
		}
		nodes[i] = &Node[T]{V: s.V}
		if i == 0 {
			continue
		}
		p := nodes[Parent(uint(i))]
		if p == nil {
			return nil, markf(ErrMalformedInput, "parent node missing at index %d", Parent(uint(i)))
		}
		if sideOf(uint(i)) == LeftSide {
			p.L = nodes[i]
		} else {
			p.R = nodes[i]
		}
	}
	return nodes[0], nil
}

// Values is the dense list of the tree: slot i holds the value at level-order
// index i, with gaps where no node exists and no trailing gaps. Trees too sparse
// to list within MaxDenseLen slots give an ErrIndexOutOfRange error.
// Time: O(len(result)); Space: O(len(result))
func Values[T any, N Binary[T, N]](root N) ([]Slot[T], error) {
	if root.Nil() {
		return nil, nil
	}
	var maxIdx uint
	var present []indexed[N]
	q := Queues.MakeArrayQueue[indexed[N]](8)
	for q.Push(indexed[N]{root, 0}); !q.Empty(); {
		s, _ := q.Pop()
		present = append(present, s)
		maxIdx = max(maxIdx, s.i)
		l, r := s.n.Left(), s.n.Right()
		if l.Nil() && r.Nil() {
			continue
		}
		if s.i >= MaxDenseLen {
			return nil, markf(ErrIndexOutOfRange, "dense list would exceed %d slots", MaxDenseLen)
		}
		if !l.Nil() {
			q.Push(indexed[N]{l, 2*s.i + 1})
		}
		if !r.Nil() {
			q.Push(indexed[N]{r, 2*s.i + 2})
		}
	}
	if maxIdx >= MaxDenseLen {
		return nil, markf(ErrIndexOutOfRange, "dense list would exceed %d slots", MaxDenseLen)
	}
	out := make([]Slot[T], maxIdx+1)
	for _, s := range present {
		out[s.i] = Some(s.n.Value())
	}
	return out, nil
}

// Build2 builds a tree from its compact list. The first entry is the root;
// after that entries are consumed two at a time as the left and right child of
// each present node in breadth first order, and gaps don't reserve slots for
// their own children. Trailing gaps are ignored. A gap root, or a value left
// over when no parent remains, is an ErrMalformedInput error.
// Time: O(len(values)); Space: O(w)
func Build2[T constraints.Ordered](values []Slot[T]) (*Node[T], error) {
	values = trimGaps(values)
	if len(values) == 0 {
		return nil, nil
	}
	if !values[0].Ok {
		return nil, markf(ErrMalformedInput, "root value is missing")
	}
	root := &Node[T]{V: values[0].V}
	q := Queues.MakeArrayQueue[*Node[T]](uint(len(values)))
	q.Push(root)
	for i := 1; i < len(values); {
		n, err := q.Pop()
		if err != nil {
			return nil, markf(ErrMalformedInput, "no parent left for value at position %d", i)
		}
		if values[i].Ok {
			n.L = &Node[T]{V: values[i].V}
			q.Push(n.L)
		}
		if i++; i < len(values) && values[i].Ok {
			n.R = &Node[T]{V: values[i].V}
			q.Push(n.R)
		}
		i++
	}
	return root, nil
}

// Values2 is the compact list of the tree: the root value, then for every
// present node in breadth first order its left and right child, gaps marking
// absent ones. Trailing gaps are trimmed.
// Time: O(n); Space: O(n)
func Values2[T any, N Binary[T, N]](root N) []Slot[T] {
	if root.Nil() {
		return nil
	}
	out := []Slot[T]{Some(root.Value())}
	q := Queues.MakeArrayQueue[N](8)
	for q.Push(root); !q.Empty(); {
		n, _ := q.Pop()
		for _, c := range [2]N{n.Left(), n.Right()} {
			if c.Nil() {
				out = append(out, Gap[T]())
			} else {
				out = append(out, Some(c.Value()))
				q.Push(c)
			}
		}
	}
	return trimGaps(out)
}

// gapTokens are the spellings ParseSlots accepts for a gap.
var gapTokens = map[string]struct{}{"None": {}, "null": {}, "nil": {}, "_": {}}

// ParseSlots reads a list such as "[7, 3, 2, None, 1]". Brackets are optional,
// entries are separated by commas or spaces, and None, null, nil and _ are gaps.
// Everything else goes through parse; failures are ErrMalformedInput errors.
func ParseSlots[T any](s string, parse func(string) (T, error)) ([]Slot[T], error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		s = s[1 : len(s)-1]
	}
	toks := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	out := make([]Slot[T], len(toks))
	for i, tok := range toks {
		if _, ok := gapTokens[tok]; ok {
			continue
		}
		v, err := parse(tok)
		if err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "entry %d", i), ErrMalformedInput)
		}
		out[i] = Some(v)
	}
	return out, nil
}

// ParseInts is ParseSlots over base 10 ints.
func ParseInts(s string) ([]Slot[int], error) {
	return ParseSlots(s, strconv.Atoi)
}

// ParseFloats is ParseSlots over float64.
func ParseFloats(s string) ([]Slot[float64], error) {
	return ParseSlots(s, func(tok string) (float64, error) {
		f, err := strconv.ParseFloat(tok, 64)
		if err == nil && (math.IsNaN(f) || math.IsInf(f, 0)) {
			err = errors.Newf("%q is not a finite number", tok)
		}
		return f, err
	})
}

// ParseStrings is ParseSlots over strings, with optional single or double quotes.
func ParseStrings(s string) ([]Slot[string], error) {
	return ParseSlots(s, func(tok string) (string, error) {
		if len(tok) >= 2 && (tok[0] == '\'' || tok[0] == '"') && tok[len(tok)-1] == tok[0] {
			tok = tok[1 : len(tok)-1]
		}
		if tok == "" {
			return "", errors.New("empty value")
		}
		return tok, nil
	})
}

// FormatSlots renders vs as "[7, 3, 2, None, 1]".
func FormatSlots[T any](vs []Slot[T]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, s := range vs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(s.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
