package Trees

import (
	"math"
	"math/rand/v2"

	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

// Domain of node values for the generators.
type Domain[T constraints.Ordered] interface {
	// Cap is how many distinct values the domain holds.
	Cap() int
	// Sample n distinct values in ascending order, n<=Cap().
	Sample(r *rand.Rand, n int) []T
}

type intDomain struct {
	span int
}

// Ints draws from [0, span). With span<=0 a sample of n is exactly 0..n-1.
func Ints(span int) Domain[int] {
	return intDomain{span}
}

func (d intDomain) Cap() int {
	if d.span <= 0 {
		return math.MaxInt
	}
	return d.span
}

func (d intDomain) Sample(r *rand.Rand, n int) []int {
	if d.span <= 0 {
		vs := make([]int, n)
		for i := range vs {
			vs[i] = i
		}
		return vs
	}
	return sortedSample(n, func() int { return r.IntN(d.span) })
}

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

type letterDomain struct{}

// Letters draws single ASCII letters, upper case sorting first.
func Letters() Domain[string] {
	return letterDomain{}
}

func (letterDomain) Cap() int {
	return len(alphabet)
}

func (letterDomain) Sample(r *rand.Rand, n int) []string {
	return sortedSample(n, func() string {
		i := r.IntN(len(alphabet))
		return alphabet[i : i+1]
	})
}

// sortedSample draws until n distinct values are collected. draw must be able
// to produce at least n distinct values.
func sortedSample[T constraints.Ordered](n int, draw func() T) []T {
	set := btree.NewG[T](8, func(a, b T) bool { return a < b })
	for set.Len() < n {
		set.ReplaceOrInsert(draw())
	}
	vs := make([]T, 0, n)
	set.Ascend(func(v T) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}
