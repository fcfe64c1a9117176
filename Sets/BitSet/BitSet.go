package BitSet

import (
	"math/bits"
)

// BitSet is a set of uint over the fixed universe [0, Len()). Elements
// outside the universe are never members; Put panics on them.
// Range visits elements in increasing order.
type BitSet struct {
	words []uint
	sz    uint
}

// New BitSet able to hold 0..size-1.
func New(size uint) *BitSet {
	return &BitSet{words: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

// Len of the universe, rounded up to the word size.
func (u *BitSet) Len() uint {
	return uint(len(u.words)) * bits.UintSize
}

func (u *BitSet) Size() uint {
	return u.sz
}

func (u *BitSet) Has(i uint) bool {
	if i >= u.Len() {
		return false
	}
	return (u.words[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u *BitSet) Put(i uint) bool {
	w, m := &u.words[i/bits.UintSize], uint(1)<<(i%bits.UintSize)
	if *w&m != 0 {
		return false
	}
	*w |= m
	u.sz++
	return true
}

// Range
// Time: O(Len()/word size + Size())
func (u *BitSet) Range(f func(uint) bool) {
	for wi, w := range u.words {
		for w != 0 {
			tz := bits.TrailingZeros(w)
			if !f(uint(wi)*bits.UintSize + uint(tz)) {
				return
			}
			w &= w - 1
		}
	}
}
