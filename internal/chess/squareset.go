package chess

import (
	"math/bits"
	"strings"
)

// SquareSet is a set of squares stored as a 64-bit mask; bit i is square i.
type SquareSet uint64

// SquareSetOf builds a set from the given squares. Invalid squares are ignored.
func SquareSetOf(squares ...Square) SquareSet {
	var s SquareSet
	for _, sq := range squares {
		s = s.Add(sq)
	}
	return s
}

// Add returns s with sq included.
func (s SquareSet) Add(sq Square) SquareSet {
	if !sq.IsValid() {
		return s
	}
	return s | 1<<uint(sq)
}

// Remove returns s without sq.
func (s SquareSet) Remove(sq Square) SquareSet {
	if !sq.IsValid() {
		return s
	}
	return s &^ (1 << uint(sq))
}

// Has reports whether sq is a member of s.
func (s SquareSet) Has(sq Square) bool {
	return sq.IsValid() && s&(1<<uint(sq)) != 0
}

// Union returns the squares in either set.
func (s SquareSet) Union(o SquareSet) SquareSet {
	return s | o
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Squares returns the members in ascending order.
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Len())
	for m := uint64(s); m != 0; m &= m - 1 {
		out = append(out, Square(bits.TrailingZeros64(m)))
	}
	return out
}

// Labels returns the members as square labels in ascending order.
func (s SquareSet) Labels() []string {
	squares := s.Squares()
	out := make([]string, len(squares))
	for i, sq := range squares {
		out[i] = sq.String()
	}
	return out
}

// String returns the members as a space separated list, e.g. "{a1 b2}".
func (s SquareSet) String() string {
	return "{" + strings.Join(s.Labels(), " ") + "}"
}
