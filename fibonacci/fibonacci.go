// Package fibonacci generates the Fibonacci numbers used by Fibonacci search.
//
// The sequence is indexed so that F(0) = 1 and F(1) = 1, hence F(2) = 2,
// F(9) = 55 and F(10) = 89. Fibonacci search sizes its iteration budget and
// draws its contraction ratios from this same indexing.
//
// Values are arbitrary precision and memoized. Memoization never changes a
// result because F(n) depends only on n.
package fibonacci

import (
	"math"
	"math/big"
	"sync"
)

// Sequence is a memo table of Fibonacci numbers. The table only grows, so a
// Sequence is safe for concurrent use and may be shared between searches.
// The zero value is ready to use.
type Sequence struct {
	mu   sync.Mutex
	memo []*big.Int
}

// New returns a Sequence holding F(0) and F(1)
func New() *Sequence {
	return &Sequence{
		memo: []*big.Int{big.NewInt(1), big.NewInt(1)},
	}
}

var defaultSequence = New()

// Default returns the Sequence shared by the package level functions
func Default() *Sequence {
	return defaultSequence
}

// Of returns F(n) from the default sequence
func Of(n int) *big.Int {
	return defaultSequence.Of(n)
}

// Seq returns [F(0), ..., F(n)] from the default sequence
func Seq(n int) []*big.Int {
	return defaultSequence.Seq(n)
}

// grow extends the memo bottom-up so that it holds F(n). The caller must hold s.mu.
func (s *Sequence) grow(n int) {
	if n < 0 {
		panic("fibonacci: negative index")
	}
	if len(s.memo) < 2 {
		s.memo = []*big.Int{big.NewInt(1), big.NewInt(1)}
	}
	for len(s.memo) <= n {
		k := len(s.memo)
		s.memo = append(s.memo, new(big.Int).Add(s.memo[k-1], s.memo[k-2]))
	}
}

// Len returns the number of memoized values
func (s *Sequence) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.memo)
}

// Of returns F(n). The returned value is a copy and may be modified freely.
func (s *Sequence) Of(n int) *big.Int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grow(n)
	return new(big.Int).Set(s.memo[n])
}

// Seq returns the n+1 values F(0), ..., F(n) as copies.
func (s *Sequence) Seq(n int) []*big.Int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grow(n)
	seq := make([]*big.Int, n+1)
	for i := range seq {
		seq[i] = new(big.Int).Set(s.memo[i])
	}
	return seq
}

// IndexAbove returns the smallest n >= 1 such that F(n) > x, generating values
// on demand. x must be finite.
func (s *Sequence) IndexAbove(x float64) int {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		panic("fibonacci: bound is not finite")
	}
	bound := big.NewFloat(x)

	s.mu.Lock()
	defer s.mu.Unlock()
	n := 1
	for {
		s.grow(n)
		// SetInt on a zero Float keeps every bit of F(n)
		if new(big.Float).SetInt(s.memo[n]).Cmp(bound) > 0 {
			return n
		}
		n++
	}
}

// Ratio returns F(i)/F(j) of a materialized sequence as the closest float64
func Ratio(seq []*big.Int, i, j int) float64 {
	r, _ := new(big.Rat).SetFrac(seq[i], seq[j]).Float64()
	return r
}
