package pauli

import (
	"fmt"
)

// GrayCode enumerates the mixed-radix reflected Gray code over k digits,
// each digit in [0, n). The sequence visits all n^k words exactly once and
// consecutive words, including the wrap from last to first, differ in a
// single digit by a single step modulo n.
type GrayCode struct {
	n     int
	k     int
	index int
	total int
}

func NewGrayCode(n, k int) (*GrayCode, error) {
	if n < 1 {
		return nil, fmt.Errorf("radix must be at least 1, got %d", n)
	}
	if k < 1 {
		return nil, fmt.Errorf("digit count must be at least 1, got %d", k)
	}
	total := 1
	for i := 0; i < k; i++ {
		total *= n
	}
	return &GrayCode{n: n, k: k, total: total}, nil
}

func (g *GrayCode) Len() int {
	return g.total
}

func (g *GrayCode) Reset() {
	g.index = 0
}

// Next returns the next codeword, or false once all n^k words were produced.
// The returned slice is freshly allocated on every call.
func (g *GrayCode) Next() ([]int, bool) {
	if g.index >= g.total {
		return nil, false
	}
	digits := make([]int, g.k)
	v := g.index
	for j := 0; j < g.k; j++ {
		digits[j] = v % g.n
		v /= g.n
	}
	// Reflect the plain base-n counter into its Gray codeword. The shift
	// accumulated from higher digits decides the traversal direction of
	// each lower digit.
	word := make([]int, g.k)
	shift := 0
	for j := g.k - 1; j >= 0; j-- {
		word[j] = (digits[j] + shift) % g.n
		shift += g.n - word[j]
	}
	g.index++
	return word, true
}
