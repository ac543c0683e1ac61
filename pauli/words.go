package pauli

import (
	"fmt"
	"strings"
)

var symbols = [4]byte{'I', 'X', 'Y', 'Z'}

// TupleToWord maps each digit 0,1,2,3 to I,X,Y,Z positionally.
func TupleToWord(t []int) (string, error) {
	var b strings.Builder
	b.Grow(len(t))
	for _, d := range t {
		if d < 0 || d >= len(symbols) {
			return "", fmt.Errorf("digit %d is not a Pauli index in [0, 3]", d)
		}
		b.WriteByte(symbols[d])
	}
	return b.String(), nil
}

// WordIterator walks the radix-4 Gray code and yields one Pauli word per
// codeword, skipping the all-identity word wherever it occurs.
type WordIterator struct {
	code     *GrayCode
	numWires int
}

// AllWordsButIdentity enumerates the 4^numWires - 1 Pauli words of the given
// length in Gray code order.
func AllWordsButIdentity(numWires int) (*WordIterator, error) {
	code, err := NewGrayCode(4, numWires)
	if err != nil {
		return nil, err
	}
	return &WordIterator{code: code, numWires: numWires}, nil
}

func (w *WordIterator) Len() int {
	return w.code.Len() - 1
}

func (w *WordIterator) Reset() {
	w.code.Reset()
}

func (w *WordIterator) Next() (string, bool) {
	for {
		tuple, ok := w.code.Next()
		if !ok {
			return "", false
		}
		if allZero(tuple) {
			continue
		}
		// Digits are in range by construction.
		word, _ := TupleToWord(tuple)
		return word, true
	}
}

func allZero(tuple []int) bool {
	for _, d := range tuple {
		if d != 0 {
			return false
		}
	}
	return true
}
