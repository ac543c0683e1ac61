//go:build unit
// +build unit

package pauli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTupleToWord(t *testing.T) {
	tests := []struct {
		name  string
		tuple []int
		want  string
	}{
		{name: "identity", tuple: []int{0}, want: "I"},
		{name: "x", tuple: []int{1}, want: "X"},
		{name: "y", tuple: []int{2}, want: "Y"},
		{name: "z", tuple: []int{3}, want: "Z"},
		{name: "all identity", tuple: []int{0, 0, 0}, want: "III"},
		{name: "xyz", tuple: []int{1, 2, 3}, want: "XYZ"},
		{name: "palindrome", tuple: []int{1, 2, 3, 0, 0, 3, 2, 1}, want: "XYZIIZYX"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TupleToWord(tt.tuple)
			assert.Nil(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTupleToWordInvalidDigit(t *testing.T) {
	_, err := TupleToWord([]int{1, 4})
	assert.EqualError(t, err, "digit 4 is not a Pauli index in [0, 3]")
	_, err = TupleToWord([]int{-1})
	assert.EqualError(t, err, "digit -1 is not a Pauli index in [0, 3]")
}

func TestAllWordsButIdentity(t *testing.T) {
	tests := []struct {
		name     string
		numWires int
		want     []string
	}{
		{
			name:     "one wire",
			numWires: 1,
			want:     []string{"X", "Y", "Z"},
		},
		{
			name:     "two wires",
			numWires: 2,
			want: []string{
				"XI", "YI", "ZI", "ZX", "IX", "XX", "YX", "YY", "ZY", "IY", "XY", "XZ", "YZ", "ZZ", "IZ",
			},
		},
		{
			name:     "three wires",
			numWires: 3,
			want: []string{
				"XII", "YII", "ZII", "ZXI", "IXI", "XXI", "YXI", "YYI", "ZYI", "IYI", "XYI", "XZI", "YZI",
				"ZZI", "IZI", "IZX", "XZX", "YZX", "ZZX", "ZIX", "IIX", "XIX", "YIX", "YXX", "ZXX", "IXX",
				"XXX", "XYX", "YYX", "ZYX", "IYX", "IYY", "XYY", "YYY", "ZYY", "ZZY", "IZY", "XZY", "YZY",
				"YIY", "ZIY", "IIY", "XIY", "XXY", "YXY", "ZXY", "IXY", "IXZ", "XXZ", "YXZ", "ZXZ", "ZYZ",
				"IYZ", "XYZ", "YYZ", "YZZ", "ZZZ", "IZZ", "XZZ", "XIZ", "YIZ", "ZIZ", "IIZ",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := AllWordsButIdentity(tt.numWires)
			assert.Nil(t, err)
			assert.Equal(t, len(tt.want), it.Len())
			got := []string{}
			for {
				w, ok := it.Next()
				if !ok {
					break
				}
				got = append(got, w)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllWordsButIdentityInvalidWireCount(t *testing.T) {
	_, err := AllWordsButIdentity(0)
	assert.EqualError(t, err, "digit count must be at least 1, got 0")
}
