//go:build unit
// +build unit

package templates

import (
	"math"
	"testing"

	"github.com/oqtopus-team/template-engine/core"
	"github.com/stretchr/testify/assert"
)

type refGate struct {
	index  int
	kind   core.GateKind
	wires  []int
	params []float64
}

func TestSingleExcitationUnitaryOperations(t *testing.T) {
	weight := math.Pi / 3
	tests := []struct {
		name     string
		wiresRP  []int
		refGates []refGate
	}{
		{
			name:    "boundary gates on [0,2]",
			wiresRP: []int{0, 2},
			refGates: []refGate{
				{0, core.RX, []int{0}, []float64{-math.Pi / 2}},
				{1, core.HADAMARD, []int{2}, []float64{}},
				{7, core.RX, []int{0}, []float64{math.Pi / 2}},
				{8, core.HADAMARD, []int{2}, []float64{}},
				{9, core.HADAMARD, []int{0}, []float64{}},
				{10, core.RX, []int{2}, []float64{-math.Pi / 2}},
				{16, core.HADAMARD, []int{0}, []float64{}},
				{17, core.RX, []int{2}, []float64{math.Pi / 2}},
				{4, core.RZ, []int{2}, []float64{weight / 2}},
				{13, core.RZ, []int{2}, []float64{-weight / 2}},
			},
		},
		{
			name:    "boundary gates on [10,11]",
			wiresRP: []int{10, 11},
			refGates: []refGate{
				{0, core.RX, []int{10}, []float64{-math.Pi / 2}},
				{1, core.HADAMARD, []int{11}, []float64{}},
				{12, core.HADAMARD, []int{10}, []float64{}},
				{13, core.RX, []int{11}, []float64{math.Pi / 2}},
				{3, core.RZ, []int{11}, []float64{weight / 2}},
				{10, core.RZ, []int{11}, []float64{-weight / 2}},
			},
		},
		{
			name:    "cnot ladders on [1,4]",
			wiresRP: []int{1, 4},
			refGates: []refGate{
				{2, core.CNOT, []int{1, 2}, []float64{}},
				{3, core.CNOT, []int{2, 3}, []float64{}},
				{4, core.CNOT, []int{3, 4}, []float64{}},
				{6, core.CNOT, []int{3, 4}, []float64{}},
				{7, core.CNOT, []int{2, 3}, []float64{}},
				{8, core.CNOT, []int{1, 2}, []float64{}},
				{13, core.CNOT, []int{1, 2}, []float64{}},
				{14, core.CNOT, []int{2, 3}, []float64{}},
				{15, core.CNOT, []int{3, 4}, []float64{}},
				{17, core.CNOT, []int{3, 4}, []float64{}},
				{18, core.CNOT, []int{2, 3}, []float64{}},
				{19, core.CNOT, []int{1, 2}, []float64{}},
			},
		},
		{
			name:    "cnot ladder on adjacent wires [10,11]",
			wiresRP: []int{10, 11},
			refGates: []refGate{
				{2, core.CNOT, []int{10, 11}, []float64{}},
				{4, core.CNOT, []int{10, 11}, []float64{}},
				{9, core.CNOT, []int{10, 11}, []float64{}},
				{11, core.CNOT, []int{10, 11}, []float64{}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := SingleExcitationUnitary(weight, tt.wiresRP)
			assert.Nil(t, err)

			sqg := 10
			cnots := 4 * (tt.wiresRP[1] - tt.wiresRP[0])
			assert.Equal(t, sqg+cnots, len(prog.Ops))

			for _, ref := range tt.refGates {
				op := prog.Ops[ref.index]
				assert.Equal(t, ref.kind, op.Kind, "gate kind at index %d", ref.index)
				assert.Equal(t, ref.wires, op.Wires, "wires at index %d", ref.index)
				assert.Equal(t, ref.params, op.Params, "params at index %d", ref.index)
			}
		})
	}
}

func TestSingleExcitationUnitaryExceptions(t *testing.T) {
	tests := []struct {
		name    string
		weight  float64
		wiresRP []int
		want    string
	}{
		{
			name:    "single wire",
			weight:  0.2,
			wiresRP: []int{0},
			want:    "'wires_rp' must be of shape (2,)",
		},
		{
			name:    "no wires",
			weight:  0.2,
			wiresRP: []int{},
			want:    "'wires_rp' must be of shape (2,)",
		},
		{
			name:    "nil wires",
			weight:  0.2,
			wiresRP: nil,
			want:    "'wires_rp' must be of shape (2,)",
		},
		{
			name:    "negative wire",
			weight:  0.2,
			wiresRP: []int{-1, 2},
			want:    "wires must be a positive integer",
		},
		{
			name:    "equal wires",
			weight:  0.2,
			wiresRP: []int{3, 3},
			want:    "wires_rp_1 must be > wires_rp_0",
		},
		{
			name:    "descending wires",
			weight:  0.2,
			wiresRP: []int{3, 1},
			want:    "wires_rp_1 must be > wires_rp_0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := SingleExcitationUnitary(tt.weight, tt.wiresRP)
			assert.Nil(t, prog)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestSingleExcitationUnitaryWeightShapeFromRequest(t *testing.T) {
	req := &core.TemplateRequest{
		Template: core.SINGLE_EXCITATION_TEMPLATE,
		Weights:  []float64{0.2, 1.1},
		Wires:    []int{0, 2},
	}
	prog, err := BuildFromRequest(req)
	assert.Nil(t, prog)
	assert.ErrorContains(t, err, "'weight' must be of shape ()")
}
