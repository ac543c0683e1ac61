package templates

import (
	"fmt"
	"math"

	"github.com/oqtopus-team/template-engine/core"
	"go.uber.org/zap"
)

// SingleExcitationUnitary builds the gate decomposition of a fermionic
// single-excitation rotation between occupied wire r and virtual wire p,
// wiresRP = [r, p]. The decomposition is two symmetric basis-change layers,
// each wrapping a weight/2 RZ pulse in a CNOT ladder walking from r up to p
// and back, 10 + 4*(p-r) gates in total.
func SingleExcitationUnitary(weight float64, wiresRP []int) (*core.Program, error) {
	if len(wiresRP) != 2 {
		err := fmt.Errorf("'wires_rp' must be of shape (2,); got (%d,)", len(wiresRP))
		zap.L().Info(err.Error())
		return nil, err
	}
	r, p := wiresRP[0], wiresRP[1]
	if r < 0 || p < 0 {
		err := fmt.Errorf("wires must be a positive integer; got %v", wiresRP)
		zap.L().Info(err.Error())
		return nil, err
	}
	if p <= r {
		err := fmt.Errorf("wires_rp_1 must be > wires_rp_0; got %v", wiresRP)
		zap.L().Info(err.Error())
		return nil, err
	}

	ladder := make([][]int, 0, p-r)
	for l := r; l < p; l++ {
		ladder = append(ladder, []int{l, l + 1})
	}

	rec := core.NewRecorder()

	// Layer one: rotate r into the Y basis and p into the X basis.
	rec.Apply(core.RX, []int{r}, -math.Pi/2)
	rec.Apply(core.HADAMARD, []int{p})
	applyLadder(rec, ladder, false)
	rec.Apply(core.RZ, []int{p}, weight/2)
	applyLadder(rec, ladder, true)
	rec.Apply(core.RX, []int{r}, math.Pi/2)
	rec.Apply(core.HADAMARD, []int{p})

	// Layer two: the conjugate basis choice with the opposite pulse sign.
	rec.Apply(core.HADAMARD, []int{r})
	rec.Apply(core.RX, []int{p}, -math.Pi/2)
	applyLadder(rec, ladder, false)
	rec.Apply(core.RZ, []int{p}, -weight/2)
	applyLadder(rec, ladder, true)
	rec.Apply(core.HADAMARD, []int{r})
	rec.Apply(core.RX, []int{p}, math.Pi/2)

	return rec.Build(), nil
}

func applyLadder(rec *core.Recorder, ladder [][]int, reversed bool) {
	if reversed {
		for i := len(ladder) - 1; i >= 0; i-- {
			rec.Apply(core.CNOT, ladder[i])
		}
		return
	}
	for _, wires := range ladder {
		rec.Apply(core.CNOT, wires)
	}
}
