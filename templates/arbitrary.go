package templates

import (
	"fmt"

	"github.com/oqtopus-team/template-engine/core"
	"github.com/oqtopus-team/template-engine/pauli"
	"go.uber.org/zap"
)

// ArbitraryUnitary builds one Pauli-word rotation per non-identity word on
// the given wires, in Gray code enumeration order. weights must carry
// exactly 4^len(wires)-1 angles, one per word.
func ArbitraryUnitary(weights []float64, wires []int) (*core.Program, error) {
	if len(wires) == 0 {
		msg := "no wires for arbitrary unitary"
		zap.L().Info(msg)
		return nil, fmt.Errorf(msg)
	}
	want := 1
	for range wires {
		want *= 4
	}
	want--
	if len(weights) != want {
		err := fmt.Errorf("'weights' must be of shape (%d,); got (%d,)", want, len(weights))
		zap.L().Info(err.Error())
		return nil, err
	}
	words, err := pauli.AllWordsButIdentity(len(wires))
	if err != nil {
		zap.L().Info(err.Error())
		return nil, err
	}
	rec := core.NewRecorder()
	for i := 0; ; i++ {
		word, ok := words.Next()
		if !ok {
			break
		}
		rec.ApplyPauliRot(weights[i], word, wires)
	}
	return rec.Build(), nil
}
