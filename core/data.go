package core

import (
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/mohae/deepcopy"
	"github.com/tidwall/pretty"
	"go.uber.org/zap"
)

type GateKind int

var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	ROTATION     GateKind = iota // Single-mode phase rotation.
	BEAMSPLITTER                 // Two-mode beamsplitter with mixing angle and phase.
	CNOT
	HADAMARD
	RX
	RZ
	PAULIROT // Rotation generated by a Pauli word.
)

func (k GateKind) String() string {
	switch k {
	case ROTATION:
		return "rotation"
	case BEAMSPLITTER:
		return "beamsplitter"
	case CNOT:
		return "cnot"
	case HADAMARD:
		return "hadamard"
	case RX:
		return "rx"
	case RZ:
		return "rz"
	case PAULIROT:
		return "paulirot"
	default:
		return "unknown"
	}
}

func ToGateKind(s string) (GateKind, error) {
	switch s {
	case "rotation":
		return ROTATION, nil
	case "beamsplitter":
		return BEAMSPLITTER, nil
	case "cnot":
		return CNOT, nil
	case "hadamard":
		return HADAMARD, nil
	case "rx":
		return RX, nil
	case "rz":
		return RZ, nil
	case "paulirot":
		return PAULIROT, nil
	default:
		return 0, fmt.Errorf("unknown gate kind: %s", s)
	}
}

func (k GateKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

func (k *GateKind) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("gate kind must be a JSON string, got %s", string(b))
	}
	kind, err := ToGateKind(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// Operation is one gate record as handed to the execution engine. Word is
// set only for PAULIROT operations.
type Operation struct {
	Kind   GateKind  `json:"kind"`
	Wires  []int     `json:"wires"`
	Params []float64 `json:"params"`
	Word   string    `json:"word,omitempty"`
}

// Program is the ordered gate sequence produced by one template build.
// Once built it is never mutated; consumers get their own copy via Clone.
type Program struct {
	ID      string          `json:"id"`
	Created strfmt.DateTime `json:"created"`
	Ops     []Operation     `json:"ops"`
}

func (p *Program) Clone() *Program {
	c := deepcopy.Copy(p).(*Program)
	c.Created = *p.Created.DeepCopy()
	return c
}

func (p *Program) ToString() string {
	st, err := jsonIter.Marshal(p)
	if err != nil {
		zap.L().Error("Failed to marshal core.Program")
		return ""
	}
	st = pretty.Pretty(st)
	return string(st)
}

// Recorder collects operations during a template build and seals them into
// a Program. It replaces any ambient recording context: each builder owns
// exactly one Recorder for the duration of a call.
type Recorder struct {
	ops []Operation
}

func NewRecorder() *Recorder {
	return &Recorder{ops: []Operation{}}
}

func (r *Recorder) Apply(kind GateKind, wires []int, params ...float64) {
	r.ops = append(r.ops, Operation{
		Kind:   kind,
		Wires:  append([]int{}, wires...),
		Params: append([]float64{}, params...),
	})
}

func (r *Recorder) ApplyPauliRot(weight float64, word string, wires []int) {
	r.ops = append(r.ops, Operation{
		Kind:   PAULIROT,
		Wires:  append([]int{}, wires...),
		Params: []float64{weight},
		Word:   word,
	})
}

func (r *Recorder) Len() int {
	return len(r.ops)
}

// Build seals the recorded sequence. The Recorder keeps no reference to the
// returned operations, so further Apply calls never leak into the Program.
func (r *Recorder) Build() *Program {
	ops := make([]Operation, len(r.ops))
	copy(ops, r.ops)
	r.ops = []Operation{}
	return &Program{
		ID:      uuid.New().String(),
		Created: strfmt.DateTime(time.Now()),
		Ops:     ops,
	}
}

// Executor is the external circuit-execution engine. It only consumes
// finished programs; expectation values and differentiation happen on the
// other side of this interface.
type Executor interface {
	Execute(p *Program) error
}
