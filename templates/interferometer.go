package templates

import (
	"fmt"

	"github.com/oqtopus-team/template-engine/core"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Mesh selects which wire pairs receive beamsplitters and in what order.
type Mesh int

const (
	RECTANGULAR Mesh = iota // Clements brick-wall columns.
	TRIANGULAR              // Reck staircase.
)

func (m Mesh) String() string {
	switch m {
	case RECTANGULAR:
		return "rectangular"
	case TRIANGULAR:
		return "triangular"
	default:
		return "unknown"
	}
}

func ToMesh(s string) (Mesh, error) {
	switch s {
	case "rectangular":
		return RECTANGULAR, nil
	case "triangular":
		return TRIANGULAR, nil
	default:
		return 0, fmt.Errorf("Mesh option %s not recognized", s)
	}
}

// BeamsplitterConvention selects how the phi parameters enter the mesh.
type BeamsplitterConvention int

const (
	PENNYLANE BeamsplitterConvention = iota // phi carried by the beamsplitter itself.
	CLEMENTS                                // phi applied as a rotation before a zero-phase beamsplitter.
)

func (b BeamsplitterConvention) String() string {
	switch b {
	case PENNYLANE:
		return "pennylane"
	case CLEMENTS:
		return "clements"
	default:
		return "unknown"
	}
}

func ToBeamsplitterConvention(s string) (BeamsplitterConvention, error) {
	switch s {
	case "pennylane":
		return PENNYLANE, nil
	case "clements":
		return CLEMENTS, nil
	default:
		return 0, fmt.Errorf("did not recognize option %s for beamsplitter", s)
	}
}

// Interferometer builds the general linear interferometer on the given
// wires. theta and phi parameterize the N*(N-1)/2 beamsplitters in mesh
// order and varphi the trailing rotation on every wire. The pair traversal
// is fixed per mesh so the emitted sequence is reproducible record for
// record.
func Interferometer(theta, phi, varphi []float64, wires []int, mesh Mesh, beamsplitter BeamsplitterConvention) (*core.Program, error) {
	n := len(wires)
	if n == 0 {
		msg := "no wires for interferometer"
		zap.L().Info(msg)
		return nil, fmt.Errorf(msg)
	}
	if err := checkShapes(theta, phi, varphi, n); err != nil {
		zap.L().Info(err.Error())
		return nil, err
	}

	rec := core.NewRecorder()
	if n == 1 {
		rec.Apply(core.ROTATION, []int{wires[0]}, varphi[0])
		return rec.Build(), nil
	}

	next := 0
	pair := func(k int) error {
		w1, w2 := wires[k], wires[k+1]
		switch beamsplitter {
		case CLEMENTS:
			rec.Apply(core.ROTATION, []int{w1}, phi[next])
			rec.Apply(core.BEAMSPLITTER, []int{w1, w2}, theta[next], 0)
		case PENNYLANE:
			rec.Apply(core.BEAMSPLITTER, []int{w1, w2}, theta[next], phi[next])
		default:
			return fmt.Errorf("did not recognize option %d for beamsplitter", beamsplitter)
		}
		next++
		return nil
	}

	switch mesh {
	case RECTANGULAR:
		// Brick-wall columns: column l touches the pairs whose lower wire
		// index k satisfies (l+k) even.
		for l := 0; l < n; l++ {
			for k := 0; k < n-1; k++ {
				if (l+k)%2 == 1 {
					continue
				}
				if err := pair(k); err != nil {
					zap.L().Info(err.Error())
					return nil, err
				}
			}
		}
	case TRIANGULAR:
		// Staircase from the last pair down to the first and back out.
		for l := 0; l < 2*n-3; l++ {
			start := l + 1 - (n - 1)
			if start < 0 {
				start = -start
			}
			for k := start; k < n-1; k += 2 {
				if err := pair(k); err != nil {
					zap.L().Info(err.Error())
					return nil, err
				}
			}
		}
	default:
		err := fmt.Errorf("Mesh option %d not recognized", mesh)
		zap.L().Info(err.Error())
		return nil, err
	}

	for i := 0; i < n; i++ {
		rec.Apply(core.ROTATION, []int{wires[i]}, varphi[i])
	}
	return rec.Build(), nil
}

func checkShapes(theta, phi, varphi []float64, n int) error {
	var errs error
	wantPairs := n * (n - 1) / 2
	if len(theta) != wantPairs {
		errs = multierr.Append(errs,
			fmt.Errorf("'theta' must be of shape (%d,); got (%d,)", wantPairs, len(theta)))
	}
	if len(phi) != wantPairs {
		errs = multierr.Append(errs,
			fmt.Errorf("'phi' must be of shape (%d,); got (%d,)", wantPairs, len(phi)))
	}
	if len(varphi) != n {
		errs = multierr.Append(errs,
			fmt.Errorf("'varphi' must be of shape (%d,); got (%d,)", n, len(varphi)))
	}
	return errs
}
