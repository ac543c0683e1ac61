package templates

import (
	"fmt"

	"github.com/oqtopus-team/template-engine/core"
	"go.uber.org/zap"
)

// BuildFromRequest dispatches a decoded request to its builder. Mesh and
// beamsplitter strings left empty fall back to the registered component
// setting, then to the built-in defaults.
func BuildFromRequest(req *core.TemplateRequest) (*core.Program, error) {
	switch req.Template {
	case core.ARBITRARY_UNITARY_TEMPLATE:
		return ArbitraryUnitary(req.Weights, req.Wires)
	case core.INTERFEROMETER_TEMPLATE:
		mesh, beamsplitter, err := interferometerOptions(req)
		if err != nil {
			return nil, err
		}
		return Interferometer(req.Theta, req.Phi, req.Varphi, req.Wires, mesh, beamsplitter)
	case core.SINGLE_EXCITATION_TEMPLATE:
		if len(req.Weights) != 1 {
			err := fmt.Errorf("'weight' must be of shape (); got (%d,)", len(req.Weights))
			zap.L().Info(err.Error())
			return nil, err
		}
		return SingleExcitationUnitary(req.Weights[0], req.Wires)
	default:
		err := fmt.Errorf("%s is an unknown template", req.Template)
		zap.L().Info(err.Error())
		return nil, err
	}
}

func interferometerOptions(req *core.TemplateRequest) (Mesh, BeamsplitterConvention, error) {
	defaults := defaultInterferometerSetting()
	meshName := req.Mesh
	if meshName == "" {
		meshName = defaults.Mesh
	}
	bsName := req.Beamsplitter
	if bsName == "" {
		bsName = defaults.Beamsplitter
	}
	mesh, err := ToMesh(meshName)
	if err != nil {
		zap.L().Info(err.Error())
		return 0, 0, err
	}
	beamsplitter, err := ToBeamsplitterConvention(bsName)
	if err != nil {
		zap.L().Info(err.Error())
		return 0, 0, err
	}
	return mesh, beamsplitter, nil
}

func defaultInterferometerSetting() core.InterferometerSetting {
	setting := core.NewInterferometerSetting()
	raw, ok := core.GetComponentSetting(core.INTERFEROMETER_TEMPLATE)
	if !ok {
		return setting
	}
	switch v := raw.(type) {
	case core.InterferometerSetting:
		setting = v
	case map[string]interface{}:
		if mesh, ok := v["mesh"].(string); ok {
			setting.Mesh = mesh
		}
		if beamsplitter, ok := v["beamsplitter"].(string); ok {
			setting.Beamsplitter = beamsplitter
		}
	default:
		zap.L().Debug(fmt.Sprintf("unexpected interferometer setting shape: %v", raw))
	}
	return setting
}
