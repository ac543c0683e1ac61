package core

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
)

const (
	ARBITRARY_UNITARY_TEMPLATE = "arbitrary_unitary"
	INTERFEROMETER_TEMPLATE    = "interferometer"
	SINGLE_EXCITATION_TEMPLATE = "single_excitation_unitary"
)

// TemplateRequest describes one template invocation. Only the fields
// relevant to the named template need to be set.
type TemplateRequest struct {
	Template     string    `toml:"template"`
	Weights      []float64 `toml:"weights"`
	Wires        []int     `toml:"wires"`
	Theta        []float64 `toml:"theta"`
	Phi          []float64 `toml:"phi"`
	Varphi       []float64 `toml:"varphi"`
	Mesh         string    `toml:"mesh"`
	Beamsplitter string    `toml:"beamsplitter"`
}

func DecodeTemplateRequest(tomlString string) (*TemplateRequest, error) {
	req := &TemplateRequest{}
	_, err := toml.Decode(tomlString, req)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to parse template request/reason:%s", err))
		return nil, err
	}
	if req.Template == "" {
		msg := "no template name in request"
		zap.L().Info(msg)
		return nil, fmt.Errorf(msg)
	}
	return req, nil
}
