//go:build unit
// +build unit

package core

import (
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/stretchr/testify/assert"
)

func TestRegisterSettings(t *testing.T) {
	s := newSetting()
	s.registerSetting(INTERFEROMETER_TEMPLATE, NewInterferometerSetting())
	assert.Equal(t, 1, len(s.ComponentSetting))
}

func TestParseSettings(t *testing.T) {
	ResetSetting()
	tests := []struct {
		name      string
		in        string
		wantError error
		want      *Setting
	}{
		{
			name:      "empty",
			in:        "",
			wantError: nil,
			want: &Setting{
				ComponentSetting: map[string]interface{}{},
			},
		},
		{
			name: "interferometer defaults",
			in: heredoc.Doc(`
				[com.interferometer]
				mesh = "triangular"
				beamsplitter = "clements"
			`),
			wantError: nil,
			want: &Setting{
				ComponentSetting: map[string]interface{}{
					"interferometer": map[string]interface{}{
						"mesh":         "triangular",
						"beamsplitter": "clements",
					},
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetSetting()
			gotError := globalSetting.parseSetting(tt.in)
			assert.Equal(t, tt.wantError, gotError)
			assert.Equal(t, tt.want, globalSetting)
		})
	}
}

func TestGetComponentSetting(t *testing.T) {
	ResetSetting()
	RegisterSetting(INTERFEROMETER_TEMPLATE, NewInterferometerSetting())
	val, ok := GetComponentSetting(INTERFEROMETER_TEMPLATE)
	assert.True(t, ok)
	assert.Equal(t, NewInterferometerSetting(), val)

	_, ok = GetComponentSetting("hogehoge")
	assert.False(t, ok)
}
