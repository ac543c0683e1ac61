//go:build unit
// +build unit

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetVersion(t *testing.T) {
	tests := []struct {
		name               string
		conf               *Conf
		versionByBuildFlag string
		wantVersion        string
	}{
		{
			name:               "version is set by build flag",
			conf:               &Conf{},
			versionByBuildFlag: "v0.5.0",
			wantVersion:        "v0.5.0",
		},
		{
			name:               "version is set by config",
			conf:               &Conf{Version: "v0.5.0"},
			versionByBuildFlag: "",
			wantVersion:        "v0.5.0",
		},
		{
			name:               "version is not set",
			conf:               &Conf{},
			versionByBuildFlag: "",
			wantVersion:        NoVersion,
		},
		{
			name:               "version is set by build flag and config",
			conf:               &Conf{Version: "v0.5.0"},
			versionByBuildFlag: "v0.5.1",
			wantVersion:        "v0.5.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetVersion(tt.conf, tt.versionByBuildFlag)
			assert.Equal(t, Version, tt.wantVersion)
		})
	}
}
