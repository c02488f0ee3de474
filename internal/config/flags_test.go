package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    *StructuredConfig
		wantErr bool
	}{
		{
			name: "no flags",
			args: nil,
			want: &StructuredConfig{},
		},
		{
			name: "all flags",
			args: []string{
				"-log-file", "/tmp/formdemo.log",
				"-timeout", "2s",
				"-auto-validate",
				"-check-url", "http://localhost:8080",
				"-check-path", "/check",
				"-request-timeout", "750ms",
				"-c", "cfg.json",
			},
			want: &StructuredConfig{
				App:        App{LogFile: "/tmp/formdemo.log"},
				Validation: Validation{Timeout: 2 * time.Second, AutoValidate: true},
				Remote: Remote{
					CheckURL:       "http://localhost:8080",
					CheckPath:      "/check",
					RequestTimeout: 750 * time.Millisecond,
				},
				JSONFilePath: "cfg.json",
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "other.json"},
			want: &StructuredConfig{JSONFilePath: "other.json"},
		},
		{
			name:    "bad duration",
			args:    []string{"-timeout", "soon"},
			wantErr: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"-port", "8080"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlags(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
