package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFrom(t *testing.T) {
	tests := []struct {
		name        string
		environment map[string]string
		wantErr     bool
		want        Config
	}{
		{
			name:        "defaults",
			environment: map[string]string{},
			want:        Config{LogLevel: "warn", Verbosity: VerbosityDefault, Color: ColorAuto},
		},
		{
			name: "all set",
			environment: map[string]string{
				"REORGANIZER_LOG_LEVEL": "debug",
				"REORGANIZER_VERBOSITY": "verbose",
				"REORGANIZER_COLOR":     "never",
			},
			want: Config{LogLevel: "debug", Verbosity: VerbosityVerbose, Color: ColorNever},
		},
		{
			name:        "case and spaces are normalized",
			environment: map[string]string{"REORGANIZER_LOG_LEVEL": " None ", "REORGANIZER_VERBOSITY": "QUIET"},
			want:        Config{LogLevel: "none", Verbosity: VerbosityQuiet, Color: ColorAuto},
		},
		{name: "bad level", environment: map[string]string{"REORGANIZER_LOG_LEVEL": "loud"}, wantErr: true},
		{name: "bad verbosity", environment: map[string]string{"REORGANIZER_VERBOSITY": "chatty"}, wantErr: true},
		{name: "bad color", environment: map[string]string{"REORGANIZER_COLOR": "rainbow"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requires := require.New(t)

			cfg, err := ParseFrom(tt.environment)

			if tt.wantErr {
				requires.Error(err)
				requires.Equal(Config{}, cfg)
				return
			}
			requires.NoError(err)
			requires.Equal(tt.want, cfg)
		})
	}
}

func TestUseColors(t *testing.T) {
	tests := []struct {
		color    string
		terminal bool
		want     bool
	}{
		{ColorAuto, true, true},
		{ColorAuto, false, false},
		{ColorAlways, false, true},
		{ColorNever, true, false},
	}
	for _, tt := range tests {
		if got := (Config{Color: tt.color}).UseColors(tt.terminal); got != tt.want {
			t.Errorf("UseColors(%s, terminal=%v) = %v, want %v", tt.color, tt.terminal, got, tt.want)
		}
	}
}
