package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"seely/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "", want: slog.LevelInfo},
		{in: "INFO", want: slog.LevelInfo},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_JSONWithRedaction(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = "local"
	cfg.Env.ServiceName = "seely-api"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("login", slog.String("username", "apinut"), slog.String("password", "1234"), slog.String("refreshToken", "eyJ"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "login", line["msg"])
	assert.Equal(t, "seely-api", line["service"])
	assert.Equal(t, "local", line["env"])
	assert.Equal(t, "apinut", line["username"])
	assert.Equal(t, redacted, line["password"])
	assert.Equal(t, redacted, line["refreshToken"])
}

func TestNewLogger_UnknownLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "loud"

	_, err := New(Params{Config: cfg})
	assert.Error(t, err)
}
