package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NivelConfigurado(t *testing.T) {
	l := New(Config{Env: "production", Level: "debug", Service: "clinica-app"})
	assert.Equal(t, zerolog.DebugLevel, l.Zerolog().GetLevel())
}

func TestNew_NivelInvalidoCaeEnInfo(t *testing.T) {
	l := New(Config{Env: "production", Level: "gritando"})
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())
}

func TestNew_EstampaCampoService(t *testing.T) {
	l := New(Config{Env: "production", Level: "info", Service: "clinica-app"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("servidor iniciado")

	var event map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "clinica-app", event["service"])
	assert.Equal(t, "servidor iniciado", event["message"])
}
