package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_ProduccionEmiteJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "info", Writer: &buf})

	l.Info().Str("campo", "valor").Msg("hola")

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "{"), "en producción la salida es JSON: %s", out)
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"campo":"valor"`)
}

func TestNew_DevelopmentUsaConsola(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "development", Level: "info", Writer: &buf})

	l.Info().Msg("hola")

	assert.False(t, strings.HasPrefix(buf.String(), "{"),
		"en development la salida es legible, no JSON")
}

func TestNew_NivelInvalidoCaeAInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "gritando", Writer: &buf})

	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())

	l.Debug().Msg("no debería salir")
	assert.Empty(t, buf.String(), "debug queda filtrado con nivel info")
}

func TestNew_NivelVacioCaeAInfo(t *testing.T) {
	l := New(Config{Writer: &bytes.Buffer{}})
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())
}
