package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" warn "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("chatty"))
}

func TestNewWritesJSONWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := Component(New("info", "json", &buf), "crop")
	l.Info().Uint("crop_id", 3).Msg("crop added")
	l.Debug().Msg("dropped")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "crop", line["component"])
	assert.Equal(t, "farmapi", line["service"])
	assert.Equal(t, "crop added", line["message"])
	assert.EqualValues(t, 3, line["crop_id"])
}
