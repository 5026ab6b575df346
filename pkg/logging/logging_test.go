package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Level: "warn", Writer: &buf})
	require.NoError(t, err)

	l.Info().Msg("hidden")
	l.Warn().Str("id", "popover").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"id":"popover"`)
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestSet_ReplacesProcessLogger(t *testing.T) {
	prev := *L()
	t.Cleanup(func() { Set(prev) })

	var buf bytes.Buffer
	l, err := New(Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)
	Set(l)

	L().Debug().Msg("transition")
	assert.Contains(t, buf.String(), "transition")
}
