package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"":        Info,
		"debug":   Debug,
		"INFO":    Info,
		" notice": Notice,
		"warn":    Warning,
		"warning": Warning,
		"error":   Error,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestSinkAndLevel(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer func() {
		SetSink(os.Stdout)
		SetLevel(Info)
	}()

	logger := New("logtest")
	SetLevel(Warning)
	logger.Info("hidden")
	logger.Warningf("shown %d", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[logtest]")
	assert.Contains(t, out, "shown 1")

	// Swapping the sink keeps the level.
	buf.Reset()
	SetSink(&buf)
	logger.Info("still hidden")
	assert.Empty(t, buf.String())
}
