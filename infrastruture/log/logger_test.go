package log

import (
	"bytes"
	"testing"

	"github.com/beka-birhanu/backtrack-maze/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("rejects empty prefix", func(t *testing.T) {
		_, err := New("", config.ColorCyan, &bytes.Buffer{})
		assert.Error(t, err)
	})

	t.Run("rejects nil writer", func(t *testing.T) {
		_, err := New("APP", config.ColorCyan, nil)
		assert.Error(t, err)
	})

	t.Run("tags lines with prefix and level", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("MAZE", config.ColorCyan, &buf)
		require.NoError(t, err)

		l.Info("generated")
		l.Warning("slow")
		l.Error("failed")

		out := buf.String()
		assert.Contains(t, out, "[MAZE]")
		assert.Contains(t, out, "[INFO]"+config.LogColorReset+" generated")
		assert.Contains(t, out, "[WARNING]"+config.LogColorReset+" slow")
		assert.Contains(t, out, "[ERROR]"+config.LogColorReset+" failed")
	})
}
