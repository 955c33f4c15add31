package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTo(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("Composing harmonious music", "error", errors.New("boom"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "time=")
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, `msg="Composing harmonious music"`)
	assert.Contains(t, out, "err=boom")
}
