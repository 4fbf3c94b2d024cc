package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyHandlerRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(&buf, slog.LevelWarn)

	log.Info("dropped")
	log.Warn("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestPrettyHandlerFormatsAttributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(&buf, slog.LevelDebug).With("component", "http")

	log.Error("request failed",
		"status", 500,
		"duration", 1500*time.Millisecond,
		"error", errors.New("db down"),
		"path", "/api/v1/foods",
		slog.Group("client", "ip", "10.0.0.1"),
	)

	out := buf.String()
	assert.Contains(t, out, "component"+reset+"=http")
	assert.Contains(t, out, red+"status"+reset+"=500")
	assert.Contains(t, out, "duration"+reset+"=1.5s")
	assert.Contains(t, out, `error`+reset+`="db down"`)
	assert.Contains(t, out, "client.ip"+reset+"=10.0.0.1")
}

func TestPrettyHandlerGroupsPrefixKeys(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo).WithGroup("upload").With("key", "uploads/a.png")

	log.Info("stored", "size", 42)

	out := buf.String()
	require.Contains(t, out, "upload.key"+reset+"=uploads/a.png")
	assert.Contains(t, out, "upload.size"+reset+"=42")
}
