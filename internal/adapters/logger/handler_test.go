package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cmakegen/internal/adapters/logger"
)

func newTestHandler(t *testing.T, level slog.Leveler) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: level})), buf
}

func TestPrettyHandler_Icons(t *testing.T) {
	log, buf := newTestHandler(t, slog.LevelDebug)

	log.Debug("d")
	log.Info("i")
	log.Warn("w")
	log.Error("e")

	assert.Equal(t, "● d\ni\n! w\n✗ e\n", buf.String())
}

func TestPrettyHandler_Attrs(t *testing.T) {
	log, buf := newTestHandler(t, nil)

	log.With("path", "CMakeLists.txt").WithGroup("manifest").Info("wrote", "bytes", 42)

	assert.Equal(t, "wrote path=CMakeLists.txt manifest.bytes=42\n", buf.String())
}

func TestPrettyHandler_NestedGroups(t *testing.T) {
	log, buf := newTestHandler(t, nil)

	log.WithGroup("a").WithGroup("b").Info("m", "k", "v")

	assert.Equal(t, "m a.b.k=v\n", buf.String())
}

func TestPrettyHandler_SharedLevel(t *testing.T) {
	level := &slog.LevelVar{}
	log, buf := newTestHandler(t, level)

	log.Debug("hidden")
	assert.Empty(t, buf.String())

	level.Set(slog.LevelDebug)
	log.Debug("shown")
	assert.Equal(t, "● shown\n", buf.String())
}
