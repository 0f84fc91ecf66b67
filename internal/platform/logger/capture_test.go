package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/platformlab/user-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureHandlerRecordsLevelsAndAttrs(t *testing.T) {
	handler := logger.NewCaptureHandler()
	log := slog.New(handler)

	log.Info("first", slog.String("key", "value"))
	log.Error("second", slog.Int64("count", 7))

	records := handler.Records()
	require.Len(t, records, 2)

	assert.Equal(t, slog.LevelInfo, records[0].Level)
	assert.Equal(t, "first", records[0].Message)
	assert.Equal(t, "value", records[0].Attrs["key"])

	assert.Equal(t, slog.LevelError, records[1].Level)
	assert.Equal(t, "second", records[1].Message)
	assert.Equal(t, int64(7), records[1].Attrs["count"])
}

func TestCaptureHandlerPreservesErrorIdentity(t *testing.T) {
	handler := logger.NewCaptureHandler()
	log := slog.New(handler)

	cause := errors.New("connection refused")
	log.Error("store call failed", slog.Any("error", cause))

	records := handler.ByLevel(slog.LevelError)
	require.Len(t, records, 1)

	// The captured attr must be the original error value, not a copy
	captured, ok := records[0].Attrs["error"].(error)
	require.True(t, ok, "error attr should hold an error value")
	assert.Same(t, cause, captured)
}

func TestCaptureHandlerSeesChildLoggerRecords(t *testing.T) {
	handler := logger.NewCaptureHandler()
	log := slog.New(handler).With(slog.String("component", "user_service"))

	log.Info("scoped")

	records := handler.Records()
	require.Len(t, records, 1, "records from With-derived loggers must reach the shared sink")
	assert.Equal(t, "user_service", records[0].Attrs["component"])
}

func TestCaptureHandlerByLevelAndReset(t *testing.T) {
	handler := logger.NewCaptureHandler()
	log := slog.New(handler)

	log.Info("a")
	log.Info("b")
	log.Error("c")

	assert.Len(t, handler.ByLevel(slog.LevelInfo), 2)
	assert.Len(t, handler.ByLevel(slog.LevelError), 1)
	assert.Empty(t, handler.ByLevel(slog.LevelWarn))

	handler.Reset()
	assert.Empty(t, handler.Records())
}
