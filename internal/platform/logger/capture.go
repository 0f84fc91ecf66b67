package logger

import (
	"context"
	"log/slog"
	"sync"
)

// CapturedRecord is a simplified view of one emitted log record, used by
// tests that assert on logging behavior.
type CapturedRecord struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// captureState is the record sink shared by a CaptureHandler and every
// handler derived from it via WithAttrs/WithGroup.
type captureState struct {
	mu      sync.Mutex
	records []CapturedRecord
}

// CaptureHandler is a memory-backed slog.Handler. Tests hand a
// slog.New(NewCaptureHandler()) logger to the code under test and then
// assert on the exact records it emitted, including how many times each
// level was logged.
type CaptureHandler struct {
	state *captureState
	attrs []slog.Attr
}

// NewCaptureHandler creates a new memory-backed slog handler.
func NewCaptureHandler() *CaptureHandler {
	return &CaptureHandler{
		state: &captureState{},
	}
}

// Enabled satisfies slog.Handler; every level is captured.
func (h *CaptureHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// Handle satisfies slog.Handler. Attr values are stored unresolved via
// Value.Any so tests can compare captured errors by identity.
func (h *CaptureHandler) Handle(_ context.Context, r slog.Record) error {
	entry := CapturedRecord{
		Level:   r.Level,
		Message: r.Message,
		Attrs:   make(map[string]any, r.NumAttrs()+len(h.attrs)),
	}

	for _, attr := range h.attrs {
		entry.Attrs[attr.Key] = attr.Value.Any()
	}
	r.Attrs(func(attr slog.Attr) bool {
		entry.Attrs[attr.Key] = attr.Value.Any()
		return true
	})

	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	h.state.records = append(h.state.records, entry)
	return nil
}

// WithAttrs satisfies slog.Handler. The derived handler carries the bound
// attributes but writes into the same record sink, so records logged through
// component-scoped child loggers remain visible to the test.
func (h *CaptureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	bound := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	bound = append(bound, h.attrs...)
	bound = append(bound, attrs...)
	return &CaptureHandler{state: h.state, attrs: bound}
}

// WithGroup satisfies slog.Handler. Groups are flattened; this handler
// exists for assertions, not for faithful output formatting.
func (h *CaptureHandler) WithGroup(_ string) slog.Handler {
	return h
}

// Records returns a copy of all captured log records in emission order.
func (h *CaptureHandler) Records() []CapturedRecord {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()

	result := make([]CapturedRecord, len(h.state.records))
	copy(result, h.state.records)
	return result
}

// ByLevel returns the captured records emitted at exactly the given level.
func (h *CaptureHandler) ByLevel(level slog.Level) []CapturedRecord {
	var result []CapturedRecord
	for _, r := range h.Records() {
		if r.Level == level {
			result = append(result, r)
		}
	}
	return result
}

// Reset discards the captured records.
func (h *CaptureHandler) Reset() {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	h.state.records = nil
}
