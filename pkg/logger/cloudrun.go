package logger

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"
)

// CloudRunHandler is an slog.Handler that emits one JSON object per line in
// the shape Cloud Logging ingests from Cloud Run: a top-level severity and
// message, with record attributes nested under "data".
type CloudRunHandler struct {
	level slog.Level
	attrs []slog.Attr
}

func NewCloudRunHandler(level slog.Level) slog.Handler {
	return &CloudRunHandler{level: level}
}

func (h *CloudRunHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level
}

type cloudRunEvent struct {
	Severity string         `json:"severity"`
	Message  string         `json:"message"`
	Time     string         `json:"time"`
	Data     map[string]any `json:"data,omitempty"`
}

func (h *CloudRunHandler) Handle(_ context.Context, r slog.Record) error {
	event := cloudRunEvent{
		Severity: severity(r.Level),
		Message:  r.Message,
		Time:     r.Time.Format(time.RFC3339Nano),
	}

	if r.NumAttrs() > 0 || len(h.attrs) > 0 {
		event.Data = make(map[string]any, r.NumAttrs()+len(h.attrs))
		for _, a := range h.attrs {
			event.Data[a.Key] = a.Value.Any()
		}
		r.Attrs(func(a slog.Attr) bool {
			event.Data[a.Key] = a.Value.Any()
			return true
		})
	}

	b, err := json.Marshal(event)
	if err != nil {
		return err
	}

	// Cloud Run routes stdout for every severity.
	_, err = os.Stdout.Write(append(b, '\n'))
	return err
}

func (h *CloudRunHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	all := append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &CloudRunHandler{level: h.level, attrs: all}
}

func (h *CloudRunHandler) WithGroup(_ string) slog.Handler {
	// The flat Cloud Run format has no group concept.
	return h
}

func severity(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARNING"
	case slog.LevelError:
		return "ERROR"
	default:
		return "DEFAULT"
	}
}
