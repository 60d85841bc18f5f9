package kbavl

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

var (
	defaultLogger Logger = NewStdLogger(os.Stderr)
)

var (
	_ Logger = (*nopLogger)(nil)
	_ Logger = (*stdLogger)(nil)
)

// Logger receives the progress messages of loading and querying.
type Logger interface {
	Log(format string, args ...interface{})
}

type nopLogger struct{}

func (n *nopLogger) Log(format string, args ...interface{}) {}

// NopLogger discards everything.
func NopLogger() Logger {
	return &nopLogger{}
}

type stdLogger struct {
	l *slog.Logger
}

// NewStdLogger writes text formatted slog records to w.
func NewStdLogger(w io.Writer) Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	return &stdLogger{
		l: slog.New(h).With("component", "kbavl"),
	}
}

func (s *stdLogger) Log(format string, args ...interface{}) {
	s.l.Info(strings.TrimSuffix(fmt.Sprintf(format, args...), "\n"))
}
