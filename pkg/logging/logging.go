// Package logging builds the charmbracelet loggers used by jed and carries
// them through context.Context.
//
// The CLI logs to stderr. The TUI owns the terminal, so it logs to the file
// named by the log_file setting, or nowhere.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to w at level, with "HH:MM:SS.ms" timestamps.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// Level maps the --verbose flag to a log level.
func Level(verbose bool) log.Level {
	if verbose {
		return log.DebugLevel
	}
	return log.InfoLevel
}

// OpenFile returns a logger appending to path. An empty path discards
// everything. The returned close func is never nil.
func OpenFile(path string, level log.Level) (*log.Logger, func() error, error) {
	if path == "" {
		return New(io.Discard, level), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return New(f, level), f.Close, nil
}

// Progress logs how long an operation took.
type Progress struct {
	logger *log.Logger
	start  time.Time
}

// NewProgress starts timing an operation.
func NewProgress(l *log.Logger) *Progress {
	return &Progress{logger: l, start: time.Now()}
}

// Done logs msg with the elapsed time, e.g. "Saved data.json (3ms)".
func (p *Progress) Done(msg string) {
	p.logger.Debugf("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// WithLogger returns a context carrying l.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the logger in ctx, or log.Default().
func FromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
