package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		logFunc func(*log.Logger)
		wantLog bool
	}{{
		name:    "info when quiet",
		logFunc: func(l *log.Logger) { l.Info("test") },
		wantLog: true,
	}, {
		name:    "debug when quiet",
		logFunc: func(l *log.Logger) { l.Debug("test") },
		wantLog: false,
	}, {
		name:    "debug when verbose",
		verbose: true,
		logFunc: func(l *log.Logger) { l.Debug("test") },
		wantLog: true,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(New(&buf, Level(tt.verbose)))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	NewProgress(New(&buf, log.DebugLevel)).Done("saved")
	if !strings.Contains(buf.String(), "saved (") {
		t.Errorf("progress output = %q, want message with duration", buf.String())
	}
}

func TestOpenFile(t *testing.T) {
	l, closeFn, err := OpenFile("", log.InfoLevel)
	if err != nil || l == nil || closeFn == nil {
		t.Fatalf("OpenFile(\"\") = %v, %v", l, err)
	}
	l.Info("discarded")

	path := filepath.Join(t.TempDir(), "jed.log")
	l, closeFn, err = OpenFile(path, log.InfoLevel)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("hello file")
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello file") {
		t.Errorf("log file = %q", data)
	}
}

func TestContextCarriesLogger(t *testing.T) {
	ctx := context.Background()
	if FromContext(ctx) == nil {
		t.Error("FromContext should fall back to the default logger")
	}
	l := New(&bytes.Buffer{}, log.InfoLevel)
	if FromContext(WithLogger(ctx, l)) != l {
		t.Error("FromContext should return the attached logger")
	}
}
