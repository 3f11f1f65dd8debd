// Package logger wires the storefront's structured log. Entries go to a JSON file and, at
// info level and above, to an in-memory scrollback that the in-app terminal displays.
package logger

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultPath is the log file location, relative to the working directory.
const DefaultPath = "logs/storefront.log"

// MaxLines caps the in-memory scrollback.
const MaxLines = 500

const stampLayout = "2006-01-02 15:04:05"

// Logger stores recent lines in memory and owns the zap logger that feeds them.
type Logger struct {
	mu    sync.Mutex
	lines []string
	z     *zap.Logger
	close func()
}

// New opens the log file at path and builds a logger at the given level ("debug", "info", ...).
func New(path, level string) (*Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	sink, closeSink, err := zap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	l := NewWithCore(zapcore.NewCore(zapcore.NewJSONEncoder(enc), sink, lvl))
	l.close = closeSink
	return l, nil
}

// NewWithCore builds a Logger that writes to core and to the scrollback. Tests pass an
// observer core here.
func NewWithCore(core zapcore.Core) *Logger {
	l := &Logger{lines: make([]string, 0, 64)}
	mem := zapcore.NewCore(zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "T",
		LevelKey:         "L",
		MessageKey:       "M",
		EncodeTime:       zapcore.TimeEncoderOfLayout(stampLayout),
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}), zapcore.AddSync(l), zapcore.InfoLevel)
	l.z = zap.New(zapcore.NewTee(core, mem))
	return l
}

// Zap returns the structured logger.
func (l *Logger) Zap() *zap.Logger {
	return l.z
}

// Log records a raw line, typically terminal input echoed back. Each entry is prefixed
// with [timestamp].
func (l *Logger) Log(line string) {
	l.append("[" + time.Now().Format(stampLayout) + "] " + line)
	l.z.Debug("terminal", zap.String("line", line))
}

// Write implements io.Writer for the scrollback core; p may hold several lines.
func (l *Logger) Write(p []byte) (int, error) {
	for _, line := range bytes.Split(bytes.TrimRight(p, "\n"), []byte("\n")) {
		l.append(string(line))
	}
	return len(p), nil
}

func (l *Logger) append(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, line)
	if over := len(l.lines) - MaxLines; over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Close flushes the zap logger and releases the log file.
func (l *Logger) Close() error {
	err := l.z.Sync()
	if l.close != nil {
		l.close()
		l.close = nil
	}
	return err
}
