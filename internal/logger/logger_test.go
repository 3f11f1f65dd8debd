package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestScrollbackMirrorsInfo(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewWithCore(core)

	l.Zap().Info("order placed", zap.Int("items", 3))
	l.Zap().Debug("view")

	assert.Equal(t, 2, logs.Len())
	lines := l.Lines()
	require.Len(t, lines, 1, "debug entries stay out of the scrollback")
	assert.Contains(t, lines[0], "INFO")
	assert.Contains(t, lines[0], "order placed")
	assert.Contains(t, lines[0], `"items": 3`)
}

func TestLogStampsLine(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewWithCore(core)
	l.Log("/view cart")

	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Regexp(t, `^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] /view cart$`, lines[0])
	assert.Equal(t, 1, logs.FilterField(zap.String("line", "/view cart")).Len())
}

func TestScrollbackCap(t *testing.T) {
	l := NewWithCore(zapcore.NewNopCore())
	for i := range MaxLines + 10 {
		l.Log(fmt.Sprint(i))
	}
	lines := l.Lines()
	assert.Len(t, lines, MaxLines)
	assert.Contains(t, lines[0], "] 10")
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "storefront.log")
	l, err := New(path, "info")
	require.NoError(t, err)
	l.Zap().Info("hello", zap.String("k", "v"))
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"k":"v"`)
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "x.log"), "loud")
	assert.Error(t, err)
}
