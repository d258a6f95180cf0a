package logger_test

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reroot/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// captureStderr captures output written to os.Stderr during the execution of fn.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	originalStderr := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	defer func() { os.Stderr = originalStderr }()

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	require.NoError(t, w.Close())
	output := <-done
	require.NoError(t, r.Close())
	return output
}

func TestLogger_Levels(t *testing.T) {
	output := captureStderr(t, func() {
		lg := logger.New()
		lg.Info("staging root ready")
		lg.Warn("unknown state")
		lg.Error(os.ErrPermission)
	})

	assert.Contains(t, output, "level=INFO")
	assert.Contains(t, output, "staging root ready")
	assert.Contains(t, output, "level=WARN")
	assert.Contains(t, output, "unknown state")
	assert.Contains(t, output, "level=ERROR")
	assert.Contains(t, output, "permission denied")
}

func TestLogger_ErrorMetadata(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	err := zerr.With(zerr.With(zerr.New("package not found"), "package", "iproute"), "dir", "/tmp/db")
	lg.Error(err)

	line := buf.String()
	assert.Contains(t, line, `error.msg="package not found"`)
	assert.Contains(t, line, "error.package=iproute")
	assert.Contains(t, line, "error.dir=/tmp/db")
	assert.Equal(t, 1, strings.Count(line, "package=iproute"))
	assert.Equal(t, 1, strings.Count(line, "dir=/tmp/db"))
}

func TestLogger_ErrorCause(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	sentinel := zerr.New("artifact checksum mismatch")
	lg.Error(zerr.With(zerr.Wrap(sentinel, "verify artifact"), "path", "/cache/bash.pkg.tar.zst"))

	line := buf.String()
	assert.Contains(t, line, "error.msg=")
	assert.Contains(t, line, "verify artifact")
	assert.Contains(t, line, "error.path=/cache/bash.pkg.tar.zst")
	assert.Contains(t, line, "artifact checksum mismatch")
	assert.Equal(t, 1, strings.Count(line, "path=/cache/bash.pkg.tar.zst"))
}

func TestLogger_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	lg := logger.NewWithWriter(&first)

	lg.Info("one")
	lg.SetOutput(&second)
	lg.Info("two")

	assert.Contains(t, first.String(), "one")
	assert.NotContains(t, first.String(), "two")
	assert.Contains(t, second.String(), "two")
}
