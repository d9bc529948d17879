// Package testutil provides common testing utilities shared by the heightmesh packages.
package testutil

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/VoidMesh/heightmesh/internal/logging"
)

// TestConfig holds configuration for test setup
type TestConfig struct {
	// EnableLogCapture routes log output to testing.T instead of discarding it
	EnableLogCapture bool
}

// DefaultTestConfig returns a default test configuration suitable for most tests
func DefaultTestConfig() *TestConfig {
	return &TestConfig{
		EnableLogCapture: false,
	}
}

// SetupTest initializes the test environment with the provided configuration.
//
// Usage:
//
//	func TestMyFunction(t *testing.T) {
//	    cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
//	    defer cleanup()
//	    // ... test code
//	}
func SetupTest(t *testing.T, config *TestConfig) func() {
	t.Helper()

	originalLogger := logging.Logger

	if config.EnableLogCapture {
		testLogger := log.New(testWriter{t: t})
		testLogger.SetLevel(log.DebugLevel)
		logging.Logger = testLogger
	} else {
		logging.Logger = log.New(io.Discard)
	}

	return func() {
		logging.Logger = originalLogger
	}
}

// testWriter adapts testing.T to implement io.Writer for log output
type testWriter struct {
	t *testing.T
}

func (tw testWriter) Write(p []byte) (n int, err error) {
	tw.t.Helper()
	tw.t.Log(string(p))
	return len(p), nil
}

// LogBuffer is a goroutine-safe buffer for asserting on log output.
type LogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *LogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// NewCapturingLogger returns a debug-level logger writing into a LogBuffer.
func NewCapturingLogger() (*log.Logger, *LogBuffer) {
	buf := &LogBuffer{}
	logger := log.New(buf)
	logger.SetLevel(log.DebugLevel)
	return logger, buf
}

// SkipIfShort skips the test if testing.Short() is true.
func SkipIfShort(t *testing.T, reason string) {
	t.Helper()

	if testing.Short() {
		if reason == "" {
			reason = "skipping test in short mode"
		}
		t.Skip(reason)
	}
}
