package logging

import (
	"os"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

var Logger *log.Logger

// Interface is the subset of *log.Logger that services log through.
type Interface interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

// traceEnabled gates per-vertex diagnostics. Set by InitLogger when LOG_LEVEL=trace.
var traceEnabled atomic.Bool

// LogLevel represents available log levels
type LogLevel string

const (
	TraceLevel LogLevel = "trace"
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

// InitLogger initializes the global logger with configuration from environment variables
func InitLogger() {
	InitLoggerWithLevel(getLogLevelFromEnv())
}

// InitLoggerWithLevel initializes the global logger at an explicit level.
func InitLoggerWithLevel(level LogLevel) {
	Logger = log.New(os.Stderr)
	setLogLevel(Logger, level)

	Logger.SetReportTimestamp(true)
	Logger.SetReportCaller(false)
	Logger.SetPrefix("heightmesh")

	Logger.Debug("Logger initialized", "level", level)
}

// ParseLevel maps a textual level to a LogLevel. Unknown values fall back to info.
func ParseLevel(value string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "trace":
		return TraceLevel
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// getLogLevelFromEnv reads log level from LOG_LEVEL environment variable
func getLogLevelFromEnv() LogLevel {
	return ParseLevel(os.Getenv("LOG_LEVEL"))
}

// setLogLevel configures the logger with the specified level
func setLogLevel(logger *log.Logger, level LogLevel) {
	traceEnabled.Store(level == TraceLevel)

	switch level {
	case TraceLevel, DebugLevel:
		logger.SetLevel(log.DebugLevel)
	case InfoLevel:
		logger.SetLevel(log.InfoLevel)
	case WarnLevel:
		logger.SetLevel(log.WarnLevel)
	case ErrorLevel:
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
}

// TraceEnabled reports whether per-sample tracing was requested.
func TraceEnabled() bool {
	return traceEnabled.Load()
}

// GetLogger returns the global logger instance
func GetLogger() *log.Logger {
	if Logger == nil {
		InitLogger()
	}
	return Logger
}

// WithFields creates a logger with contextual fields
func WithFields(fields ...interface{}) *log.Logger {
	return GetLogger().With(fields...)
}

// WithGenerationID creates a logger tagged with a mesh generation run
func WithGenerationID(id string) *log.Logger {
	return WithFields("generation_id", id)
}

// WithCoords creates a logger with grid coordinate context
func WithCoords(x, z int) *log.Logger {
	return WithFields("x", x, "z", z)
}

// WithDuration creates a logger with duration context (for performance logging)
func WithDuration(operation string, duration interface{}) *log.Logger {
	return WithFields("operation", operation, "duration", duration)
}
