package logging

import (
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envNameLogLevel = "ESIMDASH_LOG_LEVEL"

// BuildProduction returns a json logger writing to stderr, so table and
// json output on stdout stays clean.
func BuildProduction() (*zap.Logger, error) {
	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(LevelFromEnv())
	c.OutputPaths = []string{"stderr"}
	c.EncoderConfig.StacktraceKey = ""
	c.EncoderConfig.CallerKey = ""
	c.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	return c.Build()
}

// LevelFromEnv reads the log level from ESIMDASH_LOG_LEVEL, defaulting to info.
func LevelFromEnv() zapcore.Level {
	return ParseLevel(os.Getenv(envNameLogLevel))
}

func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
