// Package logger holds the process-wide zap logger.
package logger

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the global logger. It is a no-op until Initialize runs, so
	// packages may log before the CLI has parsed its flags.
	Logger *zap.SugaredLogger
	// JSONOutput records whether Initialize selected JSON output.
	JSONOutput bool
)

func init() {
	Logger = zap.NewNop().Sugar()
}

// Initialize replaces the global logger. JSON output uses zap's production
// encoder; otherwise a compact console encoder writes to stderr so that
// command output on stdout stays clean.
func Initialize(jsonOutput bool, level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	l, err := New(jsonOutput, lvl)
	if err != nil {
		return err
	}
	JSONOutput = jsonOutput
	Logger = l
	return nil
}

// New builds a logger without touching the global one.
func New(jsonOutput bool, level zapcore.Level) (*zap.SugaredLogger, error) {
	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		config.OutputPaths = []string{"stderr"}
		l, err := config.Build()
		if err != nil {
			return nil, errors.Wrap(err, "build json logger")
		}
		return l.Sugar(), nil
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		level,
	)
	return zap.New(core).Sugar(), nil
}

// ParseLevel maps a level name to a zap level. The empty string means info.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, errors.WithHint(
			errors.Newf("unknown log level %q", level),
			"use one of debug, info, warn, error")
	}
}

// Sync flushes buffered log entries.
func Sync() {
	_ = Logger.Sync()
}
