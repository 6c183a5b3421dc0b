// Package logger builds the zap loggers used by the command line tool.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel represents the logging level.
type LogLevel string

// LogFormat represents the logging format.
type LogFormat string

const (
	DebugLevel LogLevel = "DEBUG"
	InfoLevel  LogLevel = "INFO"
	WarnLevel  LogLevel = "WARN"
	ErrorLevel LogLevel = "ERROR"

	// FormatConsole is zap's console encoder with colored levels.
	FormatConsole LogFormat = "CONSOLE"
	// FormatJSON is one JSON object per line.
	FormatJSON LogFormat = "JSON"
	// FormatPretty prints level, component and message only.
	FormatPretty LogFormat = "PRETTY"
)

// Environment variables consulted by FromEnv.
const (
	EnvLevel  = "VALIDOCX_LOG_LEVEL"
	EnvFormat = "VALIDOCX_LOG_FORMAT"
)

// ParseLevel converts a level name to a zapcore.Level. Unknown names map
// to INFO.
func ParseLevel(level LogLevel) zapcore.Level {
	switch LogLevel(strings.ToUpper(string(level))) {
	case DebugLevel:
		return zapcore.DebugLevel
	case WarnLevel, "WARNING":
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ParseFormat returns the format named by s, or def when s is not a known
// format.
func ParseFormat(s string, def LogFormat) LogFormat {
	switch f := LogFormat(strings.ToUpper(s)); f {
	case FormatConsole, FormatJSON, FormatPretty:
		return f
	default:
		return def
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// timeEncoder encodes the time as a human-readable timestamp.
func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05 MST"))
}

func encoderConfig(format LogFormat, color bool) zapcore.EncoderConfig {
	cfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "component",
		CallerKey:      zapcore.OmitKey,
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	if format == FormatJSON {
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return cfg
	}

	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	if color {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.EncodeTime = timeEncoder
	cfg.ConsoleSeparator = " | "
	return cfg
}

func newEncoder(format LogFormat, color bool) zapcore.Encoder {
	cfg := encoderConfig(format, color)
	switch format {
	case FormatPretty:
		return NewPrettyConsoleEncoder(cfg)
	case FormatConsole:
		return zapcore.NewConsoleEncoder(cfg)
	default:
		return zapcore.NewJSONEncoder(cfg)
	}
}

// New creates a logger writing to stderr at the given level and format.
func New(level LogLevel, format LogFormat) *zap.Logger {
	return NewWithWriter(os.Stderr, level, format)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, level LogLevel, format LogFormat) *zap.Logger {
	core := zapcore.NewCore(
		newEncoder(format, format == FormatConsole),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(ParseLevel(level)),
	)
	return zap.New(core)
}

// FromEnv creates a logger configured by VALIDOCX_LOG_LEVEL and
// VALIDOCX_LOG_FORMAT, defaulting to INFO and PRETTY.
func FromEnv() *zap.Logger {
	level := LogLevel(getEnv(EnvLevel, string(InfoLevel)))
	format := ParseFormat(getEnv(EnvFormat, string(FormatPretty)), FormatPretty)
	return New(level, format)
}

// Config describes a console sink and an optional file sink. Each sink
// filters by its own level.
type Config struct {
	Level   LogLevel
	Format  LogFormat
	Console io.Writer // defaults to os.Stderr

	File      string // empty disables the file sink
	FileLevel LogLevel
}

// NewDual builds a logger that tees to the console and, when cfg.File is
// set, appends to that file. The returned close function syncs the logger
// and closes the file.
func NewDual(cfg Config) (*zap.Logger, func() error, error) {
	console := cfg.Console
	if console == nil {
		console = os.Stderr
	}
	format := ParseFormat(string(cfg.Format), FormatPretty)

	cores := []zapcore.Core{
		zapcore.NewCore(
			newEncoder(format, format == FormatConsole),
			zapcore.AddSync(console),
			zap.NewAtomicLevelAt(ParseLevel(cfg.Level)),
		),
	}

	var file *os.File
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		file = f

		fileLevel := cfg.FileLevel
		if fileLevel == "" {
			fileLevel = cfg.Level
		}
		cores = append(cores, zapcore.NewCore(
			newEncoder(FormatConsole, false),
			zapcore.AddSync(f),
			zap.NewAtomicLevelAt(ParseLevel(fileLevel)),
		))
	}

	log := zap.New(zapcore.NewTee(cores...))
	closeFn := func() error {
		_ = log.Sync()
		if file != nil {
			return file.Close()
		}
		return nil
	}
	return log, closeFn, nil
}
