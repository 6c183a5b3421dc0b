package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   LogLevel
		want zapcore.Level
	}{
		{"DEBUG", zapcore.DebugLevel},
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"WARN", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"ERROR", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if got := ParseFormat("json", FormatPretty); got != FormatJSON {
		t.Errorf("ParseFormat(json) = %s", got)
	}
	if got := ParseFormat("xml", FormatPretty); got != FormatPretty {
		t.Errorf("ParseFormat(xml) = %s", got)
	}
}

func TestPrettyEncoder(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, InfoLevel, FormatPretty).Named("validator")

	log.Debug("hidden")
	log.Warn("Undefined style: 'Normal'.", zap.String("kind", "style_undefined"))
	log.With(zap.Int("section", 1)).Info("checked", zap.Bool("ok", true))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if want := "[WARN]\t[validator]\tUndefined style: 'Normal'. - kind=style_undefined"; lines[0] != want {
		t.Errorf("line 0 = %q, want %q", lines[0], want)
	}
	if want := "[INFO]\t[validator]\tchecked - section=1, ok=true"; lines[1] != want {
		t.Errorf("line 1 = %q, want %q", lines[1], want)
	}
}

func TestPrettyEncoder_CloneIsolated(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithWriter(&buf, InfoLevel, FormatPretty)

	base.With(zap.String("a", "1")).Info("first")
	base.Info("second")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[1] != "[INFO]\tsecond" {
		t.Errorf("context fields leaked into the parent logger: %q", lines[1])
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter(&buf, InfoLevel, FormatJSON).Error("boom")

	out := buf.String()
	if !strings.Contains(out, `"level":"ERROR"`) || !strings.Contains(out, `"msg":"boom"`) {
		t.Errorf("JSON output = %s", out)
	}
}

func TestNewDual(t *testing.T) {
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "validocx.log")

	log, closeFn, err := NewDual(Config{
		Level:     ErrorLevel,
		Format:    FormatPretty,
		Console:   &console,
		File:      path,
		FileLevel: DebugLevel,
	})
	if err != nil {
		t.Fatalf("NewDual() error = %v", err)
	}

	log.Info("Summary results: Errors - 5, Warnings - 10")
	log.Error("bad section")
	if err := closeFn(); err != nil {
		t.Fatalf("close error = %v", err)
	}

	if strings.Contains(console.String(), "Summary") {
		t.Error("console should filter below ERROR")
	}
	if !strings.Contains(console.String(), "bad section") {
		t.Error("console should receive errors")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Summary results: Errors - 5, Warnings - 10") {
		t.Errorf("log file = %s", data)
	}
}

func TestNewDual_BadFile(t *testing.T) {
	_, _, err := NewDual(Config{File: filepath.Join(t.TempDir(), "missing", "x.log")})
	if err == nil {
		t.Error("NewDual() should fail when the log file cannot be opened")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvLevel, "ERROR")
	t.Setenv(EnvFormat, "JSON")

	log := FromEnv()
	if log.Core().Enabled(zapcore.WarnLevel) {
		t.Error("WARN should be disabled at ERROR level")
	}
	if !log.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("ERROR should be enabled")
	}
}
