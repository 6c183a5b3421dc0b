// Package finding defines validation findings and the collectors that
// receive them.
package finding

import (
	"fmt"

	"go.uber.org/zap"
)

// Severity is how serious a finding is.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
)

// Kind classifies a finding.
type Kind string

const (
	KindSchemaViolation    Kind = "schema_violation"
	KindSectionMismatch    Kind = "section_mismatch"
	KindSectionUndefined   Kind = "section_undefined"
	KindSectionUncovered   Kind = "section_uncovered"
	KindStyleUndefined     Kind = "style_undefined"
	KindParagraphMismatch  Kind = "paragraph_mismatch"
	KindParagraphUndefined Kind = "paragraph_undefined"
	KindFontMismatch       Kind = "font_mismatch"
	KindFontUndefined      Kind = "font_undefined"
)

// Finding is one validation result.
type Finding struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Kind     Kind     `json:"kind" yaml:"kind"`
	Message  string   `json:"message" yaml:"message"`
}

// Errorf returns an ERROR finding.
func Errorf(kind Kind, format string, args ...any) Finding {
	return Finding{Severity: SeverityError, Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Warningf returns a WARNING finding.
func Warningf(kind Kind, format string, args ...any) Finding {
	return Finding{Severity: SeverityWarning, Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", f.Severity, f.Message)
}

// Collector receives findings in the order they are produced.
type Collector interface {
	Collect(Finding)
}

// CollectorFunc adapts a function to the Collector interface.
type CollectorFunc func(Finding)

// Collect calls fn(f).
func (fn CollectorFunc) Collect(f Finding) { fn(f) }

// Multi fans findings out to several collectors.
type Multi []Collector

// Collect forwards f to every collector in order.
func (m Multi) Collect(f Finding) {
	for _, c := range m {
		if c != nil {
			c.Collect(f)
		}
	}
}

// Summary counts findings by severity.
type Summary struct {
	Errors   int `json:"errors" yaml:"errors"`
	Warnings int `json:"warnings" yaml:"warnings"`
}

// Add counts f.
func (s *Summary) Add(f Finding) {
	switch f.Severity {
	case SeverityError:
		s.Errors++
	case SeverityWarning:
		s.Warnings++
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("Summary results: Errors - %d, Warnings - %d", s.Errors, s.Warnings)
}

// Recorder keeps every finding in memory.
type Recorder struct {
	findings []Finding
	summary  Summary
}

// Collect records f.
func (r *Recorder) Collect(f Finding) {
	r.findings = append(r.findings, f)
	r.summary.Add(f)
}

// Findings returns the recorded findings in order.
func (r *Recorder) Findings() []Finding {
	return r.findings
}

// Messages returns the recorded messages in order.
func (r *Recorder) Messages() []string {
	out := make([]string, len(r.findings))
	for i, f := range r.findings {
		out[i] = f.Message
	}
	return out
}

// Summary returns the counts so far.
func (r *Recorder) Summary() Summary {
	return r.summary
}

// HasErrors reports whether any ERROR finding was recorded.
func (r *Recorder) HasErrors() bool {
	return r.summary.Errors > 0
}

// Reset discards recorded findings.
func (r *Recorder) Reset() {
	r.findings = nil
	r.summary = Summary{}
}

// LogSink writes findings to a zap logger: errors at ERROR level, warnings
// at WARN.
type LogSink struct {
	log *zap.Logger
}

// NewLogSink returns a LogSink writing to log.
func NewLogSink(log *zap.Logger) *LogSink {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogSink{log: log}
}

// Collect logs f.
func (s *LogSink) Collect(f Finding) {
	fields := []zap.Field{zap.String("kind", string(f.Kind))}
	switch f.Severity {
	case SeverityError:
		s.log.Error(f.Message, fields...)
	default:
		s.log.Warn(f.Message, fields...)
	}
}
