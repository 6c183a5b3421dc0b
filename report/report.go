// Package report assembles the result of a validation run and renders it
// as text, JSON, YAML or HTML.
package report

import (
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"

	"github.com/tsawler/validocx/accessor"
	"github.com/tsawler/validocx/finding"
)

// Report is the outcome of validating one document.
type Report struct {
	RunID     string            `json:"run_id" yaml:"run_id"`
	Document  string            `json:"document" yaml:"document"`
	Checksum  string            `json:"checksum" yaml:"checksum"`
	Tolerance float64           `json:"tolerance" yaml:"tolerance"`
	Identity  accessor.Identity `json:"identity" yaml:"identity"`
	Findings  []finding.Finding `json:"findings" yaml:"findings"`
	Summary   finding.Summary   `json:"summary" yaml:"summary"`
	CreatedAt time.Time         `json:"created_at" yaml:"created_at"`
}

// New builds a report for the document at path whose raw bytes are data.
// A nil data leaves Checksum empty.
func New(path string, data []byte, id accessor.Identity, tolerance float64, findings []finding.Finding) *Report {
	r := &Report{
		RunID:     uuid.New().String(),
		Document:  path,
		Tolerance: tolerance,
		Identity:  id,
		Findings:  make([]finding.Finding, 0, len(findings)),
		CreatedAt: time.Now().UTC(),
	}
	if data != nil {
		r.Checksum = Checksum(data)
	}
	for _, f := range findings {
		r.Add(f)
	}
	return r
}

// Add appends f and updates the summary.
func (r *Report) Add(f finding.Finding) {
	r.Findings = append(r.Findings, f)
	r.Summary.Add(f)
}

// HasErrors reports whether the report holds any ERROR finding.
func (r *Report) HasErrors() bool {
	return r.Summary.Errors > 0
}

// Checksum returns the hex BLAKE3-256 digest of data.
func Checksum(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
