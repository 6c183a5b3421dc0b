package validocx

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/tsawler/validocx/accessor"
	"github.com/tsawler/validocx/docx"
	"github.com/tsawler/validocx/finding"
	"github.com/tsawler/validocx/format"
	"github.com/tsawler/validocx/report"
	"github.com/tsawler/validocx/requirements"
	"github.com/tsawler/validocx/validator"
)

// Checker provides a fluent interface for validating a document. Each
// configuration method returns a new Checker, so a configured Checker can
// be shared and reused.
type Checker struct {
	src     *source
	options CheckOptions
}

// source is the document behind a Checker. Every Checker derived from the
// same Open call shares it, so the file is read and parsed at most once.
type source struct {
	filename string
	once     sync.Once
	data     []byte
	doc      *docx.Document
	err      error
}

// load reads and parses the file on first use. The outcome, including an
// error, is kept for later calls.
func (s *source) load() error {
	s.once.Do(func() {
		s.data, s.doc, s.err = readDocument(s.filename)
	})
	return s.err
}

// clone creates a shallow copy of the Checker with a deep copy of options.
func (c *Checker) clone() *Checker {
	return &Checker{
		src:     c.src,
		options: c.options.clone(),
	}
}

// readDocument reads filename and parses it as a .docx package.
func readDocument(filename string) ([]byte, *docx.Document, error) {
	if filename == "" {
		return nil, nil, fmt.Errorf("no filename specified")
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, &format.FileNotFoundError{Path: filename}
		}
		return nil, nil, fmt.Errorf("reading %s: %w", filename, err)
	}

	ra := bytes.NewReader(data)
	if f, err := format.DetectFromReader(ra, int64(len(data))); err != nil || f != format.DOCX {
		return nil, nil, fmt.Errorf("%s: not a .docx package", filename)
	}

	r, err := docx.NewReader(ra, int64(len(data)))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer r.Close()

	return data, r.Document(), nil
}

// ============================================================================
// Configuration Methods (return new Checker instance)
// ============================================================================

// Tolerance sets the relative tolerance for numeric comparisons.
//
// Example:
//
//	rep, err := validocx.Open("thesis.docx").Tolerance(0.001).Validate("req.yaml")
func (c *Checker) Tolerance(relTol float64) *Checker {
	newChk := c.clone()
	if relTol > 0 {
		newChk.options.tolerance = relTol
	}
	return newChk
}

// Logger sets the logger that receives stage progress and findings.
func (c *Checker) Logger(log *zap.Logger) *Checker {
	newChk := c.clone()
	if log != nil {
		newChk.options.logger = log
	}
	return newChk
}

// Collect adds a collector that receives every finding as it is produced.
// Multiple calls are cumulative.
func (c *Checker) Collect(collector finding.Collector) *Checker {
	newChk := c.clone()
	newChk.options.collectors = append(newChk.options.collectors, collector)
	return newChk
}

// ============================================================================
// Terminal Methods
// ============================================================================

// Validate loads the requirements file at reqPath (.yaml, .yml or .json)
// and validates the document against it.
//
// The returned report is non-nil whenever the document could be read,
// even if validation stopped on a schema violation.
func (c *Checker) Validate(reqPath string) (*report.Report, error) {
	payload, err := requirements.Read(reqPath)
	if err != nil {
		return nil, err
	}
	return c.ValidatePayload(payload)
}

// ValidatePayload validates the document against an already parsed
// requirements payload.
func (c *Checker) ValidatePayload(payload any) (*report.Report, error) {
	if err := c.src.load(); err != nil {
		return nil, err
	}

	var rec finding.Recorder
	sinks := finding.Multi{&rec, finding.NewLogSink(c.options.logger)}
	for _, col := range c.options.collectors {
		sinks = append(sinks, col)
	}

	v := validator.New(c.src.doc, sinks,
		validator.WithTolerance(c.options.tolerance),
		validator.WithLogger(c.options.logger),
	)
	err := v.Validate(payload)

	rep := report.New(c.src.filename, c.src.data, accessor.New(c.src.doc).Identity(), v.Tolerance(), rec.Findings())
	if err != nil {
		return rep, fmt.Errorf("validating %s: %w", c.src.filename, err)
	}
	return rep, nil
}

// Extract returns the document's identity, sections and the paragraphs
// whose style name contains one of styles (every paragraph when none are
// given).
//
// Example:
//
//	ex, err := validocx.Open("thesis.docx").Extract("Heading", "Title")
func (c *Checker) Extract(styles ...string) (*accessor.Extraction, error) {
	if err := c.src.load(); err != nil {
		return nil, err
	}
	return accessor.New(c.src.doc).Extract(styles...)
}

// Identity returns the document's authorship metadata.
func (c *Checker) Identity() (accessor.Identity, error) {
	if err := c.src.load(); err != nil {
		return accessor.Identity{}, err
	}
	return accessor.New(c.src.doc).Identity(), nil
}

// Document returns the parsed document.
func (c *Checker) Document() (*docx.Document, error) {
	if err := c.src.load(); err != nil {
		return nil, err
	}
	return c.src.doc, nil
}
