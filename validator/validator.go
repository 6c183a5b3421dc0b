// Package validator checks a parsed document against a requirements
// document and reports every deviation as a finding.
//
// Validation runs in three stages: the requirements are checked against
// RequirementsSchema, each document section is compared with the
// requirement block at the same index, and each body paragraph is compared
// with the requirement block keyed by its style name. Findings are
// accumulated; only a schema violation or a malformed style chain stops
// the run.
package validator

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tsawler/validocx/accessor"
	"github.com/tsawler/validocx/attr"
	"github.com/tsawler/validocx/docx"
	"github.com/tsawler/validocx/finding"
	"github.com/tsawler/validocx/requirements"
)

// Validator validates one document.
type Validator struct {
	acc       *accessor.Accessor
	collector finding.Collector
	tolerance float64
	log       *zap.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithTolerance sets the relative tolerance for numeric comparisons.
// Non-positive values keep attr.DefaultTolerance.
func WithTolerance(tol float64) Option {
	return func(v *Validator) {
		if tol > 0 {
			v.tolerance = tol
		}
	}
}

// WithLogger sets the logger used for stage progress.
func WithLogger(log *zap.Logger) Option {
	return func(v *Validator) {
		if log != nil {
			v.log = log
		}
	}
}

// New returns a Validator that sends findings to collector. A nil collector
// discards them.
func New(doc *docx.Document, collector finding.Collector, opts ...Option) *Validator {
	if collector == nil {
		collector = finding.CollectorFunc(func(finding.Finding) {})
	}
	v := &Validator{
		acc:       accessor.New(doc),
		collector: collector,
		tolerance: attr.DefaultTolerance,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Tolerance returns the relative tolerance in use.
func (v *Validator) Tolerance() float64 {
	return v.tolerance
}

// Validate checks payload against the schema and then validates sections
// and styles. A schema violation is reported as a finding and returned.
func (v *Validator) Validate(payload any) error {
	v.log.Info("Start validating requirements schema.")
	req, err := requirements.Decode(payload)
	if err != nil {
		if errors.Is(err, requirements.ErrSchemaViolation) {
			v.collector.Collect(finding.Errorf(finding.KindSchemaViolation, "%s", err.Error()))
		}
		return err
	}
	return v.ValidateRequirements(req)
}

// ValidateRequirements validates already decoded requirements.
func (v *Validator) ValidateRequirements(req *requirements.Requirements) error {
	v.log.Info("Start validating sections.")
	v.ValidateSections(req.Sections)

	v.log.Info("Start validating styles.")
	if err := v.ValidateStyles(req.Styles); err != nil {
		return err
	}

	v.log.Info("Validation process completed.")
	return nil
}

// ValidateSections compares section i with reqs[i]. Sections beyond the
// requirement list produce one warning each; extra requirement blocks are
// ignored.
func (v *Validator) ValidateSections(reqs []requirements.SectionRequirement) {
	for i, section := range v.acc.Sections() {
		if i >= len(reqs) {
			v.collector.Collect(finding.Warningf(finding.KindSectionUncovered,
				"The requirements for 'Section %d' are not specified.", i))
			continue
		}

		req := reqs[i]
		fetched := v.acc.SectionAttributes(section, req.Unit)
		for _, name := range accessor.SectionAttributeNames() {
			required, ok := req.Attributes[name]
			if !ok {
				continue
			}
			got := fetched.Get(name)
			switch {
			case !got.Defined():
				v.collector.Collect(finding.Errorf(finding.KindSectionUndefined,
					"'Section %d': attribute '%s' is not defined. The required value is %s",
					i, name, required))
			case !attr.Match(got, required, v.tolerance):
				v.collector.Collect(finding.Errorf(finding.KindSectionMismatch,
					"'Section %d': attribute '%s' with value %s does not match required value %s",
					i, name, got, required))
			}
		}
	}
}

// ValidateStyles validates every body paragraph whose style has a
// requirement block and warns about every paragraph whose style has none.
func (v *Validator) ValidateStyles(reqs map[string]requirements.StyleRequirement) error {
	for p := range v.acc.Paragraphs() {
		name := accessor.StyleName(p)
		req, ok := reqs[name]
		if !ok {
			v.collector.Collect(finding.Warningf(finding.KindStyleUndefined, "Undefined style: '%s'.", name))
			continue
		}
		if err := v.ValidateParagraph(p, req.Paragraph); err != nil {
			return err
		}
		if err := v.ValidateFont(p, req.Font); err != nil {
			return err
		}
	}
	return nil
}

// ValidateParagraph compares the resolved paragraph format of p with req.
func (v *Validator) ValidateParagraph(p *docx.Paragraph, req requirements.ParagraphRequirement) error {
	fetched, err := v.acc.ParagraphAttributes(p, req.Unit)
	if err != nil {
		return fmt.Errorf("paragraph %q: %w", p.Text, err)
	}

	for _, name := range accessor.ParagraphAttributeNames() {
		required, ok := req.Attributes[name]
		if !ok {
			continue
		}
		got := fetched.Get(name)
		switch {
		case !got.Defined():
			v.collector.Collect(finding.Errorf(finding.KindParagraphUndefined,
				"The attribute of paragraph '%s' is not defined. The required value is %s: \n'%s'",
				name, required, p.Text))
		case !attr.Match(got, required, v.tolerance):
			v.collector.Collect(finding.Errorf(finding.KindParagraphMismatch,
				"The attribute of paragraph '%s' (%s) with value %s does not match required value %s: \n'%s'",
				name, accessor.StyleName(p), got, required, p.Text))
		}
	}
	return nil
}

// ValidateFont compares the font of every run of p with req as sets: the
// run must have exactly the required size, family and toggles.
func (v *Validator) ValidateFont(p *docx.Paragraph, req requirements.FontRequirement) error {
	records, err := v.acc.FontAttributes(p, req.Unit)
	if err != nil {
		return fmt.Errorf("paragraph %q: %w", p.Text, err)
	}

	for _, rec := range records {
		items, err := rec.Items()
		if err != nil {
			var ue *accessor.UndefinedError
			if !errors.As(err, &ue) {
				return err
			}
			v.collector.Collect(finding.Errorf(finding.KindFontUndefined,
				"The font attribute '%s' of paragraph style '%s' is not defined: \n'%s'",
				ue.Attribute, ue.Style, p.Text))
			continue
		}

		if !attr.SameSet(items, req.Attributes, v.tolerance) {
			v.collector.Collect(finding.Errorf(finding.KindFontMismatch,
				"Font attributes (%s) mismatch required (%s) in paragraph with style '%s':\n'%s'",
				attr.Join(items), attr.Join(req.Attributes), rec.Style, rec.Text))
		}
	}
	return nil
}
