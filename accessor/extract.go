package accessor

import (
	"fmt"

	"github.com/tsawler/validocx/attr"
	"github.com/tsawler/validocx/units"
)

// Extraction is a snapshot of a document's checkable attributes, in the
// shape of a requirements file so it can seed one.
type Extraction struct {
	Identity `yaml:",inline"`
	Sections []map[string]any `json:"sections" yaml:"sections"`
	Contents Contents         `json:"contents" yaml:"contents"`
}

// Contents holds the extracted paragraphs.
type Contents struct {
	Headings []ParagraphExtract `json:"headings" yaml:"headings"`
}

// ParagraphExtract is one extracted paragraph. Font sizes are in points,
// paragraph lengths in centimeters.
type ParagraphExtract struct {
	Text            string         `json:"text" yaml:"text"`
	Style           string         `json:"style" yaml:"style"`
	Font            [][]any        `json:"font" yaml:"font"`
	ParagraphFormat map[string]any `json:"paragraph_format" yaml:"paragraph_format"`
}

// Extract collects the identity, every section in centimeters and the
// paragraphs whose style name contains one of styles (all paragraphs when
// styles is empty).
func (a *Accessor) Extract(styles ...string) (*Extraction, error) {
	ex := &Extraction{
		Identity: a.Identity(),
		Sections: make([]map[string]any, 0, len(a.doc.Sections)),
	}

	for _, s := range a.Sections() {
		ex.Sections = append(ex.Sections, plain(a.SectionAttributes(s, units.Centimeter)))
	}

	for p := range a.Paragraphs(styles...) {
		fonts, err := a.FontAttributes(p, units.Point)
		if err != nil {
			return nil, fmt.Errorf("paragraph %q: %w", p.Text, err)
		}
		format, err := a.ParagraphAttributes(p, units.Centimeter)
		if err != nil {
			return nil, fmt.Errorf("paragraph %q: %w", p.Text, err)
		}

		pe := ParagraphExtract{
			Text:            p.Text,
			Style:           StyleName(p),
			Font:            make([][]any, 0, len(fonts)),
			ParagraphFormat: plain(format),
		}
		for _, f := range fonts {
			run := []any{f.Size.Interface(), f.Name.Interface()}
			for _, t := range f.Toggles {
				run = append(run, t)
			}
			pe.Font = append(pe.Font, run)
		}
		ex.Contents.Headings = append(ex.Contents.Headings, pe)
	}

	return ex, nil
}

// plain converts an attribute map into encodable Go values. Undefined
// attributes become nil.
func plain(m attr.Map) map[string]any {
	out := make(map[string]any, len(m))
	for name, v := range m {
		out[name] = v.Interface()
	}
	return out
}
