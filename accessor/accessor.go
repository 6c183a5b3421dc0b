// Package accessor exposes normalized attribute snapshots of a parsed
// document.
//
// The accessor resolves inherited values along a paragraph style's basedOn
// chain and converts lengths into the unit a caller asks for, so consumers
// see every attribute already resolved and already in the right unit.
// Attributes are enumerated from closed tables; the names are the
// vocabulary accepted in requirement files.
package accessor

import (
	"iter"
	"strings"
	"time"

	"github.com/tsawler/validocx/attr"
	"github.com/tsawler/validocx/docx"
	"github.com/tsawler/validocx/units"
)

// Accessor reads attributes from a document. It never modifies the
// document and is safe for concurrent use.
type Accessor struct {
	doc *docx.Document
}

// New returns an Accessor for doc.
func New(doc *docx.Document) *Accessor {
	return &Accessor{doc: doc}
}

// Document returns the underlying document.
func (a *Accessor) Document() *docx.Document {
	return a.doc
}

// Identity is the authorship metadata of a document.
type Identity struct {
	Author         string    `json:"author" yaml:"author"`
	Created        time.Time `json:"created" yaml:"created"`
	Modified       time.Time `json:"modified" yaml:"modified"`
	LastModifiedBy string    `json:"last_modified_by" yaml:"last_modified_by"`
}

// Identity returns the document's core properties as stored.
func (a *Accessor) Identity() Identity {
	c := a.doc.Core
	return Identity{
		Author:         c.Author,
		Created:        c.Created,
		Modified:       c.Modified,
		LastModifiedBy: c.LastModifiedBy,
	}
}

// Paragraphs yields body paragraphs in document order. With a filter, only
// paragraphs whose style name contains one of the filter strings are
// yielded, so "Heading" matches "Heading 1" and "Heading 2".
func (a *Accessor) Paragraphs(filter ...string) iter.Seq[*docx.Paragraph] {
	return func(yield func(*docx.Paragraph) bool) {
		for _, p := range a.doc.Paragraphs {
			if len(filter) > 0 && !containsAny(StyleName(p), filter) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// ParagraphsWithStyle yields the paragraphs whose style name is exactly name.
func (a *Accessor) ParagraphsWithStyle(name string) iter.Seq[*docx.Paragraph] {
	return func(yield func(*docx.Paragraph) bool) {
		for _, p := range a.doc.Paragraphs {
			if StyleName(p) != name {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Sections yields the document sections with their index.
func (a *Accessor) Sections() iter.Seq2[int, *docx.Section] {
	return func(yield func(int, *docx.Section) bool) {
		for i, s := range a.doc.Sections {
			if !yield(i, s) {
				return
			}
		}
	}
}

// StyleName returns the name of the style applied to p.
func StyleName(p *docx.Paragraph) string {
	if p.Style == nil {
		return ""
	}
	return p.Style.Name
}

func containsAny(name string, filter []string) bool {
	for _, f := range filter {
		if strings.Contains(name, f) {
			return true
		}
	}
	return false
}

// SectionAttributes returns every section attribute. Lengths are converted
// to unit; enums are passed through. Unset lengths are undefined values.
func (a *Accessor) SectionAttributes(s *docx.Section, unit units.Unit) attr.Map {
	m := make(attr.Map, len(sectionTable))
	for _, f := range sectionTable {
		m[f.name] = f.get(s, unit)
	}
	return m
}

// ParagraphAttributes returns every paragraph format attribute. Values not
// set on the paragraph itself are taken from the nearest style in its chain.
func (a *Accessor) ParagraphAttributes(p *docx.Paragraph, unit units.Unit) (attr.Map, error) {
	levels, err := a.paragraphChain(p)
	if err != nil {
		return nil, err
	}

	m := make(attr.Map, len(paragraphTable))
	for _, f := range paragraphTable {
		v := f.get(&p.Format, unit)
		for i := 0; !v.Defined() && i < len(levels); i++ {
			v = f.get(&levels[i].ParagraphFormat, unit)
		}
		m[f.name] = v
	}
	return m, nil
}

func (a *Accessor) paragraphChain(p *docx.Paragraph) ([]*docx.Style, error) {
	if p.Style == nil {
		if a.doc.Styles != nil && a.doc.Styles.Defaults != nil {
			return []*docx.Style{a.doc.Styles.Defaults}, nil
		}
		return nil, nil
	}
	return a.chain(p.Style)
}
