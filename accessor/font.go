package accessor

import (
	"github.com/tsawler/validocx/attr"
	"github.com/tsawler/validocx/docx"
	"github.com/tsawler/validocx/units"
)

// FontAttributes is the resolved character formatting of one run.
type FontAttributes struct {
	Text    string     // run text
	Style   string     // paragraph style name
	Size    attr.Value // in the requested unit; undefined if unresolved
	Name    attr.Value // font family; undefined if unresolved
	Toggles []string   // on/off properties that are on, in docx.FontToggles order
}

// Items returns the record as the ordered list [size, family, toggles...].
// An unresolved size or family fails with an *UndefinedError.
func (f FontAttributes) Items() ([]attr.Value, error) {
	if !f.Size.Defined() {
		return nil, &UndefinedError{Attribute: "size", Style: f.Style}
	}
	if !f.Name.Defined() {
		return nil, &UndefinedError{Attribute: "name", Style: f.Style}
	}

	items := make([]attr.Value, 0, 2+len(f.Toggles))
	items = append(items, f.Size, f.Name)
	for _, t := range f.Toggles {
		items = append(items, attr.Str(t))
	}
	return items, nil
}

// FontAttributes returns one record per run of p. Size and family come from
// the run, else the nearest style in the paragraph's chain. A toggle set
// explicitly on the run wins over the chain.
func (a *Accessor) FontAttributes(p *docx.Paragraph, unit units.Unit) ([]FontAttributes, error) {
	levels, err := a.paragraphChain(p)
	if err != nil {
		return nil, err
	}

	fonts := make([]*docx.Font, 0, len(levels)+1)
	fonts = append(fonts, nil) // run level, filled per run
	for _, s := range levels {
		fonts = append(fonts, &s.Font)
	}

	records := make([]FontAttributes, 0, len(p.Runs))
	for _, run := range p.Runs {
		fonts[0] = &run.Font
		rec := FontAttributes{Text: run.Text, Style: StyleName(p)}

		if size := firstFont(fonts, func(f *docx.Font) *units.Length { return f.Size }); size != nil {
			rec.Size = attr.Float(size.In(unit))
		}
		if name := firstFont(fonts, func(f *docx.Font) *string { return f.Name }); name != nil {
			rec.Name = attr.Str(*name)
		}

		for _, t := range docx.FontToggles {
			if toggleOn(fonts, t) {
				rec.Toggles = append(rec.Toggles, t)
			}
		}

		records = append(records, rec)
	}
	return records, nil
}

func firstFont[T any](fonts []*docx.Font, get func(*docx.Font) *T) *T {
	for _, f := range fonts {
		if v := get(f); v != nil {
			return v
		}
	}
	return nil
}

func toggleOn(fonts []*docx.Font, name string) bool {
	for _, f := range fonts {
		if on, set := f.Toggle(name); set {
			return on
		}
	}
	return false
}
