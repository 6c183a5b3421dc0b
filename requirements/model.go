package requirements

import (
	"fmt"

	"github.com/tsawler/validocx/attr"
	"github.com/tsawler/validocx/units"
)

// Requirements is a checked requirements document.
type Requirements struct {
	// Sections is index-aligned with the document's sections.
	Sections []SectionRequirement
	// Styles is keyed by literal paragraph style name.
	Styles map[string]StyleRequirement
}

// SectionRequirement holds the required geometry of one section.
type SectionRequirement struct {
	Unit       units.Unit
	Attributes attr.Map
}

// StyleRequirement holds the requirements for paragraphs of one style.
type StyleRequirement struct {
	Font      FontRequirement
	Paragraph ParagraphRequirement
}

// FontRequirement is the exact set of font attributes every run must have:
// size, family and the names of the toggles that are on.
type FontRequirement struct {
	Unit       units.Unit
	Attributes []attr.Value
}

// ParagraphRequirement holds required paragraph format attributes.
type ParagraphRequirement struct {
	Unit       units.Unit
	Attributes attr.Map
}

// Decode checks payload against RequirementsSchema and converts it into
// the typed model.
func Decode(payload any) (*Requirements, error) {
	if err := RequirementsSchema.Check(payload); err != nil {
		return nil, err
	}

	root := payload.(map[string]any)
	req := &Requirements{Styles: make(map[string]StyleRequirement)}

	for _, item := range root["sections"].([]any) {
		block := item.(map[string]any)
		attrs, err := decodeMap(block["attributes"].(map[string]any))
		if err != nil {
			return nil, err
		}
		req.Sections = append(req.Sections, SectionRequirement{
			Unit:       units.Unit(block["unit"].(string)),
			Attributes: attrs,
		})
	}

	for name, item := range root["styles"].(map[string]any) {
		style := item.(map[string]any)
		font := style["font"].(map[string]any)
		para := style["paragraph"].(map[string]any)

		var fontAttrs []attr.Value
		for _, x := range font["attributes"].([]any) {
			v, err := attr.FromInterface(x)
			if err != nil {
				return nil, fmt.Errorf("style %q: %w", name, err)
			}
			fontAttrs = append(fontAttrs, v)
		}

		paraAttrs, err := decodeMap(para["attributes"].(map[string]any))
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", name, err)
		}

		req.Styles[name] = StyleRequirement{
			Font: FontRequirement{
				Unit:       units.Unit(font["unit"].(string)),
				Attributes: fontAttrs,
			},
			Paragraph: ParagraphRequirement{
				Unit:       units.Unit(para["unit"].(string)),
				Attributes: paraAttrs,
			},
		}
	}

	return req, nil
}

func decodeMap(m map[string]any) (attr.Map, error) {
	out := make(attr.Map, len(m))
	for k, x := range m {
		v, err := attr.FromInterface(x)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}

// Encode converts r back into a generic payload, the inverse of Decode.
func Encode(r *Requirements) map[string]any {
	sections := make([]any, 0, len(r.Sections))
	for _, s := range r.Sections {
		sections = append(sections, map[string]any{
			"unit":       string(s.Unit),
			"attributes": encodeMap(s.Attributes),
		})
	}

	styles := make(map[string]any, len(r.Styles))
	for name, s := range r.Styles {
		font := make([]any, 0, len(s.Font.Attributes))
		for _, v := range s.Font.Attributes {
			font = append(font, v.Interface())
		}
		styles[name] = map[string]any{
			"font": map[string]any{
				"unit":       string(s.Font.Unit),
				"attributes": font,
			},
			"paragraph": map[string]any{
				"unit":       string(s.Paragraph.Unit),
				"attributes": encodeMap(s.Paragraph.Attributes),
			},
		}
	}

	return map[string]any{
		"sections": sections,
		"styles":   styles,
	}
}

func encodeMap(m attr.Map) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v.Interface()
	}
	return out
}
