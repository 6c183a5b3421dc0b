package accessor

import (
	"github.com/tsawler/validocx/attr"
	"github.com/tsawler/validocx/docx"
	"github.com/tsawler/validocx/units"
)

type sectionField struct {
	name string
	get  func(*docx.Section, units.Unit) attr.Value
}

type paragraphField struct {
	name string
	get  func(*docx.ParagraphFormat, units.Unit) attr.Value
}

// sectionTable lists the section attributes in reporting order.
var sectionTable = []sectionField{
	{"start_type", func(s *docx.Section, _ units.Unit) attr.Value {
		return attr.EnumMember(s.StartType.String(), int(s.StartType))
	}},
	{"orientation", func(s *docx.Section, _ units.Unit) attr.Value {
		return attr.EnumMember(s.Orientation.String(), int(s.Orientation))
	}},
	{"page_width", sectionLength(func(s *docx.Section) *units.Length { return s.PageWidth })},
	{"page_height", sectionLength(func(s *docx.Section) *units.Length { return s.PageHeight })},
	{"left_margin", sectionLength(func(s *docx.Section) *units.Length { return s.LeftMargin })},
	{"right_margin", sectionLength(func(s *docx.Section) *units.Length { return s.RightMargin })},
	{"top_margin", sectionLength(func(s *docx.Section) *units.Length { return s.TopMargin })},
	{"bottom_margin", sectionLength(func(s *docx.Section) *units.Length { return s.BottomMargin })},
	{"gutter", sectionLength(func(s *docx.Section) *units.Length { return s.Gutter })},
	{"header_distance", sectionLength(func(s *docx.Section) *units.Length { return s.HeaderDistance })},
	{"footer_distance", sectionLength(func(s *docx.Section) *units.Length { return s.FooterDistance })},
}

// paragraphTable lists the paragraph format attributes in reporting order.
// Tab stops are not part of it.
var paragraphTable = []paragraphField{
	{"alignment", func(pf *docx.ParagraphFormat, _ units.Unit) attr.Value {
		if pf.Alignment == nil {
			return attr.Value{}
		}
		return attr.EnumMember(pf.Alignment.String(), int(*pf.Alignment))
	}},
	{"first_line_indent", formatLength(func(pf *docx.ParagraphFormat) *units.Length { return pf.FirstLineIndent })},
	{"keep_together", formatBool(func(pf *docx.ParagraphFormat) *bool { return pf.KeepTogether })},
	{"keep_with_next", formatBool(func(pf *docx.ParagraphFormat) *bool { return pf.KeepWithNext })},
	{"left_indent", formatLength(func(pf *docx.ParagraphFormat) *units.Length { return pf.LeftIndent })},
	{"line_spacing", func(pf *docx.ParagraphFormat, u units.Unit) attr.Value {
		switch {
		case pf.LineSpacing == nil:
			return attr.Value{}
		case pf.LineSpacing.IsLength:
			return attr.Float(pf.LineSpacing.Length.In(u))
		default:
			return attr.Float(pf.LineSpacing.Multiple)
		}
	}},
	{"line_spacing_rule", func(pf *docx.ParagraphFormat, _ units.Unit) attr.Value {
		if pf.LineSpacingRule == nil {
			return attr.Value{}
		}
		return attr.EnumMember(pf.LineSpacingRule.String(), int(*pf.LineSpacingRule))
	}},
	{"page_break_before", formatBool(func(pf *docx.ParagraphFormat) *bool { return pf.PageBreakBefore })},
	{"right_indent", formatLength(func(pf *docx.ParagraphFormat) *units.Length { return pf.RightIndent })},
	{"space_after", formatLength(func(pf *docx.ParagraphFormat) *units.Length { return pf.SpaceAfter })},
	{"space_before", formatLength(func(pf *docx.ParagraphFormat) *units.Length { return pf.SpaceBefore })},
	{"widow_control", formatBool(func(pf *docx.ParagraphFormat) *bool { return pf.WidowControl })},
}

func sectionLength(field func(*docx.Section) *units.Length) func(*docx.Section, units.Unit) attr.Value {
	return func(s *docx.Section, u units.Unit) attr.Value {
		return lengthValue(field(s), u)
	}
}

func formatLength(field func(*docx.ParagraphFormat) *units.Length) func(*docx.ParagraphFormat, units.Unit) attr.Value {
	return func(pf *docx.ParagraphFormat, u units.Unit) attr.Value {
		return lengthValue(field(pf), u)
	}
}

func formatBool(field func(*docx.ParagraphFormat) *bool) func(*docx.ParagraphFormat, units.Unit) attr.Value {
	return func(pf *docx.ParagraphFormat, _ units.Unit) attr.Value {
		if b := field(pf); b != nil {
			return attr.Boolean(*b)
		}
		return attr.Value{}
	}
}

func lengthValue(l *units.Length, u units.Unit) attr.Value {
	if l == nil {
		return attr.Value{}
	}
	return attr.Float(l.In(u))
}

// SectionAttributeNames returns the section attribute vocabulary in
// reporting order.
func SectionAttributeNames() []string {
	names := make([]string, len(sectionTable))
	for i, f := range sectionTable {
		names[i] = f.name
	}
	return names
}

// ParagraphAttributeNames returns the paragraph attribute vocabulary in
// reporting order.
func ParagraphAttributeNames() []string {
	names := make([]string, len(paragraphTable))
	for i, f := range paragraphTable {
		names[i] = f.name
	}
	return names
}
