package docx

import (
	"math"
	"strconv"
	"strings"

	"github.com/tsawler/validocx/units"
)

// defaultStyleName is used when a document has no default paragraph style.
const defaultStyleName = "Normal"

// builtInNames maps the lowercase names Word stores for some built-in
// styles to the names shown in its user interface.
var builtInNames = map[string]string{
	"caption":   "Caption",
	"footer":    "Footer",
	"header":    "Header",
	"heading 1": "Heading 1",
	"heading 2": "Heading 2",
	"heading 3": "Heading 3",
	"heading 4": "Heading 4",
	"heading 5": "Heading 5",
	"heading 6": "Heading 6",
	"heading 7": "Heading 7",
	"heading 8": "Heading 8",
	"heading 9": "Heading 9",
}

// uiStyleName returns the user-facing name for a stored style name.
func uiStyleName(name string) string {
	if ui, ok := builtInNames[name]; ok {
		return ui
	}
	return name
}

// buildStyles converts styles.xml into a linked style table. basedOn
// references are resolved to pointers after every style exists, so a
// style may refer to one defined later in the file. Dangling references
// leave BaseStyle nil.
func buildStyles(sx *stylesXML) *Styles {
	s := &Styles{
		byID:     make(map[string]*Style),
		Defaults: &Style{ID: "docDefaults", Name: "docDefaults"},
	}

	if sx == nil {
		s.DefaultParagraph = synthesizedDefault()
		return s
	}

	if sx.DocDefaults != nil {
		if sx.DocDefaults.RPrDefault != nil {
			s.Defaults.Font = buildFont(sx.DocDefaults.RPrDefault.RPr)
		}
		if sx.DocDefaults.PPrDefault != nil {
			s.Defaults.ParagraphFormat = buildParagraphFormat(sx.DocDefaults.PPrDefault.PPr)
		}
	}

	basedOn := make(map[string]string)
	for i := range sx.Styles {
		def := &sx.Styles[i]
		if def.StyleID == "" {
			continue
		}

		style := &Style{
			ID:              def.StyleID,
			Name:            def.StyleID,
			Type:            def.Type,
			Font:            buildFont(def.RPr),
			ParagraphFormat: buildParagraphFormat(def.PPr),
		}
		if style.Type == "" {
			style.Type = "paragraph"
		}
		if def.Name != nil && def.Name.Val != "" {
			style.Name = uiStyleName(def.Name.Val)
		}
		if def.BasedOn != nil {
			basedOn[def.StyleID] = def.BasedOn.Val
		}
		s.byID[def.StyleID] = style

		if style.Type == "paragraph" && isTrue(def.Default) && s.DefaultParagraph == nil {
			s.DefaultParagraph = style
		}
	}

	for id, baseID := range basedOn {
		if base, ok := s.byID[baseID]; ok {
			s.byID[id].BaseStyle = base
		}
	}

	if s.DefaultParagraph == nil {
		if normal, ok := s.byID[defaultStyleName]; ok {
			s.DefaultParagraph = normal
		} else {
			s.DefaultParagraph = synthesizedDefault()
		}
	}

	return s
}

// synthesizedDefault stands in for the default paragraph style when the
// document does not define one.
func synthesizedDefault() *Style {
	return &Style{ID: defaultStyleName, Name: defaultStyleName, Type: "paragraph"}
}

// paragraphStyle returns the style for a paragraph's w:pStyle value. Unknown
// or missing IDs fall back to the default paragraph style.
func (s *Styles) paragraphStyle(id string) *Style {
	if id != "" {
		if st, ok := s.byID[id]; ok && st.Type == "paragraph" {
			return st
		}
	}
	return s.DefaultParagraph
}

// buildFont converts run properties into a Font.
func buildFont(rpr *runPropsXML) Font {
	f := Font{Toggles: make(map[string]bool)}
	if rpr == nil {
		return f
	}

	if rpr.Fonts != nil && rpr.Fonts.ASCII != "" {
		name := rpr.Fonts.ASCII
		f.Name = &name
	}
	if rpr.Size != nil {
		if size, ok := parseHalfPoints(rpr.Size.Val); ok {
			f.Size = &size
		}
	}

	toggles := map[string]*onOffXML{
		"all_caps":       rpr.Caps,
		"bold":           rpr.Bold,
		"complex_script": rpr.ComplexScript,
		"cs_bold":        rpr.BoldCS,
		"cs_italic":      rpr.ItalicCS,
		"double_strike":  rpr.DoubleStrike,
		"emboss":         rpr.Emboss,
		"hidden":         rpr.Vanish,
		"italic":         rpr.Italic,
		"imprint":        rpr.Imprint,
		"math":           rpr.Math,
		"no_proof":       rpr.NoProof,
		"outline":        rpr.Outline,
		"rtl":            rpr.RTL,
		"shadow":         rpr.Shadow,
		"small_caps":     rpr.SmallCaps,
		"snap_to_grid":   rpr.SnapToGrid,
		"spec_vanish":    rpr.SpecVanish,
		"strike":         rpr.Strike,
		"web_hidden":     rpr.WebHidden,
	}
	for name, el := range toggles {
		if el != nil {
			f.Toggles[name] = el.on()
		}
	}

	// Underline - any style other than none counts as on
	if rpr.Underline != nil {
		f.Toggles["underline"] = rpr.Underline.Val != "" && rpr.Underline.Val != "none"
	}

	if rpr.VertAlign != nil {
		f.Toggles["subscript"] = rpr.VertAlign.Val == "subscript"
		f.Toggles["superscript"] = rpr.VertAlign.Val == "superscript"
	}

	return f
}

// buildParagraphFormat converts paragraph properties into a ParagraphFormat.
func buildParagraphFormat(ppr *paragraphPropsXML) ParagraphFormat {
	var pf ParagraphFormat
	if ppr == nil {
		return pf
	}

	if ppr.Justification != nil {
		if a, ok := parseAlignment(ppr.Justification.Val); ok {
			pf.Alignment = &a
		}
	}

	if ind := ppr.Indent; ind != nil {
		pf.LeftIndent = twipsAttr(firstNonEmpty(ind.Left, ind.Start))
		pf.RightIndent = twipsAttr(firstNonEmpty(ind.Right, ind.End))
		if hanging := twipsAttr(ind.Hanging); hanging != nil {
			neg := -*hanging
			pf.FirstLineIndent = &neg
		} else {
			pf.FirstLineIndent = twipsAttr(ind.FirstLine)
		}
	}

	if sp := ppr.Spacing; sp != nil {
		pf.SpaceBefore = twipsAttr(sp.Before)
		pf.SpaceAfter = twipsAttr(sp.After)
		pf.LineSpacing, pf.LineSpacingRule = parseLineSpacing(sp.Line, sp.LineRule)
	}

	pf.KeepTogether = onOffAttr(ppr.KeepLines)
	pf.KeepWithNext = onOffAttr(ppr.KeepNext)
	pf.PageBreakBefore = onOffAttr(ppr.PageBreakBefore)
	pf.WidowControl = onOffAttr(ppr.WidowControl)

	return pf
}

// buildSection converts section properties into a Section.
func buildSection(sp *sectPrXML) *Section {
	sec := &Section{StartType: StartNewPage, Orientation: Portrait}
	if sp == nil {
		return sec
	}

	if sp.Type != nil {
		switch sp.Type.Val {
		case "continuous":
			sec.StartType = StartContinuous
		case "nextColumn":
			sec.StartType = StartNewColumn
		case "evenPage":
			sec.StartType = StartEvenPage
		case "oddPage":
			sec.StartType = StartOddPage
		}
	}

	if sz := sp.PgSz; sz != nil {
		sec.PageWidth = twipsAttr(sz.W)
		sec.PageHeight = twipsAttr(sz.H)
		if sz.Orient == "landscape" {
			sec.Orientation = Landscape
		}
	}

	if m := sp.PgMar; m != nil {
		sec.TopMargin = twipsAttr(m.Top)
		sec.RightMargin = twipsAttr(m.Right)
		sec.BottomMargin = twipsAttr(m.Bottom)
		sec.LeftMargin = twipsAttr(m.Left)
		sec.HeaderDistance = twipsAttr(m.Header)
		sec.FooterDistance = twipsAttr(m.Footer)
		sec.Gutter = twipsAttr(m.Gutter)
	}

	return sec
}

// parseAlignment maps a w:jc value to an Alignment.
func parseAlignment(val string) (Alignment, bool) {
	switch val {
	case "left", "start":
		return AlignLeft, true
	case "center":
		return AlignCenter, true
	case "right", "end":
		return AlignRight, true
	case "both":
		return AlignJustify, true
	case "distribute":
		return AlignDistribute, true
	case "mediumKashida":
		return AlignJustifyMed, true
	case "highKashida":
		return AlignJustifyHi, true
	case "lowKashida":
		return AlignJustifyLow, true
	case "thaiDistribute":
		return AlignThaiJustify, true
	default:
		return 0, false
	}
}

// parseLineSpacing derives the line spacing value and rule from w:spacing.
// With the auto rule, w:line is in 240ths of a line and the value is a
// multiple; the common multiples map to SINGLE, ONE_POINT_FIVE and DOUBLE.
func parseLineSpacing(line, rule string) (*LineSpacing, *LineSpacingRule) {
	var r LineSpacingRule
	switch rule {
	case "exact":
		r = LineExactly
	case "atLeast":
		r = LineAtLeast
	case "auto", "":
		if line == "" && rule == "" {
			return nil, nil
		}
		r = LineMultiple
	default:
		return nil, nil
	}

	if line == "" {
		return nil, &r
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return nil, &r
	}

	if r != LineMultiple {
		l := units.Twips(int64(math.Round(v)))
		return &LineSpacing{Length: l, IsLength: true}, &r
	}

	switch v {
	case 240:
		r = LineSingle
	case 360:
		r = LineOnePointFive
	case 480:
		r = LineDouble
	}
	return &LineSpacing{Multiple: v / 240}, &r
}

// twipsAttr parses a twips attribute, returning nil when it is absent or
// malformed.
func twipsAttr(s string) *units.Length {
	if l, ok := parseTwips(s); ok {
		return &l
	}
	return nil
}

// onOffAttr converts an optional on/off element into a tri-state bool.
func onOffAttr(el *onOffXML) *bool {
	if el == nil {
		return nil
	}
	v := el.on()
	return &v
}

// parseHalfPoints parses a size in half-points.
// Word uses half-points for font sizes (e.g., "24" = 12pt).
func parseHalfPoints(s string) (units.Length, bool) {
	val, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || val <= 0 {
		return 0, false
	}
	return units.Pt(val / 2), true
}

// parseTwips parses a size in twips.
// 1 point = 20 twips.
func parseTwips(s string) (units.Length, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return units.Twips(int64(math.Round(val))), true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func isTrue(s string) bool {
	return s == "1" || s == "true" || s == "on"
}
