package docx

import (
	"encoding/xml"
	"testing"

	"github.com/tsawler/validocx/units"
)

func TestBuildStyles_Nil(t *testing.T) {
	s := buildStyles(nil)
	if s.DefaultParagraph == nil || s.DefaultParagraph.Name != "Normal" {
		t.Fatalf("DefaultParagraph = %v, want synthesized Normal", s.DefaultParagraph)
	}
	if s.Defaults == nil {
		t.Error("Defaults should never be nil")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestBuildStyles(t *testing.T) {
	sx := &stylesXML{}
	data := `<w:styles xmlns:w="w">
  <w:docDefaults><w:rPrDefault><w:rPr><w:sz w:val="22"/></w:rPr></w:rPrDefault></w:docDefaults>
  <w:style w:type="paragraph" w:styleId="Child"><w:name w:val="heading 1"/><w:basedOn w:val="Base"/></w:style>
  <w:style w:type="paragraph" w:default="1" w:styleId="Base"><w:name w:val="Body"/></w:style>
  <w:style w:type="paragraph" w:styleId="Orphan"><w:name w:val="caption"/><w:basedOn w:val="Missing"/></w:style>
  <w:style w:type="character" w:styleId="Strong"><w:name w:val="Strong"/></w:style>
  <w:style w:styleId="NoName"/>
</w:styles>`
	if err := xml.Unmarshal([]byte(data), sx); err != nil {
		t.Fatal(err)
	}

	s := buildStyles(sx)

	child, ok := s.ByID("Child")
	if !ok {
		t.Fatal("Child not found")
	}
	if child.Name != "Heading 1" {
		t.Errorf("Name = %q, want UI name Heading 1", child.Name)
	}
	// basedOn may point forward in the file
	if child.BaseStyle == nil || child.BaseStyle.ID != "Base" {
		t.Errorf("BaseStyle = %v, want Base", child.BaseStyle)
	}

	orphan, _ := s.ByID("Orphan")
	if orphan.Name != "Caption" {
		t.Errorf("Name = %q, want Caption", orphan.Name)
	}
	if orphan.BaseStyle != nil {
		t.Error("dangling basedOn should leave BaseStyle nil")
	}

	if s.DefaultParagraph == nil || s.DefaultParagraph.ID != "Base" {
		t.Errorf("DefaultParagraph = %v, want Base", s.DefaultParagraph)
	}

	if got, ok := s.ByName("Body"); !ok || got.ID != "Base" {
		t.Errorf("ByName(Body) = %v, %v", got, ok)
	}

	noName, _ := s.ByID("NoName")
	if noName.Name != "NoName" || noName.Type != "paragraph" {
		t.Errorf("NoName = %+v, want ID as name and paragraph type", noName)
	}

	if s.Defaults.Font.Size == nil || *s.Defaults.Font.Size != units.Pt(11) {
		t.Errorf("default size = %v, want 11pt", s.Defaults.Font.Size)
	}

	// Character styles are not paragraph styles
	if got := s.paragraphStyle("Strong"); got != s.DefaultParagraph {
		t.Errorf("paragraphStyle(Strong) = %v, want default", got)
	}
	if got := s.paragraphStyle("Unknown"); got != s.DefaultParagraph {
		t.Errorf("paragraphStyle(Unknown) = %v, want default", got)
	}
}

func TestBuildStyles_NormalFallback(t *testing.T) {
	sx := &stylesXML{Styles: []styleDefXML{
		{Type: "paragraph", StyleID: "Normal", Name: &valXML{Val: "Normal"}},
	}}
	s := buildStyles(sx)
	if s.DefaultParagraph == nil || s.DefaultParagraph.ID != "Normal" {
		t.Errorf("DefaultParagraph = %v, want Normal", s.DefaultParagraph)
	}
}

func TestBuildFont(t *testing.T) {
	rpr := &runPropsXML{
		Fonts:     &fontXML{ASCII: "Arial"},
		Size:      &valXML{Val: "28"},
		Bold:      &onOffXML{},
		Italic:    &onOffXML{Val: "0"},
		Underline: &valXML{Val: "double"},
		VertAlign: &valXML{Val: "superscript"},
	}

	f := buildFont(rpr)

	if f.Name == nil || *f.Name != "Arial" {
		t.Errorf("Name = %v", f.Name)
	}
	if f.Size == nil || *f.Size != units.Pt(14) {
		t.Errorf("Size = %v, want 14pt", f.Size)
	}

	tests := []struct {
		name      string
		on, isSet bool
	}{
		{"bold", true, true},
		{"italic", false, true},
		{"underline", true, true},
		{"superscript", true, true},
		{"subscript", false, true},
		{"strike", false, false},
	}
	for _, tt := range tests {
		on, set := f.Toggle(tt.name)
		if on != tt.on || set != tt.isSet {
			t.Errorf("Toggle(%q) = (%v, %v), want (%v, %v)", tt.name, on, set, tt.on, tt.isSet)
		}
	}
}

func TestBuildFont_UnderlineNone(t *testing.T) {
	f := buildFont(&runPropsXML{Underline: &valXML{Val: "none"}})
	if on, set := f.Toggle("underline"); on || !set {
		t.Errorf("Toggle(underline) = (%v, %v), want (false, true)", on, set)
	}
}

func TestBuildParagraphFormat_Hanging(t *testing.T) {
	pf := buildParagraphFormat(&paragraphPropsXML{
		Indent: &indentXML{Start: "720", Hanging: "360", FirstLine: "100"},
	})

	if pf.LeftIndent == nil || *pf.LeftIndent != units.Twips(720) {
		t.Errorf("LeftIndent = %v, want start value", pf.LeftIndent)
	}
	if pf.FirstLineIndent == nil || *pf.FirstLineIndent != units.Twips(-360) {
		t.Errorf("FirstLineIndent = %v, want -360 twips", pf.FirstLineIndent)
	}
	if pf.RightIndent != nil {
		t.Error("RightIndent should be unset")
	}
}

func TestBuildParagraphFormat_OnOff(t *testing.T) {
	pf := buildParagraphFormat(&paragraphPropsXML{
		PageBreakBefore: &onOffXML{Val: "false"},
		WidowControl:    &onOffXML{},
	})
	if pf.PageBreakBefore == nil || *pf.PageBreakBefore {
		t.Error("PageBreakBefore should be explicitly false")
	}
	if pf.WidowControl == nil || !*pf.WidowControl {
		t.Error("WidowControl should be true")
	}
	if pf.KeepTogether != nil {
		t.Error("KeepTogether should be unset")
	}
}

func TestParseLineSpacing(t *testing.T) {
	tests := []struct {
		line, rule   string
		wantRule     *LineSpacingRule
		wantMultiple float64
		wantLength   units.Length
		wantIsLength bool
		wantNil      bool
	}{
		{line: "240", rule: "auto", wantRule: rulePtr(LineSingle), wantMultiple: 1},
		{line: "360", rule: "", wantRule: rulePtr(LineOnePointFive), wantMultiple: 1.5},
		{line: "480", rule: "auto", wantRule: rulePtr(LineDouble), wantMultiple: 2},
		{line: "276", rule: "auto", wantRule: rulePtr(LineMultiple), wantMultiple: 1.15},
		{line: "567", rule: "exact", wantRule: rulePtr(LineExactly), wantLength: units.Twips(567), wantIsLength: true},
		{line: "300", rule: "atLeast", wantRule: rulePtr(LineAtLeast), wantLength: units.Twips(300), wantIsLength: true},
		{line: "", rule: "", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.line+"/"+tt.rule, func(t *testing.T) {
			ls, rule := parseLineSpacing(tt.line, tt.rule)
			if tt.wantNil {
				if ls != nil || rule != nil {
					t.Errorf("got (%v, %v), want nil", ls, rule)
				}
				return
			}
			if rule == nil || *rule != *tt.wantRule {
				t.Fatalf("rule = %v, want %v", rule, *tt.wantRule)
			}
			if ls == nil {
				t.Fatal("line spacing is nil")
			}
			if ls.IsLength != tt.wantIsLength {
				t.Errorf("IsLength = %v", ls.IsLength)
			}
			if tt.wantIsLength && ls.Length != tt.wantLength {
				t.Errorf("Length = %v, want %v", ls.Length, tt.wantLength)
			}
			if !tt.wantIsLength && ls.Multiple != tt.wantMultiple {
				t.Errorf("Multiple = %v, want %v", ls.Multiple, tt.wantMultiple)
			}
		})
	}
}

func rulePtr(r LineSpacingRule) *LineSpacingRule { return &r }

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		val  string
		want Alignment
		ok   bool
	}{
		{"left", AlignLeft, true},
		{"start", AlignLeft, true},
		{"center", AlignCenter, true},
		{"end", AlignRight, true},
		{"both", AlignJustify, true},
		{"distribute", AlignDistribute, true},
		{"highKashida", AlignJustifyHi, true},
		{"thaiDistribute", AlignThaiJustify, true},
		{"sideways", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseAlignment(tt.val)
		if got != tt.want || ok != tt.ok {
			t.Errorf("parseAlignment(%q) = (%v, %v), want (%v, %v)", tt.val, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseHalfPoints(t *testing.T) {
	tests := []struct {
		input  string
		want   units.Length
		wantOK bool
	}{
		{"24", units.Pt(12), true},
		{"21", units.Pt(10.5), true},
		{"", 0, false},
		{"invalid", 0, false},
		{"0", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseHalfPoints(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("parseHalfPoints(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseTwips(t *testing.T) {
	tests := []struct {
		input  string
		want   units.Length
		wantOK bool
	}{
		{"1440", units.Inches(1), true},
		{"0", 0, true},
		{"-360", units.Twips(-360), true},
		{" 20 ", units.Pt(1), true},
		{"", 0, false},
		{"abc", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseTwips(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("parseTwips(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	if Portrait.String() != "PORTRAIT" || Landscape.String() != "LANDSCAPE" {
		t.Error("orientation names")
	}
	if StartNewPage.String() != "NEW_PAGE" || StartOddPage.String() != "ODD_PAGE" {
		t.Error("section start names")
	}
	if AlignJustify.String() != "JUSTIFY" || AlignJustifyLow.String() != "JUSTIFY_LOW" {
		t.Error("alignment names")
	}
	if LineOnePointFive.String() != "ONE_POINT_FIVE" || LineExactly.String() != "EXACTLY" {
		t.Error("line spacing rule names")
	}
}
