package docx

import (
	"time"

	"github.com/tsawler/validocx/units"
)

// Document is a parsed DOCX document. It is read-only once returned by
// a Reader.
type Document struct {
	Paragraphs []*Paragraph
	Sections   []*Section
	Styles     *Styles
	Core       CoreProperties
}

// CoreProperties holds the docProps/core.xml metadata.
type CoreProperties struct {
	Title          string
	Subject        string
	Author         string // dc:creator
	Keywords       string
	LastModifiedBy string
	Revision       string
	Created        time.Time
	Modified       time.Time
}

// Paragraph is a body-level paragraph.
type Paragraph struct {
	Text   string
	Style  *Style // explicit paragraph style, else the default paragraph style
	Runs   []*Run
	Format ParagraphFormat
}

// Run is a span of text with its own character formatting.
type Run struct {
	Text string
	Font Font
}

// Font holds character formatting as written on a run or a style.
// Nil fields and absent toggles mean "not set here".
type Font struct {
	Name    *string
	Size    *units.Length
	Toggles map[string]bool
}

// Toggle returns the state of the named on/off property and whether it is
// set at this level.
func (f Font) Toggle(name string) (on, set bool) {
	on, set = f.Toggles[name]
	return on, set
}

// FontToggles lists the on/off character properties in reporting order.
var FontToggles = []string{
	"all_caps",
	"bold",
	"complex_script",
	"cs_bold",
	"cs_italic",
	"double_strike",
	"emboss",
	"hidden",
	"italic",
	"imprint",
	"math",
	"no_proof",
	"outline",
	"rtl",
	"shadow",
	"small_caps",
	"snap_to_grid",
	"spec_vanish",
	"strike",
	"subscript",
	"superscript",
	"underline",
	"web_hidden",
}

// ParagraphFormat holds paragraph geometry as written on a paragraph or a
// style. Nil means "not set here", which is distinct from zero.
type ParagraphFormat struct {
	Alignment       *Alignment
	FirstLineIndent *units.Length // negative for a hanging indent
	LeftIndent      *units.Length
	RightIndent     *units.Length
	SpaceBefore     *units.Length
	SpaceAfter      *units.Length
	LineSpacing     *LineSpacing
	LineSpacingRule *LineSpacingRule
	KeepTogether    *bool
	KeepWithNext    *bool
	PageBreakBefore *bool
	WidowControl    *bool
}

// LineSpacing is either a multiple of single line spacing or a fixed length,
// depending on the line spacing rule.
type LineSpacing struct {
	Multiple float64
	Length   units.Length
	IsLength bool
}

// Section holds page geometry for one document section.
type Section struct {
	StartType      SectionStart
	Orientation    Orientation
	PageWidth      *units.Length
	PageHeight     *units.Length
	LeftMargin     *units.Length
	RightMargin    *units.Length
	TopMargin      *units.Length
	BottomMargin   *units.Length
	Gutter         *units.Length
	HeaderDistance *units.Length
	FooterDistance *units.Length
}

// Style is a named bundle of default formatting.
type Style struct {
	ID              string
	Name            string
	Type            string // paragraph, character, table, numbering
	BaseStyle       *Style // lookup only; may be nil
	Font            Font
	ParagraphFormat ParagraphFormat
}

// Styles is the style table of a document.
type Styles struct {
	byID map[string]*Style
	// Defaults holds w:docDefaults. Every inheritance chain ends here.
	Defaults *Style
	// DefaultParagraph is the style applied to paragraphs without w:pStyle.
	DefaultParagraph *Style
}

// ByID returns the style with the given ID.
func (s *Styles) ByID(id string) (*Style, bool) {
	st, ok := s.byID[id]
	return st, ok
}

// ByName returns the style with the given UI name.
func (s *Styles) ByName(name string) (*Style, bool) {
	for _, st := range s.byID {
		if st.Name == name {
			return st, true
		}
	}
	return nil, false
}

// Len returns the number of defined styles.
func (s *Styles) Len() int {
	return len(s.byID)
}

// Orientation is the page orientation of a section.
type Orientation int

const (
	Portrait  Orientation = 0
	Landscape Orientation = 1
)

// String returns the member name.
func (o Orientation) String() string {
	if o == Landscape {
		return "LANDSCAPE"
	}
	return "PORTRAIT"
}

// SectionStart is how a section begins relative to the previous one.
type SectionStart int

const (
	StartContinuous SectionStart = 0
	StartNewColumn  SectionStart = 1
	StartNewPage    SectionStart = 2
	StartEvenPage   SectionStart = 3
	StartOddPage    SectionStart = 4
)

// String returns the member name.
func (s SectionStart) String() string {
	switch s {
	case StartContinuous:
		return "CONTINUOUS"
	case StartNewColumn:
		return "NEW_COLUMN"
	case StartEvenPage:
		return "EVEN_PAGE"
	case StartOddPage:
		return "ODD_PAGE"
	default:
		return "NEW_PAGE"
	}
}

// Alignment is paragraph justification.
type Alignment int

const (
	AlignLeft        Alignment = 0
	AlignCenter      Alignment = 1
	AlignRight       Alignment = 2
	AlignJustify     Alignment = 3
	AlignDistribute  Alignment = 4
	AlignJustifyMed  Alignment = 5
	AlignJustifyHi   Alignment = 7
	AlignJustifyLow  Alignment = 8
	AlignThaiJustify Alignment = 9
)

var alignmentNames = map[Alignment]string{
	AlignLeft:        "LEFT",
	AlignCenter:      "CENTER",
	AlignRight:       "RIGHT",
	AlignJustify:     "JUSTIFY",
	AlignDistribute:  "DISTRIBUTE",
	AlignJustifyMed:  "JUSTIFY_MED",
	AlignJustifyHi:   "JUSTIFY_HI",
	AlignJustifyLow:  "JUSTIFY_LOW",
	AlignThaiJustify: "THAI_JUSTIFY",
}

// String returns the member name.
func (a Alignment) String() string {
	if name, ok := alignmentNames[a]; ok {
		return name
	}
	return "LEFT"
}

// LineSpacingRule is how LineSpacing is interpreted.
type LineSpacingRule int

const (
	LineSingle       LineSpacingRule = 0
	LineOnePointFive LineSpacingRule = 1
	LineDouble       LineSpacingRule = 2
	LineAtLeast      LineSpacingRule = 3
	LineExactly      LineSpacingRule = 4
	LineMultiple     LineSpacingRule = 5
)

// String returns the member name.
func (r LineSpacingRule) String() string {
	switch r {
	case LineSingle:
		return "SINGLE"
	case LineOnePointFive:
		return "ONE_POINT_FIVE"
	case LineDouble:
		return "DOUBLE"
	case LineAtLeast:
		return "AT_LEAST"
	case LineExactly:
		return "EXACTLY"
	default:
		return "MULTIPLE"
	}
}
