package docx

import "encoding/xml"

// documentXML represents the structure of word/document.xml
type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    *bodyXML `xml:"body"`
}

// bodyXML represents the document body.
// Only body-level paragraphs are collected; paragraphs nested in tables
// are not part of the paragraph sequence.
type bodyXML struct {
	Paragraphs []paragraphXML `xml:"p"`
	SectPr     *sectPrXML     `xml:"sectPr"` // last section of the document
}

// paragraphXML represents a paragraph element (<w:p>).
type paragraphXML struct {
	XMLName    xml.Name           `xml:"p"`
	Properties *paragraphPropsXML `xml:"pPr"`
	Runs       []runXML           `xml:"r"`
}

// paragraphPropsXML represents paragraph properties (<w:pPr>).
type paragraphPropsXML struct {
	Style           *valXML     `xml:"pStyle"`
	KeepNext        *onOffXML   `xml:"keepNext"`
	KeepLines       *onOffXML   `xml:"keepLines"`
	PageBreakBefore *onOffXML   `xml:"pageBreakBefore"`
	WidowControl    *onOffXML   `xml:"widowControl"`
	Spacing         *spacingXML `xml:"spacing"`
	Indent          *indentXML  `xml:"ind"`
	Justification   *valXML     `xml:"jc"`
	SectPr          *sectPrXML  `xml:"sectPr"` // section break ending here
}

// valXML represents any element whose payload is a single w:val attribute.
type valXML struct {
	Val string `xml:"val,attr"`
}

// onOffXML represents an OOXML on/off property. The element being present
// without a value means on.
type onOffXML struct {
	Val string `xml:"val,attr"`
}

// on reports the effective state of an on/off element.
func (o *onOffXML) on() bool {
	switch o.Val {
	case "0", "false", "off":
		return false
	default:
		return true
	}
}

// spacingXML represents paragraph spacing (values in twips).
type spacingXML struct {
	Before   string `xml:"before,attr"`
	After    string `xml:"after,attr"`
	Line     string `xml:"line,attr"`     // twips, or 240ths of a line when LineRule is auto
	LineRule string `xml:"lineRule,attr"` // auto, exact, atLeast
}

// indentXML represents paragraph indentation (values in twips).
type indentXML struct {
	Left      string `xml:"left,attr"`
	Start     string `xml:"start,attr"`
	Right     string `xml:"right,attr"`
	End       string `xml:"end,attr"`
	FirstLine string `xml:"firstLine,attr"`
	Hanging   string `xml:"hanging,attr"`
}

// runXML represents a text run (<w:r>). Content keeps the child elements
// in document order so tabs and breaks land where they appear.
type runXML struct {
	XMLName    xml.Name        `xml:"r"`
	Properties *runPropsXML    `xml:"rPr"`
	Content    []runContentXML `xml:",any"`
}

// runContentXML is one child of a run: w:t, w:tab, w:br, w:cr, ...
type runContentXML struct {
	XMLName xml.Name
	Type    string `xml:"type,attr"` // for w:br: page, column, textWrapping
	Value   string `xml:",chardata"`
}

// runPropsXML represents run properties (<w:rPr>).
type runPropsXML struct {
	Fonts         *fontXML  `xml:"rFonts"`
	Bold          *onOffXML `xml:"b"`
	BoldCS        *onOffXML `xml:"bCs"`
	Italic        *onOffXML `xml:"i"`
	ItalicCS      *onOffXML `xml:"iCs"`
	Caps          *onOffXML `xml:"caps"`
	SmallCaps     *onOffXML `xml:"smallCaps"`
	Strike        *onOffXML `xml:"strike"`
	DoubleStrike  *onOffXML `xml:"dstrike"`
	Outline       *onOffXML `xml:"outline"`
	Shadow        *onOffXML `xml:"shadow"`
	Emboss        *onOffXML `xml:"emboss"`
	Imprint       *onOffXML `xml:"imprint"`
	NoProof       *onOffXML `xml:"noProof"`
	SnapToGrid    *onOffXML `xml:"snapToGrid"`
	Vanish        *onOffXML `xml:"vanish"`
	WebHidden     *onOffXML `xml:"webHidden"`
	SpecVanish    *onOffXML `xml:"specVanish"`
	ComplexScript *onOffXML `xml:"cs"`
	RTL           *onOffXML `xml:"rtl"`
	Math          *onOffXML `xml:"oMath"`
	Size          *valXML   `xml:"sz"` // half-points
	Underline     *valXML   `xml:"u"`
	VertAlign     *valXML   `xml:"vertAlign"`
}

// fontXML represents font settings.
type fontXML struct {
	ASCII    string `xml:"ascii,attr"`
	HAnsi    string `xml:"hAnsi,attr"`
	CS       string `xml:"cs,attr"`
	EastAsia string `xml:"eastAsia,attr"`
}

// sectPrXML represents section properties (<w:sectPr>).
type sectPrXML struct {
	Type  *valXML        `xml:"type"`
	PgSz  *pageSizeXML   `xml:"pgSz"`
	PgMar *pageMarginXML `xml:"pgMar"`
}

// pageSizeXML represents page dimensions in twips.
type pageSizeXML struct {
	W      string `xml:"w,attr"`
	H      string `xml:"h,attr"`
	Orient string `xml:"orient,attr"` // portrait (default) or landscape
}

// pageMarginXML represents page margins in twips.
type pageMarginXML struct {
	Top    string `xml:"top,attr"`
	Right  string `xml:"right,attr"`
	Bottom string `xml:"bottom,attr"`
	Left   string `xml:"left,attr"`
	Header string `xml:"header,attr"`
	Footer string `xml:"footer,attr"`
	Gutter string `xml:"gutter,attr"`
}
