package docx

import "encoding/xml"

// stylesXML represents the structure of word/styles.xml
type stylesXML struct {
	XMLName     xml.Name        `xml:"styles"`
	DocDefaults *docDefaultsXML `xml:"docDefaults"`
	Styles      []styleDefXML   `xml:"style"`
}

// docDefaultsXML represents document default styles.
type docDefaultsXML struct {
	RPrDefault *rPrDefaultXML `xml:"rPrDefault"`
	PPrDefault *pPrDefaultXML `xml:"pPrDefault"`
}

// rPrDefaultXML represents default run properties.
type rPrDefaultXML struct {
	RPr *runPropsXML `xml:"rPr"`
}

// pPrDefaultXML represents default paragraph properties.
type pPrDefaultXML struct {
	PPr *paragraphPropsXML `xml:"pPr"`
}

// styleDefXML represents a style definition.
type styleDefXML struct {
	XMLName xml.Name           `xml:"style"`
	Type    string             `xml:"type,attr"` // paragraph, character, table, numbering
	StyleID string             `xml:"styleId,attr"`
	Default string             `xml:"default,attr"` // "1" if default style
	Name    *valXML            `xml:"name"`
	BasedOn *valXML            `xml:"basedOn"`
	PPr     *paragraphPropsXML `xml:"pPr"`
	RPr     *runPropsXML       `xml:"rPr"`
}
