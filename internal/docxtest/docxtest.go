// Package docxtest builds small .docx packages for tests.
package docxtest

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

const (
	nsW  = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsCP = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
)

const contentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
  <Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
  <Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>
</Types>`

const rootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
</Relationships>`

// Builder assembles a .docx package from WordprocessingML fragments.
type Builder struct {
	body   []string
	styles string
	core   string
	parts  map[string]string
	omit   map[string]bool
}

// New returns an empty builder.
func New() *Builder {
	return &Builder{parts: make(map[string]string), omit: make(map[string]bool)}
}

// Body appends raw XML to w:body.
func (b *Builder) Body(xml ...string) *Builder {
	b.body = append(b.body, xml...)
	return b
}

// Styles sets the children of w:styles. Without a call, styles.xml is
// not written.
func (b *Builder) Styles(xml string) *Builder {
	b.styles = xml
	return b
}

// Core sets the children of cp:coreProperties. Without a call, core.xml
// is not written.
func (b *Builder) Core(xml string) *Builder {
	b.core = xml
	return b
}

// Part adds or replaces an arbitrary package part.
func (b *Builder) Part(name, content string) *Builder {
	b.parts[name] = content
	return b
}

// Omit drops a part that would otherwise be written.
func (b *Builder) Omit(name string) *Builder {
	b.omit[name] = true
	return b
}

// Bytes returns the zipped package.
func (b *Builder) Bytes() ([]byte, error) {
	files := map[string]string{
		"[Content_Types].xml": contentTypes,
		"_rels/.rels":         rootRels,
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="` + nsW + `"><w:body>` + strings.Join(b.body, "") + `</w:body></w:document>`,
	}
	if b.styles != "" {
		files["word/styles.xml"] = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="` + nsW + `">` + b.styles + `</w:styles>`
	}
	if b.core != "" {
		files["docProps/core.xml"] = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="` + nsCP + `" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">` + b.core + `</cp:coreProperties>`
	}
	for name, content := range b.parts {
		files[name] = content
	}

	names := make([]string, 0, len(files))
	for name := range files {
		if !b.omit[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(files[name])); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes the package into a temporary directory and returns its
// path.
func (b *Builder) WriteFile(t testing.TB, name string) string {
	t.Helper()

	data, err := b.Bytes()
	if err != nil {
		t.Fatalf("building docx: %v", err)
	}

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// Paragraph renders a w:p with an optional style ID, extra pPr children and
// runs.
func Paragraph(styleID, pPr string, runs ...string) string {
	var sb strings.Builder
	sb.WriteString("<w:p>")
	if styleID != "" || pPr != "" {
		sb.WriteString("<w:pPr>")
		if styleID != "" {
			sb.WriteString(`<w:pStyle w:val="` + styleID + `"/>`)
		}
		sb.WriteString(pPr)
		sb.WriteString("</w:pPr>")
	}
	for _, r := range runs {
		sb.WriteString(r)
	}
	sb.WriteString("</w:p>")
	return sb.String()
}

// Run renders a w:r with optional rPr children.
func Run(text, rPr string) string {
	var sb strings.Builder
	sb.WriteString("<w:r>")
	if rPr != "" {
		sb.WriteString("<w:rPr>" + rPr + "</w:rPr>")
	}
	sb.WriteString(`<w:t xml:space="preserve">` + text + `</w:t></w:r>`)
	return sb.String()
}

// Letter is the section geometry of US Letter with Word's default margins.
const Letter = `<w:pgSz w:w="12240" w:h="15840"/>` +
	`<w:pgMar w:top="1440" w:right="1800" w:bottom="1440" w:left="1800" w:header="720" w:footer="720" w:gutter="0"/>`

// SampleStyles is the style table of Sample.
const SampleStyles = `<w:docDefaults>
  <w:rPrDefault><w:rPr><w:sz w:val="22"/></w:rPr></w:rPrDefault>
  <w:pPrDefault><w:pPr><w:spacing w:after="160" w:line="259" w:lineRule="auto"/></w:pPr></w:pPrDefault>
</w:docDefaults>
<w:style w:type="paragraph" w:default="1" w:styleId="Normal">
  <w:name w:val="Normal"/>
  <w:rPr><w:rFonts w:ascii="Calibri" w:hAnsi="Calibri"/><w:sz w:val="24"/></w:rPr>
</w:style>
<w:style w:type="paragraph" w:styleId="Title">
  <w:name w:val="Title"/>
  <w:basedOn w:val="Normal"/>
  <w:pPr><w:spacing w:after="300" w:line="240" w:lineRule="auto"/></w:pPr>
  <w:rPr><w:sz w:val="52"/></w:rPr>
</w:style>
<w:style w:type="paragraph" w:styleId="Heading1">
  <w:name w:val="heading 1"/>
  <w:basedOn w:val="Normal"/>
  <w:rPr><w:b/></w:rPr>
</w:style>
<w:style w:type="paragraph" w:styleId="Heading2">
  <w:name w:val="heading 2"/>
  <w:basedOn w:val="Normal"/>
  <w:rPr><w:b/></w:rPr>
</w:style>
<w:style w:type="character" w:default="1" w:styleId="DefaultParagraphFont">
  <w:name w:val="Default Paragraph Font"/>
</w:style>`

// SampleCore is the core properties of Sample.
const SampleCore = `<dc:title>Fake Document</dc:title>` +
	`<dc:creator>Fake Author</dc:creator>` +
	`<cp:lastModifiedBy>Fake Editor</cp:lastModifiedBy>` +
	`<cp:revision>3</cp:revision>` +
	`<dcterms:created xsi:type="dcterms:W3CDTF">2013-12-23T23:15:00Z</dcterms:created>` +
	`<dcterms:modified xsi:type="dcterms:W3CDTF">2024-01-02T10:30:00Z</dcterms:modified>`

// SampleBodyText is the text of the Normal paragraph in Sample.
const SampleBodyText = "Some bold and some italic."

// Sample returns the reference document used across the test suite:
//
//	Title      "Fake Title"
//	Heading 1  "Fake Header 1"
//	Heading 2  "Fake Header 2"
//	Normal     "Some bold and some italic." (justified, indented, exact line spacing)
//	Normal     "" (ends section 0)
//
// followed by the final section. Both sections are portrait US Letter.
func Sample() *Builder {
	normalPPr := `<w:keepNext/>` +
		`<w:spacing w:before="567" w:after="567" w:line="567" w:lineRule="exact"/>` +
		`<w:ind w:left="283" w:right="283" w:firstLine="709"/>` +
		`<w:jc w:val="both"/>`

	return New().
		Styles(SampleStyles).
		Core(SampleCore).
		Body(
			Paragraph("Title", "", Run("Fake Title", "")),
			Paragraph("Heading1", "", Run("Fake Header 1", "")),
			Paragraph("Heading2", "", Run("Fake Header 2", "")),
			Paragraph("", normalPPr,
				Run("Some ", ""),
				Run("bold", "<w:b/>"),
				Run(" and some ", ""),
				Run("italic.", "<w:i/>"),
			),
			Paragraph("", "<w:sectPr>"+Letter+"</w:sectPr>"),
			"<w:sectPr>"+Letter+"</w:sectPr>",
		)
}
