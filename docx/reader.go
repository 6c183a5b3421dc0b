// Package docx provides DOCX (Office Open XML) document parsing.
//
// The package reads the WordprocessingML parts that matter for layout
// checks (document body, style table and core properties) into a
// read-only Document. Lengths are converted to EMU on parse.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/validocx/format"
)

// Part names inside the package.
const (
	partContentTypes = "[Content_Types].xml"
	partDocument     = "word/document.xml"
	partStyles       = "word/styles.xml"
	partCore         = "docProps/core.xml"
)

// ErrMissingPart is returned when a required package part is absent.
var ErrMissingPart = errors.New("missing required part")

// Reader provides access to DOCX document content.
type Reader struct {
	zipReader *zip.Reader
	closer    io.Closer
	document  *documentXML
	styles    *stylesXML
	doc       *Document
}

// Open opens a DOCX file for reading.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &format.FileNotFoundError{Path: filename}
		}
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r, err := newReader(&zr.Reader)
	if err != nil {
		zr.Close()
		return nil, err
	}
	r.closer = zr
	return r, nil
}

// NewReader reads a DOCX package from ra, which has the given size.
func NewReader(ra io.ReaderAt, size int64) (*Reader, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	return newReader(zr)
}

// Load opens filename, parses it and releases the file.
func Load(filename string) (*Document, error) {
	r, err := Open(filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return r.Document(), nil
}

func newReader(zr *zip.Reader) (*Reader, error) {
	r := &Reader{zipReader: zr}

	// Validate required files exist
	if err := r.validate(); err != nil {
		return nil, err
	}

	if err := r.parseDocument(); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	// Styles are optional; a malformed style table is not.
	if err := r.parseStyles(); err != nil {
		return nil, fmt.Errorf("parsing styles: %w", err)
	}

	core, err := r.parseCoreProperties()
	if err != nil {
		return nil, fmt.Errorf("parsing core properties: %w", err)
	}

	r.doc = r.build(core)
	return r, nil
}

// Close releases resources associated with the Reader. The Document
// remains usable after Close.
func (r *Reader) Close() error {
	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil
		return err
	}
	return nil
}

// Document returns the parsed document.
func (r *Reader) Document() *Document {
	return r.doc
}

// validate checks that required DOCX files exist.
func (r *Reader) validate() error {
	required := []string{
		partContentTypes,
		partDocument,
	}

	fileMap := make(map[string]bool)
	for _, f := range r.zipReader.File {
		fileMap[f.Name] = true
	}

	for _, name := range required {
		if !fileMap[name] {
			return fmt.Errorf("%w: %s", ErrMissingPart, name)
		}
	}

	return nil
}

// getFile returns a zip.File by name.
func (r *Reader) getFile(name string) *zip.File {
	for _, f := range r.zipReader.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// getFileContent reads the content of a file from the ZIP archive.
func (r *Reader) getFileContent(name string) ([]byte, error) {
	f := r.getFile(name)
	if f == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingPart, name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// parseDocument parses the main document content.
func (r *Reader) parseDocument() error {
	data, err := r.getFileContent(partDocument)
	if err != nil {
		return err
	}

	r.document = &documentXML{}
	if err := xml.Unmarshal(data, r.document); err != nil {
		return fmt.Errorf("unmarshaling document.xml: %w", err)
	}
	return nil
}

// parseStyles parses the styles definition file.
func (r *Reader) parseStyles() error {
	if r.getFile(partStyles) == nil {
		return nil
	}
	data, err := r.getFileContent(partStyles)
	if err != nil {
		return err
	}

	r.styles = &stylesXML{}
	if err := xml.Unmarshal(data, r.styles); err != nil {
		return fmt.Errorf("unmarshaling styles.xml: %w", err)
	}
	return nil
}

// parseCoreProperties parses Dublin Core metadata. The part is optional.
func (r *Reader) parseCoreProperties() (CoreProperties, error) {
	if r.getFile(partCore) == nil {
		return CoreProperties{}, nil
	}
	data, err := r.getFileContent(partCore)
	if err != nil {
		return CoreProperties{}, err
	}
	return parseCore(data)
}

// build assembles the Document from the parsed parts.
func (r *Reader) build(core CoreProperties) *Document {
	doc := &Document{
		Styles: buildStyles(r.styles),
		Core:   core,
	}

	body := r.document.Body
	if body == nil {
		doc.Sections = []*Section{buildSection(nil)}
		return doc
	}

	doc.Paragraphs = make([]*Paragraph, 0, len(body.Paragraphs))
	for i := range body.Paragraphs {
		p := &body.Paragraphs[i]
		doc.Paragraphs = append(doc.Paragraphs, r.buildParagraph(doc.Styles, p))

		// A paragraph-level sectPr ends a section.
		if p.Properties != nil && p.Properties.SectPr != nil {
			doc.Sections = append(doc.Sections, buildSection(p.Properties.SectPr))
		}
	}

	// The body-level sectPr describes the last section.
	doc.Sections = append(doc.Sections, buildSection(body.SectPr))

	return doc
}

// buildParagraph converts a paragraph element.
func (r *Reader) buildParagraph(styles *Styles, p *paragraphXML) *Paragraph {
	styleID := ""
	if p.Properties != nil && p.Properties.Style != nil {
		styleID = p.Properties.Style.Val
	}

	para := &Paragraph{
		Style:  styles.paragraphStyle(styleID),
		Format: buildParagraphFormat(p.Properties),
		Runs:   make([]*Run, 0, len(p.Runs)),
	}

	var text strings.Builder
	for i := range p.Runs {
		run := &p.Runs[i]
		rt := extractRunText(run)
		para.Runs = append(para.Runs, &Run{
			Text: rt,
			Font: buildFont(run.Properties),
		})
		text.WriteString(rt)
	}
	para.Text = text.String()

	return para
}

// extractRunText extracts text from a run element, keeping tabs and line
// breaks in document order.
func extractRunText(run *runXML) string {
	var parts []string

	for _, c := range run.Content {
		switch c.XMLName.Local {
		case "t":
			parts = append(parts, c.Value)
		case "tab":
			parts = append(parts, "\t")
		case "cr":
			parts = append(parts, "\n")
		case "br":
			// Page and column breaks carry no text.
			if c.Type == "" || c.Type == "textWrapping" {
				parts = append(parts, "\n")
			}
		case "noBreakHyphen":
			parts = append(parts, "-")
		}
	}

	return norm.NFC.String(strings.Join(parts, ""))
}
