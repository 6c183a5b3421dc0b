package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/validocx/format"
)

// ErrUnsupportedFormat is returned for report formats other than text,
// JSON, YAML and HTML.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Render writes r to w in the given format.
func Render(w io.Writer, r *Report, f format.Format) error {
	switch f {
	case format.Text:
		return renderText(w, r)
	case format.JSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case format.YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case format.HTML:
		return html.Render(w, htmlDocument(r))
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
}

// WriteFile renders r into path, choosing the format from the extension.
func WriteFile(path string, r *Report) error {
	f := format.Detect(path)
	switch f {
	case format.Text, format.JSON, format.YAML, format.HTML:
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	if err := Render(out, r, f); err != nil {
		out.Close()
		return fmt.Errorf("writing report: %w", err)
	}
	return out.Close()
}

func renderText(w io.Writer, r *Report) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Document: %s\n", r.Document)
	fmt.Fprintf(bw, "BLAKE3: %s\n", r.Checksum)
	fmt.Fprintf(bw, "Run: %s\n", r.RunID)
	if r.Identity.Author != "" {
		fmt.Fprintf(bw, "Author: %s\n", r.Identity.Author)
	}
	bw.WriteString("\n")
	for _, f := range r.Findings {
		fmt.Fprintln(bw, f)
	}
	if len(r.Findings) > 0 {
		bw.WriteString("\n")
	}
	fmt.Fprintln(bw, r.Summary)
	return bw.Flush()
}

// htmlDocument builds the report page as a node tree so every value is
// escaped by html.Render.
func htmlDocument(r *Report) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	meta := element(atom.Table, nil,
		field("Document", r.Document),
		field("BLAKE3", r.Checksum),
		field("Run", r.RunID),
		field("Author", r.Identity.Author),
		field("Last modified by", r.Identity.LastModifiedBy),
		field("Tolerance", strconv.FormatFloat(r.Tolerance, 'g', -1, 64)),
	)

	findings := element(atom.Table, attrs("class", "findings"),
		headerRow("Severity", "Kind", "Message"),
	)
	for _, f := range r.Findings {
		tr := element(atom.Tr, attrs("class", strings.ToLower(string(f.Severity))))
		tr.AppendChild(element(atom.Td, nil, text(string(f.Severity))))
		tr.AppendChild(element(atom.Td, nil, text(string(f.Kind))))
		tr.AppendChild(element(atom.Td, nil, element(atom.Pre, nil, text(f.Message))))
		findings.AppendChild(tr)
	}

	root := element(atom.Html, attrs("lang", "en"),
		element(atom.Head, nil,
			element(atom.Meta, attrs("charset", "utf-8")),
			element(atom.Title, nil, text("validocx report")),
		),
		element(atom.Body, nil,
			element(atom.H1, nil, text("Validation report")),
			meta,
			element(atom.H2, nil, text("Findings")),
			findings,
			element(atom.P, attrs("class", "summary"), text(r.Summary.String())),
		),
	)
	doc.AppendChild(root)
	return doc
}

func element(a atom.Atom, attr []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attr}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func attrs(kv ...string) []html.Attribute {
	out := make([]html.Attribute, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return out
}

// field renders a name/value table row.
func field(name, value string) *html.Node {
	return element(atom.Tr, nil,
		element(atom.Th, nil, text(name)),
		element(atom.Td, nil, text(value)),
	)
}

func headerRow(names ...string) *html.Node {
	tr := element(atom.Tr, nil)
	for _, n := range names {
		tr.AppendChild(element(atom.Th, nil, text(n)))
	}
	return tr
}
