package docx

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/antchfx/xmlquery"
)

// coreFields maps core.xml element local names to their destination.
// Prefixes (cp, dc, dcterms) vary between producers, so elements are matched
// by local name only.
var coreFields = []struct {
	local string
	set   func(*CoreProperties, string)
}{
	{"title", func(c *CoreProperties, v string) { c.Title = v }},
	{"subject", func(c *CoreProperties, v string) { c.Subject = v }},
	{"creator", func(c *CoreProperties, v string) { c.Author = v }},
	{"keywords", func(c *CoreProperties, v string) { c.Keywords = v }},
	{"lastModifiedBy", func(c *CoreProperties, v string) { c.LastModifiedBy = v }},
	{"revision", func(c *CoreProperties, v string) { c.Revision = v }},
}

// parseCore reads docProps/core.xml.
func parseCore(data []byte) (CoreProperties, error) {
	var core CoreProperties

	root, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return core, fmt.Errorf("parsing XML: %w", err)
	}

	for _, f := range coreFields {
		if v, ok := coreText(root, f.local); ok {
			f.set(&core, v)
		}
	}

	if core.Created, err = coreTime(root, "created"); err != nil {
		return core, err
	}
	if core.Modified, err = coreTime(root, "modified"); err != nil {
		return core, err
	}

	return core, nil
}

func coreText(root *xmlquery.Node, local string) (string, bool) {
	expr := fmt.Sprintf("/*[local-name()='coreProperties']/*[local-name()='%s']", local)
	node, err := xmlquery.Query(root, expr)
	if err != nil || node == nil {
		return "", false
	}
	return strings.TrimSpace(node.InnerText()), true
}

// coreTime parses a W3CDTF timestamp. An absent or empty element is the
// zero time.
func coreTime(root *xmlquery.Node, local string) (time.Time, error) {
	v, ok := coreText(root, local)
	if !ok || v == "" {
		return time.Time{}, nil
	}

	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid %s timestamp %q", local, v)
}
