// Package requirements defines the shape of a requirements document, its
// typed model and how it is read from and written to YAML or JSON.
package requirements

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tsawler/validocx/accessor"
	"github.com/tsawler/validocx/units"
)

// ErrSchemaViolation is returned when a payload does not match the
// requirements schema.
var ErrSchemaViolation = errors.New("schema violation")

// SchemaError describes the first place a payload departs from the schema.
type SchemaError struct {
	Path    string // e.g. styles.Title.font.unit
	Message string
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return "invalid requirements: " + e.Message
	}
	return fmt.Sprintf("invalid requirements at %s: %s", e.Path, e.Message)
}

func (e *SchemaError) Unwrap() error {
	return ErrSchemaViolation
}

// SchemaURL identifies the requirements schema document.
const SchemaURL = "https://github.com/tsawler/validocx/requirements.schema.json"

const draft2020 = "https://json-schema.org/draft/2020-12/schema"

// Schema is a JSON Schema document and its compiled form.
type Schema struct {
	url      string
	doc      map[string]any
	compiled func() (*jsonschema.Schema, error)
}

func newSchema(url string, doc map[string]any) *Schema {
	s := &Schema{url: url, doc: doc}
	s.compiled = sync.OnceValues(s.compile)
	return s
}

// RequirementsSchema is the schema every requirements payload must match.
// Attribute names come from the accessor vocabularies.
var RequirementsSchema = newSchema(SchemaURL, requirementsDocument())

func requirementsDocument() map[string]any {
	section := block(attributes(accessor.SectionAttributeNames(), "number"))

	font := block(map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": []any{"number", "string"}},
		"uniqueItems": true,
	})
	paragraph := block(attributes(accessor.ParagraphAttributeNames(), "number", "boolean"))

	style := object(map[string]any{
		"font":      font,
		"paragraph": paragraph,
	}, "font", "paragraph")

	doc := object(map[string]any{
		"sections": map[string]any{"type": "array", "items": section},
		"styles":   map[string]any{"type": "object", "additionalProperties": style},
	}, "sections", "styles")
	doc["$schema"] = draft2020
	doc["$id"] = SchemaURL
	doc["title"] = "validocx requirements"
	return doc
}

// object is a closed object schema.
func object(properties map[string]any, required ...string) map[string]any {
	req := make([]any, len(required))
	for i, r := range required {
		req[i] = r
	}
	return map[string]any{
		"type":                 "object",
		"properties":           properties,
		"required":             req,
		"additionalProperties": false,
	}
}

// block is a {unit, attributes} requirement block.
func block(attrs map[string]any) map[string]any {
	names := units.Names()
	enum := make([]any, len(names))
	for i, n := range names {
		enum[i] = n
	}
	return object(map[string]any{
		"unit":       map[string]any{"type": "string", "enum": enum},
		"attributes": attrs,
	}, "unit", "attributes")
}

// attributes is an object whose optional keys are names, each of one of
// types.
func attributes(names []string, types ...string) map[string]any {
	var t any = types[0]
	if len(types) > 1 {
		list := make([]any, len(types))
		for i, s := range types {
			list[i] = s
		}
		t = list
	}

	props := make(map[string]any, len(names))
	for _, name := range names {
		props[name] = map[string]any{"type": t}
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
}

// JSON returns the schema document indented by two spaces.
func (s *Schema) JSON() ([]byte, error) {
	return json.MarshalIndent(s.doc, "", "  ")
}

func (s *Schema) compile() (*jsonschema.Schema, error) {
	data, err := json.Marshal(s.doc)
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(s.url, doc); err != nil {
		return nil, err
	}
	return c.Compile(s.url)
}

var printer = message.NewPrinter(language.English)

// Check validates payload against the schema. Payloads are the generic
// values produced by Unmarshal: map[string]any, []any, string, bool, int and
// float64.
func (s *Schema) Check(payload any) error {
	sch, err := s.compiled()
	if err != nil {
		return fmt.Errorf("compiling requirements schema: %w", err)
	}

	err = sch.Validate(payload)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &SchemaError{Message: err.Error()}
	}
	leaf := firstLeaf(ve)
	return &SchemaError{
		Path:    instancePath(payload, leaf.InstanceLocation),
		Message: leaf.ErrorKind.LocalizedString(printer),
	}
}

// firstLeaf returns the innermost cause with the smallest instance
// location, so the reported violation does not depend on map order.
func firstLeaf(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	var leaves []*jsonschema.ValidationError
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			leaves = append(leaves, e)
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)

	sort.SliceStable(leaves, func(i, j int) bool {
		a, b := strings.Join(leaves[i].InstanceLocation, "/"), strings.Join(leaves[j].InstanceLocation, "/")
		if a != b {
			return a < b
		}
		return leaves[i].ErrorKind.LocalizedString(printer) < leaves[j].ErrorKind.LocalizedString(printer)
	})
	return leaves[0]
}

// instancePath renders a location as styles.Title.font.attributes[0].
// Tokens that index an array in payload are written in brackets.
func instancePath(payload any, location []string) string {
	var b strings.Builder
	node := payload
	for _, tok := range location {
		switch n := node.(type) {
		case []any:
			fmt.Fprintf(&b, "[%s]", tok)
			if i, err := strconv.Atoi(tok); err == nil && i >= 0 && i < len(n) {
				node = n[i]
			} else {
				node = nil
			}
		case map[string]any:
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(tok)
			node = n[tok]
		default:
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(tok)
			node = nil
		}
	}
	return b.String()
}
