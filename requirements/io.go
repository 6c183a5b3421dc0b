package requirements

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/validocx/format"
)

// ErrUnsupportedFormat is returned for files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("Unsupported data format. Only json, yaml data formats are allowed")

// dataFormat picks the codec from the file extension.
func dataFormat(path string) (format.Format, error) {
	f := format.Detect(path)
	if !f.IsData() {
		return format.Unknown, ErrUnsupportedFormat
	}
	return f, nil
}

// Read loads a YAML or JSON file into a generic payload. The extension is
// checked before the file is opened.
func Read(path string) (any, error) {
	f, err := dataFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &format.FileNotFoundError{Path: path}
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return Unmarshal(data, f)
}

// Load reads path and decodes it into Requirements.
func Load(path string) (*Requirements, error) {
	payload, err := Read(path)
	if err != nil {
		return nil, err
	}
	return Decode(payload)
}

// Unmarshal parses data in the given format. Numbers come back as int when
// they are integral in the source and float64 otherwise, whichever codec
// is used.
func Unmarshal(data []byte, f format.Format) (any, error) {
	var v any
	switch f {
	case format.JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
	case format.YAML:
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	default:
		return nil, ErrUnsupportedFormat
	}
	return normalize(v)
}

// normalize converts codec specific values into plain Go values.
func normalize(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, x := range t {
			n, err := normalize(x)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, x := range t {
			n, err := normalize(x)
			if err != nil {
				return nil, err
			}
			out[fmt.Sprint(k)] = n
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, x := range t {
			n, err := normalize(x)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return int(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", t, err)
		}
		return f, nil
	case int64:
		return int(t), nil
	case uint64:
		return int(t), nil
	default:
		return v, nil
	}
}

// Marshal renders v in the given format: JSON indented by four spaces,
// YAML in block style.
func Marshal(v any, f format.Format) ([]byte, error) {
	switch f {
	case format.JSON:
		return json.MarshalIndent(v, "", "    ")
	case format.YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

// Write stores v at path, choosing the format from the extension.
func Write(path string, v any) error {
	f, err := dataFormat(path)
	if err != nil {
		return err
	}

	data, err := Marshal(v, f)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", f, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
