// Package format provides file format detection for validocx inputs and
// outputs.
package format

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported file format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// DOCX indicates a Microsoft Word (.docx) document.
	DOCX
	// JSON indicates a JSON data file.
	JSON
	// YAML indicates a YAML data file.
	YAML
	// HTML indicates an HTML document.
	HTML
	// Text indicates a plain text file.
	Text
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case DOCX:
		return "DOCX"
	case JSON:
		return "JSON"
	case YAML:
		return "YAML"
	case HTML:
		return "HTML"
	case Text:
		return "Text"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case DOCX:
		return ".docx"
	case JSON:
		return ".json"
	case YAML:
		return ".yaml"
	case HTML:
		return ".html"
	case Text:
		return ".txt"
	default:
		return ""
	}
}

// IsData reports whether the format can hold a requirements document.
func (f Format) IsData() bool {
	return f == JSON || f == YAML
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".docx":
		return DOCX
	case ".json":
		return JSON
	case ".yaml", ".yml":
		return YAML
	case ".html", ".htm":
		return HTML
	case ".txt", ".log":
		return Text
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading bytes to determine format.
// ZIP archives return Unknown; use DetectFromReader to look inside them.
func DetectFromMagic(data []byte) Format {
	if isZIP(data) {
		return Unknown
	}

	if detectHTMLMagic(data) {
		return HTML
	}

	if detectJSONMagic(data) {
		return JSON
	}

	return Unknown
}

func isZIP(data []byte) bool {
	// PK\x03\x04
	return len(data) >= 4 && data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return false
	}

	// Check for common HTML signatures (case-insensitive for DOCTYPE)
	upper := strings.ToUpper(string(data))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XML declaration followed by html-like content could be XHTML
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper[:min(500, len(upper))], "<HTML") {
		return true
	}

	return false
}

// detectJSONMagic checks for a JSON object or array opener. Requirements
// documents are always objects, but arrays are accepted for completeness.
func detectJSONMagic(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n\xef\xbb\xbf")
	return len(data) > 0 && (data[0] == '{' || data[0] == '[')
}

// DetectFromReader inspects the content to determine format.
// This is more reliable than extension-based detection and tells a DOCX
// package apart from other ZIP archives.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 512)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	if isZIP(magic) {
		return detectZIPFormat(r, size)
	}

	return DetectFromMagic(magic), nil
}

// detectZIPFormat inspects a ZIP archive for WordprocessingML content.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	hasContentTypes := false
	hasWord := false
	for _, f := range zr.File {
		switch {
		case f.Name == "[Content_Types].xml":
			hasContentTypes = true
		case strings.HasPrefix(f.Name, "word/"):
			hasWord = true
		}
	}

	if hasContentTypes && hasWord {
		return DOCX, nil
	}
	return Unknown, nil
}
