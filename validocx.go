// Package validocx checks the layout and typography of .docx documents
// against a requirements file.
//
// Basic usage:
//
//	rep, err := validocx.Open("thesis.docx").Validate("requirements.yaml")
//	if err != nil {
//	    // handle error
//	}
//	for _, f := range rep.Findings {
//	    fmt.Println(f)
//	}
//	fmt.Println(rep.Summary)
//
// With options:
//
//	rep, err := validocx.Open("thesis.docx").
//	    Tolerance(0.005).
//	    Logger(log).
//	    Validate("requirements.json")
//
// The validator, accessor and requirements packages are available for
// finer control.
package validocx

import (
	"github.com/tsawler/validocx/docx"
)

// Open returns a Checker for the .docx file at filename. The file is read
// when the first terminal method such as Validate is called; later calls on
// this Checker or any Checker derived from it reuse the parsed document.
//
// Example:
//
//	rep, err := validocx.Open("thesis.docx").Validate("requirements.yaml")
func Open(filename string) *Checker {
	return &Checker{
		src:     &source{filename: filename},
		options: defaultOptions(),
	}
}

// FromDocument returns a Checker for an already parsed document. Reports
// built from it carry no checksum.
func FromDocument(doc *docx.Document) *Checker {
	src := &source{doc: doc}
	src.once.Do(func() {})
	return &Checker{
		src:     src,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	id := validocx.Must(validocx.Open("thesis.docx").Identity())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
