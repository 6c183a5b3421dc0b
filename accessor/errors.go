package accessor

import (
	"errors"
	"fmt"
)

var (
	// ErrStyleChainTooDeep is returned when a basedOn chain is cyclic or
	// longer than MaxStyleDepth. The document is malformed.
	ErrStyleChainTooDeep = errors.New("style chain too deep")

	// ErrAttributeUndefined is returned when a font attribute resolves to
	// nothing at every level of the style chain.
	ErrAttributeUndefined = errors.New("attribute undefined")
)

// UndefinedError reports an attribute that could not be resolved for a
// paragraph style.
type UndefinedError struct {
	Attribute string // "size" or "name"
	Style     string // style name of the paragraph
}

func (e *UndefinedError) Error() string {
	return fmt.Sprintf("font attribute %q of style %q is not defined", e.Attribute, e.Style)
}

func (e *UndefinedError) Unwrap() error {
	return ErrAttributeUndefined
}

// ChainError carries the style where a chain walk gave up.
type ChainError struct {
	Style string
	Depth int
}

func (e *ChainError) Error() string {
	return fmt.Sprintf("style chain too deep: %q after %d levels", e.Style, e.Depth)
}

func (e *ChainError) Unwrap() error {
	return ErrStyleChainTooDeep
}
