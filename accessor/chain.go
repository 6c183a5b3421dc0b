package accessor

import "github.com/tsawler/validocx/docx"

// MaxStyleDepth bounds a basedOn chain walk.
const MaxStyleDepth = 32

// chain returns style followed by its base styles, nearest first, ending
// with the document defaults. A cycle or a chain longer than MaxStyleDepth
// fails with ErrStyleChainTooDeep.
func (a *Accessor) chain(style *docx.Style) ([]*docx.Style, error) {
	var levels []*docx.Style
	visited := make(map[*docx.Style]bool)
	for s := style; s != nil; s = s.BaseStyle {
		if visited[s] || len(levels) == MaxStyleDepth {
			return nil, &ChainError{Style: style.Name, Depth: len(levels)}
		}
		visited[s] = true
		levels = append(levels, s)
	}
	if a.doc.Styles != nil && a.doc.Styles.Defaults != nil {
		levels = append(levels, a.doc.Styles.Defaults)
	}
	return levels, nil
}
