// Package xmldoc implements the ports.Element navigation port on top of a
// DOM-style XML parser.
package xmldoc

import (
	"github.com/beevik/etree"
	"go.trai.ch/zerr"
	"uniseq/internal/core/domain"
	"uniseq/internal/core/ports"
)

// Parser implements ports.DocumentParser using etree.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses record bytes into a navigable root element.
func (p *Parser) Parse(data []byte) (ports.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, zerr.Wrap(err, domain.ErrRecordParseFailed.Error())
	}
	root := doc.Root()
	if root == nil {
		return nil, zerr.With(domain.ErrRecordParseFailed, "reason", "document has no root element")
	}
	return &element{el: root}, nil
}

// element adapts an etree element to ports.Element.
type element struct {
	el *etree.Element
}

// SelectSingle returns the only child with the given tag.
func (e *element) SelectSingle(tag string) (ports.Element, error) {
	children := e.el.SelectElements(tag)
	switch len(children) {
	case 0:
		return nil, zerr.With(domain.ErrElementNotFound, "tag", tag)
	case 1:
		return &element{el: children[0]}, nil
	default:
		return nil, zerr.With(domain.ErrAmbiguousElement, "tag", tag)
	}
}

// SelectAll returns every child with the given tag in document order.
func (e *element) SelectAll(tag string) []ports.Element {
	children := e.el.SelectElements(tag)
	out := make([]ports.Element, 0, len(children))
	for _, child := range children {
		out = append(out, &element{el: child})
	}
	return out
}

// Attr returns the named attribute's value, or "" when absent.
func (e *element) Attr(name string) string {
	return e.el.SelectAttrValue(name, "")
}

// Text returns the element's text content.
func (e *element) Text() string {
	return e.el.Text()
}
