package ports

// Element is a node in a parsed record document. It exposes the four
// navigation operations the core needs; no further document model is
// reimplemented here.
type Element interface {
	// SelectSingle returns the only child element with the given tag.
	// It fails with domain.ErrElementNotFound when there is none and with
	// domain.ErrAmbiguousElement when there is more than one.
	SelectSingle(tag string) (Element, error)

	// SelectAll returns every child element with the given tag, in document
	// order. It returns an empty slice when there are none.
	SelectAll(tag string) []Element

	// Attr returns the value of the named attribute, or "" when absent.
	Attr(name string) string

	// Text returns the element's text content.
	Text() string
}

// DocumentParser parses raw record bytes into a navigable root element.
type DocumentParser interface {
	// Parse returns the document root, failing with
	// domain.ErrRecordParseFailed on malformed input.
	Parse(data []byte) (Element, error)
}
