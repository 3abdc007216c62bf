// Package output provides formatters for the schema reference document.
// It is extendable and for now provides three formats: Markdown, JSON and a
// compact summary.
package output

import (
	"fmt"
	"strings"

	"schemadoc/internal/core"
)

// Format is an enum type representing the available output formats.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatSummary  Format = "summary"
)

// Formatter renders the reference document. doc is the Markdown document and
// c its structured catalog; each format uses whichever it needs.
type Formatter interface {
	FormatDocument(doc string, c *core.Catalog) (string, error)
}

// NewFormatter creates a new Formatter instance based on the given name.
// If no format is specified, defaults to Markdown.
func NewFormatter(name string) (Formatter, error) {
	format := Format(strings.ToLower(strings.TrimSpace(name)))
	switch format {
	case "", FormatMarkdown, "md":
		return markdownFormatter{}, nil
	case FormatJSON:
		return jsonFormatter{}, nil
	case FormatSummary:
		return summaryFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s; use 'markdown', 'json', or 'summary'", name)
	}
}

// IsMachineReadable reports whether output in the named format should be kept
// free of informational lines.
func IsMachineReadable(name string) bool {
	return Format(strings.ToLower(strings.TrimSpace(name))) == FormatJSON
}

type markdownFormatter struct{}

// FormatDocument returns the document followed by a single newline, the way a
// line-oriented print would emit it.
func (markdownFormatter) FormatDocument(doc string, _ *core.Catalog) (string, error) {
	return doc + "\n", nil
}
