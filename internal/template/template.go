// =============================================================================
// PDF Report Generator - HTML Template Title Extraction
// =============================================================================
//
// The report tool accepts an HTML template for compatibility with existing
// workflows, but it is not an HTML renderer: the template is consulted only
// for the report title. The <title> element wins; an <h1> is accepted as a
// fallback. Everything else in the markup is ignored.
//
// =============================================================================

package template

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// ExtractTitle reads an HTML file and returns the text of its <title>
// element, or the first <h1> when no title is present. The empty string
// means the template offers no usable title; the caller should fall back
// to its configured default.
func ExtractTitle(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open template: %w", err)
	}
	defer file.Close()

	doc, err := html.Parse(file)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	if title := findText(doc, "title"); title != "" {
		return title, nil
	}
	return findText(doc, "h1"), nil
}

// findText returns the trimmed text content of the first element with the
// given tag, depth-first.
func findText(n *html.Node, tag string) string {
	if n.Type == html.ElementNode && n.Data == tag {
		return strings.TrimSpace(textContent(n))
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if text := findText(c, tag); text != "" {
			return text
		}
	}
	return ""
}

// textContent concatenates all text nodes beneath n.
func textContent(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		} else {
			b.WriteString(textContent(c))
		}
	}
	return b.String()
}
