package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/net/html/charset"
)

// MaxHTMLSize limits HTML input to 10MB to prevent memory exhaustion.
const MaxHTMLSize = 10 * 1024 * 1024

// Document is one parsed HTML tree. Built per extraction call, never shared
// or cached across calls.
type Document struct {
	Root *html.Node
	body *html.Node
}

// ParseDocument parses HTML into a navigable tree with automatic charset
// detection. Parsing is permissive the way browsers are: unclosed tags,
// implicit <html>/<body>, and stray text all recover. It fails only on
// empty or oversized input or an internal parser error.
func ParseDocument(htmlStr string) (*Document, error) {
	if err := validateHTML(htmlStr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	root, err := parseWithCharset([]byte(htmlStr))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return &Document{Root: root, body: findBody(root)}, nil
}

// Body returns the document's <body> element, falling back to the root when
// the parser did not synthesize one.
func (d *Document) Body() *html.Node {
	if d.body != nil {
		return d.body
	}
	return d.Root
}

func validateHTML(htmlStr string) error {
	if len(htmlStr) == 0 {
		return fmt.Errorf("html content required")
	}
	if len(htmlStr) > MaxHTMLSize {
		return fmt.Errorf("html exceeds maximum size of %d bytes", MaxHTMLSize)
	}
	return nil
}

func parseWithCharset(data []byte) (*html.Node, error) {
	detected := detectCharset(data)

	utf8Reader, err := charset.NewReader(bytes.NewReader(data), detected)
	if err != nil {
		// Fallback to direct parsing
		return html.Parse(bytes.NewReader(data))
	}
	return html.Parse(utf8Reader)
}

// detectCharset detects the character encoding of raw HTML bytes.
func detectCharset(data []byte) string {
	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err != nil || result == nil {
		return "utf-8"
	}
	return strings.ToLower(result.Charset)
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}

// TextContent concatenates all descendant text of n in document order,
// without any normalization.
func TextContent(n *html.Node) string {
	var buf bytes.Buffer
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}

// NodeType reports the element's local tag name, or "text" for text and
// other non-element nodes.
func NodeType(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data != "" {
		return n.Data
	}
	return "text"
}
