package extract

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// CSSEngine matches CSS selectors (tag, .class, #id, [attr], combinators,
// comma groups) against the <body> subtree in document order. CSS has no
// notion of absolute paths, so fragment scoping matches what selector
// authors expect; use XPathEngine for /html/body/... addressing.
type CSSEngine struct{}

// NewCSSEngine creates a CSS selector engine.
func NewCSSEngine() *CSSEngine { return &CSSEngine{} }

// Name implements Engine.
func (e *CSSEngine) Name() string { return "css" }

// Compile parses the selector with cascadia, goquery's own compiler, so bad
// syntax surfaces as an error instead of a panic inside Find.
func (e *CSSEngine) Compile(query string) (CompiledQuery, error) {
	sel, err := cascadia.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryCompile, err)
	}
	return &cssQuery{sel: sel}, nil
}

type cssQuery struct {
	sel cascadia.Selector
}

// Evaluate collects matches under <body> in document order.
func (q *cssQuery) Evaluate(doc *Document) ([]*html.Node, error) {
	root := goquery.NewDocumentFromNode(doc.Body())

	var nodes []*html.Node
	root.FindMatcher(q.sel).Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, s.Get(0))
	})
	return nodes, nil
}
