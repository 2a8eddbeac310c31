package extract

import (
	"fmt"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html"
)

// XPathEngine evaluates XPath expressions against the whole document, so
// absolute paths like /html/body/div resolve. Node-sets come back in
// document order per the axis evaluation rules.
type XPathEngine struct{}

// NewXPathEngine creates an XPath query engine.
func NewXPathEngine() *XPathEngine { return &XPathEngine{} }

// Name implements Engine.
func (e *XPathEngine) Name() string { return "xpath" }

// Compile parses the expression. Bad syntax wraps ErrQueryCompile.
func (e *XPathEngine) Compile(query string) (CompiledQuery, error) {
	expr, err := xpath.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryCompile, err)
	}
	return &xpathQuery{expr: expr}, nil
}

type xpathQuery struct {
	expr *xpath.Expr
}

// Evaluate selects nodes from the document root.
func (q *xpathQuery) Evaluate(doc *Document) (nodes []*html.Node, err error) {
	// The xpath package panics when an expression evaluates to something
	// other than a node-set, e.g. count(//p). Surface that as an evaluation
	// error rather than crashing the call.
	defer func() {
		if r := recover(); r != nil {
			nodes = nil
			err = fmt.Errorf("%w: %v", ErrQueryEval, r)
		}
	}()

	return htmlquery.QuerySelectorAll(doc.Root, q.expr), nil
}
