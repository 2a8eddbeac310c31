package extract

import "golang.org/x/net/html"

// Engine compiles query strings for one query language. Implementations are
// stateless and safe for concurrent use.
type Engine interface {
	// Name identifies the engine ("css", "xpath").
	Name() string

	// Compile parses the query string. Bad syntax wraps ErrQueryCompile.
	Compile(query string) (CompiledQuery, error)
}

// CompiledQuery is a compiled query, evaluated against one document at a
// time. Evaluation returns matched nodes in the engine's defined order; both
// shipped engines use document order. An empty result is legal, not an error.
type CompiledQuery interface {
	Evaluate(doc *Document) ([]*html.Node, error)
}
