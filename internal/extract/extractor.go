package extract

import (
	"go.uber.org/zap"
)

// Extractor runs the extraction pipeline: parse, compile, evaluate,
// serialize. It carries its engine and policies as explicit state so callers
// can run differently-configured extractors side by side; nothing is global
// and nothing persists between calls.
type Extractor struct {
	engine    Engine
	sanitizer *Sanitizer
	logger    *zap.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSanitizer enables HTML sanitization before parsing.
func WithSanitizer(s *Sanitizer) Option {
	return func(e *Extractor) { e.sanitizer = s }
}

// WithLogger attaches a logger; a no-op logger is used otherwise.
func WithLogger(l *zap.Logger) Option {
	return func(e *Extractor) { e.logger = l }
}

// New creates an Extractor backed by the given query engine.
func New(engine Engine, opts ...Option) *Extractor {
	e := &Extractor{engine: engine, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Engine returns the engine this extractor queries with.
func (e *Extractor) Engine() Engine { return e.engine }

// Extract parses htmlStr, evaluates query against it, and returns a compact
// JSON array with one {"type":tag,"content":text} object per matched node.
// Matched nodes whose text content is empty or all-whitespace contribute
// nothing, not even an empty object. Item order follows match order. An
// empty match set returns "[]".
//
// On failure the error wraps one of ErrInvalidArguments, ErrParse,
// ErrQueryCompile, or ErrQueryEval, and no partial JSON is returned.
func (e *Extractor) Extract(htmlStr, query string) (string, error) {
	if htmlStr == "" || query == "" {
		return "", ErrInvalidArguments
	}

	if e.sanitizer != nil {
		htmlStr = e.sanitizer.Clean(htmlStr)
	}

	doc, err := ParseDocument(htmlStr)
	if err != nil {
		return "", err
	}

	compiled, err := e.engine.Compile(query)
	if err != nil {
		return "", err
	}

	nodes, err := compiled.Evaluate(doc)
	if err != nil {
		return "", err
	}

	buf := newResultBuffer()
	for _, n := range nodes {
		text := TextContent(n)
		if text == "" {
			continue
		}
		cleaned := NormalizeText(text)
		if cleaned == "" {
			continue
		}
		buf.appendItem(escapeJSON(NodeType(n)), escapeJSON(cleaned))
	}

	e.logger.Debug("extraction complete",
		zap.String("engine", e.engine.Name()),
		zap.Int("matched", len(nodes)),
		zap.Int("emitted", buf.items),
	)

	return buf.seal(), nil
}
