package extract

import "errors"

// Error kinds surfaced by Extract. Every failure wraps exactly one of these;
// callers classify with errors.Is.
var (
	// ErrInvalidArguments indicates a missing document or query string.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrParse indicates the HTML could not be parsed at all. Malformed
	// markup is not a parse failure; the parser recovers from it.
	ErrParse = errors.New("failed to parse HTML")

	// ErrQueryCompile indicates unparseable selector or XPath syntax.
	ErrQueryCompile = errors.New("failed to compile query")

	// ErrQueryEval indicates a compiled query could not be evaluated.
	ErrQueryEval = errors.New("failed to evaluate query")
)
