// Package extract turns HTML documents into structured JSON using CSS
// selectors or XPath expressions.
//
// The pipeline is single-pass and synchronous: parse the document, compile
// the query, evaluate it, then serialize one compact JSON object per matched
// node with non-empty text. Query languages are pluggable behind the Engine
// interface:
//   - CSSEngine: cascadia/goquery selectors, scoped to <body>
//   - XPathEngine: antchfx XPath, scoped to the whole document
//
// Built on specialized libraries:
//   - golang.org/x/net/html: tolerant HTML parsing
//   - chardet: character encoding detection
//   - goquery + cascadia: CSS selector matching
//   - htmlquery + xpath: XPath evaluation
//   - bluemonday: optional pre-extraction sanitization
//
// Example Usage:
//
//	ex := extract.New(extract.NewCSSEngine())
//	out, err := ex.Extract(`<h1>Hello   World</h1>`, "h1")
//	// out == `[{"type":"h1","content":"Hello World"}]`
package extract
