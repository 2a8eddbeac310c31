package extract

import "github.com/microcosm-cc/bluemonday"

// Sanitizer strips scripts, inline event handlers, and other unsafe markup
// before parsing. Policies are safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer returns a sanitizer using bluemonday's UGC policy.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.UGCPolicy()}
}

// Clean returns the sanitized HTML.
func (s *Sanitizer) Clean(htmlStr string) string {
	return s.policy.Sanitize(htmlStr)
}
