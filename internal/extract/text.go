package extract

// NormalizeText collapses every maximal run of ASCII whitespace (space, tab,
// newline, carriage return) into a single space and strips leading and
// trailing whitespace. Empty or all-whitespace input yields "". The output is
// never longer than the input, and normalizing an already-normalized string
// returns it unchanged.
func NormalizeText(s string) string {
	out := make([]byte, 0, len(s))
	pendingSpace := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case ' ', '\t', '\n', '\r':
			// Deferred until the next non-space byte so trailing runs vanish.
			pendingSpace = len(out) > 0
		default:
			if pendingSpace {
				out = append(out, ' ')
				pendingSpace = false
			}
			out = append(out, c)
		}
	}
	return string(out)
}
