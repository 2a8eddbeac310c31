package extract

// escapeJSON escapes a value for embedding between the quotes of a JSON
// string literal. Only `"`, `\`, newline, carriage return, and tab are
// rewritten; every other byte passes through unchanged. Control bytes below
// 0x20 other than the three above are deliberately left as-is: the compact
// output format is a wire contract and consumers compare it byte for byte.
func escapeJSON(s string) string {
	// Worst case every byte expands to two.
	out := make([]byte, 0, len(s)*2)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			out = append(out, '\\', '"')
		case '\\':
			out = append(out, '\\', '\\')
		case '\n':
			out = append(out, '\\', 'n')
		case '\r':
			out = append(out, '\\', 'r')
		case '\t':
			out = append(out, '\\', 't')
		default:
			out = append(out, c)
		}
	}
	return string(out)
}
