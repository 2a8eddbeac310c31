package extract

// defaultBufferSize is the initial capacity of a result buffer.
const defaultBufferSize = 4096

// resultBuffer accumulates the output JSON array incrementally. Capacity
// doubles whenever an append would overflow it, so repeated appends stay
// amortized O(1). Between appendItem calls the contents are always a prefix
// of a valid JSON array missing only the closing bracket.
type resultBuffer struct {
	buf   []byte
	items int
}

func newResultBuffer() *resultBuffer {
	b := &resultBuffer{buf: make([]byte, 0, defaultBufferSize)}
	b.buf = append(b.buf, '[')
	return b
}

// grow ensures room for n more bytes, preserving existing contents.
func (b *resultBuffer) grow(n int) {
	need := len(b.buf) + n
	if need <= cap(b.buf) {
		return
	}
	newCap := cap(b.buf) * 2
	for newCap < need {
		newCap *= 2
	}
	next := make([]byte, len(b.buf), newCap)
	copy(next, b.buf)
	b.buf = next
}

func (b *resultBuffer) appendString(s string) {
	b.grow(len(s))
	b.buf = append(b.buf, s...)
}

// appendItem writes one {"type":...,"content":...} object, comma-separated
// after the first. Both fields must already be escaped.
func (b *resultBuffer) appendItem(tag, content string) {
	if b.items > 0 {
		b.appendString(",")
	}
	b.appendString(`{"type":"`)
	b.appendString(tag)
	b.appendString(`","content":"`)
	b.appendString(content)
	b.appendString(`"}`)
	b.items++
}

// seal closes the array and returns the finished document. The buffer must
// not be used afterwards.
func (b *resultBuffer) seal() string {
	b.appendString("]")
	return string(b.buf)
}
