package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultBufferEmpty(t *testing.T) {
	b := newResultBuffer()
	assert.Equal(t, "[]", b.seal())
}

func TestResultBufferSingleItem(t *testing.T) {
	b := newResultBuffer()
	b.appendItem("h1", "Hello World")
	assert.Equal(t, `[{"type":"h1","content":"Hello World"}]`, b.seal())
}

func TestResultBufferCommaDiscipline(t *testing.T) {
	b := newResultBuffer()
	b.appendItem("h1", "one")
	b.appendItem("p", "two")
	b.appendItem("p", "three")
	out := b.seal()
	assert.Equal(t, `[{"type":"h1","content":"one"},{"type":"p","content":"two"},{"type":"p","content":"three"}]`, out)
	assert.NotContains(t, out, ",]")
	assert.NotContains(t, out, "[,")
}

func TestResultBufferValidPrefixInvariant(t *testing.T) {
	b := newResultBuffer()
	for i := 0; i < 10; i++ {
		b.appendItem("p", "item")
		// Contents plus a closing bracket must always be a valid array.
		assert.True(t, strings.HasPrefix(string(b.buf), "["))
		assert.False(t, strings.HasSuffix(string(b.buf), ","))
	}
}

func TestResultBufferGrowthPreservesContent(t *testing.T) {
	b := newResultBuffer()
	long := strings.Repeat("x", 1000)
	for i := 0; i < 20; i++ { // forces several doublings past 4096
		b.appendItem("div", long)
	}
	out := b.seal()
	assert.Equal(t, 20, strings.Count(out, long))
	assert.True(t, strings.HasPrefix(out, `[{"type":"div","content":"`))
	assert.True(t, strings.HasSuffix(out, `"}]`))
	assert.GreaterOrEqual(t, cap(b.buf), len(b.buf))
}

func TestResultBufferLargeSingleAppend(t *testing.T) {
	b := newResultBuffer()
	// A single append bigger than several doublings of the initial capacity.
	huge := strings.Repeat("y", defaultBufferSize*5)
	b.appendItem("pre", huge)
	out := b.seal()
	assert.Contains(t, out, huge)
}
