package extract

import (
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHTML = `
<!DOCTYPE html>
<html>
<head><title>Sample</title></head>
<body>
	<h1>Hello   World</h1>
	<p>  </p>
	<p>First   paragraph
	spans lines</p>
	<div class="quote">He said "use \ with care"</div>
	<ul>
		<li>one</li>
		<li>two</li>
	</ul>
</body>
</html>
`

type item struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

func decodeItems(t *testing.T, out string) []item {
	t.Helper()
	var items []item
	require.NoError(t, sonic.Unmarshal([]byte(out), &items))
	return items
}

func TestExtractHeadingAndEmptyParagraph(t *testing.T) {
	ex := New(NewCSSEngine())
	out, err := ex.Extract(`<h1>Hello   World</h1><p>  </p>`, "h1, p")
	require.NoError(t, err)
	// The whitespace-only <p> is dropped; internal whitespace collapses.
	assert.Equal(t, `[{"type":"h1","content":"Hello World"}]`, out)
}

func TestExtractZeroMatches(t *testing.T) {
	ex := New(NewCSSEngine())
	out, err := ex.Extract(sampleHTML, "article")
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}

func TestExtractOrderPreserved(t *testing.T) {
	ex := New(NewCSSEngine())
	out, err := ex.Extract(sampleHTML, "li")
	require.NoError(t, err)

	items := decodeItems(t, out)
	require.Len(t, items, 2)
	assert.Equal(t, "one", items[0].Content)
	assert.Equal(t, "two", items[1].Content)
}

func TestExtractOutputIsValidJSON(t *testing.T) {
	ex := New(NewCSSEngine())
	out, err := ex.Extract(sampleHTML, "h1, p, div, li")
	require.NoError(t, err)

	items := decodeItems(t, out)
	require.NotEmpty(t, items)
	for _, it := range items {
		assert.NotEmpty(t, it.Type)
		assert.NotEmpty(t, it.Content)
	}
}

func TestExtractEscapesContent(t *testing.T) {
	ex := New(NewCSSEngine())
	out, err := ex.Extract(sampleHTML, ".quote")
	require.NoError(t, err)

	assert.Contains(t, out, `\"use \\ with care\"`)

	items := decodeItems(t, out)
	require.Len(t, items, 1)
	assert.Equal(t, `He said "use \ with care"`, items[0].Content)
}

func TestExtractMalformedHTMLRecovers(t *testing.T) {
	ex := New(NewCSSEngine())
	out, err := ex.Extract(`<div><span>text</div>`, "span")
	require.NoError(t, err)
	assert.Equal(t, `[{"type":"span","content":"text"}]`, out)
}

func TestExtractInvalidArguments(t *testing.T) {
	ex := New(NewCSSEngine())

	_, err := ex.Extract("", "h1")
	assert.ErrorIs(t, err, ErrInvalidArguments)

	_, err = ex.Extract("<p>x</p>", "")
	assert.ErrorIs(t, err, ErrInvalidArguments)
}

func TestExtractBadSelector(t *testing.T) {
	ex := New(NewCSSEngine())
	out, err := ex.Extract("<p>x</p>", "p[")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQueryCompile)
	assert.Empty(t, out)
}

func TestExtractRepeatedCallsIndependent(t *testing.T) {
	// Nothing leaks between calls: same extractor, alternating success and
	// failure, always the same results.
	ex := New(NewCSSEngine())
	for i := 0; i < 50; i++ {
		out, err := ex.Extract(`<h1>Hi</h1>`, "h1")
		require.NoError(t, err)
		assert.Equal(t, `[{"type":"h1","content":"Hi"}]`, out)

		_, err = ex.Extract(`<h1>Hi</h1>`, "h1[")
		assert.ErrorIs(t, err, ErrQueryCompile)
	}
}

func TestExtractWithXPathEngine(t *testing.T) {
	ex := New(NewXPathEngine())
	out, err := ex.Extract(sampleHTML, "//h1 | //li")
	require.NoError(t, err)

	items := decodeItems(t, out)
	require.Len(t, items, 3)
	assert.Equal(t, item{Type: "h1", Content: "Hello World"}, items[0])
	assert.Equal(t, item{Type: "li", Content: "one"}, items[1])
	assert.Equal(t, item{Type: "li", Content: "two"}, items[2])
}

func TestExtractXPathTextNodes(t *testing.T) {
	ex := New(NewXPathEngine())
	out, err := ex.Extract(`<p>hello</p>`, "//p/text()")
	require.NoError(t, err)
	assert.Equal(t, `[{"type":"text","content":"hello"}]`, out)
}

func TestExtractWithSanitizer(t *testing.T) {
	ex := New(NewCSSEngine(), WithSanitizer(NewSanitizer()))
	out, err := ex.Extract(`<p>keep</p><script>alert("x")</script>`, "p, script")
	require.NoError(t, err)
	assert.Equal(t, `[{"type":"p","content":"keep"}]`, out)
	assert.NotContains(t, out, "alert")
}

func TestExtractLargeResultGrowsBuffer(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<ul>")
	for i := 0; i < 500; i++ {
		sb.WriteString("<li>")
		sb.WriteString(strings.Repeat("z", 100))
		sb.WriteString("</li>")
	}
	sb.WriteString("</ul>")

	ex := New(NewCSSEngine())
	out, err := ex.Extract(sb.String(), "li")
	require.NoError(t, err)

	items := decodeItems(t, out)
	assert.Len(t, items, 500)
}
