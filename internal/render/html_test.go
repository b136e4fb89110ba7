package render

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDoc(t *testing.T, markdown string) *goquery.Document {
	t.Helper()

	html, err := BuildHTML(markdown, DefaultOptions())
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestBuildHTML(t *testing.T) {
	t.Run("Empty Markdown Rejected", func(t *testing.T) {
		_, err := BuildHTML("   \n ", DefaultOptions())
		assert.ErrorIs(t, err, ErrEmptyMarkdown)
	})

	t.Run("Code Block Becomes Pre", func(t *testing.T) {
		doc := buildDoc(t, "```python\nprint(1)\n```")
		pre := doc.Find("pre code")
		require.Equal(t, 1, pre.Length())
		assert.Contains(t, pre.Text(), "print(1)")
	})

	t.Run("Table Rendered", func(t *testing.T) {
		doc := buildDoc(t, "| a | b |\n|---|---|\n| 1 | 2 |")
		assert.Equal(t, 1, doc.Find("table").Length())
		assert.Equal(t, 2, doc.Find("th").Length())
	})

	t.Run("MathJax Script Present", func(t *testing.T) {
		doc := buildDoc(t, "公式 $E=mc^2$")
		found := false
		doc.Find("script").Each(func(_ int, s *goquery.Selection) {
			if src, ok := s.Attr("src"); ok && strings.Contains(src, "MathJax.js") {
				found = true
			}
		})
		assert.True(t, found)
	})

	t.Run("Width And Font Threaded From Options", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Width = 480
		opts.FontSize = 18

		html, err := BuildHTML("hello", opts)
		require.NoError(t, err)
		assert.Contains(t, html, "width: 480px")
		assert.Contains(t, html, "font-size: 18px")
	})

	t.Run("Zero Width Omits Width Style", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Width = 0

		html, err := BuildHTML("hello", opts)
		require.NoError(t, err)
		assert.NotContains(t, html, "width: 0px")
	})

	t.Run("Heading And Blockquote", func(t *testing.T) {
		doc := buildDoc(t, "# 标题\n\n> 引用内容")
		assert.Equal(t, 1, doc.Find("h1").Length())
		assert.Equal(t, 1, doc.Find("blockquote").Length())
	})
}

func TestFormatMarkdown(t *testing.T) {
	t.Run("Table Alignment Normalized", func(t *testing.T) {
		formatted, err := FormatMarkdown("| a | b |\n|---|---|\n| 1 | 2 |\n")
		require.NoError(t, err)
		assert.Contains(t, formatted, "|")
	})

	t.Run("Idempotent On Plain Text", func(t *testing.T) {
		once, err := FormatMarkdown("hello world\n")
		require.NoError(t, err)
		twice, err := FormatMarkdown(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	})
}
