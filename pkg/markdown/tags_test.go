package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitExplicitTags(t *testing.T) {
	t.Run("Single Tag", func(t *testing.T) {
		parts := SplitExplicitTags("<md># 标题\n内容</md>")
		require.Len(t, parts, 1)
		assert.True(t, parts[0].Explicit)
		assert.Equal(t, "# 标题\n内容", parts[0].Content)
	})

	t.Run("Tag With Surrounding Text", func(t *testing.T) {
		parts := SplitExplicitTags("前面的话 <md>```go\ncode\n```</md> 后面的话")
		require.Len(t, parts, 3)
		assert.False(t, parts[0].Explicit)
		assert.Equal(t, "前面的话", parts[0].Content)
		assert.True(t, parts[1].Explicit)
		assert.Equal(t, "```go\ncode\n```", parts[1].Content)
		assert.False(t, parts[2].Explicit)
		assert.Equal(t, "后面的话", parts[2].Content)
	})

	t.Run("Unterminated Tag Stays Literal", func(t *testing.T) {
		// 不配对的开标签不是错误，按普通文本原样保留
		parts := SplitExplicitTags("<md>unterminated")
		require.Len(t, parts, 1)
		assert.False(t, parts[0].Explicit)
		assert.Equal(t, "<md>unterminated", parts[0].Content)
	})

	t.Run("Multiple Tags", func(t *testing.T) {
		parts := SplitExplicitTags("<md>a</md>中间<md>b</md>")
		require.Len(t, parts, 3)
		assert.True(t, parts[0].Explicit)
		assert.False(t, parts[1].Explicit)
		assert.True(t, parts[2].Explicit)
	})

	t.Run("Empty Tag Is Dropped", func(t *testing.T) {
		parts := SplitExplicitTags("before <md>  </md> after")
		require.Len(t, parts, 2)
		assert.Equal(t, "before", parts[0].Content)
		assert.Equal(t, "after", parts[1].Content)
	})

	t.Run("Case Sensitive", func(t *testing.T) {
		// 标签区分大小写，<MD> 不是保留标签
		parts := SplitExplicitTags("<MD>not a tag</MD>")
		require.Len(t, parts, 1)
		assert.False(t, parts[0].Explicit)
	})

	t.Run("Plain Text Only", func(t *testing.T) {
		parts := SplitExplicitTags("没有任何标签的普通文本")
		require.Len(t, parts, 1)
		assert.False(t, parts[0].Explicit)
	})
}
