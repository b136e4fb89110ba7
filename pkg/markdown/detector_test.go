package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectorScore(t *testing.T) {
	detector := NewDetector()

	t.Run("Table Weight", func(t *testing.T) {
		// 表格权重为 3，一个表格正好达到分数 3
		text := "| a | b |\n|---|---|\n| 1 | 2 |"
		assert.Equal(t, 3, detector.Score(text))
	})

	t.Run("Code Block Weight", func(t *testing.T) {
		text := "```python\nprint(1)\n```"
		assert.Equal(t, 2, detector.Score(text))
	})

	t.Run("Monotonic Scoring", func(t *testing.T) {
		// 追加一个代码块不会让分数降低
		text := "some prose here"
		withFence := text + "\n```go\nfmt.Println(1)\n```"
		assert.GreaterOrEqual(t, detector.Score(withFence), detector.Score(text))
	})

	t.Run("Mixed Content", func(t *testing.T) {
		text := "# 标题\n## 子标题\n行内公式 $a^2+b^2=c^2$\n$$\\int_0^1 x dx$$"
		// 多标题 1 + 行内公式 1 + 块级公式 3
		assert.GreaterOrEqual(t, detector.Score(text), 5)
	})
}

func TestNeedsRendering(t *testing.T) {
	detector := NewDetector()

	t.Run("Empty Text", func(t *testing.T) {
		assert.False(t, detector.NeedsRendering("", DefaultMinComplexityScore))
		assert.False(t, detector.NeedsRendering("   \n\t  ", DefaultMinComplexityScore))
	})

	t.Run("Simple Text", func(t *testing.T) {
		text := "这是一段简单文本，**粗体**和*斜体*都能正常显示。"
		assert.False(t, detector.NeedsRendering(text, DefaultMinComplexityScore))
	})

	t.Run("Table Reaches Threshold", func(t *testing.T) {
		text := "| a | b |\n|---|---|\n| 1 | 2 |"
		assert.True(t, detector.NeedsRendering(text, DefaultMinComplexityScore))
	})

	t.Run("Threshold Boundary", func(t *testing.T) {
		// 一个表格得 3 分：阈值 3 命中，阈值 4 不命中
		text := "| a | b |\n|---|---|\n| 1 | 2 |"
		assert.True(t, detector.NeedsRendering(text, 3))
		assert.False(t, detector.NeedsRendering(text, 4))
	})

	t.Run("Link Veto Overrides Threshold", func(t *testing.T) {
		// 链接否决优先于一切打分，阈值为 0 也不转换
		text := "see https://example.com/path for details"
		assert.False(t, detector.NeedsRendering(text, 0))

		text = "[项目主页](https://github.com/Daily-AC/SmartMd2Img)"
		assert.False(t, detector.NeedsRendering(text, 0))
	})

	t.Run("Long Link Message Not Vetoed", func(t *testing.T) {
		// 超过 200 字符且链接占比不高的消息不走否决路径
		prose := strings.Repeat("这是一段很长的说明文字。", 30)
		text := prose + "\nhttps://example.com\n" + prose
		// 没有复杂模式也没有超行，仍然不需要渲染
		assert.False(t, detector.NeedsRendering(text, DefaultMinComplexityScore))
	})

	t.Run("Many Lines", func(t *testing.T) {
		text := strings.TrimSpace(strings.Repeat("一行文字\n", 16))
		assert.True(t, detector.NeedsRendering(text, DefaultMinComplexityScore))
	})

	t.Run("Long Lines By Display Width", func(t *testing.T) {
		// 41 个 CJK 字符显示宽度为 82，超过 80 列
		wide := strings.Repeat("宽", 41)
		text := wide + "\n" + wide + "\n" + wide + "\n" + wide
		assert.True(t, detector.NeedsRendering(text, DefaultMinComplexityScore))

		// 只有 3 行超宽不触发
		text = wide + "\n" + wide + "\n" + wide
		assert.False(t, detector.NeedsRendering(text, DefaultMinComplexityScore))
	})

	t.Run("Code Example Converts", func(t *testing.T) {
		text := "这是一个代码示例：\n```python\ndef hello():\n    print(\"Hello World\")\n    return True\n```\n行内公式：$E = mc^2$"
		assert.True(t, detector.NeedsRendering(text, DefaultMinComplexityScore))
	})
}
