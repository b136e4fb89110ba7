package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentText(t *testing.T) {
	t.Run("Code Block With Surrounding Text", func(t *testing.T) {
		text := "check ```python\nprint(1)\n``` done"
		segments := SegmentText(text, MergeBlocks(ExtractCode(text)))
		require.Len(t, segments, 3)

		assert.Equal(t, SegmentPlainText, segments[0].Kind)
		assert.Equal(t, "check", segments[0].Text)

		assert.Equal(t, SegmentCode, segments[1].Kind)
		assert.Equal(t, "python", segments[1].Language)
		assert.Equal(t, "print(1)", segments[1].Text)

		assert.Equal(t, SegmentPlainText, segments[2].Kind)
		assert.Equal(t, "done", segments[2].Text)
	})

	t.Run("Reconstruction", func(t *testing.T) {
		// 所有片段的 Raw 依次拼接必须还原原文
		text := "开头 ```go\nfmt.Println(1)\n``` 中间 $E=mc^2$ 结尾"
		code := ExtractCode(text)
		math := ExtractMathExcluding(text, code)
		segments := SegmentText(text, MergeBlocks(code, math))

		var sb strings.Builder
		for _, seg := range segments {
			sb.WriteString(seg.Raw)
		}
		assert.Equal(t, text, sb.String())
	})

	t.Run("Adjacent Blocks Produce No Empty Segment", func(t *testing.T) {
		text := "```go\nx\n```$$y$$"
		code := ExtractCode(text)
		math := ExtractMathExcluding(text, code)
		segments := SegmentText(text, MergeBlocks(code, math))

		require.Len(t, segments, 2)
		assert.Equal(t, SegmentCode, segments[0].Kind)
		assert.Equal(t, SegmentMath, segments[1].Kind)
	})

	t.Run("Whitespace Only Gap Is Dropped", func(t *testing.T) {
		text := "```go\nx\n```  \n\n  $$y$$"
		code := ExtractCode(text)
		math := ExtractMathExcluding(text, code)
		segments := SegmentText(text, MergeBlocks(code, math))

		require.Len(t, segments, 2)
		assert.Equal(t, SegmentCode, segments[0].Kind)
		assert.Equal(t, SegmentMath, segments[1].Kind)
	})

	t.Run("No Blocks Yields Single Plain Segment", func(t *testing.T) {
		text := "  普通文本而已  "
		segments := SegmentText(text, nil)
		require.Len(t, segments, 1)
		assert.Equal(t, SegmentPlainText, segments[0].Kind)
		assert.Equal(t, "普通文本而已", segments[0].Text)
		assert.Equal(t, text, segments[0].Raw)
	})

	t.Run("Math Kind Recorded", func(t *testing.T) {
		text := "行内 $a$ 和块级\n$$b$$"
		math := ExtractMath(text)
		segments := SegmentText(text, MergeBlocks(nil, math))

		var kinds []BlockKind
		for _, seg := range segments {
			if seg.Kind == SegmentMath {
				kinds = append(kinds, seg.MathKind)
			}
		}
		assert.Equal(t, []BlockKind{BlockMathInline, BlockMathBlock}, kinds)
	})
}

func TestMergeBlocks(t *testing.T) {
	t.Run("Sorted By Start", func(t *testing.T) {
		a := []ExtractedBlock{{Kind: BlockMathInline, Start: 10, End: 15}}
		b := []ExtractedBlock{{Kind: BlockCode, Start: 0, End: 5}}
		merged := MergeBlocks(a, b)
		require.Len(t, merged, 2)
		assert.Equal(t, 0, merged[0].Start)
		assert.Equal(t, 10, merged[1].Start)
	})

	t.Run("Code Before Math On Tie", func(t *testing.T) {
		math := []ExtractedBlock{{Kind: BlockMathBlock, Start: 0, End: 5}}
		code := []ExtractedBlock{{Kind: BlockCode, Start: 0, End: 8}}
		merged := MergeBlocks(math, code)
		require.Len(t, merged, 2)
		assert.Equal(t, BlockCode, merged[0].Kind)
	})
}
