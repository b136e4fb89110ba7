package markdown

import (
	"sort"
	"strings"
)

// SegmentKind 分段类型
type SegmentKind int

const (
	// SegmentPlainText 普通文本段
	SegmentPlainText SegmentKind = iota
	// SegmentCode 代码段
	SegmentCode
	// SegmentMath 公式段
	SegmentMath
	// SegmentExplicitImage 显式标签强制渲染段
	SegmentExplicitImage
)

// String 返回类型名称
func (k SegmentKind) String() string {
	switch k {
	case SegmentPlainText:
		return "plain"
	case SegmentCode:
		return "code"
	case SegmentMath:
		return "math"
	case SegmentExplicitImage:
		return "explicit"
	default:
		return "unknown"
	}
}

// Segment 切分后的一个有序片段。
// 按出现顺序排列，所有片段的 Raw 依次拼接即可还原原文
// （唯一的有损点：纯空白的间隙段会被丢弃，不会作为空段输出）。
type Segment struct {
	Kind     SegmentKind
	Text     string    // 整理后的内容：普通文本去除首尾空白，代码/公式为去定界符内容
	Language string    // 仅代码段有效
	MathKind BlockKind // 仅公式段有效，区分行内与块级
	Raw      string    // 原文片段（未整理，含定界符）
	Start    int
	End      int
}

// MergeBlocks 合并多个提取器的结果，按起始位置升序排列；
// 起始位置相同时代码块排在公式块之前
func MergeBlocks(lists ...[]ExtractedBlock) []ExtractedBlock {
	var merged []ExtractedBlock
	for _, list := range lists {
		merged = append(merged, list...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Start != merged[j].Start {
			return merged[i].Start < merged[j].Start
		}
		return merged[i].Kind == BlockCode && merged[j].Kind != BlockCode
	})
	return merged
}

// SegmentText 按提取块切分原文，返回有序的片段列表。
// 相邻块之间的间隙作为普通文本段输出，纯空白间隙直接丢弃。
func SegmentText(text string, blocks []ExtractedBlock) []Segment {
	var segments []Segment

	appendPlain := func(start, end int) {
		gap := text[start:end]
		if strings.TrimSpace(gap) == "" {
			return
		}
		segments = append(segments, Segment{
			Kind:  SegmentPlainText,
			Text:  strings.TrimSpace(gap),
			Raw:   gap,
			Start: start,
			End:   end,
		})
	}

	cursor := 0
	for _, b := range blocks {
		if b.Start < cursor {
			// 重叠块不应出现（公式提取已排除代码区间），出现则跳过
			continue
		}
		if b.Start > cursor {
			appendPlain(cursor, b.Start)
		}

		seg := Segment{
			Text:  b.Content,
			Raw:   b.Raw,
			Start: b.Start,
			End:   b.End,
		}
		switch b.Kind {
		case BlockCode:
			seg.Kind = SegmentCode
			seg.Language = b.Language
		default:
			seg.Kind = SegmentMath
			seg.MathKind = b.Kind
		}
		segments = append(segments, seg)
		cursor = b.End
	}

	if cursor < len(text) {
		appendPlain(cursor, len(text))
	}

	return segments
}
