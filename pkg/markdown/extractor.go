package markdown

import (
	"regexp"
	"sort"
	"strings"

	"github.com/dlclark/regexp2"
)

// BlockKind 提取块的类型
type BlockKind int

const (
	// BlockCode 围栏代码块
	BlockCode BlockKind = iota
	// BlockMathInline 行内数学公式
	BlockMathInline
	// BlockMathBlock 块级数学公式
	BlockMathBlock
)

// String 返回类型名称
func (k BlockKind) String() string {
	switch k {
	case BlockCode:
		return "code"
	case BlockMathInline:
		return "math_inline"
	case BlockMathBlock:
		return "math_block"
	default:
		return "unknown"
	}
}

// DefaultCodeLanguage 代码块缺省语言标识
const DefaultCodeLanguage = "text"

// ExtractedBlock 从原文中提取出的一个定界块。
// Start/End 为原文中的字节偏移，满足 text[Start:End] == Raw。
type ExtractedBlock struct {
	Kind     BlockKind
	Language string // 仅代码块有效
	Content  string // 去除定界符并整理后的内容
	Raw      string // 原文片段（含定界符）
	Start    int
	End      int
}

var (
	// 围栏代码块：```lang\n...\n```，语言标签紧跟开栏符号
	codeFenceRe = regexp.MustCompile("(?s)```([A-Za-z0-9_+#.-]*)[ \t]*(.*?)```")

	// 块级公式 $$...$$，可跨行
	mathBlockRe = regexp.MustCompile(`(?s)\$\$(.+?)\$\$`)

	// 行内公式 $...$，不允许内嵌未转义的 $，不跨行。
	// 转义判断需要 lookbehind，标准库不支持，使用 regexp2
	mathInlineRe = regexp2.MustCompile(`(?<!\\)\$((?:\\\$|[^$\n])+?)(?<!\\)\$`, 0)
)

// ExtractCode 提取所有围栏代码块，按出现顺序返回。
// 未闭合的围栏不报错，留在原文中当作普通文本处理。
func ExtractCode(text string) []ExtractedBlock {
	var blocks []ExtractedBlock
	for _, m := range codeFenceRe.FindAllStringSubmatchIndex(text, -1) {
		lang := text[m[2]:m[3]]
		if lang == "" {
			lang = DefaultCodeLanguage
		}

		// 只去掉紧邻定界符的一个换行，内部空行原样保留
		inner := text[m[4]:m[5]]
		inner = strings.TrimPrefix(inner, "\n")
		inner = strings.TrimSuffix(inner, "\n")

		blocks = append(blocks, ExtractedBlock{
			Kind:     BlockCode,
			Language: strings.ToLower(lang),
			Content:  inner,
			Raw:      text[m[0]:m[1]],
			Start:    m[0],
			End:      m[1],
		})
	}
	return blocks
}

// ExtractMath 提取所有数学公式块。块级公式优先于行内公式扫描，
// 避免 $$x$$ 被错误拆成两个行内匹配。
func ExtractMath(text string) []ExtractedBlock {
	return ExtractMathExcluding(text, nil)
}

// ExtractMathExcluding 提取数学公式，跳过与 exclude 中任意区间重叠的匹配。
// 代码和公式同时启用分离时，调用方先提取代码块再把代码区间传进来，
// 否则代码样例里的 $ 字面量会被误判为行内公式。
func ExtractMathExcluding(text string, exclude []ExtractedBlock) []ExtractedBlock {
	var blocks []ExtractedBlock

	overlaps := func(start, end int) bool {
		for _, b := range exclude {
			if start < b.End && end > b.Start {
				return true
			}
		}
		for _, b := range blocks {
			if start < b.End && end > b.Start {
				return true
			}
		}
		return false
	}

	// 先扫块级公式（最长优先）
	for _, m := range mathBlockRe.FindAllStringSubmatchIndex(text, -1) {
		if overlaps(m[0], m[1]) {
			continue
		}
		blocks = append(blocks, ExtractedBlock{
			Kind:    BlockMathBlock,
			Content: strings.TrimSpace(text[m[2]:m[3]]),
			Raw:     text[m[0]:m[1]],
			Start:   m[0],
			End:     m[1],
		})
	}

	// 再扫行内公式。regexp2 的偏移以字符计，需要换算回字节偏移
	runes := []rune(text)
	byteOff := runeByteOffsets(text)

	m, err := mathInlineRe.FindRunesMatch(runes)
	for err == nil && m != nil {
		start := byteOff[m.Index]
		end := byteOff[m.Index+m.Length]
		if !overlaps(start, end) {
			blocks = append(blocks, ExtractedBlock{
				Kind:    BlockMathInline,
				Content: strings.TrimSpace(m.Groups()[1].String()),
				Raw:     text[start:end],
				Start:   start,
				End:     end,
			})
		}
		m, err = mathInlineRe.FindNextMatch(m)
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Start < blocks[j].Start
	})
	return blocks
}

// runeByteOffsets 返回字符索引到字节偏移的映射表，长度为字符数加一
func runeByteOffsets(text string) []int {
	offsets := make([]int, 0, len(text)+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(text))
	return offsets
}
