package markdown

import (
	"regexp"
)

// Pattern 复杂度模式，带名称和权重
type Pattern struct {
	// 模式名称
	Name string
	// 复杂度权重（每个匹配贡献的分数）
	Weight int
	// 编译后的正则表达式
	re *regexp.Regexp
}

// CountMatches 统计文本中不重叠的匹配数量
func (p Pattern) CountMatches(text string) int {
	return len(p.re.FindAllStringIndex(text, -1))
}

// MatchedSpan 返回所有匹配覆盖的总字节数
func (p Pattern) MatchedSpan(text string) int {
	total := 0
	for _, loc := range p.re.FindAllStringIndex(text, -1) {
		total += loc[1] - loc[0]
	}
	return total
}

// Matches 判断文本是否至少包含一个匹配
func (p Pattern) Matches(text string) bool {
	return p.re.MatchString(text)
}

// ComplexPatterns 需要图片渲染的复杂模式，按固定顺序声明，
// 保证打分结果与遍历顺序无关容器实现
var ComplexPatterns = []Pattern{
	{Name: "code_block", Weight: 2, re: regexp.MustCompile("(?s)```.*?```")},
	{Name: "table", Weight: 3, re: regexp.MustCompile(`\|.*\|.*\n\|.*---.*\|.*\n(\|.*\|.*\n)*`)},
	{Name: "math_block", Weight: 3, re: regexp.MustCompile(`(?s)\$\$.+?\$\$`)},
	{Name: "math_inline", Weight: 1, re: regexp.MustCompile(`\$[^$]+\$`)},
	{Name: "complex_list", Weight: 1, re: regexp.MustCompile(`(?m)^(?:\s*[-*+]|\s*\d+\.)\s+.*(?:\n(?:\s{4,}[-*+]|\s{4,}\d+\.)\s+.*)+`)},
	{Name: "blockquote", Weight: 1, re: regexp.MustCompile(`(?m)^>+.*(?:\n>+.*)*`)},
	{Name: "multiple_headings", Weight: 1, re: regexp.MustCompile(`(?m)^#{1,6}\s+.+(?:\n#{1,6}\s+.+)+`)},
}

// LinkPatterns 链接模式，用于短消息的链接否决判断：
// 以链接为主的文本直接以文字发送，任何复杂度信号都不生效
var LinkPatterns = []Pattern{
	{Name: "bracket_link", Weight: 0, re: regexp.MustCompile(`\[[^\]]*\]\([^)\s]+\)`)},
	{Name: "bare_url", Weight: 0, re: regexp.MustCompile(`https?://[^\s<>]+`)},
}
