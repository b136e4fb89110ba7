package markdown

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// 检测阈值常量
const (
	// DefaultMinComplexityScore 默认复杂度阈值
	DefaultMinComplexityScore = 2

	// maxPlainLines 纯文本直接发送的最大行数
	maxPlainLines = 15

	// longLineWidth 单行的显示宽度上限。
	// 按终端显示列数统计而不是字符数，CJK 字符占两列，
	// 41 个汉字的行即视为超宽。
	longLineWidth = 80

	// maxLongLines 超宽行的数量上限
	maxLongLines = 3

	// linkDominanceRatio 链接占比超过此值时视为链接消息
	linkDominanceRatio = 0.6

	// shortLinkMessageLength 短链接消息的长度上限
	shortLinkMessageLength = 200
)

// Detector Markdown复杂度检测器，用于判断文本是否需要转换为图片
type Detector struct {
	patterns     []Pattern
	linkPatterns []Pattern
}

// NewDetector 创建复杂度检测器
func NewDetector() *Detector {
	return &Detector{
		patterns:     ComplexPatterns,
		linkPatterns: LinkPatterns,
	}
}

// Score 计算文本的加权复杂度分数
func (d *Detector) Score(text string) int {
	score := 0
	for _, p := range d.patterns {
		score += p.Weight * p.CountMatches(text)
	}
	return score
}

// NeedsRendering 判断文本是否需要渲染为图片。
// minScore 为复杂度阈值，达到此分数则转换为图片。
func (d *Detector) NeedsRendering(text string, minScore int) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	// 链接否决：以链接为主的短消息永远以文字发送，
	// 必须在打分之前判断，否则长链接会被行宽规则误转
	if d.isLinkDominated(text) {
		return false
	}

	if d.Score(text) >= minScore {
		return true
	}

	// 过长的纯文本在聊天窗口中显示效果也不好
	lines := strings.Split(text, "\n")
	if len(lines) > maxPlainLines {
		return true
	}

	// 多行超宽会在移动端折行，宽度按显示宽度计算（CJK字符占两列）
	longLines := 0
	for _, line := range lines {
		if runewidth.StringWidth(strings.TrimSpace(line)) > longLineWidth {
			longLines++
		}
	}
	return longLines > maxLongLines
}

// isLinkDominated 判断文本是否以链接为主
func (d *Detector) isLinkDominated(text string) bool {
	matched := false
	span := 0
	for _, p := range d.linkPatterns {
		if n := p.MatchedSpan(text); n > 0 {
			matched = true
			span += n
		}
	}
	if !matched {
		return false
	}

	if float64(span)/float64(len(text)) > linkDominanceRatio {
		return true
	}
	return len(text) < shortLinkMessageLength
}
