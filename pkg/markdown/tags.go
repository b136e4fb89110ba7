package markdown

import (
	"regexp"
	"strings"
)

// 显式标签语法，区分大小写的字面量
const (
	ExplicitTagOpen  = "<md>"
	ExplicitTagClose = "</md>"
)

// explicitTagRe 非贪婪、跨行匹配成对的 <md>...</md>
var explicitTagRe = regexp.MustCompile(`(?s)<md>(.*?)</md>`)

// TagPart 显式标签切分后的一个部分
type TagPart struct {
	// Explicit 为 true 表示内容来自 <md> 标签，必须渲染为图片
	Explicit bool
	// Content 去除标签和首尾空白后的内容
	Content string
}

// SplitExplicitTags 按保留的 <md>...</md> 包裹标签切分文本。
// 标签不配对（如只有开标签）时不报错，未匹配的部分原样作为普通文本保留。
// 纯空白部分不输出。
func SplitExplicitTags(text string) []TagPart {
	var parts []TagPart

	appendPlain := func(s string) {
		s = strings.TrimSpace(s)
		if s != "" {
			parts = append(parts, TagPart{Explicit: false, Content: s})
		}
	}

	cursor := 0
	for _, m := range explicitTagRe.FindAllStringSubmatchIndex(text, -1) {
		appendPlain(text[cursor:m[0]])

		if inner := strings.TrimSpace(text[m[2]:m[3]]); inner != "" {
			parts = append(parts, TagPart{Explicit: true, Content: inner})
		}
		cursor = m[1]
	}
	appendPlain(text[cursor:])

	return parts
}
