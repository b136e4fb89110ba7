package render

import (
	"github.com/Kunde21/markdownfmt/v3"
	"github.com/Kunde21/markdownfmt/v3/markdown"
)

// FormatMarkdown 渲染前的整理步骤：统一表格对齐、列表缩进等。
// 整理失败不是致命错误，调用方直接渲染原文。
func FormatMarkdown(text string) (string, error) {
	opts := []markdown.Option{
		markdown.WithCodeFormatters(markdown.GoCodeFormatter),
	}

	formatted, err := markdownfmt.Process("", []byte(text), opts...)
	if err != nil {
		return "", err
	}
	return string(formatted), nil
}
