package markdown

import (
	"strings"
)

// tabWidth 制表符的等效空格数
const tabWidth = 4

// NormalizeIndentation 把代码的行首缩进统一为 4 空格约定。
// 每行独立处理：制表符按 4 空格计宽，空格按 1 计宽，宽度向上取整到
// 4 的倍数后用纯空格重写行首。不足 4 的零散空格也会被补齐，这是刻意的
// 归一化策略（渲染时对齐视觉上参差的缩进），不保留非 4 空格的缩进习惯。
// 行首无空白的行不做任何改动，行内和行尾内容原样保留。
func NormalizeIndentation(code string) string {
	lines := strings.Split(code, "\n")
	for i, line := range lines {
		rest := strings.TrimLeft(line, " \t")
		lead := line[:len(line)-len(rest)]
		if lead == "" {
			continue
		}

		width := 0
		for _, c := range lead {
			if c == '\t' {
				width += tabWidth
			} else {
				width++
			}
		}
		if width%tabWidth != 0 {
			width = (width/tabWidth + 1) * tabWidth
		}

		lines[i] = strings.Repeat(" ", width) + rest
	}
	return strings.Join(lines, "\n")
}
