package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	mathjax "github.com/litao91/goldmark-mathjax"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// mdConverter 共享的 goldmark 实例。
// GFM 提供表格、删除线、任务列表；mathjax 把 $ / $$ 公式转为
// MathJax 可识别的标记；meta 吃掉偶尔出现在 LLM 输出里的 front matter
var mdConverter = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		mathjax.MathJax,
		meta.Meta,
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

// htmlPage 页面模板参数
type htmlPage struct {
	WidthStyle string
	FontSize   int
	LineHeight float64
	Content    string
}

// pageTemplate 套用 GitHub 风格样式的完整页面，
// MathJax 配置和原始渲染约定保持一致：$ 行内、$$ 块级
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Markdown Render</title>
    <style>
        body {
            {{.WidthStyle}}
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif, "Apple Color Emoji", "Segoe UI Emoji";
            padding: 25px;
            display: inline-block;
            font-size: {{.FontSize}}px;
            -webkit-font-smoothing: antialiased;
            text-rendering: optimizeLegibility;
            background-color: #ffffff;
            color: #24292e;
            line-height: {{.LineHeight}};
        }
        pre {
            background-color: #f6f8fa;
            border-radius: 6px;
            padding: 16px;
            overflow: auto;
            font-size: 85%;
            line-height: 1.45;
        }
        code {
            font-family: "SFMono-Regular", Consolas, "Liberation Mono", Menlo, monospace;
            background-color: rgba(175, 184, 193, 0.2);
            border-radius: 3px;
            padding: 0.2em 0.4em;
            font-size: 85%;
        }
        pre code {
            background: none;
            padding: 0;
        }
        table {
            border-collapse: collapse;
            width: 100%;
            margin: 1em 0;
        }
        th, td {
            border: 1px solid #dfe2e5;
            padding: 6px 13px;
            text-align: left;
        }
        th {
            background-color: #f6f8fa;
            font-weight: 600;
        }
        blockquote {
            border-left: 4px solid #dfe2e5;
            padding-left: 1em;
            margin-left: 0;
            color: #6a737d;
        }
        img {
            max-width: 100%;
        }
    </style>
    <script type="text/javascript" async
        src="https://cdnjs.cloudflare.com/ajax/libs/mathjax/2.7.7/MathJax.js?config=TeX-MML-AM_CHTML">
    </script>
    <script type="text/x-mathjax-config">
        MathJax.Hub.Config({
            tex2jax: {
                inlineMath: [['$','$']],
                displayMath: [['$$','$$']],
            },
            "HTML-CSS": {
                scale: 100,
                linebreaks: { automatic: true }
            },
            SVG: { linebreaks: { automatic: true } }
        });
    </script>
</head>
<body>
{{.Content}}
</body>
</html>
`))

// BuildHTML 把 Markdown 转为带样式的完整 HTML 页面
func BuildHTML(markdown string, opts Options) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", ErrEmptyMarkdown
	}

	var body bytes.Buffer
	if err := mdConverter.Convert([]byte(markdown), &body); err != nil {
		return "", &RenderError{Stage: "html", Message: "markdown conversion failed", Cause: err}
	}

	widthStyle := ""
	if opts.Width > 0 {
		widthStyle = fmt.Sprintf("width: %dpx; box-sizing: border-box;", opts.Width)
	}

	var page bytes.Buffer
	err := pageTemplate.Execute(&page, htmlPage{
		WidthStyle: widthStyle,
		FontSize:   opts.FontSize,
		LineHeight: opts.LineHeight,
		Content:    body.String(),
	})
	if err != nil {
		return "", &RenderError{Stage: "html", Message: "page template failed", Cause: err}
	}

	return page.String(), nil
}
