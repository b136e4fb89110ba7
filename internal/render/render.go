package render

import (
	"context"
	"errors"
	"fmt"
)

// 预定义错误
var (
	// ErrEmptyMarkdown 空内容无法渲染
	ErrEmptyMarkdown = errors.New("empty markdown content")

	// ErrBrowserNotFound 找不到可用的浏览器可执行文件
	ErrBrowserNotFound = errors.New("no chromium/chrome executable found")

	// ErrScreenshotEmpty 截图命令成功但未产出图片
	ErrScreenshotEmpty = errors.New("screenshot produced no image data")
)

// RenderError 渲染失败。渲染失败不会向上层抛异常，
// 调用方捕获后回退为原始文本发送。
type RenderError struct {
	Stage   string // html / browser / screenshot
	Message string
	Cause   error
}

// Error 实现 error 接口
func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render failed at %s: %s: %v", e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("render failed at %s: %s", e.Stage, e.Message)
}

// Unwrap 返回原因错误
func (e *RenderError) Unwrap() error {
	return e.Cause
}

// Options 单次渲染的全部参数。随请求显式传递，不使用进程级共享状态。
type Options struct {
	// Scale 设备缩放倍数
	Scale int
	// Width 页面宽度（像素）
	Width int
	// FontSize 正文字号
	FontSize int
	// LineHeight 行高
	LineHeight float64
	// FormatMarkdown 渲染前先用 markdownfmt 整理文本
	FormatMarkdown bool
}

// DefaultOptions 返回默认渲染参数
func DefaultOptions() Options {
	return Options{
		Scale:      2,
		Width:      600,
		FontSize:   16,
		LineHeight: 1.5,
	}
}

// Renderer 把 Markdown 文本渲染为图片字节。
// 同样的输入必须得到语义一致的结果，失败通过返回值报告，从不 panic。
type Renderer interface {
	Render(ctx context.Context, markdown string) ([]byte, error)
}
