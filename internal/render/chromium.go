package render

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"go.uber.org/zap"
)

// chromiumCandidates 常见的浏览器可执行文件名，按优先级排列
var chromiumCandidates = []string{
	"chromium",
	"chromium-browser",
	"google-chrome",
	"google-chrome-stable",
	"chrome",
	"headless-shell",
}

// ChromiumRenderer 通过无头浏览器把 Markdown 渲染为 PNG。
// 浏览器以子进程方式驱动：写临时 HTML 文件，headless 截图，读回字节。
type ChromiumRenderer struct {
	execPath string
	opts     Options
	logger   *zap.Logger
}

// NewChromiumRenderer 创建渲染器。browserPath 留空时自动查找浏览器。
func NewChromiumRenderer(browserPath string, opts Options, logger *zap.Logger) (*ChromiumRenderer, error) {
	path, err := findChromium(browserPath)
	if err != nil {
		return nil, err
	}

	logger.Info("找到浏览器可执行文件", zap.String("path", path))
	return &ChromiumRenderer{
		execPath: path,
		opts:     opts,
		logger:   logger,
	}, nil
}

// findChromium 查找浏览器可执行文件。
// 顺序：显式配置 > CHROME_BIN 环境变量 > PATH 中的常见名字
func findChromium(browserPath string) (string, error) {
	if browserPath != "" {
		if _, err := os.Stat(browserPath); err != nil {
			return "", fmt.Errorf("configured browser path not usable: %w", err)
		}
		return browserPath, nil
	}

	if env := os.Getenv("CHROME_BIN"); env != "" {
		if _, err := os.Stat(env); err == nil {
			return env, nil
		}
	}

	for _, name := range chromiumCandidates {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}

	return "", ErrBrowserNotFound
}

// Render 实现 Renderer 接口
func (r *ChromiumRenderer) Render(ctx context.Context, markdown string) ([]byte, error) {
	if r.opts.FormatMarkdown {
		if formatted, err := FormatMarkdown(markdown); err == nil {
			markdown = formatted
		} else {
			r.logger.Warn("Markdown 整理失败，使用原文渲染", zap.Error(err))
		}
	}

	html, err := BuildHTML(markdown, r.opts)
	if err != nil {
		return nil, err
	}

	tmpDir, err := os.MkdirTemp("", "smartmd2img-*")
	if err != nil {
		return nil, &RenderError{Stage: "screenshot", Message: "failed to create temp dir", Cause: err}
	}
	defer os.RemoveAll(tmpDir)

	pagePath := filepath.Join(tmpDir, "page.html")
	if err := os.WriteFile(pagePath, []byte(html), 0o644); err != nil {
		return nil, &RenderError{Stage: "screenshot", Message: "failed to write page", Cause: err}
	}

	outPath := filepath.Join(tmpDir, "out.png")
	args := []string{
		"--headless=new",
		"--disable-gpu",
		"--no-sandbox",
		"--hide-scrollbars",
		fmt.Sprintf("--force-device-scale-factor=%d", r.opts.Scale),
		fmt.Sprintf("--window-size=%d,800", r.opts.Width),
		// MathJax 通过 CDN 异步排版，给虚拟时钟留出排版预算
		"--virtual-time-budget=10000",
		"--screenshot=" + outPath,
		"file://" + pagePath,
	}

	cmd := exec.CommandContext(ctx, r.execPath, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		r.logger.Error("浏览器截图失败",
			zap.Error(err),
			zap.ByteString("output", output))
		return nil, &RenderError{Stage: "browser", Message: "headless screenshot failed", Cause: err}
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		return nil, &RenderError{Stage: "screenshot", Message: "screenshot file missing", Cause: err}
	}
	if len(data) == 0 {
		return nil, &RenderError{Stage: "screenshot", Message: "empty image", Cause: ErrScreenshotEmpty}
	}

	r.logger.Debug("Markdown 图片已生成",
		zap.Int("bytes", len(data)),
		zap.Int("width", r.opts.Width),
		zap.Int("scale", r.opts.Scale))
	return data, nil
}
