package pipeline

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Daily-AC/SmartMd2Img/internal/cache"
	"github.com/Daily-AC/SmartMd2Img/internal/config"
	"github.com/Daily-AC/SmartMd2Img/internal/render"
	"github.com/Daily-AC/SmartMd2Img/pkg/markdown"
)

// RenderFailedMarker 渲染失败回退为文本时的标记前缀
const RenderFailedMarker = "--- Markdown 渲染失败 ---\n"

// FileWriter 产物落盘接口，由缓存目录实现，测试中注入替身
type FileWriter interface {
	WriteImage(data []byte) (string, error)
	WriteCodeFile(content string, language string) (string, error)
}

// Pipeline 智能 Markdown 处理管线。
// 每次调用相互独立、无共享可变状态；配置在构造时固定为只读快照。
// 管线本身不会失败：渲染和写文件的任何错误都会降级为可发送的文本组件。
type Pipeline struct {
	cfg      *config.Config
	detector *markdown.Detector
	renderer render.Renderer
	files    FileWriter
	logger   *zap.Logger
}

// New 创建处理管线
func New(cfg *config.Config, renderer render.Renderer, files FileWriter, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		detector: markdown.NewDetector(),
		renderer: renderer,
		files:    files,
		logger:   logger,
	}
}

// Process 处理一段 Markdown 文本，返回按顺序发送的消息组件列表
func (p *Pipeline) Process(ctx context.Context, text string) []Component {
	var parts []markdown.TagPart
	if p.cfg.RespectExplicitTags {
		parts = markdown.SplitExplicitTags(text)
	} else if trimmed := strings.TrimSpace(text); trimmed != "" {
		parts = []markdown.TagPart{{Content: trimmed}}
	}

	var components []Component
	for _, part := range parts {
		if part.Explicit {
			// 显式标签强制渲染，失败时带失败标记回退为文本
			if comp, err := p.renderToImage(ctx, part.Content); err == nil {
				components = append(components, comp)
			} else {
				p.logger.Warn("显式标签渲染失败，回退为文本", zap.Error(err))
				components = append(components, PlainComponent(RenderFailedMarker+part.Content))
			}
			continue
		}

		components = append(components, p.processPart(ctx, part.Content)...)
	}

	return components
}

// processPart 处理一段未被显式标签包裹的文本
func (p *Pipeline) processPart(ctx context.Context, part string) []Component {
	var code, math []markdown.ExtractedBlock
	if p.cfg.SeparateCodeBlocks {
		code = markdown.ExtractCode(part)
	}
	if p.cfg.SeparateMathBlocks {
		// 先排除代码区间，代码样例里的 $ 不是公式
		math = markdown.ExtractMathExcluding(part, code)
	}

	blocks := markdown.MergeBlocks(code, math)
	if len(blocks) == 0 {
		// 没有可分离的块，整段交给复杂度检测决定文本还是图片
		return []Component{p.classifyPlain(ctx, part)}
	}

	var components []Component
	for _, seg := range markdown.SegmentText(part, blocks) {
		switch seg.Kind {
		case markdown.SegmentCode:
			components = append(components, p.processCode(ctx, seg))
		case markdown.SegmentMath:
			components = append(components, p.processMath(ctx, seg))
		default:
			components = append(components, p.classifyPlain(ctx, seg.Text))
		}
	}
	return components
}

// classifyPlain 对普通文本做文本/图片决策，渲染失败回退为原文
func (p *Pipeline) classifyPlain(ctx context.Context, text string) Component {
	if p.cfg.AutoDetect && p.detector.NeedsRendering(text, p.cfg.MinComplexityScore) {
		p.logger.Info("检测到复杂 Markdown 格式，自动转换为图片",
			zap.Int("score", p.detector.Score(text)),
			zap.Int("threshold", p.cfg.MinComplexityScore))

		if comp, err := p.renderToImage(ctx, text); err == nil {
			return comp
		} else {
			p.logger.Warn("自动渲染失败，回退为文本", zap.Error(err))
		}
	}
	return PlainComponent(text)
}

// processCode 处理代码段：归一化缩进后按配置走文件 / 图片 / 文本。
// 回退顺序：文件写入失败回退图片，图片渲染失败回退文本。
func (p *Pipeline) processCode(ctx context.Context, seg markdown.Segment) Component {
	content := markdown.NormalizeIndentation(seg.Text)
	lang := cache.NormalizeLanguage(seg.Language, p.cfg.SupportedCodeLanguages)

	if p.cfg.SendCodeAsFile && lineCount(content) >= p.cfg.CodeFileThreshold {
		if path, err := p.files.WriteCodeFile(content, lang); err == nil {
			p.logger.Info("代码块已保存为文件",
				zap.String("language", lang),
				zap.String("path", path))
			return FileComponent(path)
		} else {
			p.logger.Warn("代码文件写入失败，回退为图片", zap.Error(err))
		}
	}

	fenced := "```" + lang + "\n" + content + "\n```"
	if p.cfg.RenderCodeAsImage {
		if comp, err := p.renderToImage(ctx, fenced); err == nil {
			return comp
		} else {
			p.logger.Warn("代码块渲染失败，回退为文本", zap.Error(err))
		}
	}
	return PlainComponent(fenced)
}

// processMath 处理公式段，渲染失败时原样回退为文本
func (p *Pipeline) processMath(ctx context.Context, seg markdown.Segment) Component {
	if p.cfg.RenderMathAsImage {
		if comp, err := p.renderToImage(ctx, seg.Raw); err == nil {
			return comp
		} else {
			p.logger.Warn("公式渲染失败，回退为文本", zap.Error(err))
		}
	}
	return PlainComponent(seg.Raw)
}

// renderToImage 渲染并落盘，返回图片组件
func (p *Pipeline) renderToImage(ctx context.Context, md string) (Component, error) {
	data, err := p.renderer.Render(ctx, md)
	if err != nil {
		return Component{}, err
	}

	path, err := p.files.WriteImage(data)
	if err != nil {
		return Component{}, err
	}
	return ImageComponent(path), nil
}

// lineCount 统计非空内容的行数
func lineCount(text string) int {
	if text == "" {
		return 0
	}
	return strings.Count(text, "\n") + 1
}
