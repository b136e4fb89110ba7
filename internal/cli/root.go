package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Daily-AC/SmartMd2Img/internal/cache"
	"github.com/Daily-AC/SmartMd2Img/internal/config"
	"github.com/Daily-AC/SmartMd2Img/internal/logger"
	"github.com/Daily-AC/SmartMd2Img/internal/pipeline"
	"github.com/Daily-AC/SmartMd2Img/internal/render"
	"github.com/Daily-AC/SmartMd2Img/pkg/markdown"
)

var (
	// 命令行标志变量
	cfgFile     string
	debugMode   bool
	verboseMode bool // 显示详细日志
	dryRun      bool // 只分析不渲染
	scoreOnly   bool // 只输出复杂度分数和决策
	outputDir   string
)

// NewRootCommand 创建根命令
func NewRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "smartmd2img [flags] [input_file]",
		Short: "智能 Markdown 转图片工具，自动检测复杂格式并转换为图片",
		Long: `智能 Markdown 转图片工具。对输入的 Markdown 文本做复杂度检测和分段：
简单文本保持文字输出，代码块、表格、数学公式等复杂格式渲染为图片，
超长代码块可以保存为代码文件。

输入来自文件参数或标准输入，产物写入缓存目录。
用 <md> 和 </md> 标签包裹的内容会强制渲染为图片。`,
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate),
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.NewLoggerWithVerbose(debugMode, verboseMode)
			defer func() {
				_ = log.Sync()
			}()

			cfg, err := config.LoadConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("加载配置失败: %w", err)
			}
			if debugMode {
				cfg.Debug = true
			}
			if outputDir != "" {
				cfg.CacheDir = outputDir
			}

			text, err := readInput(args)
			if err != nil {
				return err
			}
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("输入为空")
			}

			if scoreOnly {
				printScore(text, cfg)
				return nil
			}
			if dryRun {
				printAnalysis(text, cfg)
				return nil
			}

			return runPipeline(cmd.Context(), text, cfg, log)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "配置文件路径")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "启用调试日志")
	rootCmd.PersistentFlags().BoolVarP(&verboseMode, "verbose", "v", false, "显示详细日志")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "只分析分段结果，不渲染图片")
	rootCmd.Flags().BoolVar(&scoreOnly, "score", false, "只输出复杂度分数和渲染决策")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "产物输出目录（覆盖配置中的缓存目录）")

	return rootCmd
}

// readInput 从文件参数或标准输入读取文本
func readInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("读取输入文件失败: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("读取标准输入失败: %w", err)
	}
	return string(data), nil
}

// printScore 输出复杂度分数和决策
func printScore(text string, cfg *config.Config) {
	detector := markdown.NewDetector()
	score := detector.Score(text)
	needs := detector.NeedsRendering(text, cfg.MinComplexityScore)

	fmt.Printf("复杂度分数: %d (阈值 %d)\n", score, cfg.MinComplexityScore)
	if needs {
		color.New(color.FgYellow).Println("决策: 渲染为图片")
	} else {
		color.New(color.FgGreen).Println("决策: 直接发送文本")
	}
}

// printAnalysis 输出分段分析表格
func printAnalysis(text string, cfg *config.Config) {
	var rows []table.Row

	kindColors := map[markdown.SegmentKind]*color.Color{
		markdown.SegmentPlainText:     color.New(color.FgWhite),
		markdown.SegmentCode:          color.New(color.FgCyan),
		markdown.SegmentMath:          color.New(color.FgMagenta),
		markdown.SegmentExplicitImage: color.New(color.FgYellow),
	}

	index := 1
	appendSegment := func(kind markdown.SegmentKind, lang, preview string) {
		rows = append(rows, table.Row{
			index,
			kindColors[kind].Sprint(kind.String()),
			lang,
			truncate(preview, 60),
		})
		index++
	}

	parts := []markdown.TagPart{{Content: strings.TrimSpace(text)}}
	if cfg.RespectExplicitTags {
		parts = markdown.SplitExplicitTags(text)
	}

	for _, part := range parts {
		if part.Explicit {
			appendSegment(markdown.SegmentExplicitImage, "", part.Content)
			continue
		}

		var code, math []markdown.ExtractedBlock
		if cfg.SeparateCodeBlocks {
			code = markdown.ExtractCode(part.Content)
		}
		if cfg.SeparateMathBlocks {
			math = markdown.ExtractMathExcluding(part.Content, code)
		}

		for _, seg := range markdown.SegmentText(part.Content, markdown.MergeBlocks(code, math)) {
			appendSegment(seg.Kind, seg.Language, seg.Text)
		}
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "类型", "语言", "内容预览"})
	t.AppendRows(rows)
	t.SetStyle(table.StyleLight)
	t.Render()
}

// runPipeline 完整执行处理管线并输出结果
func runPipeline(ctx context.Context, text string, cfg *config.Config, log *zap.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := cache.NewStore(cfg.CacheDir, log)
	if err != nil {
		return fmt.Errorf("初始化缓存目录失败: %w", err)
	}

	renderer, err := render.NewChromiumRenderer(cfg.BrowserPath, render.Options{
		Scale:          cfg.RenderScale,
		Width:          cfg.RenderWidth,
		FontSize:       cfg.CodeFontSize,
		LineHeight:     cfg.LineHeight,
		FormatMarkdown: cfg.FormatMarkdown,
	}, log)
	if err != nil {
		return fmt.Errorf("初始化渲染器失败: %w", err)
	}

	spinner, _ := pterm.DefaultSpinner.Start("处理 Markdown 中...")
	components := pipeline.New(cfg, renderer, store, log).Process(ctx, text)
	if spinner != nil {
		_ = spinner.Stop()
	}

	if len(components) == 0 {
		pterm.Warning.Println("没有产生任何输出组件")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "类型", "内容"})
	for i, comp := range components {
		detail := comp.Path
		if comp.Kind == pipeline.ComponentPlain {
			detail = truncate(comp.Text, 60)
		}
		t.AppendRow(table.Row{i + 1, comp.Kind.String(), detail})
	}
	t.SetStyle(table.StyleLight)
	t.Render()

	pterm.Success.Printfln("处理完成，共 %d 个组件，产物目录 %s", len(components), store.Dir())
	return nil
}

// truncate 截断预览文本，换行替换为空格
func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
