package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// 各配置项的默认值，配置文件缺失或字段缺省时使用
const (
	DefaultMinComplexityScore = 2
	DefaultCodeFileThreshold  = 30
	DefaultCodeFontSize       = 14
	DefaultLineHeight         = 1.5
	DefaultRenderScale        = 2
	DefaultRenderWidth        = 600
	DefaultCacheDirName       = "md2img_cache"
)

// Config 保存转换器的所有配置。
// 核心处理逻辑只读取配置快照，从不修改，渲染参数随请求显式传递，
// 不存在进程级的全局字体状态。
type Config struct {
	// 自动检测复杂 Markdown 并转换为图片
	AutoDetect bool `mapstructure:"auto_detect"`
	// 复杂度阈值，达到此分数则转换为图片
	MinComplexityScore int `mapstructure:"min_complexity_score"`
	// 尊重显式的 <md> 标签
	RespectExplicitTags bool `mapstructure:"respect_explicit_tags"`
	// 把代码块从文本中单独分离处理
	SeparateCodeBlocks bool `mapstructure:"separate_code_blocks"`
	// 把数学公式从文本中单独分离处理
	SeparateMathBlocks bool `mapstructure:"separate_math_blocks"`
	// 分离出的代码块渲染为图片
	RenderCodeAsImage bool `mapstructure:"render_code_as_image"`
	// 分离出的公式渲染为图片
	RenderMathAsImage bool `mapstructure:"render_math_as_image"`
	// 超过行数阈值的代码块作为文件发送
	SendCodeAsFile bool `mapstructure:"send_code_as_file"`
	// 代码块转文件的行数阈值
	CodeFileThreshold int `mapstructure:"code_file_threshold"`
	// 渲染代码时的字号
	CodeFontSize int `mapstructure:"code_font_size"`
	// 渲染时的行高
	LineHeight float64 `mapstructure:"line_height"`
	// 支持作为文件发送的代码语言列表
	SupportedCodeLanguages []string `mapstructure:"supported_code_languages"`
	// 渲染前用 markdownfmt 整理 Markdown
	FormatMarkdown bool `mapstructure:"format_markdown"`
	// 截图的设备缩放倍数
	RenderScale int `mapstructure:"render_scale"`
	// 渲染页面宽度（像素）
	RenderWidth int `mapstructure:"render_width"`
	// 图片和代码文件的缓存目录
	CacheDir string `mapstructure:"cache_dir"`
	// Chromium 可执行文件路径，留空自动查找
	BrowserPath string `mapstructure:"browser_path"`
	// 调试日志
	Debug bool `mapstructure:"debug"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		AutoDetect:          true,
		MinComplexityScore:  DefaultMinComplexityScore,
		RespectExplicitTags: true,
		SeparateCodeBlocks:  true,
		SeparateMathBlocks:  true,
		RenderCodeAsImage:   true,
		RenderMathAsImage:   true,
		SendCodeAsFile:      false,
		CodeFileThreshold:   DefaultCodeFileThreshold,
		CodeFontSize:        DefaultCodeFontSize,
		LineHeight:          DefaultLineHeight,
		SupportedCodeLanguages: []string{
			"python", "go", "javascript", "typescript", "java",
			"c", "cpp", "rust", "shell", "sql", "html", "css",
			"json", "yaml", "markdown", "text",
		},
		FormatMarkdown: false,
		RenderScale:    DefaultRenderScale,
		RenderWidth:    DefaultRenderWidth,
		CacheDir:       DefaultCacheDirName,
	}
}

// Validate 验证配置
func (c *Config) Validate() error {
	if c.MinComplexityScore < 0 {
		return fmt.Errorf("min_complexity_score must not be negative: %d", c.MinComplexityScore)
	}
	if c.CodeFileThreshold < 0 {
		return fmt.Errorf("code_file_threshold must not be negative: %d", c.CodeFileThreshold)
	}
	if c.RenderScale <= 0 {
		return fmt.Errorf("render_scale must be positive: %d", c.RenderScale)
	}
	if c.RenderWidth <= 0 {
		return fmt.Errorf("render_width must be positive: %d", c.RenderWidth)
	}
	if c.LineHeight <= 0 {
		return fmt.Errorf("line_height must be positive: %f", c.LineHeight)
	}
	return nil
}

// setDefaults 在读取配置文件之前注册默认值。
// 默认值挂在 viper 实例上，配置文件里显式写出的值（包括 0）始终生效。
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("auto_detect", d.AutoDetect)
	v.SetDefault("min_complexity_score", d.MinComplexityScore)
	v.SetDefault("respect_explicit_tags", d.RespectExplicitTags)
	v.SetDefault("separate_code_blocks", d.SeparateCodeBlocks)
	v.SetDefault("separate_math_blocks", d.SeparateMathBlocks)
	v.SetDefault("render_code_as_image", d.RenderCodeAsImage)
	v.SetDefault("render_math_as_image", d.RenderMathAsImage)
	v.SetDefault("send_code_as_file", d.SendCodeAsFile)
	v.SetDefault("code_file_threshold", d.CodeFileThreshold)
	v.SetDefault("code_font_size", d.CodeFontSize)
	v.SetDefault("line_height", d.LineHeight)
	v.SetDefault("supported_code_languages", d.SupportedCodeLanguages)
	v.SetDefault("format_markdown", d.FormatMarkdown)
	v.SetDefault("render_scale", d.RenderScale)
	v.SetDefault("render_width", d.RenderWidth)
	v.SetDefault("cache_dir", d.CacheDir)
	v.SetDefault("browser_path", d.BrowserPath)
	v.SetDefault("debug", d.Debug)
}
