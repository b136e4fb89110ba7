package cache

import (
	_ "embed"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

//go:embed languages.toml
var languagesTOML []byte

// DefaultExtension 未知语言的兜底扩展名
const DefaultExtension = "txt"

// languageTable 语言表：规范名到扩展名，别名到规范名
type languageTable struct {
	Extensions map[string]string `toml:"extensions"`
	Aliases    map[string]string `toml:"aliases"`
}

var languages languageTable

func init() {
	if err := toml.Unmarshal(languagesTOML, &languages); err != nil {
		panic("加载内嵌语言表失败: " + err.Error())
	}
}

// NormalizeLanguage 把代码块的语言标签归一化为规范名。
// 依次尝试：精确匹配、别名表、对 supported 列表做模糊匹配。
// 都不命中时原样返回小写标签。
func NormalizeLanguage(lang string, supported []string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return "text"
	}

	if _, ok := languages.Extensions[lang]; ok {
		return lang
	}
	if canonical, ok := languages.Aliases[lang]; ok {
		return canonical
	}

	// "Python3"、"golang" 这类变体写法走模糊匹配
	if matches := fuzzy.RankFindNormalizedFold(lang, supported); len(matches) > 0 {
		best := matches[0]
		for _, m := range matches[1:] {
			if m.Distance < best.Distance {
				best = m
			}
		}
		return best.Target
	}

	return lang
}

// ExtensionForLanguage 返回语言对应的文件扩展名（不含点），
// 未知语言使用通用文本扩展名
func ExtensionForLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if canonical, ok := languages.Aliases[lang]; ok {
		lang = canonical
	}
	if ext, ok := languages.Extensions[lang]; ok {
		return ext
	}
	return DefaultExtension
}
