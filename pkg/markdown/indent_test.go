package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIndentation(t *testing.T) {
	t.Run("Tabs Become Four Spaces", func(t *testing.T) {
		code := "def f():\n\treturn 1"
		assert.Equal(t, "def f():\n    return 1", NormalizeIndentation(code))
	})

	t.Run("Spaces Rounded Up To Multiple Of Four", func(t *testing.T) {
		assert.Equal(t, "    x", NormalizeIndentation("  x"))
		assert.Equal(t, "        x", NormalizeIndentation("     x"))
		// 已经是 4 的倍数则不变
		assert.Equal(t, "    x", NormalizeIndentation("    x"))
		assert.Equal(t, "        x", NormalizeIndentation("        x"))
	})

	t.Run("Mixed Tabs And Spaces", func(t *testing.T) {
		// 1 制表符 + 1 空格 = 宽度 5，向上取整到 8
		assert.Equal(t, "        x", NormalizeIndentation("\t x"))
	})

	t.Run("Zero Indent Untouched", func(t *testing.T) {
		code := "package main\n\nfunc main() {}"
		assert.Equal(t, code, NormalizeIndentation(code))
	})

	t.Run("Trailing Content Preserved", func(t *testing.T) {
		// 行内的制表符和空格不动，只处理行首
		code := "  a\tb  c  "
		assert.Equal(t, "    a\tb  c  ", NormalizeIndentation(code))
	})

	t.Run("Idempotent", func(t *testing.T) {
		inputs := []string{
			"def f():\n\treturn 1",
			"  two\n     five\n\t tab-space",
			"no indent\n    four\n            twelve",
			"",
		}
		for _, code := range inputs {
			once := NormalizeIndentation(code)
			assert.Equal(t, once, NormalizeIndentation(once))
		}
	})

	t.Run("Relative Indentation Preserved", func(t *testing.T) {
		code := "if x:\n    a()\n        b()"
		assert.Equal(t, code, NormalizeIndentation(code))
	})
}
