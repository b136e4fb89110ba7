package cache

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store 图片和代码文件的缓存目录。
// 每个产物用随机文件名写入，调用之间相互独立。
type Store struct {
	dir    string
	logger *zap.Logger
}

// NewStore 创建缓存目录并返回 Store
func NewStore(dir string, logger *zap.Logger) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("cache directory must be specified")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Dir 返回缓存目录路径
func (s *Store) Dir() string {
	return s.dir
}

// WriteImage 把渲染出的图片写入缓存目录，返回文件路径
func (s *Store) WriteImage(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty image data")
	}

	path := filepath.Join(s.dir, uuid.New().String()+".png")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	s.logger.Debug("图片已写入缓存",
		zap.String("path", path),
		zap.Int("bytes", len(data)))
	return path, nil
}

// WriteCodeFile 把代码内容写为对应语言扩展名的文件，返回文件路径。
// 未知语言使用通用文本扩展名。
func (s *Store) WriteCodeFile(content string, language string) (string, error) {
	if content == "" {
		return "", fmt.Errorf("empty code content")
	}

	ext := ExtensionForLanguage(language)
	path := filepath.Join(s.dir, uuid.New().String()+"."+ext)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write code file: %w", err)
	}

	s.logger.Debug("代码文件已写入缓存",
		zap.String("path", path),
		zap.String("language", language))
	return path, nil
}
