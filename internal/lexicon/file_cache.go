package lexicon

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FileCache stores raw provider responses as <rootDir>/<word>.json.
// A FileCache with an empty root directory is disabled and always calls through.
type FileCache struct {
	rootDir string
}

func NewFileCache(cacheDirectory string) *FileCache {
	return &FileCache{
		rootDir: cacheDirectory,
	}
}

func (f *FileCache) filePath(expression string) string {
	return filepath.Join(f.rootDir, strings.ToLower(expression)+".json")
}

// Fetch returns the cached contents for expression, or calls f and caches its result.
func (cache *FileCache) Fetch(expression string, f func() ([]byte, error)) ([]byte, error) {
	if cache == nil || cache.rootDir == "" {
		return f()
	}

	localFilePath := cache.filePath(expression)
	if _, err := os.Stat(localFilePath); err == nil {
		contents, err := cache.read(expression)
		if err != nil {
			return nil, fmt.Errorf("cache.read > %w", err)
		}
		return contents, nil
	}

	contents, err := f()
	if err != nil {
		return nil, err
	}

	if err := cache.write(localFilePath, contents); err != nil {
		slog.Default().Warn("failed to cache a lexicon response",
			"expression", expression,
			"error", err)
	}
	return contents, nil
}

func (cache *FileCache) write(localFilePath string, contents []byte) error {
	if err := os.MkdirAll(cache.rootDir, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}
	file, err := os.Create(localFilePath)
	if err != nil {
		return fmt.Errorf("os.Create > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	if _, err := file.Write(contents); err != nil {
		return fmt.Errorf("file.Write > %w", err)
	}
	return nil
}

func (cache *FileCache) read(expression string) ([]byte, error) {
	file, err := os.Open(cache.filePath(expression))
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll > %w", err)
	}
	return contents, nil
}
