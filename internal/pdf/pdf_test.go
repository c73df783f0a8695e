package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertMarkdownToPDF(t *testing.T) {
	t.Run("writes a PDF next to the markdown file", func(t *testing.T) {
		markdownPath := filepath.Join(t.TempDir(), "vocabulary.md")
		require.NoError(t, os.WriteFile(markdownPath, []byte("# Vocabulary\n\n## happy\n\n- Feeling pleasure.\n"), 0644))

		got, err := ConvertMarkdownToPDF(markdownPath, Options{})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(filepath.Dir(markdownPath), "vocabulary.pdf"), got)

		content, err := os.ReadFile(got)
		require.NoError(t, err)
		assert.True(t, len(content) > 4 && string(content[:4]) == "%PDF", "PDF header")
	})

	t.Run("landscape letter in the dark theme", func(t *testing.T) {
		markdownPath := filepath.Join(t.TempDir(), "vocabulary.md")
		require.NoError(t, os.WriteFile(markdownPath, []byte("# Vocabulary\n"), 0644))

		got, err := ConvertMarkdownToPDF(markdownPath, Options{Landscape: true, PaperSize: "Letter", Dark: true})
		require.NoError(t, err)
		assert.FileExists(t, got)
	})

	t.Run("rejects other extensions", func(t *testing.T) {
		_, err := ConvertMarkdownToPDF(filepath.Join(t.TempDir(), "vocabulary.txt"), Options{})
		assert.ErrorContains(t, err, "must have .md extension")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ConvertMarkdownToPDF(filepath.Join(t.TempDir(), "missing.md"), Options{})
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
