// Package testutil provides shared test helpers for creating config files and vocabulary fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a config file backed by a SQLite database in tmpDir,
// with the cache and export directories created.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	dirs := []string{"cache", "exports"}
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`database:
  driver: sqlite
  dsn: file:%s
lexicon:
  provider: free_dictionary
  cache_directory: %s
  retry_attempts: 0
outputs:
  export_directory: %s
`,
		filepath.Join(tmpDir, "lexiquiz.db"),
		filepath.Join(tmpDir, "cache"),
		filepath.Join(tmpDir, "exports"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// VocabularyEntry is one word of a vocabulary fixture. A nil Score leaves the score out.
type VocabularyEntry struct {
	Spelling string
	Score    *int
}

// CreateVocabularyFile writes a vocabulary YAML file in dir and returns its path.
func CreateVocabularyFile(t *testing.T, dir string, entries ...VocabularyEntry) string {
	t.Helper()

	var b strings.Builder
	for _, entry := range entries {
		fmt.Fprintf(&b, "- spelling: %s\n", entry.Spelling)
		if entry.Score != nil {
			fmt.Fprintf(&b, "  score: %d\n", *entry.Score)
		}
	}
	if len(entries) == 0 {
		b.WriteString("[]\n")
	}

	path := filepath.Join(dir, "vocabulary.yml")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0644))
	return path
}
