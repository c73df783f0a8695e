package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestConfig(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfig(t, tmpDir)

	want := filepath.Join(tmpDir, "config.yml")
	assert.Equal(t, want, got)

	content, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Contains(t, string(content), "driver: sqlite")
	assert.Contains(t, string(content), filepath.Join(tmpDir, "lexiquiz.db"))

	for _, d := range []string{"cache", "exports"} {
		info, err := os.Stat(filepath.Join(tmpDir, d))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestCreateVocabularyFile(t *testing.T) {
	score := 420
	tests := []struct {
		name    string
		entries []VocabularyEntry
		want    string
	}{
		{
			name: "with and without scores",
			entries: []VocabularyEntry{
				{Spelling: "happy", Score: &score},
				{Spelling: "glad"},
			},
			want: "- spelling: happy\n  score: 420\n- spelling: glad\n",
		},
		{
			name: "empty",
			want: "[]\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := CreateVocabularyFile(t, dir, tt.entries...)
			assert.Equal(t, filepath.Join(dir, "vocabulary.yml"), path)

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(content))
		})
	}
}
