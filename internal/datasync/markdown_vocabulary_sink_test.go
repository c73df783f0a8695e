package datasync

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/lexiquiz/internal/lexicon"
	mock_lexicon "github.com/at-ishikawa/lexiquiz/internal/mocks/lexicon"
	"github.com/at-ishikawa/lexiquiz/internal/vocabulary"
)

func TestMarkdownVocabularySink_WriteAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	dictionary := mock_lexicon.NewMockDictionary(ctrl)
	dictionary.EXPECT().Lookup(gomock.Any(), "happy").Return(lexicon.Entry{
		Word: "happy",
		Meanings: []lexicon.Meaning{
			{
				PartOfSpeech: lexicon.PartOfSpeechAdjective,
				Definitions:  []lexicon.Definition{{Text: "Feeling pleasure.", Synonyms: []string{"glad"}}},
			},
		},
	}, nil)
	dictionary.EXPECT().Lookup(gomock.Any(), "qwzx").Return(lexicon.Entry{}, lexicon.ErrNotFound)

	dir := filepath.Join(t.TempDir(), "exports")
	sink := NewMarkdownVocabularySink(dir, "", dictionary)
	sink.now = func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) }

	path, err := sink.WriteAll(context.Background(), []vocabulary.Record{
		{ID: 1, Spelling: "happy", Score: 459},
		{ID: 2, Spelling: "qwzx", Score: 500},
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, MarkdownVocabularyFileName), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, want := range []string{
		"# Vocabulary",
		"## happy",
		"### adjective",
		"- Feeling pleasure.",
		"  - Synonyms: glad",
		"## qwzx",
		"- Score: 500",
	} {
		assert.Contains(t, string(content), want)
	}
}

func TestMarkdownVocabularySink_WriteAll_withoutDictionary(t *testing.T) {
	dir := t.TempDir()
	path, err := NewMarkdownVocabularySink(dir, "", nil).WriteAll(context.Background(), []vocabulary.Record{
		{ID: 1, Spelling: "happy", Score: 459},
	})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "## happy")
	assert.NotContains(t, string(content), "###")
}
