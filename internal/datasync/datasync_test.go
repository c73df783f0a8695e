package datasync

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_vocabulary "github.com/at-ishikawa/lexiquiz/internal/mocks/vocabulary"
	"github.com/at-ishikawa/lexiquiz/internal/vocabulary"
)

func intPtr(v int) *int {
	return &v
}

func TestImporter_ImportVocabulary(t *testing.T) {
	tests := []struct {
		name       string
		words      []VocabularyWord
		opts       ImportOptions
		setup      func(repo *mock_vocabulary.MockRepository)
		want       *ImportResult
		wantOutput []string
		wantErr    bool
	}{
		{
			name:  "new words are saved with their score or the initial score",
			words: []VocabularyWord{{Spelling: " Happy "}, {Spelling: "glad", Score: intPtr(320)}},
			setup: func(repo *mock_vocabulary.MockRepository) {
				repo.EXPECT().GetBySpelling(gomock.Any(), "happy").Return(vocabulary.Record{}, vocabulary.ErrNotFound)
				repo.EXPECT().Insert(gomock.Any(), "happy", vocabulary.InitialScore).Return(vocabulary.Record{ID: 1}, nil)
				repo.EXPECT().GetBySpelling(gomock.Any(), "glad").Return(vocabulary.Record{}, vocabulary.ErrNotFound)
				repo.EXPECT().Insert(gomock.Any(), "glad", 320).Return(vocabulary.Record{ID: 2}, nil)
			},
			want:       &ImportResult{WordsNew: 2},
			wantOutput: []string{`[NEW]  "happy"`, `[NEW]  "glad"`},
		},
		{
			name:  "saved words are skipped by default",
			words: []VocabularyWord{{Spelling: "happy", Score: intPtr(100)}},
			setup: func(repo *mock_vocabulary.MockRepository) {
				repo.EXPECT().GetBySpelling(gomock.Any(), "happy").Return(vocabulary.Record{ID: 1, Spelling: "happy", Score: 500}, nil)
			},
			want:       &ImportResult{WordsSkipped: 1},
			wantOutput: []string{`[SKIP]  "happy"`},
		},
		{
			name:  "saved words are updated when requested",
			words: []VocabularyWord{{Spelling: "happy", Score: intPtr(100)}},
			opts:  ImportOptions{UpdateExisting: true},
			setup: func(repo *mock_vocabulary.MockRepository) {
				repo.EXPECT().GetBySpelling(gomock.Any(), "happy").Return(vocabulary.Record{ID: 1, Spelling: "happy", Score: 500}, nil)
				repo.EXPECT().UpdateScore(gomock.Any(), int64(1), 100).Return(nil)
			},
			want:       &ImportResult{WordsUpdated: 1},
			wantOutput: []string{`[UPDATE]  "happy" (500 -> 100)`},
		},
		{
			name:  "dry run doesn't write",
			words: []VocabularyWord{{Spelling: "happy", Score: intPtr(100)}, {Spelling: "glad"}},
			opts:  ImportOptions{DryRun: true, UpdateExisting: true},
			setup: func(repo *mock_vocabulary.MockRepository) {
				repo.EXPECT().GetBySpelling(gomock.Any(), "happy").Return(vocabulary.Record{ID: 1, Spelling: "happy", Score: 500}, nil)
				repo.EXPECT().GetBySpelling(gomock.Any(), "glad").Return(vocabulary.Record{}, vocabulary.ErrNotFound)
			},
			want: &ImportResult{WordsNew: 1, WordsUpdated: 1},
		},
		{
			name:  "empty and duplicate spellings",
			words: []VocabularyWord{{Spelling: "  "}, {Spelling: "happy"}, {Spelling: "HAPPY"}},
			setup: func(repo *mock_vocabulary.MockRepository) {
				repo.EXPECT().GetBySpelling(gomock.Any(), "happy").Return(vocabulary.Record{}, vocabulary.ErrNotFound)
				repo.EXPECT().Insert(gomock.Any(), "happy", vocabulary.InitialScore).Return(vocabulary.Record{ID: 1}, nil)
			},
			want:       &ImportResult{WordsNew: 1, WordsSkipped: 1, WordsInvalid: 1},
			wantOutput: []string{"[INVALID]  empty spelling", `[SKIP]  "happy" (duplicate)`},
		},
		{
			name:  "store failure",
			words: []VocabularyWord{{Spelling: "happy"}},
			setup: func(repo *mock_vocabulary.MockRepository) {
				repo.EXPECT().GetBySpelling(gomock.Any(), "happy").Return(vocabulary.Record{}, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_vocabulary.NewMockRepository(ctrl)
			tt.setup(repo)

			var buf bytes.Buffer
			got, err := NewImporter(repo, &buf).ImportVocabulary(context.Background(), tt.words, tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			for _, want := range tt.wantOutput {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestExporter_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_vocabulary.NewMockRepository(ctrl)
	records := []vocabulary.Record{{ID: 1, Spelling: "happy", Score: 500}}
	repo.EXPECT().FindAll(gomock.Any()).Return(records, nil)

	got, err := NewExporter(repo).Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, records, got)

	repo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("connection refused"))
	_, err = NewExporter(repo).Export(context.Background())
	assert.Error(t, err)
}

func TestReadVocabularyFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("words with and without scores", func(t *testing.T) {
		path := filepath.Join(dir, "vocabulary.yml")
		require.NoError(t, os.WriteFile(path, []byte(`- spelling: happy
  score: 320
- spelling: glad
`), 0o644))

		got, err := ReadVocabularyFile(path)
		require.NoError(t, err)
		assert.Equal(t, []VocabularyWord{
			{Spelling: "happy", Score: intPtr(320)},
			{Spelling: "glad"},
		}, got)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yml")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		got, err := ReadVocabularyFile(path)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("invalid YAML", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yml")
		require.NoError(t, os.WriteFile(path, []byte("spelling: [happy"), 0o644))

		_, err := ReadVocabularyFile(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadVocabularyFile(filepath.Join(dir, "missing.yml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestToVocabularyWords(t *testing.T) {
	practiced := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	created := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	got := ToVocabularyWords([]vocabulary.Record{
		{ID: 1, Spelling: "happy", Score: 459, LastPracticedAt: practiced, CreatedAt: created},
	})
	require.Len(t, got, 1)
	assert.Equal(t, "happy", got[0].Spelling)
	assert.Equal(t, 459, *got[0].Score)
	assert.Equal(t, practiced, *got[0].LastPracticedAt)
	assert.Equal(t, created, *got[0].CreatedAt)
}
