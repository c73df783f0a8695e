// Package datasync provides import/export orchestration between YAML files and database.
package datasync

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/lexiquiz/internal/vocabulary"
)

// VocabularyWord is the YAML form of a saved word.
type VocabularyWord struct {
	Spelling        string     `yaml:"spelling"`
	Score           *int       `yaml:"score,omitempty"`
	LastPracticedAt *time.Time `yaml:"last_practiced_at,omitempty"`
	CreatedAt       *time.Time `yaml:"created_at,omitempty"`
}

// ImportResult tracks counts for each import operation.
type ImportResult struct {
	WordsNew     int
	WordsSkipped int
	WordsUpdated int
	WordsInvalid int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun         bool
	UpdateExisting bool
}

// ReadVocabularyFile reads the words of a vocabulary YAML file.
func ReadVocabularyFile(path string) ([]VocabularyWord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var words []VocabularyWord
	if err := yaml.NewDecoder(f).Decode(&words); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return words, nil
}

// Importer reads YAML vocabulary data and writes to DB.
type Importer struct {
	repository vocabulary.Repository
	writer     io.Writer
}

// NewImporter creates a new Importer.
func NewImporter(repository vocabulary.Repository, writer io.Writer) *Importer {
	return &Importer{
		repository: repository,
		writer:     writer,
	}
}

// ImportVocabulary saves new words, and updates the score of saved ones when UpdateExisting is set.
func (imp *Importer) ImportVocabulary(ctx context.Context, words []VocabularyWord, opts ImportOptions) (*ImportResult, error) {
	var result ImportResult
	seen := make(map[string]bool, len(words))

	for _, word := range words {
		spelling := vocabulary.NormalizeSpelling(word.Spelling)
		if spelling == "" {
			fmt.Fprintf(imp.writer, "  [INVALID]  empty spelling\n")
			result.WordsInvalid++
			continue
		}
		if seen[spelling] {
			fmt.Fprintf(imp.writer, "  [SKIP]  %q (duplicate)\n", spelling)
			result.WordsSkipped++
			continue
		}
		seen[spelling] = true

		if err := imp.importWord(ctx, spelling, word.Score, opts, &result); err != nil {
			return nil, fmt.Errorf("importWord(%s) > %w", spelling, err)
		}
	}
	return &result, nil
}

func (imp *Importer) importWord(ctx context.Context, spelling string, score *int, opts ImportOptions, result *ImportResult) error {
	existing, err := imp.repository.GetBySpelling(ctx, spelling)
	if err != nil && !errors.Is(err, vocabulary.ErrNotFound) {
		return fmt.Errorf("GetBySpelling() > %w", err)
	}

	if err == nil {
		if !opts.UpdateExisting || score == nil || vocabulary.ClampScore(*score) == existing.Score {
			fmt.Fprintf(imp.writer, "  [SKIP]  %q\n", spelling)
			result.WordsSkipped++
			return nil
		}
		if !opts.DryRun {
			if err := imp.repository.UpdateScore(ctx, existing.ID, *score); err != nil {
				return fmt.Errorf("UpdateScore() > %w", err)
			}
		}
		fmt.Fprintf(imp.writer, "  [UPDATE]  %q (%d -> %d)\n", spelling, existing.Score, vocabulary.ClampScore(*score))
		result.WordsUpdated++
		return nil
	}

	initialScore := vocabulary.InitialScore
	if score != nil {
		initialScore = *score
	}
	if !opts.DryRun {
		if _, err := imp.repository.Insert(ctx, spelling, initialScore); err != nil {
			return fmt.Errorf("Insert() > %w", err)
		}
	}
	fmt.Fprintf(imp.writer, "  [NEW]  %q\n", spelling)
	result.WordsNew++
	return nil
}

// Exporter reads DB and returns domain structs.
type Exporter struct {
	repository vocabulary.Repository
}

// NewExporter creates a new Exporter.
func NewExporter(repository vocabulary.Repository) *Exporter {
	return &Exporter{
		repository: repository,
	}
}

// Export reads all saved words ordered by spelling.
func (e *Exporter) Export(ctx context.Context) ([]vocabulary.Record, error) {
	records, err := e.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository.FindAll() > %w", err)
	}
	return records, nil
}

// ToVocabularyWords converts saved words into their YAML form.
func ToVocabularyWords(records []vocabulary.Record) []VocabularyWord {
	words := make([]VocabularyWord, 0, len(records))
	for _, record := range records {
		score := record.Score
		lastPracticedAt := record.LastPracticedAt
		createdAt := record.CreatedAt
		words = append(words, VocabularyWord{
			Spelling:        record.Spelling,
			Score:           &score,
			LastPracticedAt: &lastPracticedAt,
			CreatedAt:       &createdAt,
		})
	}
	return words
}
