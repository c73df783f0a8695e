package datasync

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/at-ishikawa/lexiquiz/internal/assets"
	"github.com/at-ishikawa/lexiquiz/internal/lexicon"
	"github.com/at-ishikawa/lexiquiz/internal/vocabulary"
)

const MarkdownVocabularyFileName = "vocabulary.md"

// MarkdownVocabularySink renders saved words with their dictionary meanings into markdown.
type MarkdownVocabularySink struct {
	outputDir    string
	templatePath string
	dictionary   lexicon.Dictionary
	now          func() time.Time
}

// NewMarkdownVocabularySink creates a new MarkdownVocabularySink. A nil dictionary writes words without meanings.
func NewMarkdownVocabularySink(outputDir string, templatePath string, dictionary lexicon.Dictionary) *MarkdownVocabularySink {
	return &MarkdownVocabularySink{
		outputDir:    outputDir,
		templatePath: templatePath,
		dictionary:   dictionary,
		now:          time.Now,
	}
}

// WriteAll writes the words to vocabulary.md and returns its path.
func (s *MarkdownVocabularySink) WriteAll(ctx context.Context, records []vocabulary.Record) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	words := make([]assets.VocabularyWord, 0, len(records))
	for _, record := range records {
		word := assets.VocabularyWord{
			Spelling:        record.Spelling,
			Score:           record.Score,
			LastPracticedAt: record.LastPracticedAt,
		}
		if s.dictionary != nil {
			entry, err := s.dictionary.Lookup(ctx, record.Spelling)
			if err != nil {
				if ctx.Err() != nil {
					return "", ctx.Err()
				}
				slog.Default().Warn("export a word without meanings",
					"word", record.Spelling,
					"error", err)
			} else {
				word.Meanings = toTemplateMeanings(entry)
			}
		}
		words = append(words, word)
	}

	path := filepath.Join(s.outputDir, MarkdownVocabularyFileName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := assets.WriteVocabulary(f, s.templatePath, assets.VocabularyTemplate{
		Title: "Vocabulary",
		Date:  s.now(),
		Words: words,
	}); err != nil {
		return "", fmt.Errorf("assets.WriteVocabulary() > %w", err)
	}
	return path, nil
}

func toTemplateMeanings(entry lexicon.Entry) []assets.VocabularyMeaning {
	meanings := make([]assets.VocabularyMeaning, 0, len(entry.Meanings))
	for _, meaning := range entry.Meanings {
		definitions := make([]assets.VocabularyDefinition, 0, len(meaning.Definitions))
		for _, definition := range meaning.Definitions {
			definitions = append(definitions, assets.VocabularyDefinition{
				Text:     definition.Text,
				Example:  definition.Example,
				Synonyms: definition.Synonyms,
				Antonyms: definition.Antonyms,
			})
		}
		meanings = append(meanings, assets.VocabularyMeaning{
			PartOfSpeech: meaning.PartOfSpeech.String(),
			Definitions:  definitions,
			Synonyms:     meaning.Synonyms,
			Antonyms:     meaning.Antonyms,
		})
	}
	return meanings
}
