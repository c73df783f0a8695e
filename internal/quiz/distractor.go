package quiz

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/lexiquiz/internal/lexicon"
	"github.com/at-ishikawa/lexiquiz/internal/vocabulary"
)

// FillMode tells the DistractorSourcer whether distractors are words or definitions,
// and how many of them may come from the saved words.
type FillMode struct {
	definitions  bool
	partOfSpeech lexicon.PartOfSpeech
	// allSaved asks the saved words for every remaining slot instead of a random share.
	allSaved bool
}

// WordFill fills distractors with words, taking a random share of them from the saved words.
var WordFill = FillMode{}

// SavedWordFill fills distractors with words, asking the saved words for all of them first.
var SavedWordFill = FillMode{allSaved: true}

// DefinitionFill fills distractors with definitions of words that have the part of speech.
func DefinitionFill(partOfSpeech lexicon.PartOfSpeech) FillMode {
	return FillMode{
		definitions:  true,
		partOfSpeech: partOfSpeech,
	}
}

func (mode FillMode) randomWordFactor() int {
	if mode.definitions {
		return 3
	}
	return 2
}

// DistractorSourcer fills the incorrect answers of a question, first from the saved
// words and then from the random word supply.
type DistractorSourcer struct {
	repository vocabulary.Repository
	lexicon    lexicon.Client
	random     Randomizer
}

func NewDistractorSourcer(repository vocabulary.Repository, lexiconClient lexicon.Client, random Randomizer) *DistractorSourcer {
	return &DistractorSourcer{
		repository: repository,
		lexicon:    lexiconClient,
		random:     random,
	}
}

// Fill appends up to remaining incorrect answers. Every accepted text is added to exclusions.
// A short fill is not an error; only store failures and a cancelled context are.
func (s *DistractorSourcer) Fill(ctx context.Context, answers []Answer, exclusions *Exclusions, remaining int, mode FillMode) ([]Answer, error) {
	if remaining <= 0 {
		return answers, nil
	}
	for _, answer := range answers {
		exclusions.Add(answer.Text)
	}

	answers, remaining, err := s.fillFromVocabulary(ctx, answers, exclusions, remaining, mode)
	if err != nil {
		return nil, err
	}
	if remaining <= 0 {
		return answers, nil
	}

	answers, err = s.fillFromRandomWords(ctx, answers, exclusions, remaining, mode)
	if err != nil {
		return nil, err
	}
	return answers, nil
}

func (s *DistractorSourcer) fillFromVocabulary(ctx context.Context, answers []Answer, exclusions *Exclusions, remaining int, mode FillMode) ([]Answer, int, error) {
	limit := remaining
	if !mode.allSaved {
		limit = 1 + s.random.Intn(remaining)
	}
	records, err := s.repository.SampleExcluding(ctx, exclusions.List(), limit)
	if err != nil {
		return nil, 0, fmt.Errorf("repository.SampleExcluding > %w", err)
	}

	for _, record := range records {
		if remaining <= 0 {
			break
		}
		if exclusions.Contains(record.Spelling) {
			continue
		}
		text := record.Spelling
		if mode.definitions {
			definition, ok := s.definitionOf(ctx, record.Spelling, mode.partOfSpeech, exclusions)
			if !ok {
				continue
			}
			text = definition
		}

		id := record.ID
		answers = append(answers, Answer{Text: text, RecordID: &id})
		exclusions.Add(record.Spelling, text)
		remaining--
	}
	return answers, remaining, nil
}

func (s *DistractorSourcer) fillFromRandomWords(ctx context.Context, answers []Answer, exclusions *Exclusions, remaining int, mode FillMode) ([]Answer, error) {
	words, err := s.lexicon.RandomWords(ctx, mode.randomWordFactor()*remaining, 0)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		slog.Default().Warn("failed to get random words for distractors",
			"requested", mode.randomWordFactor()*remaining,
			"error", err)
		return answers, nil
	}

	for _, word := range words {
		if remaining <= 0 {
			break
		}
		if exclusions.Contains(word) {
			continue
		}
		text := word
		if mode.definitions {
			definition, ok := s.definitionOf(ctx, word, mode.partOfSpeech, exclusions)
			if !ok {
				// don't look the same word up again
				exclusions.Add(word)
				continue
			}
			text = definition
		}

		answers = append(answers, Answer{Text: text})
		exclusions.Add(word, text)
		remaining--
	}
	if remaining > 0 {
		slog.Default().Debug("question has fewer answers than requested",
			"missing", remaining)
	}
	return answers, nil
}

// definitionOf looks the word up and picks a definition with the part of speech.
func (s *DistractorSourcer) definitionOf(ctx context.Context, word string, partOfSpeech lexicon.PartOfSpeech, exclusions *Exclusions) (string, bool) {
	entry, err := s.lexicon.Lookup(ctx, word)
	if err != nil {
		slog.Default().Debug("skip a distractor candidate",
			"word", word,
			"error", err)
		return "", false
	}
	return pickDefinition(s.random, entry, partOfSpeech, exclusions)
}

func pickDefinition(random Randomizer, entry lexicon.Entry, partOfSpeech lexicon.PartOfSpeech, exclusions *Exclusions) (string, bool) {
	var candidates []string
	for _, meaning := range entry.MeaningsOf(partOfSpeech) {
		for _, definition := range meaning.Definitions {
			if definition.Text == "" || exclusions.Contains(definition.Text) {
				continue
			}
			candidates = append(candidates, definition.Text)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	return pick(random, candidates), true
}
