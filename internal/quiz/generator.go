package quiz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/lexiquiz/internal/lexicon"
	"github.com/at-ishikawa/lexiquiz/internal/vocabulary"
)

const (
	DefaultAnswerCount        = 4
	DefaultAntonymProbability = 0.5
)

type GeneratorConfig struct {
	AnswerCount int
	// AntonymProbability is the chance a definition question also offers an antonym.
	AntonymProbability float64
}

// Generator builds a Question for a saved word from its lexical entry.
type Generator struct {
	lexicon    lexicon.Client
	repository vocabulary.Repository
	sourcer    *DistractorSourcer
	random     Randomizer
	config     GeneratorConfig
}

func NewGenerator(lexiconClient lexicon.Client, repository vocabulary.Repository, random Randomizer, config GeneratorConfig) *Generator {
	if config.AnswerCount <= 0 {
		config.AnswerCount = DefaultAnswerCount
	}
	if config.AntonymProbability <= 0 {
		config.AntonymProbability = DefaultAntonymProbability
	}
	return &Generator{
		lexicon:    lexiconClient,
		repository: repository,
		sourcer:    NewDistractorSourcer(repository, lexiconClient, random),
		random:     random,
		config:     config,
	}
}

// Generate builds a question of the kind. It returns ErrUnsupported when the entry
// can't make one; any other error comes from the vocabulary store.
func (g *Generator) Generate(ctx context.Context, record vocabulary.Record, entry lexicon.Entry, kind Kind) (Question, error) {
	var question Question
	var err error
	switch kind {
	case KindPrimary, "":
		return g.GeneratePrimary(ctx, record, entry)
	case KindSynonym:
		question, err = g.synonymQuestion(ctx, record, entry, false)
	case KindAntonym:
		question, err = g.synonymQuestion(ctx, record, entry, true)
	case KindDefinitionToWord:
		question, err = g.definitionToWordQuestion(ctx, record, entry)
	case KindWordToDefinition:
		question, err = g.wordToDefinitionQuestion(ctx, record, entry)
	default:
		return Question{}, fmt.Errorf("unknown question kind %q", kind)
	}
	if err != nil {
		return Question{}, err
	}

	g.random.Shuffle(len(question.Answers), func(i, j int) {
		question.Answers[i], question.Answers[j] = question.Answers[j], question.Answers[i]
	})
	return question, nil
}

// GeneratePrimary picks a synonym or a definition question at random,
// and falls back to the definition question when the entry has no synonym pair.
func (g *Generator) GeneratePrimary(ctx context.Context, record vocabulary.Record, entry lexicon.Entry) (Question, error) {
	if g.random.Intn(2) == 0 {
		question, err := g.Generate(ctx, record, entry, KindSynonym)
		if err == nil {
			return question, nil
		}
		if !errors.Is(err, ErrUnsupported) {
			return Question{}, err
		}
		slog.Default().Debug("fall back to a definition question",
			"word", record.Spelling)
	}
	return g.Generate(ctx, record, entry, KindDefinitionToWord)
}

type synonymCandidate struct {
	synonyms []string
	antonyms []string
}

func (g *Generator) synonymQuestion(ctx context.Context, record vocabulary.Record, entry lexicon.Entry, antonym bool) (Question, error) {
	self := NewExclusions(record.Spelling, entry.Word)

	var candidates []synonymCandidate
	for _, meaning := range entry.Meanings {
		for _, definition := range meaning.Definitions {
			synonyms := filterWords(self, nil, definition.Synonyms, meaning.Synonyms)
			antonyms := filterWords(self, NewExclusions(synonyms...), definition.Antonyms, meaning.Antonyms)
			if len(synonyms) == 0 || len(antonyms) == 0 {
				continue
			}
			candidates = append(candidates, synonymCandidate{
				synonyms: synonyms,
				antonyms: antonyms,
			})
		}
	}
	if len(candidates) == 0 {
		return Question{}, fmt.Errorf("%w: %s has no definition with both a synonym and an antonym", ErrUnsupported, record.Spelling)
	}

	candidate := pick(g.random, candidates)
	correct, incorrect := pick(g.random, candidate.synonyms), pick(g.random, candidate.antonyms)
	kind, prompt := KindSynonym, fmt.Sprintf("What is the synonym of %s?", record.Spelling)
	if antonym {
		correct, incorrect = incorrect, correct
		kind, prompt = KindAntonym, fmt.Sprintf("What is the antonym of %s?", record.Spelling)
	}

	answers, err := g.wordAnswers(ctx, []string{correct}, []string{incorrect})
	if err != nil {
		return Question{}, err
	}

	exclusions := NewExclusions(record.Spelling, entry.Word)
	exclusions.Add(entry.AllSynonyms()...)
	exclusions.Add(entry.AllAntonyms()...)
	answers, err = g.sourcer.Fill(ctx, answers, exclusions, g.config.AnswerCount-len(answers), SavedWordFill)
	if err != nil {
		return Question{}, err
	}

	return Question{
		RecordID: record.ID,
		Word:     record.Spelling,
		Kind:     kind,
		Prompt:   prompt,
		Answers:  answers,
	}, nil
}

func (g *Generator) definitionToWordQuestion(ctx context.Context, record vocabulary.Record, entry lexicon.Entry) (Question, error) {
	meanings := meaningsWithDefinitions(entry)
	if len(meanings) == 0 {
		return Question{}, fmt.Errorf("%w: %s has no definition", ErrUnsupported, record.Spelling)
	}
	meaning := pick(g.random, meanings)
	definition := pick(g.random, meaning.Definitions)

	id := record.ID
	answers := []Answer{
		{Text: record.Spelling, Correct: true, RecordID: &id},
	}

	if g.random.Float64() < g.config.AntonymProbability {
		self := NewExclusions(record.Spelling, entry.Word)
		antonyms := filterWords(self, nil, definition.Antonyms)
		if len(antonyms) == 0 {
			antonyms = filterWords(self, nil, meaning.Antonyms)
		}
		if len(antonyms) > 0 {
			antonymAnswers, err := g.wordAnswers(ctx, nil, []string{pick(g.random, antonyms)})
			if err != nil {
				return Question{}, err
			}
			answers = append(answers, antonymAnswers...)
		}
	}

	exclusions := NewExclusions(record.Spelling, entry.Word)
	exclusions.Add(entry.AllSynonyms()...)
	answers, err := g.sourcer.Fill(ctx, answers, exclusions, g.config.AnswerCount-len(answers), WordFill)
	if err != nil {
		return Question{}, err
	}

	return Question{
		RecordID: record.ID,
		Word:     record.Spelling,
		Kind:     KindDefinitionToWord,
		Prompt:   fmt.Sprintf("What word matches the following definition? %q", definition.Text),
		Answers:  answers,
	}, nil
}

func (g *Generator) wordToDefinitionQuestion(ctx context.Context, record vocabulary.Record, entry lexicon.Entry) (Question, error) {
	meanings := meaningsWithDefinitions(entry)
	if len(meanings) == 0 {
		return Question{}, fmt.Errorf("%w: %s has no definition", ErrUnsupported, record.Spelling)
	}
	meaning := pick(g.random, meanings)
	definition := pick(g.random, meaning.Definitions)

	answers := []Answer{
		{Text: definition.Text, Correct: true},
	}
	exclusions := NewExclusions(record.Spelling, entry.Word, definition.Text)
	exclusions.Add(entry.AllSynonyms()...)
	exclusions.Add(entry.AllAntonyms()...)

	self := NewExclusions(record.Spelling, entry.Word)
	for _, antonym := range filterWords(self, nil, definition.Antonyms, meaning.Antonyms) {
		if len(answers) >= g.config.AnswerCount {
			break
		}
		antonymEntry, err := g.lexicon.Lookup(ctx, antonym)
		if err != nil {
			if ctx.Err() != nil {
				return Question{}, ctx.Err()
			}
			slog.Default().Debug("skip an antonym distractor",
				"antonym", antonym,
				"error", err)
			continue
		}
		text, ok := pickDefinition(g.random, antonymEntry, meaning.PartOfSpeech, exclusions)
		if !ok {
			continue
		}
		recordID, err := g.savedRecordID(ctx, antonym)
		if err != nil {
			return Question{}, err
		}
		answers = append(answers, Answer{Text: text, RecordID: recordID})
		exclusions.Add(text)
	}

	answers, err := g.sourcer.Fill(ctx, answers, exclusions, g.config.AnswerCount-len(answers), DefinitionFill(meaning.PartOfSpeech))
	if err != nil {
		return Question{}, err
	}

	return Question{
		RecordID: record.ID,
		Word:     record.Spelling,
		Kind:     KindWordToDefinition,
		Prompt:   fmt.Sprintf("The definition of %s is:", record.Spelling),
		Answers:  answers,
	}, nil
}

// wordAnswers builds answers for words, linking the ones that are saved.
func (g *Generator) wordAnswers(ctx context.Context, correct []string, incorrect []string) ([]Answer, error) {
	answers := make([]Answer, 0, len(correct)+len(incorrect))
	for i, word := range append(append([]string{}, correct...), incorrect...) {
		recordID, err := g.savedRecordID(ctx, word)
		if err != nil {
			return nil, err
		}
		answers = append(answers, Answer{
			Text:     word,
			Correct:  i < len(correct),
			RecordID: recordID,
		})
	}
	return answers, nil
}

func (g *Generator) savedRecordID(ctx context.Context, word string) (*int64, error) {
	record, err := g.repository.GetBySpelling(ctx, word)
	if errors.Is(err, vocabulary.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("repository.GetBySpelling > %w", err)
	}
	return &record.ID, nil
}

func meaningsWithDefinitions(entry lexicon.Entry) []lexicon.Meaning {
	var meanings []lexicon.Meaning
	for _, meaning := range entry.Meanings {
		if len(meaning.Definitions) > 0 {
			meanings = append(meanings, meaning)
		}
	}
	return meanings
}

// filterWords merges the word lists, dropping duplicates and anything in the exclusion sets.
func filterWords(self *Exclusions, others *Exclusions, lists ...[]string) []string {
	seen := NewExclusions()
	var words []string
	for _, list := range lists {
		for _, word := range list {
			if word == "" || self.Contains(word) || seen.Contains(word) {
				continue
			}
			if others != nil && others.Contains(word) {
				continue
			}
			seen.Add(word)
			words = append(words, word)
		}
	}
	return words
}
