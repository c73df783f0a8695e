package quiz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/lexiquiz/internal/lexicon"
	"github.com/at-ishikawa/lexiquiz/internal/vocabulary"
)

//go:generate mockgen -source=session.go -destination=../mocks/quiz/mock_session.go -package=mock_quiz

// Prompter presents questions to the learner.
type Prompter interface {
	// Ask shows the question and returns the raw reply. retry is true when
	// the previous reply didn't identify an answer.
	Ask(ctx context.Context, question Question, retry bool) (string, error)
	// Report shows how the question was resolved.
	Report(question Question, resolution Resolution, change ScoreChange)
}

type BatchResult struct {
	Correct   int
	Incorrect int
	Skipped   int
	// Failed counts the words that couldn't be quizzed, e.g. lookup or store failures.
	Failed int
}

func (r BatchResult) Asked() int {
	return r.Correct + r.Incorrect + r.Skipped
}

// Session runs practice batches: select, generate, ask, resolve, score and mark practiced.
type Session struct {
	selector   *Selector
	generator  *Generator
	updater    *ScoreUpdater
	dictionary lexicon.Dictionary
	repository vocabulary.Repository
	prompter   Prompter
	kind       Kind
}

type SessionConfig struct {
	BatchSize int
	Kind      Kind
	Generator GeneratorConfig
}

func NewSession(
	lexiconClient lexicon.Client,
	repository vocabulary.Repository,
	prompter Prompter,
	random Randomizer,
	config SessionConfig,
) *Session {
	kind := config.Kind
	if kind == "" {
		kind = KindPrimary
	}
	return &Session{
		selector:   NewSelector(repository, config.BatchSize),
		generator:  NewGenerator(lexiconClient, repository, random, config.Generator),
		updater:    NewScoreUpdater(repository),
		dictionary: lexiconClient,
		repository: repository,
		prompter:   prompter,
		kind:       kind,
	}
}

// RunBatch quizzes one batch of words. Failures of a single word are logged and the
// batch goes on; only a failed selection, a prompter error or cancellation stop it.
func (s *Session) RunBatch(ctx context.Context, count int) (BatchResult, error) {
	var result BatchResult
	records, err := s.selector.SelectBatch(ctx, count)
	if err != nil {
		return result, err
	}
	if len(records) == 0 {
		slog.Default().Info("no saved words to practice")
		return result, nil
	}

	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		resolution, err := s.practice(ctx, record)
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			var promptErr *promptError
			if errors.As(err, &promptErr) {
				return result, err
			}
			slog.Default().Warn("skip a word that couldn't be quizzed",
				"word", record.Spelling,
				"error", err)
			result.Failed++
			continue
		}

		switch {
		case resolution.Outcome == OutcomeSkip:
			result.Skipped++
		case resolution.Answer != nil && resolution.Answer.Correct:
			result.Correct++
		default:
			result.Incorrect++
		}

		if err := s.repository.MarkPracticed(ctx, record.ID); err != nil {
			slog.Default().Error("failed to mark a word practiced",
				"word", record.Spelling,
				"error", err)
		}
	}
	return result, nil
}

type promptError struct {
	err error
}

func (e *promptError) Error() string {
	return fmt.Sprintf("prompter.Ask > %v", e.err)
}

func (e *promptError) Unwrap() error {
	return e.err
}

func (s *Session) practice(ctx context.Context, record vocabulary.Record) (Resolution, error) {
	entry, err := s.dictionary.Lookup(ctx, record.Spelling)
	if err != nil {
		return Resolution{}, fmt.Errorf("dictionary.Lookup > %w", err)
	}

	question, err := s.generator.Generate(ctx, record, entry, s.kind)
	if err != nil {
		return Resolution{}, fmt.Errorf("generator.Generate > %w", err)
	}

	retry := false
	var resolution Resolution
	for {
		raw, err := s.prompter.Ask(ctx, question, retry)
		if err != nil {
			return Resolution{}, &promptError{err: err}
		}
		resolution = Resolve(raw, question.Answers)
		if resolution.Outcome != OutcomeRetry {
			break
		}
		retry = true
	}

	change, err := s.updater.Apply(ctx, question, resolution)
	if err != nil {
		// the answer is still reported without a score change
		slog.Default().Error("failed to update scores",
			"word", record.Spelling,
			"error", err)
	}
	s.prompter.Report(question, resolution, change)
	return resolution, nil
}
