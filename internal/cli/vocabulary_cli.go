package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/at-ishikawa/lexiquiz/internal/lexicon"
	"github.com/at-ishikawa/lexiquiz/internal/quiz"
	"github.com/at-ishikawa/lexiquiz/internal/vocabulary"
)

// VocabularyCLI runs the learner-facing commands on top of the dictionary and the saved words.
type VocabularyCLI struct {
	*InteractiveQuizCLI
	dictionary lexicon.Dictionary
	repository vocabulary.Repository
	session    *quiz.Session
	now        func() time.Time
}

func NewVocabularyCLI(
	base *InteractiveQuizCLI,
	dictionary lexicon.Dictionary,
	repository vocabulary.Repository,
	session *quiz.Session,
) *VocabularyCLI {
	return &VocabularyCLI{
		InteractiveQuizCLI: base,
		dictionary:         dictionary,
		repository:         repository,
		session:            session,
		now:                time.Now,
	}
}

// Define prints the meanings of a word. Looking up a saved word again raises its score,
// otherwise the learner is offered to save it.
func (c *VocabularyCLI) Define(ctx context.Context, word string) error {
	if word == "" {
		_, _ = fmt.Fprintln(c.stdoutWriter, "Please specify a word to define.")
		return nil
	}

	entry, err := c.dictionary.Lookup(ctx, word)
	if err != nil {
		if errors.Is(err, lexicon.ErrNotFound) {
			_, _ = fmt.Fprintln(c.stdoutWriter, "Couldn't find the word you were looking for.")
			return nil
		}
		return fmt.Errorf("dictionary.Lookup > %w", err)
	}
	c.PrintEntry(entry)

	saved, err := c.repository.AddScore(ctx, entry.Word, vocabulary.RelookupPenalty)
	if err != nil {
		return fmt.Errorf("repository.AddScore > %w", err)
	}
	if saved {
		return nil
	}

	practice, err := c.Confirm("Would you like to practice this word? (Y/n): ")
	if err != nil {
		return err
	}
	if !practice {
		return nil
	}
	if _, err := c.repository.Insert(ctx, entry.Word, vocabulary.InitialScore); err != nil {
		return fmt.Errorf("repository.Insert > %w", err)
	}
	_, _ = fmt.Fprintln(c.stdoutWriter, "Saved the word successfully")
	return nil
}

func (c *VocabularyCLI) Remove(ctx context.Context, word string) error {
	deleted, err := c.repository.Delete(ctx, word)
	if err != nil {
		return fmt.Errorf("repository.Delete > %w", err)
	}
	if deleted {
		_, _ = fmt.Fprintln(c.stdoutWriter, "Deleted the word successfully.")
	} else {
		_, _ = fmt.Fprintln(c.stdoutWriter, "This word is not saved.")
	}
	return nil
}

// Practice runs one batch and prints a summary. A non-positive count uses the configured batch size.
func (c *VocabularyCLI) Practice(ctx context.Context, count int) error {
	result, err := c.session.RunBatch(ctx, count)
	if err != nil {
		return fmt.Errorf("session.RunBatch > %w", err)
	}
	if result.Asked() == 0 && result.Failed == 0 {
		_, _ = fmt.Fprintln(c.stdoutWriter, "No saved words to practice. Use define to save some.")
		return nil
	}
	_, _ = fmt.Fprintf(c.stdoutWriter, "Practiced %d words: %s correct, %s incorrect, %d skipped\n",
		result.Asked(),
		c.green.Sprint(result.Correct),
		c.red.Sprint(result.Incorrect),
		result.Skipped)
	if result.Failed > 0 {
		_, _ = fmt.Fprintf(c.stdoutWriter, "%d words couldn't be quizzed\n", result.Failed)
	}
	return nil
}

// List prints the saved words in practice order.
func (c *VocabularyCLI) List(ctx context.Context) error {
	records, err := c.repository.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("repository.FindAll > %w", err)
	}
	if len(records) == 0 {
		_, _ = fmt.Fprintln(c.stdoutWriter, "No saved words.")
		return nil
	}

	now := c.now()
	vocabulary.SortByPriority(records, now)
	w := tabwriter.NewWriter(c.stdoutWriter, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "WORD\tSCORE\tLAST PRACTICED")
	for _, record := range records {
		_, _ = fmt.Fprintf(w, "%s\t%d\t%s\n", record.Spelling, record.Score, record.LastPracticedAt.Local().Format(time.DateTime))
	}
	return w.Flush()
}
