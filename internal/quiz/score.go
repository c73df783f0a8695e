package quiz

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/lexiquiz/internal/vocabulary"
)

// CorrectScore lowers the score after a correct answer: round(0.92s - 0.5),
// where a tie rounds down. The result is capped at vocabulary.MaxScore.
func CorrectScore(score int) int {
	// ceil((92s - 100) / 100) in integers to avoid float error at the ties
	return vocabulary.ClampScore(ceilDiv(92*score-100, 100))
}

// IncorrectScore raises the score after an incorrect answer: round(1.04s + 0.5),
// where a tie rounds up. The result is capped at vocabulary.MaxScore.
func IncorrectScore(score int) int {
	return vocabulary.ClampScore(floorDiv(104*score+100, 100))
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}

type ScoreDelta struct {
	RecordID int64
	Before   int
	After    int
}

type ScoreChange struct {
	Tested *ScoreDelta
	// Linked is the saved word the learner confused the tested word with.
	Linked *ScoreDelta
}

// ScoreUpdater persists the score changes of a resolved question.
type ScoreUpdater struct {
	repository vocabulary.Repository
}

func NewScoreUpdater(repository vocabulary.Repository) *ScoreUpdater {
	return &ScoreUpdater{
		repository: repository,
	}
}

// Apply updates the tested word, and the chosen word as well when a wrong answer is a saved word.
// Unresolved questions are not scored.
func (u *ScoreUpdater) Apply(ctx context.Context, question Question, resolution Resolution) (ScoreChange, error) {
	if resolution.Outcome != OutcomeResolved || resolution.Answer == nil {
		return ScoreChange{}, nil
	}

	if resolution.Answer.Correct {
		tested, err := u.update(ctx, question.RecordID, CorrectScore)
		if err != nil {
			return ScoreChange{}, err
		}
		return ScoreChange{Tested: tested}, nil
	}

	tested, err := u.update(ctx, question.RecordID, IncorrectScore)
	if err != nil {
		return ScoreChange{}, err
	}
	change := ScoreChange{Tested: tested}

	linkedID := resolution.Answer.RecordID
	if linkedID == nil || *linkedID == question.RecordID {
		return change, nil
	}
	linked, err := u.update(ctx, *linkedID, IncorrectScore)
	if err != nil {
		return change, err
	}
	change.Linked = linked
	return change, nil
}

func (u *ScoreUpdater) update(ctx context.Context, id int64, next func(int) int) (*ScoreDelta, error) {
	record, err := u.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("repository.GetByID > %w", err)
	}
	score := next(record.Score)
	if err := u.repository.UpdateScore(ctx, id, score); err != nil {
		return nil, fmt.Errorf("repository.UpdateScore > %w", err)
	}
	return &ScoreDelta{
		RecordID: id,
		Before:   record.Score,
		After:    score,
	}, nil
}
