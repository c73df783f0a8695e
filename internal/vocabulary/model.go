// Package vocabulary persists the learner's saved words and their mastery scores.
package vocabulary

import (
	"errors"
	"strings"
	"time"
)

const (
	// InitialScore is the score of a newly saved word.
	InitialScore = 500
	// MaxScore is the upper bound of a score. There is no lower bound.
	MaxScore = 1000
	// RelookupPenalty is added when a saved word is looked up again.
	RelookupPenalty = 5
)

var ErrNotFound = errors.New("vocabulary: word not found")

// Record is a saved word. A higher score means the learner knows the word less.
type Record struct {
	ID              int64
	Spelling        string
	Score           int
	LastPracticedAt time.Time
	CreatedAt       time.Time
}

// NormalizeSpelling is the form spellings are stored and compared in.
func NormalizeSpelling(spelling string) string {
	return strings.ToLower(strings.TrimSpace(spelling))
}

// ClampScore applies the upper bound.
func ClampScore(score int) int {
	if score > MaxScore {
		return MaxScore
	}
	return score
}

type wordRow struct {
	ID              int64  `db:"id"`
	Spelling        string `db:"spelling"`
	Score           int    `db:"score"`
	LastPracticedAt int64  `db:"last_practiced_at"`
	CreatedAt       int64  `db:"created_at"`
}

func (row wordRow) toRecord() Record {
	return Record{
		ID:              row.ID,
		Spelling:        row.Spelling,
		Score:           row.Score,
		LastPracticedAt: time.Unix(row.LastPracticedAt, 0).UTC(),
		CreatedAt:       time.Unix(row.CreatedAt, 0).UTC(),
	}
}
