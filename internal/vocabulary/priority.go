package vocabulary

import (
	"sort"
	"time"
)

// PriorityPoolFactor sizes the pool SampleByPriority draws from: a batch of n words is
// a random sample of the 2n highest priorities, so a word just practiced can sit out a batch.
const PriorityPoolFactor = 2

// Priority ranks a record for practice: words the learner keeps missing and words
// that haven't been practiced for a while come first.
//
//	priority = (max(score, 0) + 1) * (1 + days since the last practice)
func Priority(record Record, now time.Time) float64 {
	score := record.Score
	if score < 0 {
		score = 0
	}
	days := now.Sub(record.LastPracticedAt).Hours() / 24
	if days < 0 {
		days = 0
	}
	return float64(score+1) * (1 + days)
}

// SortByPriority sorts records from the highest priority.
// Ties are broken by the older practice time, then by spelling.
func SortByPriority(records []Record, now time.Time) {
	sort.SliceStable(records, func(i, j int) bool {
		pi, pj := Priority(records[i], now), Priority(records[j], now)
		if pi != pj {
			return pi > pj
		}
		if !records[i].LastPracticedAt.Equal(records[j].LastPracticedAt) {
			return records[i].LastPracticedAt.Before(records[j].LastPracticedAt)
		}
		return records[i].Spelling < records[j].Spelling
	})
}
