package quiz

import (
	"sort"
	"strconv"
	"strings"
)

const (
	SkipToken = "skip"

	acceptSimilarity = 0.9
	acceptMargin     = 0.25
)

type Outcome int

const (
	// OutcomeRetry means the input didn't identify an answer; ask again.
	OutcomeRetry Outcome = iota
	OutcomeResolved
	OutcomeSkip
)

func (o Outcome) String() string {
	switch o {
	case OutcomeResolved:
		return "resolved"
	case OutcomeSkip:
		return "skip"
	default:
		return "retry"
	}
}

type Resolution struct {
	Outcome Outcome
	// Index is the 0-based position of Answer in the displayed answers.
	Index  int
	Answer *Answer
}

// Resolve maps the learner's raw input to one of the displayed answers.
// A number in [1, len(answers)] selects by position; anything else is matched by text.
// A text is accepted when it equals an answer ignoring case, or when the best
// similarity is above 0.9 and beats the second best by more than 0.25.
func Resolve(raw string, answers []Answer) Resolution {
	input := strings.ToLower(strings.TrimSpace(raw))
	if input == SkipToken {
		return Resolution{Outcome: OutcomeSkip}
	}
	if input == "" || len(answers) == 0 {
		return Resolution{Outcome: OutcomeRetry}
	}

	if index, err := strconv.Atoi(input); err == nil && index >= 1 && index <= len(answers) {
		return resolved(answers, index-1)
	}

	for i, answer := range answers {
		if strings.ToLower(answer.Text) == input {
			return resolved(answers, i)
		}
	}

	type ranked struct {
		index      int
		similarity float64
	}
	ranking := make([]ranked, 0, len(answers))
	for i, answer := range answers {
		ranking = append(ranking, ranked{
			index:      i,
			similarity: Similarity(input, strings.ToLower(answer.Text)),
		})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].similarity > ranking[j].similarity
	})

	top := ranking[0]
	second := 0.0
	if len(ranking) > 1 {
		second = ranking[1].similarity
	}
	if top.similarity > acceptSimilarity && top.similarity-second > acceptMargin {
		return resolved(answers, top.index)
	}
	return Resolution{Outcome: OutcomeRetry}
}

func resolved(answers []Answer, index int) Resolution {
	answer := answers[index]
	return Resolution{
		Outcome: OutcomeResolved,
		Index:   index,
		Answer:  &answer,
	}
}
