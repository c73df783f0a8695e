// Package quiz builds multiple-choice vocabulary questions, resolves the learner's
// replies and adapts mastery scores.
package quiz

import (
	"errors"
	"fmt"
	"strings"
)

type Kind string

const (
	// KindPrimary picks randomly between KindSynonym and KindDefinitionToWord.
	KindPrimary          Kind = "primary"
	KindSynonym          Kind = "synonym"
	KindAntonym          Kind = "antonym"
	KindDefinitionToWord Kind = "definition_to_word"
	KindWordToDefinition Kind = "word_to_definition"
)

var allKinds = []Kind{KindPrimary, KindSynonym, KindAntonym, KindDefinitionToWord, KindWordToDefinition}

func ParseKind(value string) (Kind, error) {
	for _, kind := range allKinds {
		if string(kind) == value {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unknown question kind %q", value)
}

// ErrUnsupported is returned when an entry lacks what a question kind needs.
var ErrUnsupported = errors.New("quiz: unsupported question")

type Answer struct {
	Text    string
	Correct bool
	// RecordID is set when Text is itself a saved word.
	RecordID *int64
}

type Question struct {
	// RecordID is the tested word.
	RecordID int64
	Word     string
	Kind     Kind
	Prompt   string
	Answers  []Answer
}

// CorrectAnswer returns the only correct answer.
func (q Question) CorrectAnswer() (Answer, bool) {
	for _, answer := range q.Answers {
		if answer.Correct {
			return answer, true
		}
	}
	return Answer{}, false
}

// Exclusions is a case-insensitive set of texts that must not be used as distractors.
type Exclusions struct {
	keys  map[string]struct{}
	texts []string
}

func NewExclusions(texts ...string) *Exclusions {
	exclusions := &Exclusions{
		keys: make(map[string]struct{}),
	}
	exclusions.Add(texts...)
	return exclusions
}

func (e *Exclusions) Add(texts ...string) {
	for _, text := range texts {
		key := exclusionKey(text)
		if key == "" {
			continue
		}
		if _, ok := e.keys[key]; ok {
			continue
		}
		e.keys[key] = struct{}{}
		e.texts = append(e.texts, text)
	}
}

func (e *Exclusions) Contains(text string) bool {
	_, ok := e.keys[exclusionKey(text)]
	return ok
}

// List returns the excluded texts in insertion order.
func (e *Exclusions) List() []string {
	return append([]string(nil), e.texts...)
}

func exclusionKey(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
