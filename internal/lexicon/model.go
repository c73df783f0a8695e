// Package lexicon provides lexical lookups (meanings, definitions, synonyms, antonyms)
// and a random-word supply used to build quiz questions.
package lexicon

import (
	"fmt"
	"strings"
)

type PartOfSpeech string

const (
	PartOfSpeechNoun         PartOfSpeech = "noun"
	PartOfSpeechPronoun      PartOfSpeech = "pronoun"
	PartOfSpeechVerb         PartOfSpeech = "verb"
	PartOfSpeechAdjective    PartOfSpeech = "adjective"
	PartOfSpeechAdverb       PartOfSpeech = "adverb"
	PartOfSpeechPreposition  PartOfSpeech = "preposition"
	PartOfSpeechConjunction  PartOfSpeech = "conjunction"
	PartOfSpeechInterjection PartOfSpeech = "interjection"
)

var allPartsOfSpeech = []PartOfSpeech{
	PartOfSpeechNoun,
	PartOfSpeechPronoun,
	PartOfSpeechVerb,
	PartOfSpeechAdjective,
	PartOfSpeechAdverb,
	PartOfSpeechPreposition,
	PartOfSpeechConjunction,
	PartOfSpeechInterjection,
}

// ParsePartOfSpeech converts a provider's part of speech into the closed set.
// Unknown values are an error, never a default.
func ParsePartOfSpeech(value string) (PartOfSpeech, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, pos := range allPartsOfSpeech {
		if string(pos) == normalized {
			return pos, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPartOfSpeech, value)
}

func (p PartOfSpeech) String() string {
	return string(p)
}

// Entry is the full dictionary record for one word.
type Entry struct {
	Word     string
	Meanings []Meaning
}

type Meaning struct {
	PartOfSpeech PartOfSpeech
	Definitions  []Definition
	Synonyms     []string
	Antonyms     []string
}

type Definition struct {
	Text     string
	Example  string
	Synonyms []string
	Antonyms []string
}

// AllSynonyms returns every meaning-level and definition-level synonym, deduplicated
// in order of first appearance.
func (e Entry) AllSynonyms() []string {
	var words []string
	for _, meaning := range e.Meanings {
		words = append(words, meaning.Synonyms...)
		for _, definition := range meaning.Definitions {
			words = append(words, definition.Synonyms...)
		}
	}
	return uniqueWords(words)
}

// AllAntonyms is the antonym counterpart of AllSynonyms.
func (e Entry) AllAntonyms() []string {
	var words []string
	for _, meaning := range e.Meanings {
		words = append(words, meaning.Antonyms...)
		for _, definition := range meaning.Definitions {
			words = append(words, definition.Antonyms...)
		}
	}
	return uniqueWords(words)
}

// MeaningsOf returns the meanings with the given part of speech.
func (e Entry) MeaningsOf(pos PartOfSpeech) []Meaning {
	var meanings []Meaning
	for _, meaning := range e.Meanings {
		if meaning.PartOfSpeech == pos && len(meaning.Definitions) > 0 {
			meanings = append(meanings, meaning)
		}
	}
	return meanings
}

// HasDefinitions reports whether at least one meaning carries a definition.
func (e Entry) HasDefinitions() bool {
	for _, meaning := range e.Meanings {
		if len(meaning.Definitions) > 0 {
			return true
		}
	}
	return false
}

func uniqueWords(words []string) []string {
	seen := make(map[string]bool, len(words))
	result := make([]string, 0, len(words))
	for _, word := range words {
		key := strings.ToLower(word)
		if word == "" || seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, word)
	}
	return result
}
