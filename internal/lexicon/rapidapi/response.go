// https://rapidapi.com/dpventures/api/wordsapi
package rapidapi

import (
	"encoding/json"
	"fmt"

	"github.com/at-ishikawa/lexiquiz/internal/lexicon"
)

type Response struct {
	Word          string        `json:"word"`
	Syllables     Syllable      `json:"syllables"`
	Frequency     float64       `json:"frequency"`
	Pronunciation Pronunciation `json:"pronunciation"`
	Results       []Result      `json:"results"`
}

type Syllable struct {
	Count int      `json:"count"`
	List  []string `json:"list"`
}

type Pronunciation struct {
	All string `json:"all"`
}

func (p *Pronunciation) UnmarshalJSON(data []byte) error {
	// pronunciation can be either a struct or a simple string
	if len(data) > 0 && data[0] == '{' {
		var all struct {
			All string `json:"all"`
		}
		if err := json.Unmarshal(data, &all); err != nil {
			return fmt.Errorf("json.Unmarshal > %w", err)
		}
		p.All = all.All
	} else {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			p.All = string(data)
			return nil
		}
		p.All = s
	}
	return nil
}

type Result struct {
	Definition   string   `json:"definition"`
	Derivation   []string `json:"derivation,omitempty"`
	PartOfSpeech string   `json:"partOfSpeech"`
	Synonyms     []string `json:"synonyms"`
	Antonyms     []string `json:"antonyms,omitempty"`
	SimilarTo    []string `json:"similarTo,omitempty"`
	TypeOf       []string `json:"typeOf,omitempty"`
	Examples     []string `json:"examples"`
}

// ToEntry groups the results into one meaning per part of speech, in order of first appearance.
// Results without a part of speech are dropped; an unrecognized one is an error.
func (r Response) ToEntry() (lexicon.Entry, error) {
	entry := lexicon.Entry{
		Word: r.Word,
	}
	indexes := make(map[lexicon.PartOfSpeech]int)
	for _, result := range r.Results {
		if result.PartOfSpeech == "" {
			continue
		}
		pos, err := lexicon.ParsePartOfSpeech(result.PartOfSpeech)
		if err != nil {
			return lexicon.Entry{}, fmt.Errorf("word %s: %w", r.Word, err)
		}

		index, ok := indexes[pos]
		if !ok {
			index = len(entry.Meanings)
			indexes[pos] = index
			entry.Meanings = append(entry.Meanings, lexicon.Meaning{PartOfSpeech: pos})
		}

		var example string
		if len(result.Examples) > 0 {
			example = result.Examples[0]
		}
		entry.Meanings[index].Definitions = append(entry.Meanings[index].Definitions, lexicon.Definition{
			Text:     result.Definition,
			Example:  example,
			Synonyms: result.Synonyms,
			Antonyms: result.Antonyms,
		})
	}
	return entry, nil
}
