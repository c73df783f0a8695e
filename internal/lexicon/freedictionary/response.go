// https://dictionaryapi.dev/
package freedictionary

import (
	"fmt"

	"github.com/at-ishikawa/lexiquiz/internal/lexicon"
)

// Response is a successful lookup; the API returns one item per etymology.
type Response []Word

type Word struct {
	Word      string     `json:"word"`
	Phonetic  string     `json:"phonetic,omitempty"`
	Phonetics []Phonetic `json:"phonetics"`
	Origin    string     `json:"origin,omitempty"`
	Meanings  []Meaning  `json:"meanings"`
}

type Phonetic struct {
	Text  string `json:"text,omitempty"`
	Audio string `json:"audio,omitempty"`
}

type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
	Synonyms     []string     `json:"synonyms"`
	Antonyms     []string     `json:"antonyms"`
}

type Definition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example,omitempty"`
	Synonyms   []string `json:"synonyms"`
	Antonyms   []string `json:"antonyms"`
}

// ErrorResponse is returned with a 404 when the word is unknown.
type ErrorResponse struct {
	Title      string `json:"title"`
	Message    string `json:"message"`
	Resolution string `json:"resolution"`
}

// ToEntry merges every item of the response into one lexical entry.
func (r Response) ToEntry() (lexicon.Entry, error) {
	if len(r) == 0 {
		return lexicon.Entry{}, lexicon.ErrNotFound
	}

	entry := lexicon.Entry{
		Word: r[0].Word,
	}
	for _, word := range r {
		for _, meaning := range word.Meanings {
			converted, err := meaning.toMeaning()
			if err != nil {
				return lexicon.Entry{}, fmt.Errorf("word %s: %w", word.Word, err)
			}
			entry.Meanings = append(entry.Meanings, converted)
		}
	}
	return entry, nil
}

func (m Meaning) toMeaning() (lexicon.Meaning, error) {
	pos, err := lexicon.ParsePartOfSpeech(m.PartOfSpeech)
	if err != nil {
		return lexicon.Meaning{}, err
	}
	definitions := make([]lexicon.Definition, 0, len(m.Definitions))
	for _, d := range m.Definitions {
		definitions = append(definitions, lexicon.Definition{
			Text:     d.Definition,
			Example:  d.Example,
			Synonyms: d.Synonyms,
			Antonyms: d.Antonyms,
		})
	}
	return lexicon.Meaning{
		PartOfSpeech: pos,
		Definitions:  definitions,
		Synonyms:     m.Synonyms,
		Antonyms:     m.Antonyms,
	}, nil
}
