package rapidapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/lexiquiz/internal/lexicon"
)

func TestPronunciation_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantAll string
	}{
		{
			name:    "struct format",
			json:    `{"all": "həˈloʊ"}`,
			wantAll: "həˈloʊ",
		},
		{
			name:    "string format",
			json:    `"həˈloʊ"`,
			wantAll: "həˈloʊ",
		},
		{
			name:    "empty struct",
			json:    `{"all": ""}`,
			wantAll: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Pronunciation
			err := json.Unmarshal([]byte(tt.json), &p)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAll, p.All)
		})
	}
}

func TestResponse_ToEntry(t *testing.T) {
	tests := []struct {
		name     string
		response Response
		want     lexicon.Entry
		wantErr  error
	}{
		{
			name: "results grouped by part of speech",
			response: Response{
				Word: "bank",
				Results: []Result{
					{PartOfSpeech: "noun", Definition: "a financial institution", Synonyms: []string{"depository"}},
					{PartOfSpeech: "verb", Definition: "tip laterally", Examples: []string{"the pilot banked", "ignored"}},
					{PartOfSpeech: "noun", Definition: "the side of a river", Antonyms: []string{"stream"}},
					{Definition: "no part of speech"},
				},
			},
			want: lexicon.Entry{
				Word: "bank",
				Meanings: []lexicon.Meaning{
					{
						PartOfSpeech: lexicon.PartOfSpeechNoun,
						Definitions: []lexicon.Definition{
							{Text: "a financial institution", Synonyms: []string{"depository"}},
							{Text: "the side of a river", Antonyms: []string{"stream"}},
						},
					},
					{
						PartOfSpeech: lexicon.PartOfSpeechVerb,
						Definitions: []lexicon.Definition{
							{Text: "tip laterally", Example: "the pilot banked"},
						},
					},
				},
			},
		},
		{
			name: "unknown part of speech",
			response: Response{
				Word:    "the",
				Results: []Result{{PartOfSpeech: "definite article", Definition: "x"}},
			},
			wantErr: lexicon.ErrUnknownPartOfSpeech,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.response.ToEntry()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
