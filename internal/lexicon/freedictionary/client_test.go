package freedictionary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/lexiquiz/internal/lexicon"
)

const happyResponse = `[
  {
    "word": "happy",
    "phonetic": "/ˈhæpi/",
    "phonetics": [{"text": "/ˈhæpi/"}],
    "meanings": [
      {
        "partOfSpeech": "adjective",
        "definitions": [
          {"definition": "Feeling pleasure.", "example": "A happy child.", "synonyms": ["glad"], "antonyms": ["sad"]}
        ],
        "synonyms": ["joyful"],
        "antonyms": ["unhappy"]
      }
    ]
  }
]`

func TestClient_Lookup(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		want       lexicon.Entry
		wantErr    error
	}{
		{
			name:       "found",
			statusCode: http.StatusOK,
			body:       happyResponse,
			want: lexicon.Entry{
				Word: "happy",
				Meanings: []lexicon.Meaning{
					{
						PartOfSpeech: lexicon.PartOfSpeechAdjective,
						Definitions: []lexicon.Definition{
							{Text: "Feeling pleasure.", Example: "A happy child.", Synonyms: []string{"glad"}, Antonyms: []string{"sad"}},
						},
						Synonyms: []string{"joyful"},
						Antonyms: []string{"unhappy"},
					},
				},
			},
		},
		{
			name:       "not found",
			statusCode: http.StatusNotFound,
			body:       `{"title": "No Definitions Found", "message": "Sorry pal", "resolution": "Try again"}`,
			wantErr:    lexicon.ErrNotFound,
		},
		{
			name:       "unknown part of speech",
			statusCode: http.StatusOK,
			body:       `[{"word": "the", "meanings": [{"partOfSpeech": "article", "definitions": [{"definition": "x"}]}]}]`,
			wantErr:    lexicon.ErrUnknownPartOfSpeech,
		},
		{
			name:       "empty response",
			statusCode: http.StatusOK,
			body:       `[]`,
			wantErr:    lexicon.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/entries/en/happy", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, "", 0)
			got, err := client.Lookup(context.Background(), "happy")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_Lookup_retriesServerErrors(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(happyResponse))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 2)
	got, err := client.Lookup(context.Background(), "happy")
	require.NoError(t, err)
	assert.Equal(t, "happy", got.Word)
	assert.Equal(t, 2, calls)
}

func TestClient_Lookup_exhaustedRetriesAreTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 1)
	_, err := client.Lookup(context.Background(), "happy")
	assert.ErrorIs(t, err, lexicon.ErrTransient)
}

func TestClient_Lookup_usesFileCache(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(happyResponse))
	}))
	defer server.Close()

	cacheDirectory := t.TempDir()
	client := NewClient(server.URL, cacheDirectory, 0)
	for i := 0; i < 2; i++ {
		got, err := client.Lookup(context.Background(), "happy")
		require.NoError(t, err)
		assert.Equal(t, "glad", got.Meanings[0].Definitions[0].Synonyms[0])
	}
	assert.Equal(t, 1, calls)

	_, err := os.Stat(filepath.Join(cacheDirectory, "happy.json"))
	assert.NoError(t, err)
}
