package rapidapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/at-ishikawa/lexiquiz/internal/lexicon"
)

type Config struct {
	RapidAPIHost string
	RapidAPIKey  string
	// BaseURL overrides https://<RapidAPIHost>, mainly for tests
	BaseURL string
}

// Client reads WordsAPI through RapidAPI. It serves both lookups and random words.
type Client struct {
	config           Config
	httpClient       *resty.Client
	fileCache        *lexicon.FileCache
	maxRetryAttempts uint
}

var _ lexicon.Client = (*Client)(nil)

func NewClient(cacheDirectory string, config Config, maxRetryAttempts uint) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s", config.RapidAPIHost)
	}
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("x-rapidapi-host", config.RapidAPIHost)
	client.SetHeader("x-rapidapi-key", config.RapidAPIKey)

	return &Client{
		config:           config,
		httpClient:       client,
		fileCache:        lexicon.NewFileCache(cacheDirectory),
		maxRetryAttempts: maxRetryAttempts,
	}
}

func (c *Client) get(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}
	switch {
	case res.StatusCode() == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", lexicon.ErrNotFound, path)
	case res.StatusCode() != http.StatusOK:
		return nil, fmt.Errorf("response error %d: %s", res.StatusCode(), string(res.Body()))
	}
	return res.Body(), nil
}

// Lookup implements lexicon.Dictionary.
func (c *Client) Lookup(ctx context.Context, word string) (lexicon.Entry, error) {
	contents, err := c.fileCache.Fetch(word, func() ([]byte, error) {
		var body []byte
		err := lexicon.Do(ctx, "rapidapi.Lookup", c.maxRetryAttempts, func() error {
			var err error
			body, err = c.get(ctx, "/words/"+url.PathEscape(word), nil)
			return err
		})
		return body, err
	})
	if err != nil {
		return lexicon.Entry{}, fmt.Errorf("lookup %s: %w", word, err)
	}

	var resp Response
	if err := json.Unmarshal(contents, &resp); err != nil {
		return lexicon.Entry{}, fmt.Errorf("json.Unmarshal > %w", err)
	}
	entry, err := resp.ToEntry()
	if err != nil {
		return lexicon.Entry{}, fmt.Errorf("resp.ToEntry > %w", err)
	}
	if len(entry.Meanings) == 0 {
		return lexicon.Entry{}, fmt.Errorf("%w: %s has no results", lexicon.ErrNotFound, word)
	}
	return entry, nil
}

// RandomWords implements lexicon.WordSupply.
// WordsAPI returns one random word per request, so this is best-effort:
// failed requests are logged and skipped.
func (c *Client) RandomWords(ctx context.Context, count int, length int) ([]string, error) {
	query := map[string]string{"random": "true"}
	if length > 0 {
		query["letters"] = strconv.Itoa(length)
	}

	words := make([]string, 0, count)
	var lastErr error
	for i := 0; i < count; i++ {
		var body []byte
		err := lexicon.Do(ctx, "rapidapi.RandomWords", c.maxRetryAttempts, func() error {
			var err error
			body, err = c.get(ctx, "/words/", query)
			return err
		})
		if err != nil {
			if ctx.Err() != nil {
				return words, ctx.Err()
			}
			lastErr = err
			slog.Default().Warn("failed to fetch a random word", "error", err)
			continue
		}

		var resp Response
		if err := json.Unmarshal(body, &resp); err != nil {
			lastErr = fmt.Errorf("json.Unmarshal > %w", err)
			continue
		}
		if resp.Word != "" {
			words = append(words, resp.Word)
		}
	}
	if len(words) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return words, nil
}
