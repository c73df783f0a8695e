package freedictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"

	"github.com/at-ishikawa/lexiquiz/internal/lexicon"
)

const DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2"

type Client struct {
	httpClient       *resty.Client
	fileCache        *lexicon.FileCache
	maxRetryAttempts uint
}

var _ lexicon.Dictionary = (*Client)(nil)

// NewClient creates a dictionaryapi.dev client. An empty cacheDirectory disables the cache.
func NewClient(baseURL string, cacheDirectory string, maxRetryAttempts uint) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Accept", "application/json")

	return &Client{
		httpClient:       client,
		fileCache:        lexicon.NewFileCache(cacheDirectory),
		maxRetryAttempts: maxRetryAttempts,
	}
}

func (c *Client) lookupAPI(ctx context.Context, word string) ([]byte, error) {
	res, err := c.httpClient.R().
		SetContext(ctx).
		Get("/entries/en/" + url.PathEscape(word))
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	switch {
	case res.StatusCode() == http.StatusNotFound:
		var errorResponse ErrorResponse
		_ = json.Unmarshal(res.Body(), &errorResponse)
		return nil, fmt.Errorf("%w: %s (%s)", lexicon.ErrNotFound, word, errorResponse.Title)
	case res.StatusCode() != http.StatusOK:
		return nil, fmt.Errorf("response error %d: %s", res.StatusCode(), string(res.Body()))
	}
	return res.Body(), nil
}

// Lookup implements lexicon.Dictionary.
func (c *Client) Lookup(ctx context.Context, word string) (lexicon.Entry, error) {
	contents, err := c.fileCache.Fetch(word, func() ([]byte, error) {
		var body []byte
		err := lexicon.Do(ctx, "freedictionary.Lookup", c.maxRetryAttempts, func() error {
			var err error
			body, err = c.lookupAPI(ctx, word)
			return err
		})
		return body, err
	})
	if err != nil {
		return lexicon.Entry{}, fmt.Errorf("lookup %s: %w", word, err)
	}

	var response Response
	if err := json.Unmarshal(contents, &response); err != nil {
		return lexicon.Entry{}, fmt.Errorf("json.Unmarshal > %w", err)
	}
	entry, err := response.ToEntry()
	if err != nil {
		return lexicon.Entry{}, fmt.Errorf("response.ToEntry > %w", err)
	}
	return entry, nil
}
