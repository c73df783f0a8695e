// Package randomword supplies random English words from random-word-api.vercel.app.
package randomword

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"resty.dev/v3"

	"github.com/at-ishikawa/lexiquiz/internal/lexicon"
)

const DefaultBaseURL = "https://random-word-api.vercel.app"

type Client struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
}

var _ lexicon.WordSupply = (*Client)(nil)

func NewClient(baseURL string, maxRetryAttempts uint) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Accept", "application/json")

	return &Client{
		httpClient:       client,
		maxRetryAttempts: maxRetryAttempts,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// RandomWords implements lexicon.WordSupply.
func (client *Client) RandomWords(ctx context.Context, count int, length int) ([]string, error) {
	if count <= 0 {
		return nil, nil
	}

	var words []string
	if err := lexicon.Do(ctx, "randomword.RandomWords", client.maxRetryAttempts, func() error {
		result, err := client.randomWords(ctx, count, length)
		if err != nil {
			return err
		}
		words = result
		return nil
	}); err != nil {
		return nil, err
	}

	slog.Default().Debug("random words fetched",
		"requested", count,
		"received", len(words))
	return words, nil
}

func (client *Client) randomWords(ctx context.Context, count int, length int) ([]string, error) {
	request := client.httpClient.R().
		SetContext(ctx).
		SetQueryParam("words", strconv.Itoa(count)).
		SetResult(&[]string{})
	if length > 0 {
		request.SetQueryParam("length", strconv.Itoa(length))
	}

	response, err := request.Get("/api")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return nil, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	words, ok := response.Result().(*[]string)
	if !ok || words == nil {
		return nil, fmt.Errorf("unexpected response body: %s", response.String())
	}
	return *words, nil
}
