package lexicon

import (
	"context"
)

//go:generate mockgen -source=client.go -destination=../mocks/lexicon/mock_client.go -package=mock_lexicon

// Dictionary looks up a word's lexical entry.
// It returns ErrNotFound when the provider doesn't know the word.
type Dictionary interface {
	Lookup(ctx context.Context, word string) (Entry, error)
}

// WordSupply returns random dictionary words. It is best-effort and may return
// fewer words than requested. A length of 0 means no length filter.
type WordSupply interface {
	RandomWords(ctx context.Context, count int, length int) ([]string, error)
}

// Client interface defines both lexical operations the quiz engine consumes
type Client interface {
	Dictionary
	WordSupply
}

type combinedClient struct {
	Dictionary
	WordSupply
}

// Combine joins a dictionary and a word supply from possibly different providers.
func Combine(dictionary Dictionary, supply WordSupply) Client {
	return combinedClient{
		Dictionary: dictionary,
		WordSupply: supply,
	}
}
