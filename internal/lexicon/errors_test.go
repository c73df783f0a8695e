package lexicon

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "transient", err: fmt.Errorf("lookup: %w", ErrTransient), want: true},
		{name: "not found", err: fmt.Errorf("lookup: %w", ErrNotFound), want: false},
		{name: "unknown part of speech", err: ErrUnknownPartOfSpeech, want: false},
		{name: "connection refused", err: errors.New("dial tcp: connection refused"), want: true},
		{name: "timeout", err: errors.New("read tcp: i/o timeout"), want: true},
		{name: "server error", err: errors.New("response error 503: unavailable"), want: true},
		{name: "rate limited", err: errors.New("response error 429: slow down"), want: true},
		{name: "bad request", err: errors.New("response error 400: bad"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryableError(tt.err))
		})
	}
}
