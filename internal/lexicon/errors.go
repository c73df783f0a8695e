package lexicon

import (
	"errors"
	"strings"
)

// Sentinel errors for lexicon providers.
// Use errors.Is to check: errors.Is(err, lexicon.ErrNotFound)
var (
	ErrNotFound            = errors.New("lexicon: word not found")
	ErrTransient           = errors.New("lexicon: transient failure")
	ErrUnknownPartOfSpeech = errors.New("lexicon: unknown part of speech")
)

// IsRetryableError determines if a provider error should trigger a retry
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTransient) {
		return true
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrUnknownPartOfSpeech) {
		return false
	}

	errStr := err.Error()
	// network-related errors
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") ||
		strings.Contains(errStr, "connection reset") || strings.Contains(errStr, "EOF") {
		return true
	}
	// 5xx and rate limiting
	if strings.Contains(errStr, "response error 5") || strings.Contains(errStr, "response error 429") {
		return true
	}
	return false
}
