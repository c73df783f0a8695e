package cli

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnrecognizedAnswer = errors.New("unrecognized yes/no answer")

// ParseYesNo accepts y/yes/yeah/yea/true/on and n/no/nope/false/off, ignoring case.
func ParseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "yeah", "yea", "true", "on":
		return true, nil
	case "n", "no", "nope", "false", "off":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnrecognizedAnswer, s)
}
