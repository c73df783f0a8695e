package cli

import (
	"context"
	"fmt"
	"strings"
)

// Shell is the interactive command loop: define, find, remove, practice, list and exit.
type Shell struct {
	*VocabularyCLI
}

func NewShell(vocabularyCLI *VocabularyCLI) *Shell {
	return &Shell{
		VocabularyCLI: vocabularyCLI,
	}
}

// Session runs one command. It returns errEnd on exit or when the input is closed.
func (s *Shell) Session(ctx context.Context) error {
	line, err := s.readLine(">> ")
	if err != nil {
		_, _ = fmt.Fprintln(s.stdoutWriter)
		return errEnd
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	command, argument := fields[0], strings.Join(fields[1:], " ")

	switch command {
	case "exit", "leave", "quit", "e", "q", "l":
		return errEnd
	case "define", "find":
		err = s.Define(ctx, argument)
	case "remove":
		err = s.Remove(ctx, argument)
	case "practice":
		err = s.Practice(ctx, 0)
	case "list":
		err = s.List(ctx)
	default:
		_, _ = fmt.Fprintf(s.stdoutWriter, "Unknown command %s.\n", command)
		return nil
	}
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		// a failed command doesn't end the shell
		_, _ = s.red.Fprintf(s.stdoutWriter, "Error: %v\n", err)
	}
	return nil
}
