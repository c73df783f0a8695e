package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/lexiquiz/internal/quiz"
)

var errEnd = errors.New("end")

// InteractiveQuizCLI reads the learner's replies and prints questions and results.
// It implements quiz.Prompter.
type InteractiveQuizCLI struct {
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	green        *color.Color
	red          *color.Color
}

func NewInteractiveQuizCLI(stdin io.Reader, stdout io.Writer) *InteractiveQuizCLI {
	return &InteractiveQuizCLI{
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		green:        color.New(color.FgGreen),
		red:          color.New(color.FgRed),
	}
}

func (cli *InteractiveQuizCLI) readLine(prompt string) (string, error) {
	_, _ = fmt.Fprint(cli.stdoutWriter, prompt)
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		// a last line without a newline is still a reply
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (cli *InteractiveQuizCLI) Ask(ctx context.Context, question quiz.Question, retry bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if retry {
		_, _ = fmt.Fprintf(cli.stdoutWriter, "Couldn't tell which answer you meant. Enter a number between 1 and %d, the answer or %q.\n",
			len(question.Answers), quiz.SkipToken)
	} else {
		_, _ = cli.bold.Fprintln(cli.stdoutWriter, question.Prompt)
		for i, answer := range question.Answers {
			_, _ = fmt.Fprintf(cli.stdoutWriter, "[%d]: %s\n", i+1, answer.Text)
		}
	}
	return cli.readLine("Enter the number of the correct answer: ")
}

func (cli *InteractiveQuizCLI) Report(question quiz.Question, resolution quiz.Resolution, change quiz.ScoreChange) {
	switch {
	case resolution.Outcome == quiz.OutcomeSkip:
		_, _ = fmt.Fprintln(cli.stdoutWriter, "Skipped the question.")
		return
	case resolution.Answer == nil:
		return
	case resolution.Answer.Correct:
		_, _ = fmt.Fprint(cli.stdoutWriter, "\u2705 ")
		_, _ = cli.green.Fprintln(cli.stdoutWriter, "The answer is correct. Well done!")
	default:
		correct := "unknown"
		if answer, ok := question.CorrectAnswer(); ok {
			correct = answer.Text
		}
		_, _ = fmt.Fprint(cli.stdoutWriter, "\u274C ")
		_, _ = cli.red.Fprintf(cli.stdoutWriter, "The answer is incorrect. The right answer is %s.\n",
			cli.bold.Sprint(correct))
	}

	if change.Tested != nil {
		_, _ = fmt.Fprintf(cli.stdoutWriter, "Score of %s: %d -> %d\n", question.Word, change.Tested.Before, change.Tested.After)
	}
	if change.Linked != nil {
		_, _ = fmt.Fprintf(cli.stdoutWriter, "Score of %s: %d -> %d\n", resolution.Answer.Text, change.Linked.Before, change.Linked.After)
	}
}

// Confirm asks a yes/no question until the reply is recognized. An empty reply is yes.
func (cli *InteractiveQuizCLI) Confirm(prompt string) (bool, error) {
	for {
		line, err := cli.readLine(prompt)
		if err != nil {
			return false, err
		}
		if line == "" {
			return true, nil
		}
		answer, err := ParseYesNo(line)
		if err == nil {
			return answer, nil
		}
		_, _ = fmt.Fprintln(cli.stdoutWriter, "Please answer yes or no.")
	}
}

type Session interface {
	Session(ctx context.Context) error
}

// Run repeats the session until it ends, fails, or the process is interrupted.
func (cli *InteractiveQuizCLI) Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := session.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		_, _ = fmt.Fprintln(cli.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}
