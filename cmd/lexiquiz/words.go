package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/lexiquiz/internal/bootstrap"
	"github.com/at-ishikawa/lexiquiz/internal/cli"
	"github.com/at-ishikawa/lexiquiz/internal/quiz"
)

func newDefineCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "define <word>",
		Aliases: []string{"find"},
		Short:   "Show the definition of a word and offer to save it",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				vocabularyCLI, err := newVocabularyCLI(cmd, app, "")
				if err != nil {
					return err
				}
				return vocabularyCLI.Define(ctx, strings.Join(args, " "))
			})
		},
	}
}

func newRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <word>",
		Short: "Remove a saved word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				vocabularyCLI, err := newVocabularyCLI(cmd, app, "")
				if err != nil {
					return err
				}
				return vocabularyCLI.Remove(ctx, strings.Join(args, " "))
			})
		},
	}
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved words, the next ones to practice first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				vocabularyCLI, err := newVocabularyCLI(cmd, app, "")
				if err != nil {
					return err
				}
				return vocabularyCLI.List(ctx)
			})
		},
	}
}

// Kind selects the question kind from the command line.
type Kind string

func (k *Kind) Set(val string) error {
	kind, err := quiz.ParseKind(val)
	if err != nil {
		return err
	}
	*k = Kind(kind)
	return nil
}

func (k Kind) String() string {
	return string(k)
}

func (k *Kind) Type() string {
	return "kind"
}

var _ pflag.Value = (*Kind)(nil)

func newPracticeCommand() *cobra.Command {
	var batchSize int
	var kind Kind
	command := &cobra.Command{
		Use:   "practice",
		Short: "Practice a batch of saved words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if batchSize < 0 {
				return fmt.Errorf("--batch-size must not be negative: %d", batchSize)
			}
			return runWithApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				vocabularyCLI, err := newVocabularyCLI(cmd, app, quiz.Kind(kind))
				if err != nil {
					return err
				}
				return vocabularyCLI.Practice(ctx, batchSize)
			})
		},
	}
	command.Flags().IntVar(&batchSize, "batch-size", 0, "Number of words to practice. 0 uses the configured batch size")
	command.Flags().Var(&kind, "kind", "Question kind: primary, synonym, antonym, definition_to_word or word_to_definition")
	return command
}

func newShellCommand() *cobra.Command {
	var kind Kind
	command := &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive shell to define, practice and remove words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				vocabularyCLI, err := newVocabularyCLI(cmd, app, quiz.Kind(kind))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Commands: define <word>, remove <word>, practice [count], list, quit")
				return vocabularyCLI.Run(ctx, cli.NewShell(vocabularyCLI))
			})
		},
	}
	command.Flags().Var(&kind, "kind", "Question kind used by practice")
	return command
}
