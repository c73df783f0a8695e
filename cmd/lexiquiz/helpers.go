package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/lexiquiz/internal/bootstrap"
	"github.com/at-ishikawa/lexiquiz/internal/cli"
	"github.com/at-ishikawa/lexiquiz/internal/config"
	"github.com/at-ishikawa/lexiquiz/internal/quiz"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}
	if provider != "" {
		cfg.Lexicon.Provider = string(provider)
		if err := config.ValidateLexicon(cfg.Lexicon); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// openApp loads the configuration and opens the store and the lexicon.
// The caller closes the app.
func openApp(ctx context.Context) (*bootstrap.App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("bootstrap.New() > %w", err)
	}
	return app, nil
}

// runWithApp opens the app, runs fn until it returns or the process is interrupted, and closes the app.
func runWithApp(cmd *cobra.Command, fn func(ctx context.Context, app *bootstrap.App) error) error {
	app, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	return app.Run(cmd.Context(), func(ctx context.Context) error {
		return fn(ctx, app)
	})
}

// newVocabularyCLI wires the command's input and output to a practice session of the kind.
func newVocabularyCLI(cmd *cobra.Command, app *bootstrap.App, kind quiz.Kind) (*cli.VocabularyCLI, error) {
	base := cli.NewInteractiveQuizCLI(cmd.InOrStdin(), cmd.OutOrStdout())
	session, err := app.NewSession(base, kind)
	if err != nil {
		return nil, err
	}
	return cli.NewVocabularyCLI(base, app.Lexicon, app.Repository, session), nil
}
