// Package bootstrap opens what the commands share: the vocabulary store, the lexicon
// client and the quiz session, and closes them on shutdown.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"sync"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/lexiquiz/internal/config"
	"github.com/at-ishikawa/lexiquiz/internal/database"
	"github.com/at-ishikawa/lexiquiz/internal/lexicon"
	"github.com/at-ishikawa/lexiquiz/internal/lexicon/freedictionary"
	"github.com/at-ishikawa/lexiquiz/internal/lexicon/randomword"
	"github.com/at-ishikawa/lexiquiz/internal/lexicon/rapidapi"
	"github.com/at-ishikawa/lexiquiz/internal/quiz"
	"github.com/at-ishikawa/lexiquiz/internal/vocabulary"
)

// App holds the opened dependencies and the hooks that release them.
type App struct {
	Config     *config.Config
	DB         *sqlx.DB
	Repository vocabulary.Repository
	Lexicon    lexicon.Client
	Random     *rand.Rand

	mu    sync.Mutex
	hooks []func(ctx context.Context) error
}

// New opens the database, applies the schema and builds the lexicon client of the configured provider.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	lexiconClient, err := NewLexiconClient(cfg.Lexicon)
	if err != nil {
		return nil, err
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open() > %w", err)
	}
	if err := database.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database.Migrate() > %w", err)
	}

	random := quiz.NewRandomizer(0)
	app := &App{
		Config:     cfg,
		DB:         db,
		Repository: vocabulary.NewDBRepository(db, random),
		Lexicon:    lexiconClient,
		Random:     random,
	}
	app.AddShutdownHook(func(ctx context.Context) error {
		return db.Close()
	})
	return app, nil
}

// NewLexiconClient builds the lookup and random word clients of the provider.
func NewLexiconClient(cfg config.LexiconConfig) (lexicon.Client, error) {
	switch cfg.Provider {
	case config.ProviderFreeDictionary, "":
		return lexicon.Combine(
			freedictionary.NewClient(cfg.FreeDictionary.BaseURL, cfg.CacheDirectory, cfg.RetryAttempts),
			randomword.NewClient(cfg.RandomWord.BaseURL, cfg.RetryAttempts),
		), nil
	case config.ProviderWordsAPI:
		return rapidapi.NewClient(cfg.CacheDirectory, rapidapi.Config{
			RapidAPIHost: cfg.RapidAPI.Host,
			RapidAPIKey:  cfg.RapidAPI.Key,
		}, cfg.RetryAttempts), nil
	}
	return nil, fmt.Errorf("unknown lexicon provider %q", cfg.Provider)
}

// NewSession builds a practice session from the quiz settings. An empty kind uses the configured one.
func (a *App) NewSession(prompter quiz.Prompter, kind quiz.Kind) (*quiz.Session, error) {
	if kind == "" {
		var err error
		kind, err = quiz.ParseKind(a.Config.Quiz.Kind)
		if err != nil {
			return nil, err
		}
	}
	return quiz.NewSession(a.Lexicon, a.Repository, prompter, a.Random, quiz.SessionConfig{
		BatchSize: a.Config.Quiz.BatchSize,
		Kind:      kind,
		Generator: quiz.GeneratorConfig{
			AnswerCount:        a.Config.Quiz.AnswerCount,
			AntonymProbability: a.Config.Quiz.AntonymProbability,
		},
	}), nil
}

// AddShutdownHook registers a function to call during shutdown.
// Hooks run in reverse order (LIFO). Thread-safe.
func (a *App) AddShutdownHook(fn func(ctx context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, fn)
}

// Run sets up signal handling and executes the run function.
// On OS interrupt the run function's context is cancelled, and the hooks
// run once the function returns or the interrupt arrives.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		if err := run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}
	return errors.Join(runErr, a.Close(context.Background()))
}

// Close runs the shutdown hooks once.
func (a *App) Close(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	var errs []error
	for i := len(a.hooks) - 1; i >= 0; i-- {
		if err := a.hooks[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.hooks = nil
	return errors.Join(errs...)
}
