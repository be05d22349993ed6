package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/weekboard/internal/app"
	"github.com/thenoetrevino/weekboard/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with both stores
	Config *config.Config
	owned  bool // Close releases App only when NewCLI created it
}

// NewCLI loads the config and opens the schedule database in the data dir
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return NewCLIWithConfig(ctx, cfg)
}

// NewCLIWithConfig initializes the CLI from an already loaded config
func NewCLIWithConfig(ctx context.Context, cfg *config.Config) (*CLI, error) {
	application, err := app.New(ctx,
		app.WithDataDir(cfg.ResolvedDataDir()),
		app.WithStorageKey(cfg.StorageKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{
		App:    application,
		Config: cfg,
		owned:  true,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}

type contextKey struct{}

// WithApp returns a context carrying an existing app. Commands run under it
// use that app instead of opening the database themselves.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, contextKey{}, a)
}

// GetCLIFromContext returns a CLI around the app stored by WithApp, or a
// freshly initialized one
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx != nil {
		if a, ok := ctx.Value(contextKey{}).(*app.App); ok && a != nil {
			return &CLI{App: a, Config: config.Default()}, nil
		}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return NewCLI(ctx)
}
