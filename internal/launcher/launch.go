package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/weekboard/internal/app"
	"github.com/thenoetrevino/weekboard/internal/config"
	"github.com/thenoetrevino/weekboard/internal/logging"
	"github.com/thenoetrevino/weekboard/internal/tui"
	"github.com/thenoetrevino/weekboard/internal/tui/state"
)

// Launch starts the TUI application on the given screen
func Launch(screen state.Screen) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Log to a file; the terminal belongs to the TUI
	logFile, err := logging.Init(cfg.ResolvedDataDir(), cfg.SlogLevel())
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing log file: %v\n", err)
		}
	}()

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	application, err := app.New(ctx,
		app.WithDataDir(cfg.ResolvedDataDir()),
		app.WithStorageKey(cfg.StorageKey),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	p := tea.NewProgram(tui.New(ctx, application, cfg, screen), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			slog.Info("shutdown signal received")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
