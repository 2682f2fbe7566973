// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/starford/orion/internal/mcpserver"
	"github.com/starford/orion/internal/models"
	"github.com/starford/orion/internal/repl"
	"github.com/starford/orion/internal/session"
	"github.com/starford/orion/internal/storage"
	"github.com/starford/orion/internal/tui"
)

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{
		version: "dev",
		stdin:   os.Stdin,
		stdout:  os.Stdout,
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger. stdout belongs to the front-end.
	logOut, closeLog, err := openLogOutput(cfg.App.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("data_file", cfg.Storage.DataFile),
		slog.String("frontend", cfg.App.Frontend),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Initialize storage and the session.
	store, err := storage.Open(cfg.Storage.DataFile, logger)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	sess := session.New(store,
		session.WithLogger(logger),
		session.WithIdentity(models.IdentityOptions{IgnoreTimes: cfg.Tasks.DuplicateIgnoresTime}),
	)

	g, gCtx := errgroup.WithContext(ctx)
	runCtx, stop := context.WithCancel(gCtx)
	defer stop()

	// Run the front-end.
	g.Go(func() error {
		defer stop()
		logger.Info("Starting front-end", slog.String("frontend", cfg.App.Frontend))
		return runFrontend(runCtx, cfg.App.Frontend, sess, app, logger)
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
			stop()
		case <-runCtx.Done():
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Stopped")
	return nil
}

func runFrontend(ctx context.Context, frontend string, sess *session.Session, app *application, logger *slog.Logger) error {
	switch frontend {
	case FrontendREPL:
		return repl.Run(ctx, sess, app.stdin, app.stdout, logger)
	case FrontendTUI:
		return tui.Run(ctx, sess, app.stdin, app.stdout)
	case FrontendMCP:
		if err := sess.LoadError(); err != nil {
			logger.Warn("serving with an empty task list", slog.String("error", err.Error()))
		}
		return mcpserver.New(sess, app.version, logger).Serve(ctx, app.stdin, app.stdout)
	default:
		return fmt.Errorf("unknown frontend %q", frontend)
	}
}

func openLogOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stderr, func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
