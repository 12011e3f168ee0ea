package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	httpapi "github.com/forsitet/kanban-board/internal/api/http"
	"github.com/forsitet/kanban-board/internal/config"
	"github.com/forsitet/kanban-board/internal/logging"
	"github.com/forsitet/kanban-board/internal/render"
	"github.com/forsitet/kanban-board/internal/repo/remote"
	"github.com/forsitet/kanban-board/internal/service"
)

func main() {
	cfg, opts, err := config.ParseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(2)
	}

	logger := logging.NewLogger(cfg.Env, os.Stderr)

	source := remote.NewSource(cfg.Source.URL, cfg.Source.Timeout, logger)
	board := service.NewBoardService(source, logger, nil)
	app := service.NewApp(board, service.NewStatsService(board))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.Print {
		if err := printBoard(ctx, board, cfg); err != nil {
			fmt.Fprintln(os.Stderr, domainMessage(err))
			os.Exit(1)
		}
		return
	}

	if err := serve(ctx, app, cfg, logger); err != nil {
		logger.Error("server stopped with error", "error", err.Error())
		os.Exit(1)
	}
}

func printBoard(ctx context.Context, board *service.BoardService, cfg *config.Config) error {
	if _, err := board.Load(ctx); err != nil {
		return err
	}
	b, err := board.Board(ctx, cfg.DefaultGrouping(), cfg.DefaultOrdering())
	if err != nil {
		return err
	}
	return render.WriteTerminal(os.Stdout, b)
}

func serve(ctx context.Context, app *service.App, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("kanban board started", "env", cfg.Env, "source", cfg.Source.URL)

	// The first fetch happens on startup; a failure is kept as the error
	// state and shown on the board until a reload succeeds.
	if _, err := app.Board.Load(ctx); err != nil {
		logger.Warn("initial load failed", "error", err.Error())
	}

	server := httpapi.NewServer(app, logger, httpapi.BoardDefaults{
		Grouping: cfg.DefaultGrouping(),
		Ordering: cfg.DefaultOrdering(),
	})

	srv := &http.Server{
		Addr:         cfg.HTTPAddr(),
		Handler:      httpapi.NewRouter(server),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen and serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		logger.Info("server stopped gracefully")
		return nil
	})

	return g.Wait()
}
