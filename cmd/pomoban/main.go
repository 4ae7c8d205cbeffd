// Package main is the pomoban entry point: a pomodoro timer strapped to a
// kanban board, in one terminal window.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"pomoban/internal/app"
	"pomoban/internal/config"
	"pomoban/internal/core/countdown"
	"pomoban/internal/services/deps"
	"pomoban/internal/services/stats"
	"pomoban/internal/services/timer"
	"pomoban/internal/services/topmost"
	"pomoban/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadOrCreate(config.DefaultPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closeLog, err := openLogger(cfg.Data.LogPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg.Data.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer store.Close()

	engine := countdown.New(cfg.Timer.WorkSeconds(), cfg.Timer.BreakSeconds())
	timerSvc := timer.NewService(store, engine, logger)

	// Re-bind the active task from the previous run and close any session
	// a crash left dangling.
	if task, ok, err := timerSvc.Restore(ctx, time.Now()); err != nil {
		logger.Warn("restore failed", "error", err)
	} else if ok {
		logger.Info("restored active task", "task", task.ID, "title", task.Title)
	}

	svc := app.Services{
		Store:   store,
		Timer:   timerSvc,
		Stats:   stats.NewService(store, logger),
		Deps:    deps.NewService(store, logger),
		Topmost: topmost.NewService(os.Stdout, cfg.Topmost.Enabled, logger),
	}

	model := app.New(cfg, svc, logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus())

	logger.Info("pomoban starting", "db", cfg.Data.DBPath)
	_, err = p.Run()
	return err
}

// openLogger sends slog output to a file so the TUI owns the terminal.
func openLogger(path string) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return logger, func() { f.Close() }, nil
}
