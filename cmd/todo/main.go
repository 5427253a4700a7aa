// Package main is the entry point for the todo CLI.
package main

import (
	"context"
	"log/slog"
	"os"

	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/store"
)

func main() {
	cfg := config.New("")

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	// Load once at startup; the exit command saves once
	st, status := store.Open(cfg.DataPath(), logger)

	loop := cli.NewLoop(commands.DefaultRegistry, cfg, st, logger)
	loop.Greet(os.Stdout, status)

	code := loop.Run(context.Background(), os.Stdin, os.Stdout, os.Stderr)
	os.Exit(code)
}
