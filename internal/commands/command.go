// Package commands provides the menu command interface and implementations.
package commands

import (
	"context"
	"io"
	"log/slog"

	"todo/internal/config"
	"todo/internal/console"
	"todo/internal/service"
)

// Next tells the loop what to do after a command has run.
type Next int

const (
	// Continue redisplays the menu.
	Continue Next = iota

	// Stop ends the loop.
	Stop
)

// Env carries everything a command needs for one run.
type Env struct {
	Cfg    *config.Config
	Svc    service.Service
	Input  *console.Prompter
	Out    io.Writer
	ErrOut io.Writer
	Logger *slog.Logger
}

// Command defines the interface for menu commands.
type Command interface {
	// Code returns the number the user types to select the command.
	Code() int

	// Name returns a short identifier used in logs.
	Name() string

	// Synopsis returns the menu label.
	Synopsis() string

	// Run executes the command.
	// A non-nil error means standard input failed (io.EOF once exhausted);
	// user mistakes are reported to env.ErrOut and return Continue, nil.
	Run(ctx context.Context, env *Env) (Next, error)
}
