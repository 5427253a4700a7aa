// Package cli runs the interactive menu loop.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/console"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
	"todo/internal/store"
)

// Banner is printed once when the loop starts.
const Banner = "Welcome to the Simple Console To-Do List!"

// ChoicePrompt is printed after the menu.
const ChoicePrompt = "Enter your choice: "

// exitChoice is the menu code of the command run when input ends.
const exitChoice = 0

// Loop reads menu choices and dispatches them to commands.
type Loop struct {
	registry *commands.Registry
	cfg      *config.Config
	svc      service.Service
	logger   *slog.Logger
}

// NewLoop creates a loop over the commands in registry operating on svc.
func NewLoop(registry *commands.Registry, cfg *config.Config, svc service.Service, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop{
		registry: registry,
		cfg:      cfg,
		svc:      svc,
		logger:   logger,
	}
}

// Greet prints the banner and a notice describing how the task file was loaded.
func (l *Loop) Greet(out io.Writer, status store.LoadStatus) {
	name := filepath.Base(l.cfg.DataPath())

	fmt.Fprintln(out, Banner)
	switch status {
	case store.Loaded:
		fmt.Fprintf(out, "loaded %d task(s) from %s\n", l.svc.Len(), name)
	case store.Fresh:
		fmt.Fprintln(out, "no task file found, starting with an empty list")
	case store.Recovered:
		output.Warning(out, "could not read %s, starting with an empty list", name)
	}
}

// Run reads choices from in until the exit command runs or input ends.
// Returns the exit code.
func (l *Loop) Run(ctx context.Context, in io.Reader, out, errOut io.Writer) int {
	env := &commands.Env{
		Cfg:    l.cfg,
		Svc:    l.svc,
		Input:  console.NewPrompter(in, out),
		Out:    out,
		ErrOut: errOut,
		Logger: l.logger,
	}
	menu := commands.Menu(l.registry)

	for {
		output.FormatMenu(out, menu)

		line, err := env.Input.Prompt(ChoicePrompt)
		if err != nil {
			return l.finish(ctx, env, err)
		}

		choice, err := commands.ParseNumber(line)
		if err != nil {
			output.Error(errOut, "%v", err)
			continue
		}

		cmd, ok := l.registry.Find(choice)
		if !ok {
			output.Error(errOut, "invalid choice: %d", choice)
			continue
		}

		l.logger.Debug("running command", "command", cmd.Name())
		next, err := cmd.Run(ctx, env)
		if err != nil {
			return l.finish(ctx, env, err)
		}
		if next == commands.Stop {
			return exitcode.Success
		}
	}
}

// finish handles the end of standard input by running the exit command, so
// the task list is saved as if the user had chosen it.
func (l *Loop) finish(ctx context.Context, env *commands.Env, readErr error) int {
	// The pending prompt has no line ending yet
	fmt.Fprintln(env.Out)

	code := exitcode.Success
	if !errors.Is(readErr, io.EOF) {
		l.logger.Debug("reading input failed", "error", readErr)
		output.Error(env.ErrOut, "%v", readErr)
		code = exitcode.InputError
	} else {
		l.logger.Debug("end of input")
	}

	cmd, ok := l.registry.Find(exitChoice)
	if !ok {
		return code
	}
	if _, err := cmd.Run(ctx, env); err != nil {
		l.logger.Debug("exit command failed", "error", err)
	}
	return code
}
