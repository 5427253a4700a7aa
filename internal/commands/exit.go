package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"todo/internal/output"
)

func init() {
	Register(&ExitCmd{})
}

// ExitCmd implements the save-and-exit command.
type ExitCmd struct{}

func (c *ExitCmd) Code() int        { return 0 }
func (c *ExitCmd) Name() string     { return "exit" }
func (c *ExitCmd) Synopsis() string { return "Save and Exit" }

// Run saves the task list and stops the loop.
// A failed save is reported but does not prevent the exit.
func (c *ExitCmd) Run(ctx context.Context, env *Env) (Next, error) {
	save(env)
	fmt.Fprintln(env.Out, "goodbye")
	return Stop, nil
}

// save writes the task list to the configured data file and reports the outcome.
func save(env *Env) {
	path := env.Cfg.DataPath()
	if err := env.Svc.SaveTo(path); err != nil {
		env.Logger.Debug("save failed", "path", path, "error", err)
		output.Error(env.ErrOut, "failed to save tasks: %v", err)
		return
	}
	output.Success(env.Out, "tasks saved to %s", filepath.Base(path))
}
