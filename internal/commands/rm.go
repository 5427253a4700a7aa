package commands

import (
	"context"

	"todo/internal/output"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the remove command.
type RmCmd struct{}

func (c *RmCmd) Code() int        { return 4 }
func (c *RmCmd) Name() string     { return "rm" }
func (c *RmCmd) Synopsis() string { return "Remove Task" }

func (c *RmCmd) Run(ctx context.Context, env *Env) (Next, error) {
	entries := env.Svc.List()
	output.FormatList(env.Out, entries)
	if len(entries) == 0 {
		return Continue, nil
	}

	pos, ok, err := promptPosition(env, "Enter the number of the task to remove: ")
	if err != nil || !ok {
		return Continue, err
	}

	task, err := env.Svc.Remove(pos)
	if err != nil {
		reportError(env, err)
		return Continue, nil
	}

	output.Success(env.Out, "task removed: %s", task.Description())
	return Continue, nil
}
