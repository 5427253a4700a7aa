package commands

import (
	"context"

	"todo/internal/output"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the complete command.
type DoneCmd struct{}

func (c *DoneCmd) Code() int        { return 3 }
func (c *DoneCmd) Name() string     { return "done" }
func (c *DoneCmd) Synopsis() string { return "Mark Task as Complete" }

func (c *DoneCmd) Run(ctx context.Context, env *Env) (Next, error) {
	// Show the list so the user can pick a number
	entries := env.Svc.List()
	output.FormatList(env.Out, entries)
	if len(entries) == 0 {
		return Continue, nil
	}

	pos, ok, err := promptPosition(env, "Enter the number of the task to mark as complete: ")
	if err != nil || !ok {
		return Continue, err
	}

	task, already, err := env.Svc.Complete(pos)
	if err != nil {
		reportError(env, err)
		return Continue, nil
	}

	if already {
		output.Warning(env.Out, "task already complete: %s", task.Description())
		return Continue, nil
	}
	output.Success(env.Out, "task completed: %s", task.Description())
	return Continue, nil
}
