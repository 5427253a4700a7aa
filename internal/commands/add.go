package commands

import (
	"context"

	"todo/internal/output"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Code() int        { return 2 }
func (c *AddCmd) Name() string     { return "add" }
func (c *AddCmd) Synopsis() string { return "Add Task" }

func (c *AddCmd) Run(ctx context.Context, env *Env) (Next, error) {
	line, err := env.Input.Prompt("Enter the description for the new task: ")
	if err != nil {
		return Continue, err
	}

	task, err := env.Svc.Add(line)
	if err != nil {
		reportError(env, err)
		return Continue, nil
	}

	output.Success(env.Out, "task added: %s", task.Description())
	return Continue, nil
}
