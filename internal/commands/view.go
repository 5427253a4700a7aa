package commands

import (
	"context"

	"todo/internal/output"
)

func init() {
	Register(&ViewCmd{})
}

// ViewCmd implements the view command.
type ViewCmd struct{}

func (c *ViewCmd) Code() int        { return 1 }
func (c *ViewCmd) Name() string     { return "view" }
func (c *ViewCmd) Synopsis() string { return "View Tasks" }

func (c *ViewCmd) Run(ctx context.Context, env *Env) (Next, error) {
	output.FormatList(env.Out, env.Svc.List())
	return Continue, nil
}
