package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"todolist/internal/config"
	"todolist/internal/exitcode"
	"todolist/internal/output"
	"todolist/internal/todo"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"complete"} }
func (c *DoneCmd) Synopsis() string  { return "Mark a task complete" }
func (c *DoneCmd) Usage() string     { return "todolist done <n>" }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, list *todo.List, args []string, out, errOut io.Writer) int {
	styles := output.NewStyles(cfg.Color)

	num, err := ParseTaskNumber(args)
	if err != nil {
		styles.FormatError(errOut, err.Error())
		return exitcode.UserError
	}

	res, err := list.MarkCompleteAt(num)
	if err != nil {
		return reportTaskError(styles, errOut, num, err)
	}
	log.FromContext(ctx).Debug("mark complete", "num", num, "outcome", res.Outcome)

	// Already complete is informational, not a failure.
	if !cfg.Quiet {
		switch res.Outcome {
		case todo.AlreadyComplete:
			fmt.Fprintf(out, "Task '%s' is already complete.\n", res.Description)
		default:
			fmt.Fprintf(out, "Task '%s' marked as complete.\n", res.Description)
		}
	}
	return exitcode.Success
}
