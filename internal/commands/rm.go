package commands

import (
	"context"
	"errors"
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
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete"} }
func (c *RmCmd) Synopsis() string  { return "Delete a task" }
func (c *RmCmd) Usage() string     { return "todolist rm <n>" }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, list *todo.List, args []string, out, errOut io.Writer) int {
	styles := output.NewStyles(cfg.Color)

	num, err := ParseTaskNumber(args)
	if err != nil {
		styles.FormatError(errOut, err.Error())
		return exitcode.UserError
	}

	task, err := list.RemoveAt(num)
	if err != nil {
		return reportTaskError(styles, errOut, num, err)
	}
	log.FromContext(ctx).Debug("task removed", "num", num, "remaining", list.Len())

	if !cfg.Quiet {
		fmt.Fprintf(out, "Task '%s' deleted.\n", task.Description())
	}
	return exitcode.Success
}

// reportTaskError prints the error for a failed positional operation.
func reportTaskError(styles output.Styles, errOut io.Writer, num int, err error) int {
	if errors.Is(err, todo.ErrOutOfRange) {
		styles.FormatError(errOut, fmt.Sprintf("task number out of range: %d", num))
		return exitcode.UserError
	}
	styles.FormatError(errOut, err.Error())
	return exitcode.UserError
}
