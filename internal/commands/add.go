package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"todolist/internal/config"
	"todolist/internal/exitcode"
	"todolist/internal/output"
	"todolist/internal/todo"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Add a task" }
func (c *AddCmd) Usage() string     { return "todolist add <description...>" }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, list *todo.List, args []string, out, errOut io.Writer) int {
	styles := output.NewStyles(cfg.Color)

	// Join args to form the description; the list trims and validates it.
	description := strings.Join(args, " ")

	task, err := list.Add(description)
	if err != nil {
		if errors.Is(err, todo.ErrInvalidArgument) {
			styles.FormatError(errOut, "description cannot be empty")
			return exitcode.UserError
		}
		styles.FormatError(errOut, err.Error())
		return exitcode.UserError
	}
	log.FromContext(ctx).Debug("task added", "num", list.Len(), "description", task.Description())

	if !cfg.Quiet {
		fmt.Fprintf(out, "Task '%s' added.\n", task.Description())
	}
	return exitcode.Success
}
