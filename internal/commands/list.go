package commands

import (
	"context"
	"flag"
	"io"

	"github.com/charmbracelet/log"

	"todolist/internal/config"
	"todolist/internal/exitcode"
	"todolist/internal/output"
	"todolist/internal/todo"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "todolist list" }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, list *todo.List, args []string, out, errOut io.Writer) int {
	styles := output.NewStyles(cfg.Color)
	log.FromContext(ctx).Debug("list", "len", list.Len())

	// Quiet mode suppresses the empty-list notice, not the tasks.
	if list.IsEmpty() && cfg.Quiet {
		return exitcode.Success
	}

	styles.FormatList(out, list)
	return exitcode.Success
}
