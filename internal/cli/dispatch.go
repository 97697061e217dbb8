// Package cli parses the command line and dispatches to the interactive
// menu or to a single command.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"todolist/internal/commands"
	"todolist/internal/config"
	"todolist/internal/exitcode"
	"todolist/internal/logging"
	"todolist/internal/session"
	"todolist/internal/todo"
)

// MenuCommand starts the interactive session. It is also the default when
// no arguments are given.
const MenuCommand = "menu"

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	list     *todo.List
	in       io.Reader
}

// NewDispatcher creates a dispatcher over list. in feeds the interactive menu.
func NewDispatcher(registry *commands.Registry, list *todo.List, in io.Reader) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		list:     list,
		in:       in,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> interactive menu
	if len(args) == 0 {
		return d.dispatchMenu(ctx, nil, out, errOut)
	}

	cmdName := args[0]

	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	if cmdName == MenuCommand {
		return d.dispatchMenu(ctx, args[1:], out, errOut)
	}

	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

// commonFlags are accepted by every command.
type commonFlags struct {
	configDir string
	quiet     bool
	debug     bool
}

func (f *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.configDir, "config", "", "")
	fs.BoolVar(&f.quiet, "quiet", false, "")
	fs.BoolVar(&f.debug, "debug", false, "")
}

// setup parses flags and loads config. On failure it reports to errOut and
// returns a non-zero exit code.
func (d *Dispatcher) setup(ctx context.Context, name string, cmd commands.Command, args []string, errOut io.Writer) (context.Context, *config.Config, []string, int) {
	// Create flag set with custom error handling
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	var common commonFlags
	common.register(fs)

	// Register command-specific flags
	if cmd != nil {
		cmd.RegisterFlags(fs)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", flagError(err))
		return ctx, nil, nil, exitcode.UserError
	}

	// Check if first positional arg starts with - (should have been parsed as flag)
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return ctx, nil, nil, exitcode.UserError
	}

	cfg, err := config.New(common.configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: config: %s\n", err)
		return ctx, nil, nil, exitcode.ConfigError
	}

	// Flags override config only when given explicitly.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "quiet":
			cfg.Quiet = common.quiet
		case "debug":
			cfg.Debug = common.debug
		}
	})

	logger := logging.New(errOut, cfg)
	logger.Debug("config loaded", "dir", cfg.Dir, "sources", strings.Join(cfg.Sources, ","))
	ctx = log.WithContext(ctx, logger)

	return ctx, cfg, positionalArgs, exitcode.Success
}

// flagError turns a flag package error into the message shown to the user.
func flagError(err error) string {
	errStr := err.Error()

	// Missing flag value
	if strings.HasPrefix(errStr, "flag needs an argument:") {
		flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
		return "flag needs an argument: " + flagName
	}

	// Unknown flag
	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
		return "unknown flag: " + flagName
	}

	return errStr
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	ctx, cfg, positionalArgs, code := d.setup(ctx, cmd.Name(), cmd, args, errOut)
	if code != exitcode.Success {
		return code
	}
	return cmd.Run(ctx, cfg, d.list, positionalArgs, out, errOut)
}

func (d *Dispatcher) dispatchMenu(ctx context.Context, args []string, out, errOut io.Writer) int {
	ctx, cfg, positionalArgs, code := d.setup(ctx, MenuCommand, nil, args, errOut)
	if code != exitcode.Success {
		return code
	}
	if len(positionalArgs) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	s := session.New(cfg, d.list, d.registry, d.in, out)
	if err := s.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.FromContext(ctx).Debug("session interrupted")
			return exitcode.Interrupted
		}
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.IOError
	}
	return exitcode.Success
}
