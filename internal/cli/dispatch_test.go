package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"todolist/internal/cli"
	"todolist/internal/commands"
	"todolist/internal/exitcode"
	"todolist/internal/session"
	"todolist/internal/testutil"
	"todolist/internal/todo"
)

// newDispatcher creates a dispatcher with an isolated config directory.
func newDispatcher(t *testing.T, list *todo.List, input string) *cli.Dispatcher {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TODOLIST_DEBUG", "")
	t.Setenv("TODOLIST_QUIET", "")
	return cli.NewDispatcher(commands.DefaultRegistry, list, strings.NewReader(input))
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	dispatcher := newDispatcher(t, todo.NewList(), "")

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"unknowncmd"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	dispatcher := newDispatcher(t, todo.NewList(), "")

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"--quiet"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	dispatcher := newDispatcher(t, todo.NewList(), "")

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr.String() != "" {
		t.Errorf("expected no stderr, got %q", stderr.String())
	}
	if !bytes.Contains(stdout.Bytes(), []byte("Usage:")) {
		t.Error("expected help output to contain 'Usage:'")
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	dispatcher := newDispatcher(t, todo.NewList(), "")

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"version"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr.String() != "" {
		t.Errorf("expected no stderr, got %q", stderr.String())
	}
	if stdout.String() != "todolist 0.1.0\n" {
		t.Errorf("expected 'todolist 0.1.0\\n', got %q", stdout.String())
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	dispatcher := newDispatcher(t, todo.NewList(), "")

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help", "--unknown"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_MissingFlagValue(t *testing.T) {
	dispatcher := newDispatcher(t, todo.NewList(), "")

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"list", "--config"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: flag needs an argument: -config\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_AddUsesSharedList(t *testing.T) {
	list := todo.NewList()
	dispatcher := newDispatcher(t, list, "")

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"add", "Buy", "milk"}, &stdout, &stderr)
	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr.String())
	}

	stdout.Reset()
	code = dispatcher.Run(context.Background(), []string{"done", "1"}, &stdout, &stderr)
	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr.String())
	}

	stdout.Reset()
	code = dispatcher.Run(context.Background(), []string{"ls"}, &stdout, &stderr)
	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout.String() != "   1  [X] Buy milk\n" {
		t.Errorf("unexpected list output %q", stdout.String())
	}
}

func TestDispatcher_QuietFlag(t *testing.T) {
	dispatcher := newDispatcher(t, todo.NewList(), "")

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"add", "--quiet", "Buy", "milk"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout.String() != "" {
		t.Errorf("expected empty stdout in quiet mode, got %q", stdout.String())
	}
}

func TestDispatcher_ConfigFileQuiet(t *testing.T) {
	dispatcher := newDispatcher(t, todo.NewList(), "")
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("quiet: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"add", "--config", dir, "Buy", "milk"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout.String() != "" {
		t.Errorf("expected quiet from config file, got %q", stdout.String())
	}
}

func TestDispatcher_BadConfigFile(t *testing.T) {
	dispatcher := newDispatcher(t, todo.NewList(), "")
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log_level: chatty\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"list", "--config", dir}, &stdout, &stderr)

	if code != exitcode.ConfigError {
		t.Errorf("expected exit code %d, got %d", exitcode.ConfigError, code)
	}
	if !strings.HasPrefix(stderr.String(), "error: config: ") {
		t.Errorf("expected config error, got %q", stderr.String())
	}
}

func TestDispatcher_MisspelledConfigKey(t *testing.T) {
	dispatcher := newDispatcher(t, todo.NewList(), "")
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("quite: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"list", "--config", dir}, &stdout, &stderr)

	if code != exitcode.ConfigError {
		t.Errorf("expected exit code %d, got %d", exitcode.ConfigError, code)
	}
}

func TestDispatcher_DebugLogsToStderr(t *testing.T) {
	dispatcher := newDispatcher(t, todo.NewList(), "")

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"add", "--debug", "Buy", "milk"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout.String() != "Task 'Buy milk' added.\n" {
		t.Errorf("debug logs must not reach stdout, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "task added") {
		t.Errorf("expected debug log on stderr, got %q", stderr.String())
	}
}

func TestDispatcher_NoArgsStartsMenu(t *testing.T) {
	list := todo.NewList()
	dispatcher := newDispatcher(t, list, "1\nBuy milk\n5\n")

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), nil, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(stdout.String(), session.Welcome) {
		t.Errorf("expected welcome banner, got %q", stdout.String())
	}
	if got := testutil.Rendered(list); len(got) != 1 || got[0] != "[ ] Buy milk" {
		t.Errorf("expected one task, got %q", got)
	}
}

func TestDispatcher_MenuRejectsArgs(t *testing.T) {
	dispatcher := newDispatcher(t, todo.NewList(), "")

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"menu", "extra"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr.String() != "error: unexpected argument: extra\n" {
		t.Errorf("unexpected stderr %q", stderr.String())
	}
}

func TestDispatcher_MenuCancelled(t *testing.T) {
	dispatcher := newDispatcher(t, todo.NewList(), "1\nnever\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(ctx, []string{"menu"}, &stdout, &stderr)

	if code != exitcode.Interrupted {
		t.Errorf("expected exit code %d, got %d", exitcode.Interrupted, code)
	}
	if strings.Contains(stdout.String(), session.Goodbye) {
		t.Errorf("expected no goodbye after interrupt, got %q", stdout.String())
	}
}

func TestDispatcher_MenuFailuresOnStdout(t *testing.T) {
	dispatcher := newDispatcher(t, todo.NewList(), "1\n   \n5\n")

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"menu"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(stdout.String(), "error: description cannot be empty\n") {
		t.Errorf("expected failure in menu transcript, got %q", stdout.String())
	}
	if stderr.String() != "" {
		t.Errorf("expected no stderr, got %q", stderr.String())
	}
}
