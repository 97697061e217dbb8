// Package session runs the interactive numbered-menu loop over a task list.
//
// The session owns all console concerns: prompts, retrying non-numeric
// input, and short-circuiting on an empty list. Every action is carried out
// by the matching command from the registry, so the list only ever sees
// syntactically valid integers. Everything the menu prints, command failures
// included, goes to the one output stream.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"todolist/internal/commands"
	"todolist/internal/config"
	"todolist/internal/output"
	"todolist/internal/todo"
)

// Messages printed by the session.
const (
	Welcome       = "Welcome to your To-Do List Application!"
	Goodbye       = "Exiting To-Do List Application. Goodbye!"
	MenuTitle     = "--- To-Do List Menu ---"
	ChoicePrompt  = "Enter your choice: "
	NotANumber    = "Invalid input. Please enter a number."
	InvalidChoice = "Invalid choice. Please enter a number between 1 and 5."
	SelectHeader  = "--- Current Tasks (Select by Number) ---"
)

// Menu choices.
const (
	ChoiceAdd = iota + 1
	ChoiceDelete
	ChoiceDisplay
	ChoiceComplete
	ChoiceExit
)

type menuItem struct {
	label string
	run   func(s *Session, ctx context.Context) error
}

var menu = map[int]menuItem{
	ChoiceAdd:      {"Add Task", (*Session).add},
	ChoiceDelete:   {"Delete Task", (*Session).remove},
	ChoiceDisplay:  {"Display Tasks", (*Session).display},
	ChoiceComplete: {"Mark Task Complete", (*Session).complete},
	ChoiceExit:     {"Exit", nil},
}

// Session is one interactive run over a single task list.
type Session struct {
	cfg      *config.Config
	list     *todo.List
	registry *commands.Registry
	in       *bufio.Reader
	lines    chan line
	done     chan struct{}
	out      io.Writer
	styles   output.Styles
}

// line is one read from the input: text, or the error that ended input.
type line struct {
	text string
	err  error
}

// New creates a session reading from in. The list is owned by the caller
// and is mutated only through the registry's commands.
//
// Everything the menu prints, command failures included, goes to out so the
// transcript stays whole when it is piped.
func New(cfg *config.Config, list *todo.List, registry *commands.Registry, in io.Reader, out io.Writer) *Session {
	return &Session{
		cfg:      cfg,
		list:     list,
		registry: registry,
		in:       bufio.NewReader(in),
		out:      out,
		styles:   output.NewStyles(cfg.Color),
	}
}

// Run loops over the menu until the user exits or input ends.
// It returns nil on exit or end of input, ctx.Err() if ctx is cancelled, and
// any read error from the input.
func (s *Session) Run(ctx context.Context) error {
	logger := log.FromContext(ctx)

	s.lines = make(chan line)
	s.done = make(chan struct{})
	defer close(s.done)
	go s.scan()

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, Welcome)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()
		choice, err := s.readInt(ctx, ChoicePrompt)
		if errors.Is(err, io.EOF) {
			logger.Debug("input closed")
			fmt.Fprintln(s.out)
			fmt.Fprintln(s.out, Goodbye)
			return nil
		}
		if err != nil {
			return err
		}
		logger.Debug("menu choice", "choice", choice)

		item, ok := menu[choice]
		if !ok {
			fmt.Fprintln(s.out, InvalidChoice)
			continue
		}
		if item.run == nil {
			fmt.Fprintln(s.out, Goodbye)
			return nil
		}

		if err := item.run(s, ctx); err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out)
				fmt.Fprintln(s.out, Goodbye)
				return nil
			}
			return err
		}
	}
}

func (s *Session) printMenu() {
	fmt.Fprintln(s.out)
	s.styles.FormatHeader(s.out, MenuTitle)
	for choice := ChoiceAdd; choice <= ChoiceExit; choice++ {
		fmt.Fprintf(s.out, "%d. %s\n", choice, menu[choice].label)
	}
}

func (s *Session) add(ctx context.Context) error {
	fmt.Fprint(s.out, "Enter the task description: ")
	text, err := s.readLine(ctx)
	if err != nil {
		return err
	}
	s.exec(ctx, "add", text)
	return nil
}

func (s *Session) remove(ctx context.Context) error {
	if s.list.IsEmpty() {
		fmt.Fprintln(s.out, "No tasks to delete. Your to-do list is empty.")
		return nil
	}
	return s.pickAndRun(ctx, "Enter the number of the task to delete: ", "rm")
}

func (s *Session) complete(ctx context.Context) error {
	if s.list.IsEmpty() {
		fmt.Fprintln(s.out, "No tasks to mark complete. Your to-do list is empty.")
		return nil
	}
	return s.pickAndRun(ctx, "Enter the number of the task to mark complete: ", "done")
}

func (s *Session) display(ctx context.Context) error {
	// Reported here rather than by the list command, which stays silent
	// on an empty list in quiet mode.
	if s.list.IsEmpty() {
		fmt.Fprintln(s.out, output.EmptyList)
		return nil
	}
	fmt.Fprintln(s.out)
	s.styles.FormatHeader(s.out, output.ListHeader)
	s.exec(ctx, "list")
	return nil
}

// pickAndRun shows the numbered list, reads a task number and hands it to
// the named command.
func (s *Session) pickAndRun(ctx context.Context, prompt, command string) error {
	fmt.Fprintln(s.out)
	s.styles.FormatHeader(s.out, SelectHeader)
	s.exec(ctx, "list")

	num, err := s.readInt(ctx, prompt)
	if err != nil {
		return err
	}
	s.exec(ctx, command, strconv.Itoa(num))
	return nil
}

// exec runs a registered command. Failures have already been reported by
// the command, so only the exit code is logged.
func (s *Session) exec(ctx context.Context, name string, args ...string) {
	cmd := s.registry.MustFind(name)
	code := cmd.Run(ctx, s.cfg, s.list, args, s.out, s.out)
	log.FromContext(ctx).Debug("command finished", "command", name, "code", code, "len", s.list.Len())
}

// readInt prompts until the user enters an integer.
func (s *Session) readInt(ctx context.Context, prompt string) (int, error) {
	for {
		fmt.Fprint(s.out, prompt)
		text, err := s.readLine(ctx)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			fmt.Fprintln(s.out, NotANumber)
			continue
		}
		return n, nil
	}
}

// readLine returns the next input line, io.EOF when input is exhausted, or
// ctx.Err() if ctx is cancelled while waiting.
func (s *Session) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l := <-s.lines:
		return l.text, l.err
	}
}

// scan feeds input lines to readLine until input ends or the session is over.
// A blocked read on a terminal cannot be interrupted, so it runs apart from
// the menu loop. Lines have no length limit.
func (s *Session) scan() {
	send := func(l line) bool {
		select {
		case s.lines <- l:
			return true
		case <-s.done:
			return false
		}
	}

	for {
		text, err := s.in.ReadString('\n')
		if err != nil {
			// A final line without a newline still counts.
			if text != "" && errors.Is(err, io.EOF) {
				if !send(line{text: trimEOL(text)}) {
					return
				}
			}
			if !errors.Is(err, io.EOF) {
				err = fmt.Errorf("read input: %w", err)
			}
			// Keep reporting the end of input to every later read.
			for send(line{err: err}) {
			}
			return
		}
		if !send(line{text: trimEOL(text)}) {
			return
		}
	}
}

// trimEOL drops a trailing "\n" or "\r\n".
func trimEOL(text string) string {
	text = strings.TrimSuffix(text, "\n")
	return strings.TrimSuffix(text, "\r")
}
