package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrTaskNumberRequired indicates no task number was provided.
var ErrTaskNumberRequired = errors.New("task number required")

// ParseTaskNumber parses the 1-based task number from args.
// Only the syntax is checked here; range is enforced by the list itself,
// so "0" and "-3" parse fine and fail later as out of range.
func ParseTaskNumber(args []string) (int, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return 0, ErrTaskNumberRequired
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("unexpected argument: %s", args[1])
	}

	tok := strings.TrimSpace(args[0])
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("invalid task number: %s", tok)
	}
	return n, nil
}
