package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"todo/internal/output"
)

// ErrMalformedInput indicates a menu choice or task number that is not an integer.
var ErrMalformedInput = errors.New("invalid input")

// ParseNumber parses a menu choice or task number typed by the user.
// Surrounding whitespace is ignored.
func ParseNumber(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrMalformedInput, s)
	}
	return n, nil
}

// promptPosition asks for a task number.
// ok is false when the answer was not a number; the error is already reported.
func promptPosition(env *Env, label string) (pos int, ok bool, err error) {
	line, err := env.Input.Prompt(label)
	if err != nil {
		return 0, false, err
	}

	pos, perr := ParseNumber(line)
	if perr != nil {
		reportError(env, perr)
		return 0, false, nil
	}
	return pos, true, nil
}

// reportError prints err as a recoverable user error.
func reportError(env *Env, err error) {
	output.Error(env.ErrOut, "%v", err)
}
