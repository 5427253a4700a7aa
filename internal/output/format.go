// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"todo/internal/service"
)

const (
	// MenuTitle is the header line printed above the menu.
	MenuTitle = "--- To-Do List Menu ---"

	// EmptyList is printed by the view command when there are no tasks.
	EmptyList = "list is empty"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
)

// MenuItem is one line of the menu.
type MenuItem struct {
	Code  int
	Label string
}

// FormatEntry formats a task line for the view.
// Format: "{N}. [ ] {DESCRIPTION}\n"
func FormatEntry(w io.Writer, e service.Entry) {
	fmt.Fprintf(w, "%d. %s\n", e.Position, e.Task.Render())
}

// FormatList formats all entries, or the empty-list line if there are none.
func FormatList(w io.Writer, entries []service.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, EmptyList)
		return
	}
	for _, e := range entries {
		FormatEntry(w, e)
	}
}

// FormatMenu formats the menu with a leading blank line, a title and a
// dashed footer as wide as the title.
func FormatMenu(w io.Writer, items []MenuItem) {
	fmt.Fprintln(w)
	cyan.Fprintln(w, MenuTitle)
	for _, item := range items {
		fmt.Fprintf(w, "%d. %s\n", item.Code, item.Label)
	}
	fmt.Fprintln(w, strings.Repeat("-", len(MenuTitle)))
}

// Success prints a confirmation line in green.
func Success(w io.Writer, format string, a ...any) {
	green.Fprintf(w, format+"\n", a...)
}

// Warning prints a notice line in yellow.
func Warning(w io.Writer, format string, a ...any) {
	yellow.Fprintf(w, format+"\n", a...)
}

// Error prints "error: <message>" in red.
func Error(w io.Writer, format string, a ...any) {
	red.Fprintf(w, "error: "+format+"\n", a...)
}
