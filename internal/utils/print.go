package utils

import (
	"os"

	"github.com/fatih/color"
)

// PrintError writes an error message to stderr in red.
func PrintError(err error) {
	if err == nil {
		return
	}
	_, _ = color.New(color.FgRed).Fprintf(os.Stderr, "Error: %s\n", err.Error())
}

// PrintSuccess writes a confirmation message in green.
func PrintSuccess(message string) {
	_, _ = color.New(color.FgGreen).Fprintln(os.Stdout, message)
}

// Truncate shortens s to at most max runes, appending an ellipsis when
// anything was cut. max below 2 disables truncation.
func Truncate(s string, max int) string {
	if max < 2 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// Ellipsis placeholder for empty table cells.
const EmptyCell = "-"

// OrEmptyCell substitutes the placeholder for blank values in table output.
func OrEmptyCell(s string) string {
	if s == "" {
		return EmptyCell
	}
	return s
}
