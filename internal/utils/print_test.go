package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{"short stays", "web", 30, "web"},
		{"exact stays", "abcde", 5, "abcde"},
		{"long truncates", "abcdefgh", 5, "abcd…"},
		{"max below two disables", "abcdefgh", 0, "abcdefgh"},
		{"empty", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Truncate(tt.input, tt.max))
		})
	}
}

func TestOrEmptyCell(t *testing.T) {
	require.Equal(t, EmptyCell, OrEmptyCell(""))
	require.Equal(t, "x", OrEmptyCell("x"))
}

func TestPrintTableJSONOutputRejectsUnknownFormat(t *testing.T) {
	err := PrintTableJSONOutput("xml", nil, nil, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "xml")
}
