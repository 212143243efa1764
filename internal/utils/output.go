package utils

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pkg/errors"
)

const (
	OutputTypeTable = "table"
	OutputTypeText  = "text"
	OutputTypeJSON  = "json"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// PrintTableJSONOutput renders rows as a bordered table for table/text
// output, or data as indented JSON. data is the structured form of the same
// records the rows were built from.
func PrintTableJSONOutput(format string, headers []string, rows [][]string, data any) error {
	switch format {
	case OutputTypeJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case OutputTypeTable, OutputTypeText:
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers(headers...).
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return tableHeaderStyle
				}
				return tableCellStyle
			})
		fmt.Println(t)
		return nil
	default:
		return errors.Errorf("unsupported output format %q", format)
	}
}
