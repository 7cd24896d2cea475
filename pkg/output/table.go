package output

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Table renders rows with a header using pterm.
func Table(headers []string, rows [][]string) error {
	data := pterm.TableData{headers}
	data = append(data, rows...)

	err := pterm.DefaultTable.
		WithHasHeader(true).
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold)).
		WithData(data).
		Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}
