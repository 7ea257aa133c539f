package utils

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// PrintBanner prints the compact sinetable header
func PrintBanner(w io.Writer, version string) error {
	header := pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgDarkGray)).
		WithTextStyle(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold)).
		Sprintf(" sinetable v%s ", version)
	_, err := fmt.Fprintln(w, header)
	return err
}

// RenderTable renders rows with the first row as header
func RenderTable(w io.Writer, rows pterm.TableData) error {
	out, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
