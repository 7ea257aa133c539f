package cmd

import (
	"fmt"

	"github.com/tardyp/esp-am/pkg/sinetable"
	"github.com/tardyp/esp-am/pkg/utils"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Summarize a sine lookup table",
	Args:  cobra.NoArgs,
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	addTableFlags(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyTableFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	table := sinetable.New(cfg.Table.Size, cfg.Table.Scale)
	peak, trough := table.PeakIndex(), table.TroughIndex()

	tableData := pterm.TableData{
		{"Property", "Value"},
		{"ID", table.ID().String()},
		{"Size", fmt.Sprintf("%d", table.Len())},
		{"Scale", fmt.Sprintf("%g", table.Scale)},
		{"Range", fmt.Sprintf("[%d, %d]", table.Min(), table.Max())},
		{"Peak", fmt.Sprintf("%d @ %d", table.Values[peak], peak)},
		{"Trough", fmt.Sprintf("%d @ %d", table.Values[trough], trough)},
		{"First", fmt.Sprintf("%d", table.Values[0])},
	}

	if err := utils.RenderTable(cmd.OutOrStdout(), tableData); err != nil {
		return err
	}
	utils.Success.Printf("Table %s ok\n", table.ID())
	return nil
}
