package cmd

import (
	"fmt"
	"runtime"

	"github.com/tardyp/esp-am/pkg/utils"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		tableData := pterm.TableData{
			{"Property", "Value"},
			{"Version", version},
			{"Go Version", runtime.Version()},
			{"OS/Arch", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)},
			{"Compiler", runtime.Compiler},
		}

		return utils.RenderTable(cmd.OutOrStdout(), tableData)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
