package cmd

import (
	"github.com/tardyp/esp-am/pkg/render"
	"github.com/tardyp/esp-am/pkg/sinetable"
	"github.com/tardyp/esp-am/pkg/utils"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a sine lookup table",
	Long: `Generate a sine lookup table and write it to stdout.

Entry i is int(sin(2*pi*i/size)*scale + scale), truncated toward zero, so
every value lies in [0, 2*scale]. With no flags the 256 entry table scaled
by 32767 is printed as a bracketed list:
  sinetable generate
  sinetable generate -n 64 -s 127 -f c --name lut`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	addTableFlags(generateCmd)
	generateCmd.Flags().StringP("format", "f", string(render.FormatList), "Output format: list, json, yaml, csv, go, rust, c")
	generateCmd.Flags().String("name", render.DefaultName, "Identifier for go, rust and c output")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	applyTableFlags(cmd, cfg)
	if cmd.Flags().Changed("format") {
		cfg.Output.Format, _ = cmd.Flags().GetString("format")
	}
	if cmd.Flags().Changed("name") {
		cfg.Output.Name, _ = cmd.Flags().GetString("name")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	table := sinetable.New(cfg.Table.Size, cfg.Table.Scale)
	utils.Debug.Printf("Generated %d entries (scale %g, id %s)\n", table.Len(), table.Scale, table.ID())

	return render.Render(cmd.OutOrStdout(), format, table, render.Options{Name: cfg.Output.Name})
}
