package cmd

import (
	"github.com/tardyp/esp-am/pkg/sinetable"
	"github.com/tardyp/esp-am/pkg/utils"

	"github.com/spf13/cobra"
)

// loadConfig reads --config when given, otherwise starts from defaults.
func loadConfig() (*utils.Config, error) {
	if cfgFile == "" {
		return utils.DefaultConfig(), nil
	}

	cfg, err := utils.LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	utils.Info.Printf("Loaded config from %s\n", cfgFile)
	return cfg, nil
}

func addTableFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("size", "n", sinetable.DefaultSize, "Number of table entries per revolution")
	cmd.Flags().Float64P("scale", "s", sinetable.DefaultScale, "Amplitude and offset of the table")
}

// applyTableFlags overrides the config with explicitly set flags.
func applyTableFlags(cmd *cobra.Command, cfg *utils.Config) {
	if cmd.Flags().Changed("size") {
		cfg.Table.Size, _ = cmd.Flags().GetInt("size")
	}
	if cmd.Flags().Changed("scale") {
		cfg.Table.Scale, _ = cmd.Flags().GetFloat64("scale")
	}
}
