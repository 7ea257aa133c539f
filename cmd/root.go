package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tardyp/esp-am/pkg/utils"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	quiet   bool
	debug   bool
	version = "1.0.0"
)

var rootCmd = &cobra.Command{
	Use:   "sinetable",
	Short: "Sine lookup table generator",
	Long: `sinetable - builds integer sine lookup tables for fixed-point and
integer-only targets, and previews the siren sweep they drive.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		utils.InitLogger(debug)
		if quiet {
			return nil
		}
		return utils.PrintBanner(cmd.ErrOrStderr(), version)
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		utils.Error.Println(err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Do not print the banner")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug messages")
}
