package cmd

import (
	"fmt"

	"github.com/tardyp/esp-am/pkg/render"
	"github.com/tardyp/esp-am/pkg/siren"
	"github.com/tardyp/esp-am/pkg/sinetable"
	"github.com/tardyp/esp-am/pkg/utils"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// maxSirenSamples bounds --count.
const maxSirenSamples = 1 << 20

var sirenCmd = &cobra.Command{
	Use:   "siren",
	Short: "Preview the siren sweep driven by a table",
	Long: `Compute PWM duty values of the two-tone siren at evenly spaced times.

The siren indexes the table with a 16-bit phase, sweeping its tone
frequency at --mod Hz and scaling each sample into a compare value:
  sinetable siren --count 20 --step 500
  sinetable siren --table --count 10`,
	Args: cobra.NoArgs,
	RunE: runSiren,
}

func init() {
	rootCmd.AddCommand(sirenCmd)

	addTableFlags(sirenCmd)
	sirenCmd.Flags().Uint64("start", 0, "First sample time in microseconds")
	sirenCmd.Flags().Uint64("step", 1000, "Microseconds between samples")
	sirenCmd.Flags().IntP("count", "c", 20, "Number of samples")
	sirenCmd.Flags().Uint64("top", siren.DefaultTop, "Duty scale factor")
	sirenCmd.Flags().Uint64("low", siren.DefaultLow, "Base frequency in Hz")
	sirenCmd.Flags().Uint64("high", siren.DefaultHigh, "Second frequency in Hz")
	sirenCmd.Flags().Uint64("mod", siren.DefaultModHz, "Sweep frequency in Hz")
	sirenCmd.Flags().Uint64("period", siren.DefaultPeriodMicros, "Sweep period in microseconds")
	sirenCmd.Flags().Bool("table", false, "Render time, frequency and duty as a table")
}

func runSiren(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyTableFlags(cmd, cfg)

	overrides := map[string]*uint64{
		"top":    &cfg.Siren.Top,
		"low":    &cfg.Siren.Low,
		"high":   &cfg.Siren.High,
		"mod":    &cfg.Siren.Mod,
		"period": &cfg.Siren.PeriodUS,
	}
	for name, dst := range overrides {
		if cmd.Flags().Changed(name) {
			*dst, _ = cmd.Flags().GetUint64(name)
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	start, _ := cmd.Flags().GetUint64("start")
	step, _ := cmd.Flags().GetUint64("step")
	count, _ := cmd.Flags().GetInt("count")
	asTable, _ := cmd.Flags().GetBool("table")
	if count < 0 || count > maxSirenSamples {
		return fmt.Errorf("%w: count must be in [0, %d], got %d", utils.ErrInvalidConfig, maxSirenSamples, count)
	}

	table := sinetable.New(cfg.Table.Size, cfg.Table.Scale)
	s, err := siren.New(table, cfg.Siren.Low, cfg.Siren.High, cfg.Siren.Mod, cfg.Siren.PeriodUS)
	if err != nil {
		return err
	}

	duties, sampleErr := s.Samples(cmd.Context(), start, step, count, cfg.Siren.Top)
	if sampleErr != nil {
		utils.Warning.Printf("Stopped after %d samples: %v\n", len(duties), sampleErr)
	}
	if err := printDuties(cmd, s, start, step, duties, asTable); err != nil {
		return err
	}
	return sampleErr
}

func printDuties(cmd *cobra.Command, s *siren.Siren, start, step uint64, duties []uint64, asTable bool) error {
	if !asTable {
		values := make([]int, len(duties))
		for i, d := range duties {
			values[i] = int(d)
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), render.List(values))
		return err
	}

	tableData := pterm.TableData{{"t (us)", "Frequency (Hz)", "Duty"}}
	for i, d := range duties {
		t := start + uint64(i)*step
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", t),
			fmt.Sprintf("%d", s.Frequency(t)),
			fmt.Sprintf("%d", d),
		})
	}
	return utils.RenderTable(cmd.OutOrStdout(), tableData)
}
