package utils

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tardyp/esp-am/pkg/render"
	"github.com/tardyp/esp-am/pkg/siren"
	"github.com/tardyp/esp-am/pkg/sinetable"
)

var (
	ErrInvalidSize   = errors.New("table size must be positive")
	ErrInvalidConfig = errors.New("invalid config")
)

// Config represents the main configuration structure
type Config struct {
	Table  TableConfig  `yaml:"table"`
	Output OutputConfig `yaml:"output"`
	Siren  SirenConfig  `yaml:"siren"`
}

type TableConfig struct {
	Size  int     `yaml:"size"`
	Scale float64 `yaml:"scale"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
	Name   string `yaml:"name"`
}

type SirenConfig struct {
	Low      uint64 `yaml:"low"`
	High     uint64 `yaml:"high"`
	Mod      uint64 `yaml:"mod"`
	PeriodUS uint64 `yaml:"period_us"`
	Top      uint64 `yaml:"top"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Table: TableConfig{
			Size:  sinetable.DefaultSize,
			Scale: sinetable.DefaultScale,
		},
		Output: OutputConfig{
			Format: string(render.FormatList),
			Name:   render.DefaultName,
		},
		Siren: SirenConfig{
			Low:      siren.DefaultLow,
			High:     siren.DefaultHigh,
			Mod:      siren.DefaultModHz,
			PeriodUS: siren.DefaultPeriodMicros,
			Top:      siren.DefaultTop,
		},
	}
}

// LoadConfig loads configuration from a YAML file. Keys absent from the
// file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	return config, nil
}

// Validate checks the values the commands cannot work with
func (c *Config) Validate() error {
	if c.Table.Size <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidSize, c.Table.Size)
	}
	// Entries reach 2*scale and must convert to int exactly.
	scale := c.Table.Scale
	if math.IsNaN(scale) || math.IsInf(scale, 0) || math.Abs(2*scale) >= math.MaxInt {
		return fmt.Errorf("%w: scale %g out of range", ErrInvalidConfig, scale)
	}
	if _, err := render.ParseFormat(c.Output.Format); err != nil {
		return err
	}
	if c.Siren.PeriodUS == 0 {
		return fmt.Errorf("%w: siren period must be positive", ErrInvalidConfig)
	}
	if c.Siren.Top > math.MaxUint32 {
		return fmt.Errorf("%w: siren top %d exceeds 32 bits", ErrInvalidConfig, c.Siren.Top)
	}
	if c.Siren.High < c.Siren.Low {
		return fmt.Errorf("%w: siren high %d below low %d", ErrInvalidConfig, c.Siren.High, c.Siren.Low)
	}
	return nil
}
