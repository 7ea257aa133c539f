// Package siren synthesizes a two-tone sweep from a sine lookup table
// using integer arithmetic only, suitable for driving a PWM compare
// register.
package siren

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/tardyp/esp-am/pkg/sinetable"
)

const (
	DefaultLow          = 1000
	DefaultHigh         = 2000
	DefaultModHz        = 4
	DefaultPeriodMicros = 2000000
	DefaultTop          = 50

	// fullScale is the lookup value treated as 1.0.
	fullScale = 1 << 15

	// maxPrealloc bounds the buffer Samples reserves up front.
	maxPrealloc = 1 << 12
)

var ErrInvalidSiren = errors.New("invalid siren")

type Siren struct {
	table        *sinetable.Table
	Low          uint64
	High         uint64
	ModHz        uint64
	PeriodMicros uint64
}

// New validates the parameters and returns a siren reading from table.
// The table must be non-empty with no negative entries, and its entries
// and the frequency band must keep every product within uint64.
func New(table *sinetable.Table, low, high, modHz, periodMicros uint64) (*Siren, error) {
	if table == nil || table.Len() == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrInvalidSiren)
	}
	if table.Min() < 0 {
		return nil, fmt.Errorf("%w: table has negative entries", ErrInvalidSiren)
	}
	if periodMicros == 0 || periodMicros > math.MaxUint64/fullScale {
		return nil, fmt.Errorf("%w: period %d out of range", ErrInvalidSiren, periodMicros)
	}
	if high < low {
		return nil, fmt.Errorf("%w: high %d below low %d", ErrInvalidSiren, high, low)
	}

	peak := uint64(table.Max())
	if peak > math.MaxUint32 {
		return nil, fmt.Errorf("%w: table entry %d exceeds 32 bits", ErrInvalidSiren, peak)
	}
	if modHz > math.MaxUint64/fullScale {
		return nil, fmt.Errorf("%w: modulation %d Hz too large", ErrInvalidSiren, modHz)
	}
	band := high - low
	if band > 0 && peak > math.MaxUint64/band {
		return nil, fmt.Errorf("%w: band %d Hz overflows with table peak %d", ErrInvalidSiren, band, peak)
	}
	if topFreq := low + band*peak/fullScale; topFreq < low || topFreq > math.MaxUint64/fullScale {
		return nil, fmt.Errorf("%w: sweep frequency overflows", ErrInvalidSiren)
	}

	return &Siren{
		table:        table,
		Low:          low,
		High:         high,
		ModHz:        modHz,
		PeriodMicros: periodMicros,
	}, nil
}

// NewDefault builds the 1-2 kHz, 4 Hz sweep over the default table.
func NewDefault() *Siren {
	s, _ := New(sinetable.New(sinetable.DefaultSize, sinetable.DefaultScale),
		DefaultLow, DefaultHigh, DefaultModHz, DefaultPeriodMicros)
	return s
}

func (s *Siren) lookup(phase uint64) uint64 {
	return uint64(s.table.Lookup(phase))
}

// Frequency returns the instantaneous tone frequency at t microseconds.
// The lookup is offset, so the sweep spans [Low, 2*High-Low) rather than
// stopping at High.
func (s *Siren) Frequency(t uint64) uint64 {
	return s.Low + (s.High-s.Low)*s.lookup(s.scaled(t)*s.ModHz)/fullScale
}

// Sample returns the waveform value at t microseconds. t wraps at the
// siren period.
func (s *Siren) Sample(t uint64) uint64 {
	return s.lookup(s.scaled(t) * s.Frequency(t))
}

// Duty scales Sample(t) by top/32768. With a full range table the
// result lies in [0, 2*top).
func (s *Siren) Duty(t, top uint64) uint64 {
	return s.Sample(t) * top / fullScale
}

// Samples returns count duty values starting at start and spaced step
// microseconds apart.
func (s *Siren) Samples(ctx context.Context, start, step uint64, count int, top uint64) ([]uint64, error) {
	out := make([]uint64, 0, min(max(count, 0), maxPrealloc))
	for i := 0; i < count; i++ {
		select {
		case <-ctx.Done():
			return out, ctx.Err()
		default:
		}
		out = append(out, s.Duty(start+uint64(i)*step, top))
	}
	return out, nil
}

func (s *Siren) scaled(t uint64) uint64 {
	return (t % s.PeriodMicros) * fullScale / s.PeriodMicros
}
