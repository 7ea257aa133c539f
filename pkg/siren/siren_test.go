package siren

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/tardyp/esp-am/pkg/sinetable"
)

func TestSirenDefaultSamples(t *testing.T) {
	s := NewDefault()

	tests := []struct {
		name   string
		t      uint64
		freq   uint64
		sample uint64
		duty   uint64
	}{
		{"Start", 0, 1999, 32767, 49},
		{"One millisecond", 1000, 1999, 35978, 54},
		{"Upper sweep", 123456, 2689, 24805, 37},
		{"Quarter period", 500000, 1999, 9597, 14},
		{"End of period", 1999999, 1975, 39159, 59},
		{"Wraps at period", 2000000, 1999, 32767, 49},
		{"Wrapped upper sweep", 2123456, 2689, 24805, 37},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Frequency(tt.t); got != tt.freq {
				t.Errorf("Frequency(%d) = %d, want %d", tt.t, got, tt.freq)
			}
			if got := s.Sample(tt.t); got != tt.sample {
				t.Errorf("Sample(%d) = %d, want %d", tt.t, got, tt.sample)
			}
			if got := s.Duty(tt.t, DefaultTop); got != tt.duty {
				t.Errorf("Duty(%d) = %d, want %d", tt.t, got, tt.duty)
			}
		})
	}
}

func TestSirenSamples(t *testing.T) {
	s := NewDefault()

	got, err := s.Samples(context.Background(), 0, 1000, 8, DefaultTop)
	if err != nil {
		t.Fatalf("Samples failed: %v", err)
	}

	want := []uint64{49, 54, 41, 52, 51, 49, 57, 43}
	if len(got) != len(want) {
		t.Fatalf("len(Samples) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Samples[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSirenSamplesCancelled(t *testing.T) {
	s := NewDefault()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := s.Samples(ctx, 0, 1000, 100, DefaultTop)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Samples error = %v, want context.Canceled", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected no samples after cancel, got %d", len(got))
	}
}

func TestSirenSamplesNegativeCount(t *testing.T) {
	got, err := NewDefault().Samples(context.Background(), 0, 1, -5, DefaultTop)
	if err != nil {
		t.Fatalf("Samples failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected no samples, got %d", len(got))
	}
}

func TestNewRejectsBadParameters(t *testing.T) {
	good := sinetable.New(sinetable.DefaultSize, sinetable.DefaultScale)

	tests := []struct {
		name   string
		table  *sinetable.Table
		low    uint64
		high   uint64
		mod    uint64
		period uint64
	}{
		{"Nil table", nil, 1000, 2000, DefaultModHz, 1},
		{"Empty table", sinetable.New(0, 100), 1000, 2000, DefaultModHz, 1},
		{"Negative entries", sinetable.New(16, -100), 1000, 2000, DefaultModHz, 1},
		{"Zero period", good, 1000, 2000, DefaultModHz, 0},
		{"Huge period", good, 1000, 2000, DefaultModHz, math.MaxUint64},
		{"Inverted band", good, 2000, 1000, DefaultModHz, 1},
		{"Huge entries", sinetable.New(256, 1e17), 1000, 2000, DefaultModHz, DefaultPeriodMicros},
		{"Huge band", good, 0, math.MaxUint64, DefaultModHz, DefaultPeriodMicros},
		{"Huge base frequency", good, math.MaxUint64 - 10, math.MaxUint64, DefaultModHz, DefaultPeriodMicros},
		{"Huge modulation", good, 1000, 2000, math.MaxUint64, DefaultPeriodMicros},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.table, tt.low, tt.high, tt.mod, tt.period)
			if !errors.Is(err, ErrInvalidSiren) {
				t.Errorf("New error = %v, want ErrInvalidSiren", err)
			}
		})
	}
}

func TestNewAcceptsWideTable(t *testing.T) {
	// Entries up to 2^31 still leave room for a 1 kHz band.
	s, err := New(sinetable.New(256, 1<<30), 1000, 2000, DefaultModHz, DefaultPeriodMicros)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if f := s.Frequency(0); f < 1000 || f >= 1000+2*1000*(1<<30)/fullScale+1 {
		t.Errorf("Frequency(0) = %d, outside the sweep", f)
	}
}

func TestSirenSamplesLargeCount(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A huge count must not reserve memory for every sample up front.
	got, err := NewDefault().Samples(ctx, 0, 1, 1<<40, DefaultTop)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Samples error = %v, want context.Canceled", err)
	}
	if cap(got) > maxPrealloc {
		t.Errorf("cap(Samples) = %d, want at most %d", cap(got), maxPrealloc)
	}
}
