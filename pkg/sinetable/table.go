package sinetable

import (
	"fmt"

	"github.com/google/uuid"
)

// PhaseBits is the width of the phase accepted by Lookup. A phase of
// 1<<PhaseBits is one full revolution.
const PhaseBits = 16

// namespace for table IDs. Fixed so IDs are stable across runs.
var namespace = uuid.MustParse("6f1c2a7e-3b0d-5c4e-9a61-2d8f4b7e0c35")

// Table is a generated sine table together with the parameters that
// produced it.
type Table struct {
	Size   int
	Scale  float64
	Values []int
}

// New generates a table. See Generate for the handling of size.
func New(size int, scale float64) *Table {
	return &Table{
		Size:   size,
		Scale:  scale,
		Values: Generate(size, scale),
	}
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.Values)
}

// Lookup approximates the scaled sine of phase, where phase counts
// 1/65536ths of a revolution and wraps. For a 256 entry table this is
// Values[(phase>>8)%256].
func (t *Table) Lookup(phase uint64) int {
	n := uint64(len(t.Values))
	if n == 0 {
		return 0
	}
	p := phase & (1<<PhaseBits - 1)
	return t.Values[(p*n)>>PhaseBits]
}

// ID derives a name-based UUID from the table parameters.
func (t *Table) ID() uuid.UUID {
	return uuid.NewSHA1(namespace, []byte(fmt.Sprintf("%d/%g", t.Size, t.Scale)))
}

// Min returns the smallest entry, or 0 for an empty table.
func (t *Table) Min() int {
	_, v := t.extreme(func(a, b int) bool { return a < b })
	return v
}

// Max returns the largest entry, or 0 for an empty table.
func (t *Table) Max() int {
	_, v := t.extreme(func(a, b int) bool { return a > b })
	return v
}

// PeakIndex returns the index of the first largest entry, or -1.
func (t *Table) PeakIndex() int {
	i, _ := t.extreme(func(a, b int) bool { return a > b })
	return i
}

// TroughIndex returns the index of the first smallest entry, or -1.
func (t *Table) TroughIndex() int {
	i, _ := t.extreme(func(a, b int) bool { return a < b })
	return i
}

func (t *Table) extreme(better func(a, b int) bool) (int, int) {
	if len(t.Values) == 0 {
		return -1, 0
	}
	idx, best := 0, t.Values[0]
	for i, v := range t.Values[1:] {
		if better(v, best) {
			idx, best = i+1, v
		}
	}
	return idx, best
}
