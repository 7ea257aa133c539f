package render

import (
	"fmt"
	"go/format"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/tardyp/esp-am/pkg/sinetable"
)

// valuesPerLine is the wrap width of the source formats.
const valuesPerLine = 12

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// elemType names the narrowest element type for one target language.
type elemType struct {
	Go, Rust, C string
}

var (
	typeU8  = elemType{"uint8", "u8", "uint8_t"}
	typeU16 = elemType{"uint16", "u16", "uint16_t"}
	typeU32 = elemType{"uint32", "u32", "uint32_t"}
	typeU64 = elemType{"uint64", "u64", "uint64_t"}
	typeI32 = elemType{"int32", "i32", "int32_t"}
	typeI64 = elemType{"int64", "i64", "int64_t"}
)

func chooseType(t *sinetable.Table) elemType {
	lo, hi := t.Min(), t.Max()
	if lo < 0 {
		if lo >= math.MinInt32 && hi <= math.MaxInt32 {
			return typeI32
		}
		return typeI64
	}
	switch {
	case hi <= math.MaxUint8:
		return typeU8
	case hi <= math.MaxUint16:
		return typeU16
	case uint64(hi) <= math.MaxUint32:
		return typeU32
	}
	return typeU64
}

// body writes the values as comma terminated rows prefixed by indent.
func body(values []int, indent string) string {
	var b strings.Builder
	for i, v := range values {
		if i%valuesPerLine == 0 {
			b.WriteString(indent)
		} else {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(',')
		if i%valuesPerLine == valuesPerLine-1 || i == len(values)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func checkName(name string) error {
	if !identPattern.MatchString(name) {
		return fmt.Errorf("%w %q", ErrInvalidName, name)
	}
	return nil
}

// camelCase converts snake_case to lowerCamelCase.
func camelCase(name string) string {
	parts := strings.Split(name, "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		if b.Len() == 0 {
			b.WriteString(strings.ToLower(p[:1]) + p[1:])
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]) + p[1:])
	}
	if b.Len() == 0 {
		return name
	}
	return b.String()
}

func encodeGo(w io.Writer, t *sinetable.Table, opts Options) error {
	if err := checkName(opts.Name); err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "// %s is a %d entry sine table scaled by %g.\n", camelCase(opts.Name), t.Len(), t.Scale)
	fmt.Fprintf(&b, "var %s = [%d]%s{\n", camelCase(opts.Name), t.Len(), chooseType(t).Go)
	b.WriteString(body(t.Values, "\t"))
	b.WriteString("}\n")

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return fmt.Errorf("format go source: %w", err)
	}
	_, err = w.Write(src)
	return err
}

func encodeRust(w io.Writer, t *sinetable.Table, opts Options) error {
	if err := checkName(opts.Name); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "// Lookup table for sine values (scaled by %g)\nconst %s: [%s; %d] = [\n%s];\n",
		t.Scale, strings.ToUpper(opts.Name), chooseType(t).Rust, t.Len(), body(t.Values, "    "))
	return err
}

func encodeC(w io.Writer, t *sinetable.Table, opts Options) error {
	if err := checkName(opts.Name); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "/* Lookup table for sine values (scaled by %g) */\nstatic const %s %s[%d] = {\n%s};\n",
		t.Scale, chooseType(t).C, opts.Name, t.Len(), body(t.Values, "    "))
	return err
}
