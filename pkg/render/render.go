// Package render encodes sine tables for the terminal or for pasting
// into firmware sources.
package render

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"gopkg.in/yaml.v3"

	"github.com/tardyp/esp-am/pkg/sinetable"
)

type Format string

const (
	FormatList Format = "list"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
	FormatGo   Format = "go"
	FormatRust Format = "rust"
	FormatC    Format = "c"
)

var (
	ErrUnknownFormat = errors.New("unknown format")
	ErrInvalidName   = errors.New("invalid identifier")
)

// Options controls the source formats.
type Options struct {
	// Name is the identifier of the emitted declaration, in snake_case.
	Name string
}

const DefaultName = "sine_table"

// Document is the structured form used by the json and yaml encoders.
type Document struct {
	ID     string  `json:"id" yaml:"id"`
	Size   int     `json:"size" yaml:"size"`
	Scale  float64 `json:"scale" yaml:"scale"`
	Values []int   `json:"values" yaml:"values,flow"`
}

type encoder func(w io.Writer, t *sinetable.Table, opts Options) error

var encoders = map[Format]encoder{
	FormatList: encodeList,
	FormatJSON: encodeJSON,
	FormatYAML: encodeYAML,
	FormatCSV:  encodeCSV,
	FormatGo:   encodeGo,
	FormatRust: encodeRust,
	FormatC:    encodeC,
}

// Formats lists the supported format names in sorted order.
func Formats() []string {
	names := make([]string, 0, len(encoders))
	for f := range encoders {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// ParseFormat resolves a format name case-insensitively. Unknown names
// report the closest supported names.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := encoders[f]; ok {
		return f, nil
	}

	names := Formats()
	ranks := fuzzy.RankFindFold(string(f), names)
	sort.Sort(ranks)

	suggestions := make([]string, 0, len(ranks))
	for _, r := range ranks {
		suggestions = append(suggestions, r.Target)
	}
	if len(suggestions) == 0 {
		return "", fmt.Errorf("%w %q (supported: %s)", ErrUnknownFormat, name, strings.Join(names, ", "))
	}
	return "", fmt.Errorf("%w %q, did you mean %s?", ErrUnknownFormat, name, strings.Join(suggestions, " or "))
}

// Render writes t to w in the given format.
func Render(w io.Writer, format Format, t *sinetable.Table, opts Options) error {
	enc, ok := encoders[format]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
	if opts.Name == "" {
		opts.Name = DefaultName
	}
	return enc(w, t, opts)
}

// NewDocument builds the structured form of t.
func NewDocument(t *sinetable.Table) Document {
	return Document{
		ID:     t.ID().String(),
		Size:   t.Size,
		Scale:  t.Scale,
		Values: t.Values,
	}
}

// List renders values the way a bracketed sequence prints, for
// example "[1, 2, 3]".
func List(values []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')
	return b.String()
}

func encodeList(w io.Writer, t *sinetable.Table, _ Options) error {
	_, err := fmt.Fprintln(w, List(t.Values))
	return err
}

func encodeJSON(w io.Writer, t *sinetable.Table, _ Options) error {
	data, err := json.MarshalIndent(NewDocument(t), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func encodeYAML(w io.Writer, t *sinetable.Table, _ Options) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(t)); err != nil {
		return err
	}
	return enc.Close()
}

func encodeCSV(w io.Writer, t *sinetable.Table, _ Options) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"index", "value"}); err != nil {
		return err
	}
	for i, v := range t.Values {
		if err := cw.Write([]string{strconv.Itoa(i), strconv.Itoa(v)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
