package utils

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/pterm/pterm"
)

var errClosed = errors.New("closed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errClosed
}

func TestPrintBanner(t *testing.T) {
	pterm.DisableColor()

	var buf bytes.Buffer
	if err := PrintBanner(&buf, "9.9.9"); err != nil {
		t.Fatalf("PrintBanner failed: %v", err)
	}
	if !strings.Contains(buf.String(), "sinetable v9.9.9") {
		t.Errorf("Banner missing version: %q", buf.String())
	}
}

func TestPrintBannerWriteError(t *testing.T) {
	if err := PrintBanner(failingWriter{}, "1.0.0"); !errors.Is(err, errClosed) {
		t.Errorf("PrintBanner error = %v, want %v", err, errClosed)
	}
}

func TestRenderTableWriteError(t *testing.T) {
	rows := pterm.TableData{{"Property", "Value"}, {"Size", "256"}}
	if err := RenderTable(failingWriter{}, rows); !errors.Is(err, errClosed) {
		t.Errorf("RenderTable error = %v, want %v", err, errClosed)
	}
}
