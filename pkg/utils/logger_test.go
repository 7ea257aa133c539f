package utils

import (
	"io"
	"os"
	"testing"
)

func TestPrintersWriteToStderr(t *testing.T) {
	printers := map[string]io.Writer{
		"Info":    Info.Writer,
		"Success": Success.Writer,
		"Warning": Warning.Writer,
		"Error":   Error.Writer,
		"Debug":   Debug.Writer,
	}

	for name, w := range printers {
		if w != os.Stderr {
			t.Errorf("%s printer writes to %v, want stderr", name, w)
		}
	}
}
