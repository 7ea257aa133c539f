package utils

import (
	"os"

	"github.com/pterm/pterm"
)

var (
	// Logger instances. They write to stderr so stdout carries only data.
	Info    = pterm.Info.WithWriter(os.Stderr)
	Success = pterm.Success.WithWriter(os.Stderr)
	Warning = pterm.Warning.WithWriter(os.Stderr)
	Error   = pterm.Error.WithWriter(os.Stderr)
	Debug   = pterm.Debug.WithWriter(os.Stderr)
)

// InitLogger initializes the logger settings
func InitLogger(debugMode bool) {
	if debugMode {
		pterm.EnableDebugMessages()
	} else {
		pterm.DisableDebugMessages()
	}
}
