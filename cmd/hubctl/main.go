// Package main implements hubctl, the command-line client for the Hub
// cloud IoT platform.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/hubforge/hubctl/pkg/selection"
	"github.com/hubforge/hubctl/pkg/wizard"
)

var (
	// Version is set at build time
	version = "0.3.0"
)

func main() {
	err := newRootCmd().Execute()
	if err == nil {
		return
	}
	if errors.Is(err, wizard.ErrCanceled) {
		pterm.Info.Println("Canceled.")
		return
	}
	if errors.Is(err, selection.ErrNothingToSelect) {
		pterm.Warning.Println(err.Error())
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
