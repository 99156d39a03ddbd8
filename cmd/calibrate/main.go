// SPDX-License-Identifier: MIT
package main

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// main executes the root command; failures are reported on stderr & exit with status 1.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		errColor := color.New(color.FgRed, color.Bold)
		if isTerminal(os.Stderr) {
			errColor.EnableColor()
		} else {
			errColor.DisableColor()
		}

		errColor.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
