// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/calibration"
)

// options holds the resolved command settings.
type options struct {
	Input   string `toml:"input"`
	Verbose bool   `toml:"verbose"`
	Workers int    `toml:"workers"`
	Debug   bool   `toml:"debug"`
}

const (
	flagConfig  = "config"
	flagInput   = "input"
	flagVerbose = "verbose"
	flagWorkers = "workers"
	flagDebug   = "debug"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calibrate",
		Short: "Sum the calibration values of a text file",
		Long: `Calibrate reads a text file line by line, forms each line's calibration value from its
first & last digit tokens (1-9 or one-nine) and prints the sum.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runCalibrate,
	}

	cmd.Flags().String(flagConfig, "", "TOML file holding default options")
	cmd.Flags().String(flagInput, calibration.DefaultInput, "input file")
	cmd.Flags().BoolP(flagVerbose, "v", false, "print per-line diagnostics before the sum")
	cmd.Flags().Int(flagWorkers, 1, "number of workers calibrating lines")
	cmd.Flags().Bool(flagDebug, false, "log debug messages to stderr")

	return cmd
}

func runCalibrate(cmd *cobra.Command, _ []string) (err error) {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return
	}

	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	if opts.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	logger.WithFields(logrus.Fields{"input": opts.Input, "workers": opts.Workers}).Debug("calibrating")

	result, err := calibration.SumFile(cmd.Context(), opts.Input,
		calibration.WithLogger(logger),
		calibration.WithDebug(opts.Debug),
		calibration.WithWorkers(opts.Workers))
	if err != nil {
		return fmt.Errorf("calibration failed: %w", err)
	}

	return report(cmd.OutOrStdout(), result, opts.Verbose)
}

// report prints the optional diagnostics followed by a line holding only the sum.
func report(w io.Writer, result calibration.Result, verbose bool) (err error) {
	if verbose {
		for _, line := range result.Lines {
			if _, err = fmt.Fprintln(w, line.String()); err != nil {
				return
			}
		}
	}

	_, err = fmt.Fprintln(w, result.Total)

	return
}
