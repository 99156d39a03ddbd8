// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/calibration"
)

// Configuration errors.
var (
	ErrInvalidWorkers = errors.New("invalid worker count")
)

// loadConfig reads options from a TOML file, unset keys keep their defaults.
func loadConfig(path string) (opts options, err error) {
	opts = options{Input: calibration.DefaultInput, Workers: 1}

	meta, err := toml.DecodeFile(path, &opts)
	if err != nil {
		err = fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		return
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for index := range undecoded {
			keys[index] = undecoded[index].String()
		}
		err = fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))

		return
	}

	if strings.TrimSpace(opts.Input) == "" {
		opts.Input = calibration.DefaultInput
	}

	return
}

// resolveOptions merges the config file with the flags; flags set on the command line win.
func resolveOptions(cmd *cobra.Command) (opts options, err error) {
	flags := cmd.Flags()

	opts = options{Input: calibration.DefaultInput, Workers: 1}
	if path, _ := flags.GetString(flagConfig); path != "" {
		if opts, err = loadConfig(path); err != nil {
			return
		}
	}

	if flags.Changed(flagInput) {
		if opts.Input, err = flags.GetString(flagInput); err != nil {
			return
		}
	}
	if flags.Changed(flagVerbose) {
		if opts.Verbose, err = flags.GetBool(flagVerbose); err != nil {
			return
		}
	}
	if flags.Changed(flagWorkers) {
		if opts.Workers, err = flags.GetInt(flagWorkers); err != nil {
			return
		}
	}
	if flags.Changed(flagDebug) {
		if opts.Debug, err = flags.GetBool(flagDebug); err != nil {
			return
		}
	}

	if opts.Workers < 1 {
		err = fmt.Errorf("%w: %d", ErrInvalidWorkers, opts.Workers)
	}

	return
}
