// SPDX-License-Identifier: MIT
package scanner

import (
	"github.com/sirupsen/logrus"
)

type (
	// Opts defines options for the Scanner's operations.
	Opts struct {
		Debug  bool
		Logger logrus.FieldLogger
	}

	// Option defines the Scanner functional option type
	Option func(*Opts)
)

// defLogger is shared by Scanners lacking a configured logger.
var defLogger logrus.FieldLogger = logrus.New()

// NewOpts configures the scanner's Opts.
func NewOpts() *Opts {
	return &Opts{
		Logger: defLogger,
	}
}

// Validate populates missing Opts entries with defaults.
func (o *Opts) Validate() {
	if o.Logger == nil {
		o.Logger = defLogger
	}
}

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(o *Opts) { o.Debug = debug } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(o *Opts) { o.Logger = logger } }
