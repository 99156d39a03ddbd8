// SPDX-License-Identifier: MIT
package calibration

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/calibration/scanner"
	"gitlab.com/fisherprime/calibration/trie"
)

type (
	// Config defines configuration options for the Sum operations.
	Config struct {
		// Logger for calibration messages.
		//
		// Preferring a public field to allow for sharing.
		Logger logrus.FieldLogger
		Debug  bool

		// Trie holds the vocabulary; the built-in digits are used when nil.
		Trie *trie.Trie[int]

		// Workers is the size of the pool calibrating lines, lines are calibrated in sequence
		// below 2.
		Workers int
	}

	// Option defines the Config functional option type.
	Option func(*Config)

	// Line holds the calibration of a single input line.
	Line struct {
		// Number is the line's 0-based index in the input.
		Number int
		Text   string

		// Value is the line's calibration value.
		Value int
		// Sum is the running total including this line.
		Sum int
	}

	// Result holds the calibration of an input.
	Result struct {
		Lines []Line
		Total int
	}
)

const (
	// DefaultInput is the file read when no path is configured.
	DefaultInput = "./input.txt"

	// MaxLineSize bounds the length of a single line.
	MaxLineSize = 1 << 20

	initialLineBuffer = 4096

	diagnosticFmt = "checking line %d: %s total=%d sum=%d"
)

// Sum errors.
var (
	ErrInputUnavailable = errors.New("input unavailable")
	ErrLineTooLong      = errors.New("line too long")
	ErrWorkerPool       = errors.New("worker pool failure")
)

// DefConfig obtains the package's default options.
func DefConfig() *Config {
	return &Config{
		Logger: logrus.New(),
		Debug:  false,
	}
}

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(c *Config) { c.Logger = logger } }

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(c *Config) { c.Debug = debug } }

// WithTrie configures the vocabulary.
func WithTrie(t *trie.Trie[int]) Option { return func(c *Config) { c.Trie = t } }

// WithWorkers configures the worker pool size.
func WithWorkers(workers int) Option { return func(c *Config) { c.Workers = workers } }

// String formats the Line as a diagnostic message.
func (l Line) String() string { return fmt.Sprintf(diagnosticFmt, l.Number, l.Text, l.Value, l.Sum) }

// SumFile performs the [Sum] operation on the file at path.
func SumFile(ctx context.Context, path string, options ...Option) (result Result, err error) {
	file, err := os.Open(path)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrInputUnavailable, err)
		return
	}
	defer file.Close()

	return Sum(ctx, file, options...)
}

// Sum calibrates every line read from r, accumulating the calibration values.
//
// Lines are split on "\n" or "\r\n", the terminators are discarded.
func Sum(ctx context.Context, r io.Reader, options ...Option) (result Result, err error) {
	cfg := DefConfig()
	for _, opt := range options {
		opt(cfg)
	}
	if cfg.Trie == nil {
		cfg.Trie = NewDigitTrie()
	}

	texts, err := readLines(ctx, r)
	if err != nil {
		return
	}

	values := make([]int, len(texts))
	if cfg.Workers > 1 {
		err = calibrateParallel(ctx, cfg, texts, values)
	} else {
		err = calibrateSequential(ctx, cfg, texts, values)
	}
	if err != nil {
		return
	}

	result.Lines = make([]Line, len(texts))
	for index := range texts {
		result.Total += values[index]
		result.Lines[index] = Line{Number: index, Text: texts[index], Value: values[index], Sum: result.Total}
	}

	// Skip expensive operation if not debug.
	if cfg.Debug {
		cfg.Logger.Debugf("trie: %s", cfg.Trie.Serialize())
		cfg.Logger.Debugf("calibrated lines: %s", spew.Sprint(result.Lines))
	}
	cfg.Logger.WithFields(logrus.Fields{"lines": len(texts), "total": result.Total}).Debug("calibration complete")

	return
}

// readLines splits the input into lines.
func readLines(ctx context.Context, r io.Reader) (lines []string, err error) {
	lines = make([]string, 0)

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, initialLineBuffer), MaxLineSize)

	for s.Scan() {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		default:
		}

		lines = append(lines, s.Text())
	}

	if err = s.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			err = fmt.Errorf("%w: line %d exceeds %d bytes", ErrLineTooLong, len(lines), MaxLineSize)
			return
		}

		err = fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}

	return
}

func calibrateSequential(ctx context.Context, cfg *Config, texts []string, values []int) (err error) {
	scanOpts := []scanner.Option{scanner.WithLogger(cfg.Logger), scanner.WithDebug(cfg.Debug)}

	for index := range texts {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			values[index] = Calibrate(cfg.Trie, texts[index], scanOpts...)
		}
	}

	return
}

// calibrateParallel fans the lines out over an ants pool; the shared trie is read-only & each
// task writes to its own index only.
func calibrateParallel(ctx context.Context, cfg *Config, texts []string, values []int) (err error) {
	pool, err := ants.NewPool(cfg.Workers, ants.WithLogger(cfg.Logger), ants.WithPanicHandler(func(r interface{}) {
		cfg.Logger.Errorf("calibration task panicked: %v", r)
	}))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWorkerPool, err)
	}
	defer pool.Release()

	scanOpts := []scanner.Option{scanner.WithLogger(cfg.Logger), scanner.WithDebug(cfg.Debug)}

	wg := new(sync.WaitGroup)
	for index := range texts {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		if err = pool.Submit(func() {
			defer wg.Done()

			select {
			case <-ctx.Done():
				return
			default:
				values[index] = Calibrate(cfg.Trie, texts[index], scanOpts...)
			}
		}); err != nil {
			wg.Done()
			err = fmt.Errorf("%w: %w", ErrWorkerPool, err)

			break
		}
	}
	wg.Wait()

	if err == nil {
		err = ctx.Err()
	}

	return
}
