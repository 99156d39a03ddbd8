// SPDX-License-Identifier: MIT
package calibration

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

const sampleInput = "1abc2\npqr3stu8vwx\na1b2c3d4e5f\ntreb7uchet\n"

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.DebugLevel)

	return logger
}

func TestSum(t *testing.T) {
	type args struct {
		input   string
		options []Option
	}

	tests := []struct {
		name      string
		args      args
		wantTotal int
		wantLines []Line
	}{
		{
			name:      "sample",
			args:      args{input: sampleInput},
			wantTotal: 142,
			wantLines: []Line{
				{Number: 0, Text: "1abc2", Value: 12, Sum: 12},
				{Number: 1, Text: "pqr3stu8vwx", Value: 38, Sum: 50},
				{Number: 2, Text: "a1b2c3d4e5f", Value: 15, Sum: 65},
				{Number: 3, Text: "treb7uchet", Value: 77, Sum: 142},
			},
		},
		{
			name:      "crlf without trailing terminator",
			args:      args{input: "two1nine\r\neightwothree\r\nhwqesaasd"},
			wantTotal: 112,
			wantLines: []Line{
				{Number: 0, Text: "two1nine", Value: 29, Sum: 29},
				{Number: 1, Text: "eightwothree", Value: 83, Sum: 112},
				{Number: 2, Text: "hwqesaasd", Value: 0, Sum: 112},
			},
		},
		{
			name:      "empty lines",
			args:      args{input: "\n\n7\n"},
			wantTotal: 77,
			wantLines: []Line{
				{Number: 0, Value: 0, Sum: 0},
				{Number: 1, Value: 0, Sum: 0},
				{Number: 2, Text: "7", Value: 77, Sum: 77},
			},
		},
		{
			name:      "empty input",
			args:      args{input: ""},
			wantTotal: 0,
			wantLines: []Line{},
		},
		{
			name:      "workers",
			args:      args{input: sampleInput, options: []Option{WithWorkers(3)}},
			wantTotal: 142,
			wantLines: []Line{
				{Number: 0, Text: "1abc2", Value: 12, Sum: 12},
				{Number: 1, Text: "pqr3stu8vwx", Value: 38, Sum: 50},
				{Number: 2, Text: "a1b2c3d4e5f", Value: 15, Sum: 65},
				{Number: 3, Text: "treb7uchet", Value: 77, Sum: 142},
			},
		},
		{
			name:      "debug",
			args:      args{input: "7pqrstsixteen", options: []Option{WithLogger(quietLogger()), WithDebug(true)}},
			wantTotal: 76,
			wantLines: []Line{{Number: 0, Text: "7pqrstsixteen", Value: 76, Sum: 76}},
		},
		{
			name:      "custom trie",
			args:      args{input: "one1", options: []Option{WithTrie(NewDigitTrie())}},
			wantTotal: 11,
			wantLines: []Line{{Number: 0, Text: "one1", Value: 11, Sum: 11}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sum(context.Background(), strings.NewReader(tt.args.input), tt.args.options...)
			if err != nil {
				t.Fatalf("Sum() error = %v", err)
			}
			if got.Total != tt.wantTotal {
				t.Errorf("Sum() total = %v, want %v", got.Total, tt.wantTotal)
			}
			if !reflect.DeepEqual(got.Lines, tt.wantLines) {
				t.Errorf("Sum() lines = %+v, want %+v", got.Lines, tt.wantLines)
			}
		})
	}
}

func TestSum_WorkersMatchSequential(t *testing.T) {
	var input strings.Builder
	for n := 0; n < 300; n++ {
		input.WriteString("53sdthreeninexrfone\nzoneight234\nxtwone3four\nhwqesaasd\n")
	}

	ctx := context.Background()
	want, err := Sum(ctx, strings.NewReader(input.String()))
	if err != nil {
		t.Fatalf("Sum() error = %v", err)
	}

	got, err := Sum(ctx, strings.NewReader(input.String()), WithWorkers(8))
	if err != nil {
		t.Fatalf("Sum() error = %v", err)
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sum() with workers total = %v, want %v", got.Total, want.Total)
	}
	if want.Total != 300*(51+14+24) {
		t.Errorf("Sum() total = %v, want %v", want.Total, 300*(51+14+24))
	}
}

func TestSum_Errors(t *testing.T) {
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name    string
		ctx     context.Context
		input   io.Reader
		options []Option
		wantErr error
	}{
		{name: "canceled", ctx: canceled, input: strings.NewReader(sampleInput), wantErr: context.Canceled},
		{
			name:    "line too long",
			ctx:     context.Background(),
			input:   strings.NewReader(strings.Repeat("a", MaxLineSize+1)),
			wantErr: ErrLineTooLong,
		},
		{
			name:    "read failure",
			ctx:     context.Background(),
			input:   io.MultiReader(strings.NewReader("1abc2\n"), failingReader{}),
			wantErr: ErrInputUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Sum(tt.ctx, tt.input, tt.options...); !errors.Is(err, tt.wantErr) {
				t.Errorf("Sum() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSumFile(t *testing.T) {
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(sampleInput), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := SumFile(ctx, path)
	if err != nil {
		t.Fatalf("SumFile() error = %v", err)
	}
	if got.Total != 142 {
		t.Errorf("SumFile() total = %v, want 142", got.Total)
	}

	if _, err = SumFile(ctx, filepath.Join(t.TempDir(), "missing.txt")); !errors.Is(err, ErrInputUnavailable) {
		t.Errorf("SumFile() error = %v, wantErr %v", err, ErrInputUnavailable)
	}
}

func TestLine_String(t *testing.T) {
	l := Line{Number: 3, Text: "treb7uchet", Value: 77, Sum: 142}

	if got, want := l.String(), "checking line 3: treb7uchet total=77 sum=142"; got != want {
		t.Errorf("Line.String() = %v, want %v", got, want)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device failure") }
