// Copyright 2026 go-logsumexp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	stdmath "math"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-logsumexp/lse"
)

type options struct {
	verbose bool
	workers int
}

func (o *options) logger() *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func (o *options) runSum(cmd *cobra.Command, args []string) error {
	log := o.logger()
	start := time.Now()

	var result float64
	var count int
	if o.workers > 0 {
		// The partitioned fold needs random access; buffer the stream.
		var xs []float64
		n, err := forEachValue(cmd, args, func(x float64) {
			xs = append(xs, x)
		})
		if err != nil {
			return err
		}
		count = n
		result = lse.LogSumExpParallel(xs, o.workers)
	} else {
		acc := lse.NewAccumulator[float64]()
		n, err := forEachValue(cmd, args, acc.Observe)
		if err != nil {
			return err
		}
		count = n
		result = acc.Result()
	}

	log.Debug("reduced stream",
		"op", "sum", "values", count, "workers", o.workers,
		"elapsed", time.Since(start), "result", result)
	printResult(cmd, result)
	return nil
}

func (o *options) runMean(cmd *cobra.Command, args []string) error {
	log := o.logger()
	start := time.Now()

	acc := lse.NewAccumulator[float64]()
	count, err := forEachValue(cmd, args, acc.Observe)
	if err != nil {
		return err
	}

	// log(mean) = log(sum) - log(n); the empty mean is 0/0.
	result := stdmath.NaN()
	if count > 0 {
		result = acc.Result() - stdmath.Log(float64(count))
	}

	log.Debug("reduced stream",
		"op", "mean", "values", count,
		"elapsed", time.Since(start), "result", result)
	printResult(cmd, result)
	return nil
}

func (o *options) runAdd(cmd *cobra.Command, args []string) error {
	a, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", args[0], err)
	}
	b, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", args[1], err)
	}
	printResult(cmd, lse.LogAddExp(a, b))
	return nil
}

// forEachValue streams whitespace-separated floats from the named files,
// or from the command's stdin when no files are given, and returns the
// number of values seen.
func forEachValue(cmd *cobra.Command, files []string, fn func(float64)) (int, error) {
	if len(files) == 0 {
		return scanValues(cmd.InOrStdin(), "stdin", fn)
	}

	total := 0
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return total, fmt.Errorf("opening input: %w", err)
		}
		n, err := scanValues(f, name, fn)
		f.Close()
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func scanValues(r io.Reader, name string, fn func(float64)) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	n := 0
	for sc.Scan() {
		x, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return n, fmt.Errorf("%s: value %d: parsing %q: %w", name, n+1, sc.Text(), err)
		}
		fn(x)
		n++
	}
	if err := sc.Err(); err != nil {
		return n, fmt.Errorf("reading %s: %w", name, err)
	}
	return n, nil
}

func printResult(cmd *cobra.Command, x float64) {
	fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(x, 'g', -1, 64))
}
