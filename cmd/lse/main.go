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

// Command lse computes numerically stable log-domain reductions over
// whitespace-separated floating-point values.
//
// Usage:
//
//	lse sum data.txt             # log-sum-exp of the values in data.txt
//	printf '1000 1000' | lse sum # reads stdin when no files are given
//	lse sum --parallel 8 big.txt # partitioned fold across goroutines
//	lse add 1000 1000            # pairwise log-add-exp
//	lse mean scores.txt          # log-mean-exp
//
// Values are parsed with strconv.ParseFloat, so "Inf", "-Inf" and "NaN"
// are accepted and follow the usual log-domain conventions: NaN is
// absorbing, +Inf dominates, -Inf is a zero-weight term.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "lse",
		Short:         "Numerically stable log-domain reductions",
		Long:          "lse evaluates log(sum_i exp(x_i)) and log(exp(a) + exp(b)) without overflow,\nfor inputs anywhere in the floating-point domain including ±Inf and NaN.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"log fold diagnostics to stderr")

	sumCmd := &cobra.Command{
		Use:   "sum [file...]",
		Short: "Log-sum-exp of a stream of values",
		Long:  "Streams whitespace-separated values from the given files (or stdin) through a\nsingle-pass online reduction and prints log(sum_i exp(x_i)).",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runSum(cmd, args)
		},
	}
	sumCmd.Flags().IntVar(&opts.workers, "parallel", 0,
		"buffer the input and fold partitions on N goroutines (0 = stream sequentially)")

	addCmd := &cobra.Command{
		Use:   "add <a> <b>",
		Short: "Pairwise log-add-exp of two values",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runAdd(cmd, args)
		},
	}

	meanCmd := &cobra.Command{
		Use:   "mean [file...]",
		Short: "Log-mean-exp of a stream of values",
		Long:  "Streams values like sum and prints log(mean_i exp(x_i)), the log-domain\narithmetic mean.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runMean(cmd, args)
		},
	}

	rootCmd.AddCommand(sumCmd, addCmd, meanCmd)
	return rootCmd
}
