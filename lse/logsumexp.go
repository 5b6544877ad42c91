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

package lse

import (
	"iter"
	stdmath "math"
)

// Accumulator folds a sequence of log-domain values into their
// log-sum-exp in a single pass, based on the online normalizer of
// Milakov and Gimelshein, "Online normalizer calculation for softmax"
// (arXiv:1805.02867), extended to handle ±Inf and NaN at any position.
//
// The state is a running maximum and a running correction sum: after
// folding values x_1..x_n with finite maximum m, sum holds
// sum_i exp(x_i - m), so the reduction result is m + log(sum). When a
// new maximum arrives the correction sum is rescaled into the new frame
// instead of re-reading the sequence, which is what makes the fold
// one-pass.
//
// An Accumulator is private to one reduction; it must not be shared
// across goroutines. Partials from disjoint partitions can be combined
// with Merge.
type Accumulator[T Float] struct {
	max float64
	sum float64
}

// NewAccumulator returns an empty Accumulator. The zero value is not
// usable: the running maximum starts at -Inf, the identity of max.
func NewAccumulator[T Float]() Accumulator[T] {
	return Accumulator[T]{max: stdmath.Inf(-1)}
}

// Observe folds one value into the running reduction.
func (a *Accumulator[T]) Observe(v T) {
	x := float64(v)
	switch {
	case stdmath.IsNaN(a.max):
		// NaN is absorbing: once observed, no later value changes the
		// outcome.
	case stdmath.IsNaN(x):
		a.max = x
	case stdmath.IsInf(x, -1):
		// exp(-Inf) = 0, a zero-weight term. Skipping it outright also
		// keeps -Inf - (-Inf) from ever being formed while the running
		// maximum is still -Inf.
	case stdmath.IsInf(a.max, 1):
		// A +Inf term dominates the sum absolutely; any remaining
		// finite term would contribute exp(finite - Inf) = 0.
	case x > a.max:
		// New running maximum: rescale the correction sum into the new
		// frame, plus 1 for the new term's own exp(x - x). The
		// difference here is -Inf - finite, finite - finite, or
		// finite - (+Inf); a same-sign Inf - Inf is unreachable.
		a.sum = a.sum*stdmath.Exp(a.max-x) + 1
		a.max = x
	default:
		// x <= max, both finite.
		a.sum += stdmath.Exp(x - a.max)
	}
}

// Merge folds the partial reduction b into a, as if every value observed
// by b had been observed by a. It is the pairwise combination step for
// reducing disjoint partitions of a sequence in parallel.
func (a *Accumulator[T]) Merge(b Accumulator[T]) {
	switch {
	case stdmath.IsNaN(a.max):
	case stdmath.IsNaN(b.max):
		a.max = b.max
	case stdmath.IsInf(b.max, -1):
		// b is empty or saw only zero-weight terms.
	case stdmath.IsInf(a.max, -1):
		*a = b
	case b.max == a.max:
		// Same frame; covers both maxima being +Inf, where the frame
		// difference must not be formed.
		a.sum += b.sum
	case b.max > a.max:
		a.sum = a.sum*stdmath.Exp(a.max-b.max) + b.sum
		a.max = b.max
	default:
		a.sum += b.sum * stdmath.Exp(b.max-a.max)
	}
}

// Result returns the log-sum-exp of every value observed so far. An
// empty Accumulator yields -Inf, the log of the empty sum.
func (a *Accumulator[T]) Result() T {
	if stdmath.IsNaN(a.max) || stdmath.IsInf(a.max, 0) {
		return T(a.max)
	}
	return T(a.max + stdmath.Log(a.sum))
}

// Reset returns the Accumulator to the empty state for reuse.
func (a *Accumulator[T]) Reset() {
	a.max = stdmath.Inf(-1)
	a.sum = 0
}

// LogSumExp returns log(sum_i exp(x_i)) over the values produced by seq,
// consuming the sequence exactly once. Once a NaN is observed the result
// is decided and no further values are pulled.
func LogSumExp[T Float](seq iter.Seq[T]) T {
	acc := NewAccumulator[T]()
	for v := range seq {
		acc.Observe(v)
		if stdmath.IsNaN(acc.max) {
			break
		}
	}
	return acc.Result()
}

// LogSumExpSlice returns log(sum_i exp(xs[i])).
func LogSumExpSlice[T Float](xs []T) T {
	acc := NewAccumulator[T]()
	for _, v := range xs {
		acc.Observe(v)
		if stdmath.IsNaN(acc.max) {
			break
		}
	}
	return acc.Result()
}

// LogMeanExp returns log(mean_i exp(xs[i])), the log-domain arithmetic
// mean. Useful when averaging probabilities too small to represent
// linearly. The mean of an empty sequence is NaN.
func LogMeanExp[T Float](xs []T) T {
	if len(xs) == 0 {
		return T(stdmath.NaN())
	}
	return T(float64(LogSumExpSlice(xs)) - stdmath.Log(float64(len(xs))))
}
