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

// Package lse provides numerically stable evaluation of log-domain
// reductions: the pairwise log-add-exp, log(exp(a) + exp(b)), and its
// generalization, the log-sum-exp of a sequence, log(sum_i exp(x_i)).
//
// Evaluating either expression naively overflows for inputs beyond
// roughly ±709 in double precision. The functions in this package match
// the mathematically exact value to within a few ULPs across the entire
// floating-point domain, including ±Inf and NaN.
//
// # Pairwise combination
//
//	z := lse.LogAddExp(1000.0, 1000.0) // 1000 + ln(2), not +Inf
//
// # Streaming reduction
//
// LogSumExp consumes a sequence in a single pass using an online
// normalizer, so the sequence never needs to be buffered and no separate
// max-finding pass is required:
//
//	total := lse.LogSumExpSlice(logWeights)
//
// For explicit control over the fold, use an Accumulator directly:
//
//	acc := lse.NewAccumulator[float64]()
//	for _, w := range logWeights {
//		acc.Observe(w)
//	}
//	total := acc.Result()
//
// Partial accumulators from disjoint partitions of a sequence can be
// combined with Merge; LogSumExpParallel does this across goroutines.
//
// # Special values
//
// Both operations are total. NaN anywhere in the input yields NaN. A +Inf
// term dominates the sum absolutely (the result is +Inf unless a NaN is
// also present). A -Inf term is a zero-weight term and never changes the
// result; the log-sum-exp of an empty sequence, or of a sequence of only
// -Inf terms, is -Inf.
package lse
