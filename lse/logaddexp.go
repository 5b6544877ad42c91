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
	stdmath "math"
)

// LogAddExp returns log(exp(a) + exp(b)) without intermediate overflow
// or underflow.
//
// The evaluation decomposes the sum around the larger operand:
//
//	log(exp(a) + exp(b)) = max(a,b) + log(1 + exp(min(a,b) - max(a,b)))
//
// so the argument to log1pExp is always <= 0, the regime the primitive
// is exact in. Adding a -Inf operand (a zero-probability term) returns
// the other operand unchanged.
//
// Special cases:
//   - LogAddExp(NaN, b) = LogAddExp(a, NaN) = NaN
//   - LogAddExp(+Inf, b) = +Inf for any non-NaN b, including -Inf
//   - LogAddExp(-Inf, -Inf) = -Inf
func LogAddExp[T Float](a, b T) T {
	x, y := float64(a), float64(b)
	// NaN must be rejected before the max/min decomposition: every
	// ordering comparison against NaN is false, so it would otherwise
	// masquerade as the smaller operand.
	if stdmath.IsNaN(x) || stdmath.IsNaN(y) {
		return T(stdmath.NaN())
	}
	hi, lo := x, y
	if hi < lo {
		hi, lo = lo, hi
	}
	// hi = +Inf dominates the sum absolutely; hi = -Inf means both
	// operands are -Inf and the sum is log(0). Either way the result is
	// hi, and computing lo-hi (possibly Inf-Inf) is avoided.
	if stdmath.IsInf(hi, 0) {
		return T(hi)
	}
	return T(hi + log1pExp(lo-hi))
}
