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

// Branch cutoffs for log1pExp, following Mächler, "Accurately Computing
// log(1 - exp(-|a|))" (2012), §3. Below log1pExpTiny, log1p(exp(x))
// rounds to exp(x); above log1pExpBig, it rounds to x.
const (
	log1pExpTiny = -37.0
	log1pExpMid  = 18.0
	log1pExpBig  = 33.3
)

// Log1pExp computes log(1 + exp(x)).
//
// This function is more accurate than composing stdmath.Log1p with
// stdmath.Exp directly: exp(x) overflows for large x even though the
// result is simply x there, and for large negative x the composition
// underflows to 0 earlier than the output precision requires.
//
// Special cases:
//   - Log1pExp(-Inf) = 0
//   - Log1pExp(+Inf) = +Inf
//   - Log1pExp(NaN) = NaN
//   - Log1pExp(0) = ln(2)
func Log1pExp[T Float](x T) T {
	return T(log1pExp(float64(x)))
}

// log1pExp is the float64 kernel shared by LogAddExp and the streaming
// reduction. Piecewise evaluation keeps every branch within the regime
// where its formula is exact to working precision.
func log1pExp(x float64) float64 {
	switch {
	case x <= log1pExpTiny:
		// log1p(y) = y to double precision for y <= exp(-37);
		// exp(-Inf) = 0 exactly.
		return stdmath.Exp(x)
	case x <= log1pExpMid:
		return stdmath.Log1p(stdmath.Exp(x))
	case x <= log1pExpBig:
		// log(1+y) = log(y) + log1p(1/y) and log1p(1/y) = 1/y here.
		return x + stdmath.Exp(-x)
	default:
		// Includes +Inf and NaN.
		return x
	}
}
