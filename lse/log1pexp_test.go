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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog1pExpSpecials(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"negative infinity", stdmath.Inf(-1), 0},
		{"positive infinity", stdmath.Inf(1), stdmath.Inf(1)},
		{"above upper cutoff", 40, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Log1pExp(tt.input))
		})
	}

	t.Run("zero", func(t *testing.T) {
		assert.InDelta(t, stdmath.Ln2, Log1pExp(0.0), 1e-16)
	})

	t.Run("nan", func(t *testing.T) {
		assert.True(t, stdmath.IsNaN(Log1pExp(stdmath.NaN())))
	})
}

// TestLog1pExpAgainstNaive compares against the direct composition in
// the range where the composition itself is accurate.
func TestLog1pExpAgainstNaive(t *testing.T) {
	for x := -30.0; x <= 10.0; x += 0.37 {
		want := stdmath.Log1p(stdmath.Exp(x))
		got := Log1pExp(x)
		require.InDelta(t, want, got, 4e-16*stdmath.Max(1, stdmath.Abs(want)),
			"Log1pExp(%v)", x)
	}
}

// TestLog1pExpLargePositive verifies the x + exp(-x) branch against the
// identity log(1+e^x) = x + log1p(e^-x), which is stable for x > 0.
func TestLog1pExpLargePositive(t *testing.T) {
	for x := 10.0; x <= 50.0; x += 0.73 {
		want := x + stdmath.Log1p(stdmath.Exp(-x))
		got := Log1pExp(x)
		require.InDelta(t, want, got, 1e-15*want, "Log1pExp(%v)", x)
	}
}

// TestLog1pExpNoPrematureUnderflow checks that deeply negative inputs
// still produce the exact subnormal-scale result instead of 0.
func TestLog1pExpNoPrematureUnderflow(t *testing.T) {
	got := Log1pExp(-700.0)
	require.Positive(t, got)
	assert.Equal(t, stdmath.Exp(-700), got)
}

func TestLog1pExpFloat32(t *testing.T) {
	assert.InDelta(t, stdmath.Ln2, float64(Log1pExp(float32(0))), 1e-7)
	assert.Equal(t, float32(0), Log1pExp(float32(stdmath.Inf(-1))))
	assert.True(t, stdmath.IsInf(float64(Log1pExp(float32(stdmath.Inf(1)))), 1))
}
