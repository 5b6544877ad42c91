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
	"math/rand"
	"strconv"
	"testing"
)

var benchSink float64

func benchValues(n int) []float64 {
	rng := rand.New(rand.NewSource(42))
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = rng.NormFloat64() * 100
	}
	return xs
}

func BenchmarkLogAddExp(b *testing.B) {
	xs := benchValues(2)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchSink = LogAddExp(xs[0], xs[1])
	}
}

func BenchmarkLog1pExp(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchSink = Log1pExp(-float64(i % 40))
	}
}

func BenchmarkLogSumExpSlice(b *testing.B) {
	for _, n := range []int{16, 1024, 65536} {
		xs := benchValues(n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				benchSink = LogSumExpSlice(xs)
			}
		})
	}
}

func BenchmarkLogSumExpParallel(b *testing.B) {
	xs := benchValues(1 << 20)
	for _, workers := range []int{1, 2, 4, 8} {
		b.Run("workers-"+strconv.Itoa(workers), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				benchSink = LogSumExpParallel(xs, workers)
			}
		})
	}
}
