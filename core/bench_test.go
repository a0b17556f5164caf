// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/katalvlaran/plexus/core"
)

// ring builds a directed ring of v vertices.
func ring(b *testing.B, v int64) *core.Graph[int64] {
	b.Helper()
	src := make([]int64, v)
	dst := make([]int64, v)
	for i := int64(0); i < v; i++ {
		src[i] = i
		dst[i] = (i + 1) % v
	}
	g, err := core.FromEdgeList(src, dst, core.WithDirected(true))
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func BenchmarkFromEdgeList_Directed(b *testing.B) {
	src := make([]int64, 1<<14)
	dst := make([]int64, 1<<14)
	for i := range src {
		src[i] = int64(i)
		dst[i] = int64((i * 7) % len(src))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := core.FromEdgeList(src, dst, core.WithDirected(true)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEnsureForwardCSR_Cold(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := ring(b, 1<<12)
		b.StartTimer()
		if _, err := g.EnsureForwardCSR(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNeighbors_Warm(b *testing.B) {
	g := ring(b, 1<<12)
	if _, err := g.EnsureForwardCSR(); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Neighbors(int64(i & 4095)); err != nil {
			b.Fatal(err)
		}
	}
}
