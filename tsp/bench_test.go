// Package tsp_test — benchmarks for the nearest-neighbour builder.
//
// Policy:
//   - Deterministic geometry (circle) and fixed seeds (seedDet).
//   - Inputs are built outside the timer; only the algorithmic core is measured.
package tsp_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/nntour/tsp"
)

// BenchmarkBuildNearestNeighbor measures the O(n²) construction on random matrices.
func BenchmarkBuildNearestNeighbor(b *testing.B) {
	for _, n := range []int{16, 128, 512} {
		rows := randomRows(rand.New(rand.NewSource(seedDet)), n, 1000)
		dist := mustDense(b, rows)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := tsp.BuildNearestNeighbor(n, dist, startV); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkCycleCost measures scoring a tour on a circle instance.
func BenchmarkCycleCost(b *testing.B) {
	const n = 512
	dist := mustDense(b, circleRows(n))
	tour, err := tsp.BuildNearestNeighbor(n, dist, startV)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = tsp.CycleCost(dist, tour); err != nil {
			b.Fatal(err)
		}
	}
}
