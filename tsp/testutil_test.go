// Package tsp_test provides lightweight helpers shared across *_test.go files
// in this package: tiny Distances implementations, deterministic instance
// generators and a reference checker for the greedy rule.
package tsp_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/nntour/matrix"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet is a deterministic seed for generated instances.
	seedDet = int64(7)

	// startV is the canonical start city used across tests.
	startV = 0
)

// example4 is the 4-city instance used throughout the docs:
// from 0 the greedy tour is [0 1 3 2].
var example4 = [][]float64{
	{0, 10, 15, 20},
	{10, 0, 35, 25},
	{15, 35, 0, 30},
	{20, 25, 30, 0},
}

// errMissing is what sparseDist.At reports for absent entries.
var errMissing = errors.New("missing entry")

// sparseDist stores only the listed entries; everything else is "missing".
type sparseDist map[[2]int]float64

func (s sparseDist) At(i, j int) (float64, error) {
	v, ok := s[[2]int{i, j}]
	if !ok {
		return 0, errMissing
	}

	return v, nil
}

// countingDist wraps a Distances and records every (i,j) read.
type countingDist struct {
	inner interface {
		At(i, j int) (float64, error)
	}
	reads [][2]int
}

func (c *countingDist) At(i, j int) (float64, error) {
	c.reads = append(c.reads, [2]int{i, j})

	return c.inner.At(i, j)
}

// mustDense converts a literal table into a *matrix.Dense or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// randomRows builds an n×n non-negative matrix with small integer weights so
// that ties are frequent. Diagonal is zero; symmetry is not enforced.
func randomRows(rng *rand.Rand, n int, maxW int) [][]float64 {
	a := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		a[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i != j {
				a[i][j] = float64(rng.Intn(maxW + 1))
			}
		}
	}

	return a
}

// circleRows places n points on a unit circle and returns the Euclidean
// distance table. The greedy tour from 0 walks the circle in order.
func circleRows(n int) [][]float64 {
	pts := make([][2]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{math.Cos(theta), math.Sin(theta)}
	}
	a := make([][]float64, n)
	for i = 0; i < n; i++ {
		a[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			a[i][j] = math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
		}
	}

	return a
}

// requireGreedy asserts that every step of tour picked the nearest unvisited
// city from its predecessor, breaking ties toward the smallest index.
func requireGreedy(t *testing.T, rows [][]float64, tour []int) {
	t.Helper()
	n := len(rows)
	visited := make([]bool, n)
	visited[tour[0]] = true
	var step, c int
	for step = 1; step < n; step++ {
		cur, next := tour[step-1], tour[step]
		require.False(t, visited[next], "city %d visited twice", next)
		for c = 0; c < n; c++ {
			if visited[c] || c == next {
				continue
			}
			require.True(t, rows[cur][next] <= rows[cur][c],
				"step %d: %d→%d (%g) is farther than %d→%d (%g)", step, cur, next, rows[cur][next], cur, c, rows[cur][c])
			if rows[cur][next] == rows[cur][c] {
				require.Less(t, next, c, "step %d: tie not broken toward the lower index", step)
			}
		}
		visited[next] = true
	}
}
