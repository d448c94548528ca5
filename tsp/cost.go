// Package tsp — cost evaluators.
//
// The builder never scores tours; scoring belongs to the Problem. These
// helpers implement the two usual policies so a host can assemble a Problem
// without writing its own evaluator:
//   - PathCost: open path, Σ dist[t[i]][t[i+1]].
//   - CycleCost: PathCost plus the implicit return edge dist[t[n-1]][t[0]].
//
// Both reuse the strict per-entry checks of distanceAt and round the sum to
// 1e-9 to keep results stable across platforms.
package tsp

import "math"

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// PathCost returns the length of tour read as an open path.
//
// Contract:
//   - tour is a permutation of [0..len(tour)-1] (else ErrInvalidTour / ErrNoCities).
//   - Every read entry is readable, finite-or-+Inf and non-negative (else ErrMalformedMatrix).
//
// Complexity: O(n).
func PathCost(dist Distances, tour []int) (float64, error) {
	return tourCost(dist, tour, false)
}

// CycleCost returns the length of tour read as a closed cycle, charging the
// edge from the last city back to the first.
//
// Complexity: O(n).
func CycleCost(dist Distances, tour []int) (float64, error) {
	return tourCost(dist, tour, true)
}

// tourCost sums consecutive edges, optionally closing the cycle.
func tourCost(dist Distances, tour []int, closed bool) (float64, error) {
	if dist == nil {
		return 0, ErrMalformedMatrix
	}
	n := len(tour)
	if err := ValidatePermutation(tour, n); err != nil {
		return 0, err
	}

	var (
		sum float64
		w   float64
		i   int
		err error
	)
	for i = 0; i+1 < n; i++ {
		w, err = distanceAt(dist, tour[i], tour[i+1])
		if err != nil {
			return 0, err
		}
		sum += w
	}
	if closed && n > 1 {
		w, err = distanceAt(dist, tour[n-1], tour[0])
		if err != nil {
			return 0, err
		}
		sum += w
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
// Infinite sums pass through unchanged.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	if math.IsInf(x, 0) {
		return x
	}

	return math.Round(x*roundScale) / roundScale
}
