// Package tsp - validation utilities shared by the builder and cost helpers.
//
// This file contains small helpers that:
//  1. Validate the instance shape (city count, start city).
//  2. Read a single distance with strict checks so that sentinel semantics
//     stay centralized.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
package tsp

import (
	"fmt"
	"math"
)

// validateInstance checks n>0 and start∈[0..n-1], in that order.
//
// Complexity: O(1).
func validateInstance(n int, start int) error {
	if n <= 0 {
		return ErrNoCities
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}

	return nil
}

// distanceAt fetches dist[u][v] with strict validation:
//   - nil dist or an At failure ⇒ ErrMalformedMatrix (the cause is kept in the message),
//   - NaN or negative value ⇒ ErrMalformedMatrix,
//   - +Inf is returned as-is ("no direct road").
//
// Complexity: O(1) plus the cost of dist.At.
func distanceAt(dist Distances, u, v int) (float64, error) {
	if dist == nil {
		return 0, ErrMalformedMatrix
	}
	w, err := dist.At(u, v)
	if err != nil {
		return 0, fmt.Errorf("%w: entry (%d,%d): %v", ErrMalformedMatrix, u, v, err)
	}
	if math.IsNaN(w) {
		return 0, fmt.Errorf("%w: entry (%d,%d) is NaN", ErrMalformedMatrix, u, v)
	}
	if w < 0 {
		return 0, fmt.Errorf("%w: entry (%d,%d) is negative (%g)", ErrMalformedMatrix, u, v, w)
	}

	return w, nil
}
