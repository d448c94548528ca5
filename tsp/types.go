package tsp

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the umbrella sentinel for every rejected input.
// The refined sentinels below wrap it, so errors.Is(err, ErrInvalidInput)
// holds for all of them.
var ErrInvalidInput = errors.New("tsp: invalid input")

var (
	// ErrNoCities is returned when the city count is not positive.
	ErrNoCities = fmt.Errorf("%w: city count must be positive", ErrInvalidInput)

	// ErrStartOutOfRange is returned when the start city is outside [0..n-1].
	ErrStartOutOfRange = fmt.Errorf("%w: start city out of range", ErrInvalidInput)

	// ErrMalformedMatrix is returned when the distance matrix is nil, cannot
	// supply an accessed entry, or holds a NaN or negative distance.
	ErrMalformedMatrix = fmt.Errorf("%w: malformed distance matrix", ErrInvalidInput)

	// ErrInvalidTour is returned when a tour is not a permutation of [0..n-1].
	ErrInvalidTour = fmt.Errorf("%w: tour is not a permutation", ErrInvalidInput)

	// ErrNilProblem is returned by Optimize when no problem is supplied.
	ErrNilProblem = fmt.Errorf("%w: nil problem", ErrInvalidInput)
)

// Distances is the read-only view the builder needs from a distance matrix.
// Every matrix.Matrix satisfies it. At must return a non-nil error for any
// entry it cannot supply.
type Distances interface {
	At(i, j int) (float64, error)
}

// Result holds the outcome of an Optimizer run.
type Result struct {
	// Tour is an open permutation of [0..n-1]; Tour[0] is the start city.
	Tour []int

	// Cost is the value reported by the problem's evaluator for Tour.
	Cost float64
}
