// Package tsp - optimizer plug-in.
//
// This file adapts BuildNearestNeighbor to the framework contract:
// an Optimizer receives a Problem, constructs a tour and returns it together
// with the cost reported by the Problem's own evaluator.
//
// Design principles:
//   - Configuration (start city, logger) is fixed at construction time.
//   - Evaluator failures are returned unmodified; nothing is retried.
//   - No partial results: any failure yields the zero Result.
package tsp

import (
	"github.com/sirupsen/logrus"
)

// Optimizer is any type able to turn a Problem into a scored tour.
// initial is an optional warm start; implementations may ignore it.
type Optimizer interface {
	Optimize(p Problem, initial []int) (Result, error)
}

// NearestNeighbor is an Optimizer running a single deterministic
// nearest-neighbour construction pass.
type NearestNeighbor struct {
	start int
	log   logrus.FieldLogger
}

var _ Optimizer = (*NearestNeighbor)(nil)

// NewNearestNeighbor returns an optimizer starting at DefaultStartCity and
// logging to the logrus standard logger, adjusted by opts.
func NewNearestNeighbor(opts ...Option) *NearestNeighbor {
	nn := &NearestNeighbor{
		start: DefaultStartCity,
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(nn)
	}

	return nn
}

// StartCity reports the configured start city.
func (nn *NearestNeighbor) StartCity() int { return nn.start }

// Optimize builds a nearest-neighbour tour for p and scores it with
// p.EvaluateSolution.
//
// Contracts:
//   - p must be non-nil (else ErrNilProblem).
//   - initial is accepted for interface compatibility and ignored; the tour is
//     always constructed from scratch.
//   - Builder errors (ErrNoCities, ErrStartOutOfRange, ErrMalformedMatrix) and
//     evaluator errors are returned as-is together with the zero Result.
//
// Complexity: O(n²) plus the evaluator's cost.
func (nn *NearestNeighbor) Optimize(p Problem, initial []int) (Result, error) {
	if p == nil {
		return Result{}, ErrNilProblem
	}
	n := p.NumCities()
	log := nn.log.WithFields(logrus.Fields{
		"cities": n,
		"start":  nn.start,
	})
	if initial != nil {
		log.Debugf("ignoring initial solution of %d cities", len(initial))
	}

	tour, err := BuildNearestNeighbor(n, p.DistMatrix(), nn.start)
	if err != nil {
		log.WithError(err).Debug("tour construction failed")
		return Result{}, err
	}

	cost, err := p.EvaluateSolution(tour)
	if err != nil {
		return Result{}, err
	}
	log.WithField("cost", cost).Debug("nearest-neighbour tour built")

	return Result{Tour: tour, Cost: cost}, nil
}
