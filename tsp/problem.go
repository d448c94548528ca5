package tsp

import (
	"github.com/katalvlaran/nntour/matrix"
)

// Problem is what an optimization framework hands to an Optimizer.
type Problem interface {
	// NumCities returns the number of cities n.
	NumCities() int

	// DistMatrix returns the pairwise distances, indexable for i,j ∈ [0..n-1].
	DistMatrix() Distances

	// EvaluateSolution scores a tour. Whether the return edge is charged is
	// the implementation's policy.
	EvaluateSolution(tour []int) (float64, error)
}

// EvaluateFunc scores a tour; see PathCost and CycleCost.
type EvaluateFunc func(tour []int) (float64, error)

// MatrixProblem is a Problem backed by a square matrix.Matrix and an evaluator.
type MatrixProblem struct {
	dist matrix.Matrix
	eval EvaluateFunc
}

var _ Problem = (*MatrixProblem)(nil)

// NewMatrixProblem wraps dist as a Problem.
// A nil eval defaults to CycleCost over dist.
//
// Errors: ErrMalformedMatrix when dist is nil, empty or not square.
//
// Complexity: O(1).
func NewMatrixProblem(dist matrix.Matrix, eval EvaluateFunc) (*MatrixProblem, error) {
	if dist == nil || dist.Rows() <= 0 || dist.Rows() != dist.Cols() {
		return nil, ErrMalformedMatrix
	}
	p := &MatrixProblem{dist: dist, eval: eval}
	if p.eval == nil {
		p.eval = func(tour []int) (float64, error) { return CycleCost(dist, tour) }
	}

	return p, nil
}

// NumCities returns the matrix order.
func (p *MatrixProblem) NumCities() int { return p.dist.Rows() }

// DistMatrix returns the underlying matrix.
func (p *MatrixProblem) DistMatrix() Distances { return p.dist }

// EvaluateSolution delegates to the configured evaluator.
func (p *MatrixProblem) EvaluateSolution(tour []int) (float64, error) { return p.eval(tour) }
