// Package nntour builds Travelling Salesman tours with the nearest-neighbour
// construction heuristic.
//
// Packages:
//
//	matrix/     — Matrix interface and the row-major Dense distance store
//	tsp/        — BuildNearestNeighbor, the Optimizer/Problem plug-in contract,
//	              PathCost/CycleCost evaluators and tour helpers
//	cmd/nntour/ — command that solves a YAML instance
//	examples/   — runnable demos
//
// Quick example:
//
//	dist, _ := matrix.NewDenseFromRows(rows)
//	tour, err := tsp.BuildNearestNeighbor(len(rows), dist, 0)
//
// The heuristic is a single deterministic greedy pass: no local search, no
// restarts. Ties go to the lowest city index.
//
//	go get github.com/katalvlaran/nntour
package nntour
