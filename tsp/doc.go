// Package tsp builds Travelling Salesman tours with the nearest-neighbour
// construction heuristic and exposes it as an optimizer plug-in.
//
// Two layers are provided:
//
//   - BuildNearestNeighbor: the pure construction loop. Starting from a given
//     city it repeatedly appends the closest unvisited city until every city
//     has been placed.
//
//   - Complexity: O(n²) time, O(n) extra space.
//
//   - Ties are broken toward the smallest city index, so equal inputs always
//     produce equal tours.
//
//   - NearestNeighbor: an Optimizer that reads a Problem (city count, distance
//     matrix, evaluator), builds a tour from the configured start city and
//     asks the Problem to score it.
//
// Tours are open permutations of [0..n-1]: the return edge to the start is not
// stored. Whether it is charged is decided by the evaluator (see PathCost and
// CycleCost for the two common policies).
//
// All invalid-input failures match ErrInvalidInput via errors.Is.
package tsp
