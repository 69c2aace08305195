// Package heuristic defines the cost-estimate capability that guides the
// optimal search, plus the Manhattan-sum implementation.
//
// A Heuristic maps a configuration to a non-negative lower bound on the
// true remaining move count. Admissibility (never overestimating) is a
// precondition for search optimality and is not enforced at runtime; an
// inadmissible estimate silently yields suboptimal solutions.
//
// Manhattan sums, over every tile, the Manhattan distance between the
// tile's cell and its goal cell. It is admissible and consistent, costs
// O(N²) per estimate with no allocation, and is safe for concurrent use
// once constructed.
//
// The stronger disjoint pattern-database heuristic lives in package
// patterndb and satisfies the same capability.
package heuristic
