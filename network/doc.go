// Package network defines the population-model collections that the demonet
// numeric core operates on: Nodes (population units with "play" and baseline
// susceptible channels) and Links (directed weighted edges tagged with their
// origin node).
//
// Array convention:
//
//	Every conserved array has length N+1 (or L+1 for links) and is 1-indexed:
//	index 0 is an unused sentinel that must stay zero. Index 1 is the first
//	real entity. All populated entries are non-negative and integer-valued
//	even though they are stored as float64 — callers outside this module
//	rely on that invariant, and AssertSane verifies it.
//
// Ownership:
//
//	Collections own their arrays for their whole lifetime. The scale and
//	conserve packages only read and write element values through these
//	exported slices; they never change an array's length. No internal
//	locking is provided: a collection is exclusively owned by one call at a
//	time (see the conserve package for the concurrency contract).
//
// Partitions:
//
//	A demographic sub-network is a Network of identical shape to its parent,
//	produced with CloneShape (all-zero) or Clone (value copy). After the
//	conserve package has repaired rounding remainders, the sub-networks'
//	conserved arrays sum exactly back to the parent's.
package network
