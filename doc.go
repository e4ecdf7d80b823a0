// Package demonet splits a network-structured population into demographic
// sub-networks and keeps their susceptible counts exactly conserved.
//
// 🚀 What is demonet?
//
//	A small numeric core for metapopulation models that need to partition
//	one network (nodes + directed weighted links) into demographic slices:
//		• Scale: multiply each slice's counts by its demographic ratio,
//		  rounded back to integers under a biased, reproducible rule
//		• Conserve: repair the rounding error stochastically so the slices
//		  sum back to the parent, index by index, exactly
//		• Observe: named-phase timing (no-op, wall-clock or Prometheus)
//		  and structured slog diagnostics
//
// ✨ Why demonet?
//
//   - Exactness – conservation is bit-exact, not approximate
//   - Reproducibility – one seeded random stream, fixed seed → fixed outcome
//   - Predictable parallelism – static fork-join for the reduction phases,
//     a single writer for everything that consumes randomness
//
// Package map:
//
//	network/  — Nodes/Links/Network collections with 1-indexed conserved arrays
//	scale/    — ratio forms (scalar, by-index, dense) and the rounding kernel
//	conserve/ — remainder redistribution with phase timing
//	timing/   — Noop, Wall and Prometheus phase timers
//	randsrc/  — seeded xoshiro256** source with exportable state
//	snapshot/ — optional Redis checkpoint of the conserved arrays
//
// Quick sketch:
//
//	parent ──scale 0.33──► slice A ─┐
//	       ──scale 0.50──► slice B ─┼─ conserve ──► Σ slices == parent
//	       ──scale 0.17──► slice C ─┘
//
// See examples/ for runnable scenarios.
package demonet
