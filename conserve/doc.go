// Package conserve repairs the integer rounding error left behind when a
// network's demographic sub-networks are scaled independently, restoring
// exact conservation: for every node and link index, the partitions' counts
// sum back to the parent's count.
//
// Algorithm Outline:
//  1. INIT — copy the parent's baseline arrays (save_play_suscept for
//     nodes, weight for links) into scratch difference arrays. Parallel
//     over static contiguous index chunks.
//  2. ACCUMULATE_DIFFS — subtract every sub-network's values from the
//     scratch arrays, index by index. After all partitions:
//     scratch[i] = parent[i] − Σ_j partition_j[i], the exact per-index
//     deficit (>0) or surplus (<0). Parallel over the same chunks; each
//     index is owned by exactly one worker, and since subtraction is
//     commutative the result is independent of partition order.
//  3. REPAIR_NODES / REPAIR_LINKS — for every index with a nonzero
//     scratch value, gather that index's per-partition values, call
//     Redistribute against the parent value, and write the corrected
//     values back (nodes → play_suscept AND save_play_suscept, links →
//     weight AND suscept). Strictly sequential: every repair consumes the
//     one shared random stream, so a single logical writer is required for
//     reproducibility.
//
// The Redistribute primitive nudges per-partition values by ±1, choosing
// the partition for each unit by an independent uniform draw. This is NOT
// round-robin: one partition may absorb several units of a correction.
//
// Phases are bracketed by a timing.Timer under the names initialise,
// calc_differences, distribute_nodes and distribute_links; the total
// absolute correction applied is reported through a *slog.Logger as a
// diagnostic.
//
// Complexity: O((N+L)·P) for the reduction phases over P partitions, plus
// O(units) random draws for the repairs.
//
// Errors:
//   - ErrNilParent     — parent network is nil.
//   - ErrNoSubnets     — empty partition list.
//   - ErrNilSource     — nil random source.
//   - ErrShapeMismatch — a partition's shape differs from the parent's.
//
// All validation happens before any mutation; a call either completes or
// returns an error having written nothing.
package conserve
