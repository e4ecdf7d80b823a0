// Package conserve: the ±1 stochastic redistribution primitive.
package conserve

import "github.com/katalvlaran/demonet/randsrc"

// Redistribute nudges values by ±1 until they sum exactly to target.
//
// Each unit of the correction picks its partition by an independent uniform
// draw in [0, len(values)) — repeated draws, not a round-robin rotation, so
// a single partition may absorb more than one unit. Postcondition:
// Σ values == target exactly.
//
// Values are integer-valued float64 counts; target must be reachable by
// integer steps (a fractional gap would never close and is a caller-contract
// violation, not guarded here). A value may transiently go negative while
// surplus is being drained; no floor is applied — callers keep targets
// non-negative and partitions large enough that a correct run never ends
// below zero.
//
// An empty values slice leaves nothing to adjust and returns immediately.
func Redistribute(target float64, values []float64, src randsrc.Uniform) {
	n := len(values)
	if n == 0 {
		return
	}

	remaining := target
	for _, v := range values {
		remaining -= v
	}

	for remaining > 0 { // deficit: hand out units
		values[src.Uniform(n)]++
		remaining--
	}
	for remaining < 0 { // surplus: take units back
		values[src.Uniform(n)]--
		remaining++
	}
}
