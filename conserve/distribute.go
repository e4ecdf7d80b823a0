// Package conserve: the phase-structured remainder redistribution driver.
package conserve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/demonet/network"
	"github.com/katalvlaran/demonet/randsrc"
	"github.com/katalvlaran/demonet/timing"
)

// DistributeRemainders restores exact count conservation between parent and
// its demographic sub-networks after each was scaled independently.
//
// On return, for every node index i
//
//	Σ_j subnets[j].Nodes.SavePlaySuscept[i] == parent.Nodes.SavePlaySuscept[i]
//
// holds exactly, and the analogous identity for link Weight. Corrected
// values are written to both channels of every partition (PlaySuscept with
// SavePlaySuscept; Suscept with Weight). The parent is never written.
//
// src supplies the uniform partition draws of the repair phases; it is
// consumed strictly sequentially, so a fixed-seed source makes the whole
// call deterministic. See the package documentation for the phase
// structure and the concurrency contract.
//
// The call validates everything up front and mutates nothing on error.
func DistributeRemainders(parent *network.Network, subnets []*network.Network, src randsrc.Uniform, opts *Options) error {
	if parent == nil {
		return ErrNilParent
	}
	if len(subnets) == 0 {
		return ErrNoSubnets
	}
	if src == nil {
		return ErrNilSource
	}
	for j, sub := range subnets {
		if !parent.SameShape(sub) {
			return fmt.Errorf("conserve: sub-network %d: %w", j, ErrShapeMismatch)
		}
	}

	cfg := opts.normalized()
	nNodes := parent.Nodes.Count()
	nLinks := parent.Links.Count()

	// INIT: scratch arrays seeded with the parent's baseline values.
	h := cfg.Timer.Start(timing.PhaseInitialise)
	nodeDiff := make([]float64, nNodes+1)
	linkDiff := make([]float64, nLinks+1)
	forEachChunk(nNodes, cfg.Workers, func(lo, hi int) {
		copy(nodeDiff[lo:hi+1], parent.Nodes.SavePlaySuscept[lo:hi+1])
	})
	forEachChunk(nLinks, cfg.Workers, func(lo, hi int) {
		copy(linkDiff[lo:hi+1], parent.Links.Weight[lo:hi+1])
	})
	h.Stop()

	// ACCUMULATE_DIFFS: scratch[i] = parent[i] − Σ partitions[i]. Each
	// worker owns its index range outright, so partitions can be folded in
	// caller order without any locking; subtraction commutes, so the final
	// scratch values do not depend on that order.
	h = cfg.Timer.Start(timing.PhaseCalcDifferences)
	forEachChunk(nNodes, cfg.Workers, func(lo, hi int) {
		for _, sub := range subnets {
			vals := sub.Nodes.SavePlaySuscept
			for i := lo; i <= hi; i++ {
				nodeDiff[i] -= vals[i]
			}
		}
	})
	forEachChunk(nLinks, cfg.Workers, func(lo, hi int) {
		for _, sub := range subnets {
			vals := sub.Links.Weight
			for i := lo; i <= hi; i++ {
				linkDiff[i] -= vals[i]
			}
		}
	})
	h.Stop()

	// REPAIR_NODES: sequential single writer over the shared random stream.
	h = cfg.Timer.Start(timing.PhaseDistributeNodes)
	var nodeCorrected float64
	values := make([]float64, len(subnets))
	for i := 1; i <= nNodes; i++ {
		if nodeDiff[i] == 0 {
			continue
		}
		nodeCorrected += math.Abs(nodeDiff[i])
		for j, sub := range subnets {
			values[j] = sub.Nodes.SavePlaySuscept[i]
		}
		Redistribute(parent.Nodes.SavePlaySuscept[i], values, src)
		for j, sub := range subnets {
			sub.Nodes.PlaySuscept[i] = values[j]
			sub.Nodes.SavePlaySuscept[i] = values[j]
		}
	}
	h.Stop()

	// REPAIR_LINKS: same scheme against the parent's link weights.
	h = cfg.Timer.Start(timing.PhaseDistributeLinks)
	var linkCorrected float64
	for i := 1; i <= nLinks; i++ {
		if linkDiff[i] == 0 {
			continue
		}
		linkCorrected += math.Abs(linkDiff[i])
		for j, sub := range subnets {
			values[j] = sub.Links.Weight[i]
		}
		Redistribute(parent.Links.Weight[i], values, src)
		for j, sub := range subnets {
			sub.Links.Weight[i] = values[j]
			sub.Links.Suscept[i] = values[j]
		}
	}
	h.Stop()

	cfg.Log.Info("redistributed rounding remainders",
		"subnets", len(subnets),
		"nodes_corrected", nodeCorrected,
		"links_corrected", linkCorrected)

	return nil
}
