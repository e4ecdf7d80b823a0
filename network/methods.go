// Package network: counting, cloning and sanity checks for collections.
package network

import (
	"fmt"
	"math"
)

// Count returns the number of real nodes (excluding the index-0 sentinel).
// A nil or unallocated collection counts as empty.
func (ns *Nodes) Count() int {
	if ns == nil || len(ns.SavePlaySuscept) == 0 {
		return 0
	}

	return len(ns.SavePlaySuscept) - 1
}

// Count returns the number of real links (excluding the index-0 sentinel).
// A nil or unallocated collection counts as empty.
func (ls *Links) Count() int {
	if ls == nil || len(ls.Weight) == 0 {
		return 0
	}

	return len(ls.Weight) - 1
}

// Clone returns a deep copy of the collection (values included).
// Complexity: O(N).
func (ns *Nodes) Clone() *Nodes {
	if ns == nil {
		return nil
	}
	clone := &Nodes{
		PlaySuscept:     make([]float64, len(ns.PlaySuscept)),
		SavePlaySuscept: make([]float64, len(ns.SavePlaySuscept)),
	}
	copy(clone.PlaySuscept, ns.PlaySuscept)
	copy(clone.SavePlaySuscept, ns.SavePlaySuscept)

	return clone
}

// CloneShape returns a same-shape collection with every count zero.
// This is the scaffolding for a demographic partition: same node space,
// counts to be filled in by scaling and repair.
func (ns *Nodes) CloneShape() *Nodes {
	if ns == nil {
		return nil
	}

	return &Nodes{
		PlaySuscept:     make([]float64, len(ns.PlaySuscept)),
		SavePlaySuscept: make([]float64, len(ns.SavePlaySuscept)),
	}
}

// Clone returns a deep copy of the collection, origins included.
// Complexity: O(L).
func (ls *Links) Clone() *Links {
	if ls == nil {
		return nil
	}
	clone := &Links{
		Weight:  make([]float64, len(ls.Weight)),
		Suscept: make([]float64, len(ls.Suscept)),
		IFrom:   make([]int, len(ls.IFrom)),
	}
	copy(clone.Weight, ls.Weight)
	copy(clone.Suscept, ls.Suscept)
	copy(clone.IFrom, ls.IFrom)

	return clone
}

// CloneShape returns a same-shape collection with zero weights.
// Link origins are topology, not counts, so IFrom is copied as-is.
func (ls *Links) CloneShape() *Links {
	if ls == nil {
		return nil
	}
	clone := &Links{
		Weight:  make([]float64, len(ls.Weight)),
		Suscept: make([]float64, len(ls.Suscept)),
		IFrom:   make([]int, len(ls.IFrom)),
	}
	copy(clone.IFrom, ls.IFrom)

	return clone
}

// Clone returns a deep copy of the network.
func (net *Network) Clone() *Network {
	if net == nil {
		return nil
	}

	return &Network{Nodes: net.Nodes.Clone(), Links: net.Links.Clone()}
}

// CloneShape returns a same-shape network with all counts zero.
func (net *Network) CloneShape() *Network {
	if net == nil {
		return nil
	}

	return &Network{Nodes: net.Nodes.CloneShape(), Links: net.Links.CloneShape()}
}

// AssertSane verifies the collection invariants:
//   - PlaySuscept and SavePlaySuscept have the same length;
//   - the index-0 sentinel is zero in both arrays;
//   - every populated entry is non-negative and integer-valued.
//
// Returns nil on success, or a sentinel error wrapped with the offending
// array and index. Complexity: O(N).
func (ns *Nodes) AssertSane() error {
	if ns == nil {
		return ErrNilNodes
	}
	if len(ns.PlaySuscept) != len(ns.SavePlaySuscept) {
		return fmt.Errorf("nodes: play %d vs save %d: %w",
			len(ns.PlaySuscept), len(ns.SavePlaySuscept), ErrShapeMismatch)
	}
	if err := checkConserved("nodes.play_suscept", ns.PlaySuscept); err != nil {
		return err
	}

	return checkConserved("nodes.save_play_suscept", ns.SavePlaySuscept)
}

// AssertSane verifies the collection invariants, as for Nodes; additionally
// IFrom must share the conserved arrays' length.
func (ls *Links) AssertSane() error {
	if ls == nil {
		return ErrNilLinks
	}
	if len(ls.Weight) != len(ls.Suscept) || len(ls.Weight) != len(ls.IFrom) {
		return fmt.Errorf("links: weight %d vs suscept %d vs ifrom %d: %w",
			len(ls.Weight), len(ls.Suscept), len(ls.IFrom), ErrShapeMismatch)
	}
	if err := checkConserved("links.weight", ls.Weight); err != nil {
		return err
	}

	return checkConserved("links.suscept", ls.Suscept)
}

// AssertSane verifies both collections of the network.
func (net *Network) AssertSane() error {
	if net == nil {
		return ErrNilNetwork
	}
	if err := net.Nodes.AssertSane(); err != nil {
		return err
	}

	return net.Links.AssertSane()
}

// SameShape reports whether two networks have identical node and link counts.
func (net *Network) SameShape(other *Network) bool {
	if net == nil || other == nil {
		return false
	}

	return net.Nodes.Count() == other.Nodes.Count() &&
		net.Links.Count() == other.Links.Count()
}

// checkConserved validates one conserved array: zero sentinel, then
// non-negative integer values at every populated index.
func checkConserved(name string, vals []float64) error {
	if len(vals) == 0 {
		return nil
	}
	if vals[0] != 0 {
		return fmt.Errorf("%s[0]=%v: %w", name, vals[0], ErrSentinelNotZero)
	}
	for i := 1; i < len(vals); i++ {
		v := vals[i]
		if v < 0 {
			return fmt.Errorf("%s[%d]=%v: %w", name, i, v, ErrNegativeCount)
		}
		if v != math.Trunc(v) {
			return fmt.Errorf("%s[%d]=%v: %w", name, i, v, ErrNonIntegerCount)
		}
	}

	return nil
}
