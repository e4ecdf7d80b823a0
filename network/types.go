// Package network: collection types and sentinel errors.
package network

import "errors"

// Sentinel errors for network collections.
var (
	// ErrNilNetwork indicates a nil *Network was passed where one is required.
	ErrNilNetwork = errors.New("network: network is nil")

	// ErrNilNodes indicates a nil *Nodes collection.
	ErrNilNodes = errors.New("network: nodes collection is nil")

	// ErrNilLinks indicates a nil *Links collection.
	ErrNilLinks = errors.New("network: links collection is nil")

	// ErrShapeMismatch indicates two conserved arrays that must share a shape
	// have different lengths.
	ErrShapeMismatch = errors.New("network: conserved array shapes disagree")

	// ErrSentinelNotZero indicates the unused index-0 sentinel holds a
	// non-zero value.
	ErrSentinelNotZero = errors.New("network: sentinel index 0 is not zero")

	// ErrNegativeCount indicates a populated entry is negative.
	ErrNegativeCount = errors.New("network: negative susceptible count")

	// ErrNonIntegerCount indicates a populated entry is not integer-valued.
	ErrNonIntegerCount = errors.New("network: non-integer susceptible count")
)

// Nodes holds the per-node conserved arrays of one population model.
//
// PlaySuscept is the working susceptible count; SavePlaySuscept is the
// authoritative baseline. Inside this module every write updates both, so
// the two never diverge after a scale or repair call.
type Nodes struct {
	// PlaySuscept is the working susceptible count per node, 1-indexed.
	PlaySuscept []float64

	// SavePlaySuscept is the baseline susceptible count per node, 1-indexed.
	SavePlaySuscept []float64
}

// Links holds the per-link conserved arrays of one population model.
//
// Weight is the baseline susceptible-population weight of the directed edge;
// Suscept is its working copy. IFrom maps a link index to the node index the
// link originates from, which is how per-node scale factors are resolved for
// links.
type Links struct {
	// Weight is the baseline susceptible weight per link, 1-indexed.
	Weight []float64

	// Suscept is the working susceptible weight per link, 1-indexed.
	Suscept []float64

	// IFrom maps link index → origin node index, 1-indexed; IFrom[0] is the
	// unused sentinel and stays 0.
	IFrom []int
}

// Network aggregates one Nodes and one Links collection.
type Network struct {
	Nodes *Nodes
	Links *Links
}

// NewNodes returns a Nodes collection for n nodes with all counts zero.
// Arrays are allocated with length n+1 for the index-0 sentinel.
// A negative n is treated as 0.
func NewNodes(n int) *Nodes {
	if n < 0 {
		n = 0
	}

	return &Nodes{
		PlaySuscept:     make([]float64, n+1),
		SavePlaySuscept: make([]float64, n+1),
	}
}

// NewLinks returns a Links collection for l links with all weights zero and
// all origins unset. Arrays are allocated with length l+1 for the index-0
// sentinel. A negative l is treated as 0.
func NewLinks(l int) *Links {
	if l < 0 {
		l = 0
	}

	return &Links{
		Weight:  make([]float64, l+1),
		Suscept: make([]float64, l+1),
		IFrom:   make([]int, l+1),
	}
}

// NewNetwork returns a Network with nNodes nodes and nLinks links, all zero.
func NewNetwork(nNodes, nLinks int) *Network {
	return &Network{
		Nodes: NewNodes(nNodes),
		Links: NewLinks(nLinks),
	}
}
