// Package scale: the scaling kernels for nodes and links.
package scale

import (
	"fmt"
	"math"

	"github.com/katalvlaran/demonet/network"
)

// truncationThreshold separates the two rounding regimes of ScaleAndRound.
const truncationThreshold = 0.5

// identityRatio is the scalar factor that leaves every count unchanged.
const identityRatio = 1.0

// ScaleAndRound multiplies value by scale and rounds the product back to an
// integer-valued float64 under the biased rule:
//
//	scale > 0.5 → floor(value*scale + 0.5)  (nearest, ties toward +∞)
//	scale ≤ 0.5 → floor(value*scale)        (truncation toward −∞)
//
// For shrinking ratios every fractional part is small relative to 1, and
// truncating keeps the per-index remainders that the conserve package must
// later repair as small as possible; for enlarging or mildly shrinking
// ratios nearest-rounding is less biased. The threshold and tie-break are
// load-bearing: downstream conservation arithmetic reproduces them exactly.
func ScaleAndRound(value, scale float64) float64 {
	if scale > truncationThreshold {
		return math.Floor(value*scale + truncationThreshold)
	}

	return math.Floor(value * scale)
}

// ScaleNodeSusceptibles scales the play-susceptible arrays of nodes by the
// effective play ratio from opts, writing the identical rounded value to
// both PlaySuscept and SavePlaySuscept.
//
// No-op cases (nil error, nothing written): nil opts, absent effective
// ratio, empty collection, scalar ratio exactly 1.0.
//
// Errors:
//   - ErrLengthMismatch   — dense series length ≠ node count (checked
//     before any mutation; message carries both lengths);
//   - ErrUnsupportedRatio — ratio kind outside the supported forms.
//
// Complexity: O(N) for scalar/dense, O(|PerIndex|) for by-index.
func ScaleNodeSusceptibles(nodes *network.Nodes, opts *Options) error {
	if opts == nil {
		return nil
	}
	ratio := opts.PlayRatio
	if ratio.IsAbsent() {
		ratio = opts.Ratio
	}
	n := nodes.Count()
	if ratio.IsAbsent() || n == 0 {
		return nil
	}

	switch ratio.Kind {
	case RatioScalar:
		if ratio.Value == identityRatio {
			return nil
		}
		for i := 1; i <= n; i++ {
			setNode(nodes, i, ScaleAndRound(nodes.SavePlaySuscept[i], ratio.Value))
		}

	case RatioByIndex:
		for i, factor := range ratio.PerIndex {
			if i < 1 || i > n {
				continue // indices outside the collection are not ours to scale
			}
			setNode(nodes, i, ScaleAndRound(nodes.SavePlaySuscept[i], factor))
		}

	case RatioDense:
		if len(ratio.Series) != n {
			return fmt.Errorf("scale: dense series holds %d factors for %d nodes: %w",
				len(ratio.Series), n, ErrLengthMismatch)
		}
		for i := 1; i <= n; i++ {
			setNode(nodes, i, ScaleAndRound(nodes.SavePlaySuscept[i], ratio.Series[i-1]))
		}

	default:
		return fmt.Errorf("scale: kind %d: %w", ratio.Kind, ErrUnsupportedRatio)
	}

	return nil
}

// ScaleLinkSusceptibles scales the weight/suscept arrays of links by ratio,
// writing the identical rounded value to both channels.
//
// By-index and dense forms are keyed by ORIGIN NODE id: the factor for link
// i is resolved through links.IFrom[i]. Under those two forms only links
// whose resolved factor differs from 1.0 are rewritten; the scalar form
// (≠ 1.0) rewrites every link unconditionally.
//
// Errors:
//   - ErrLengthMismatch   — a link's origin node id falls outside the dense
//     series (checked for every link before any mutation);
//   - ErrUnsupportedRatio — ratio kind outside the supported forms.
//
// Complexity: O(L).
func ScaleLinkSusceptibles(links *network.Links, ratio Ratio) error {
	l := links.Count()
	if ratio.IsAbsent() || l == 0 {
		return nil
	}

	switch ratio.Kind {
	case RatioScalar:
		if ratio.Value == identityRatio {
			return nil
		}
		for i := 1; i <= l; i++ {
			setLink(links, i, ScaleAndRound(links.Weight[i], ratio.Value))
		}

	case RatioByIndex:
		for i := 1; i <= l; i++ {
			factor, listed := ratio.PerIndex[links.IFrom[i]]
			if !listed || factor == identityRatio {
				continue
			}
			setLink(links, i, ScaleAndRound(links.Weight[i], factor))
		}

	case RatioDense:
		// Validate every origin before touching any weight.
		for i := 1; i <= l; i++ {
			if origin := links.IFrom[i]; origin < 1 || origin > len(ratio.Series) {
				return fmt.Errorf("scale: link %d originates at node %d, dense series holds %d factors: %w",
					i, origin, len(ratio.Series), ErrLengthMismatch)
			}
		}
		for i := 1; i <= l; i++ {
			factor := ratio.Series[links.IFrom[i]-1]
			if factor == identityRatio {
				continue
			}
			setLink(links, i, ScaleAndRound(links.Weight[i], factor))
		}

	default:
		return fmt.Errorf("scale: kind %d: %w", ratio.Kind, ErrUnsupportedRatio)
	}

	return nil
}

// setNode writes the rounded count to both node channels; the two must
// never diverge after a scale call.
func setNode(nodes *network.Nodes, i int, v float64) {
	nodes.PlaySuscept[i] = v
	nodes.SavePlaySuscept[i] = v
}

// setLink writes the rounded weight to both link channels.
func setLink(links *network.Links, i int, v float64) {
	links.Weight[i] = v
	links.Suscept[i] = v
}
