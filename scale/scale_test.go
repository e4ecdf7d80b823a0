package scale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/demonet/network"
	"github.com/katalvlaran/demonet/scale"
)

// newNodes builds a Nodes collection with the given 1-indexed counts
// mirrored into both channels.
func newNodes(counts ...float64) *network.Nodes {
	ns := network.NewNodes(len(counts))
	for i, v := range counts {
		ns.PlaySuscept[i+1] = v
		ns.SavePlaySuscept[i+1] = v
	}

	return ns
}

// newLinks builds a Links collection from (origin, weight) pairs mirrored
// into both channels.
func newLinks(origins []int, weights []float64) *network.Links {
	ls := network.NewLinks(len(origins))
	for i := range origins {
		ls.IFrom[i+1] = origins[i]
		ls.Weight[i+1] = weights[i]
		ls.Suscept[i+1] = weights[i]
	}

	return ls
}

// TestScaleAndRound_Boundaries pins the biased rounding rule at its
// threshold: truncation at scale ≤ 0.5, nearest (ties up) above.
func TestScaleAndRound_Boundaries(t *testing.T) {
	assert.Equal(t, 5.0, scale.ScaleAndRound(10, 0.5), "scale=0.5 takes the truncation path")
	assert.Equal(t, 5.0, scale.ScaleAndRound(10, 0.51), "floor(5.1+0.5)=5")
	assert.Equal(t, 2.0, scale.ScaleAndRound(3, 0.6), "floor(1.8+0.5)=2")
	assert.Equal(t, 3.0, scale.ScaleAndRound(10, 0.35), "floor(3.5)=3 — no tie-break below threshold")
	assert.Equal(t, 20.0, scale.ScaleAndRound(10, 2), "enlarging ratios round nearest")
	assert.Equal(t, 0.0, scale.ScaleAndRound(7, 0), "zero ratio truncates to zero")
}

// TestScaleNodes_IdentityScalarIsNoop verifies that ratio 1.0 leaves every
// value bit-identical (fast path, no rewrite).
func TestScaleNodes_IdentityScalarIsNoop(t *testing.T) {
	ns := newNodes(10, 20, 30)
	before := ns.Clone()

	require.NoError(t, scale.ScaleNodeSusceptibles(ns, &scale.Options{Ratio: scale.Scalar(1.0)}))

	assert.Equal(t, before.PlaySuscept, ns.PlaySuscept, "play channel must be untouched")
	assert.Equal(t, before.SavePlaySuscept, ns.SavePlaySuscept, "save channel must be untouched")
}

// TestScaleNodes_NoopShortCircuits verifies the non-error no-op cases:
// nil options, absent ratio, empty collection.
func TestScaleNodes_NoopShortCircuits(t *testing.T) {
	ns := newNodes(10)
	require.NoError(t, scale.ScaleNodeSusceptibles(ns, nil))
	require.NoError(t, scale.ScaleNodeSusceptibles(ns, &scale.Options{}))
	require.NoError(t, scale.ScaleNodeSusceptibles(network.NewNodes(0),
		&scale.Options{Ratio: scale.Scalar(0.5)}))
	assert.Equal(t, 10.0, ns.SavePlaySuscept[1], "no-op paths must not write")
}

// TestScaleNodes_ScalarScalesBothChannels verifies the halving path and the
// lockstep write to play and save.
func TestScaleNodes_ScalarScalesBothChannels(t *testing.T) {
	ns := newNodes(10, 21, 30)

	require.NoError(t, scale.ScaleNodeSusceptibles(ns, &scale.Options{Ratio: scale.Scalar(0.5)}))

	assert.Equal(t, []float64{0, 5, 10, 15}, ns.SavePlaySuscept, "floor(v*0.5) per index")
	assert.Equal(t, ns.SavePlaySuscept, ns.PlaySuscept, "channels must stay in lockstep")
}

// TestScaleNodes_PlayRatioWinsOverShorthand verifies that an explicit
// PlayRatio takes precedence over the bare Ratio shorthand, and that
// WorkRatio is never consumed.
func TestScaleNodes_PlayRatioWinsOverShorthand(t *testing.T) {
	ns := newNodes(10)

	require.NoError(t, scale.ScaleNodeSusceptibles(ns, &scale.Options{
		Ratio:     scale.Scalar(0.5),
		WorkRatio: scale.Scalar(0.1),
		PlayRatio: scale.Scalar(2),
	}))

	assert.Equal(t, 20.0, ns.SavePlaySuscept[1], "explicit PlayRatio must win")
}

// TestScaleNodes_ByIndexTouchesOnlyListed verifies sparse scaling leaves
// unlisted indices alone and ignores out-of-range keys.
func TestScaleNodes_ByIndexTouchesOnlyListed(t *testing.T) {
	ns := newNodes(10, 20, 30)

	require.NoError(t, scale.ScaleNodeSusceptibles(ns, &scale.Options{
		PlayRatio: scale.ByIndex(map[int]float64{2: 0.5, 99: 0.5}),
	}))

	assert.Equal(t, []float64{0, 10, 10, 30}, ns.SavePlaySuscept,
		"only index 2 rewritten; out-of-range key 99 ignored")
	assert.Equal(t, ns.SavePlaySuscept, ns.PlaySuscept)
}

// TestScaleNodes_DenseAppliesPositionally verifies per-position factors.
func TestScaleNodes_DenseAppliesPositionally(t *testing.T) {
	ns := newNodes(10, 20, 30)

	require.NoError(t, scale.ScaleNodeSusceptibles(ns, &scale.Options{
		PlayRatio: scale.Dense([]float64{0.5, 1.0, 0.6}),
	}))

	assert.Equal(t, []float64{0, 5, 20, 18}, ns.SavePlaySuscept,
		"5=floor(10*0.5), 20=floor(20+0.5), 18=floor(18+0.5)")
}

// TestScaleNodes_DenseLengthMismatch verifies the length check fires before
// any mutation and names both lengths.
func TestScaleNodes_DenseLengthMismatch(t *testing.T) {
	ns := newNodes(10, 20, 30)
	before := ns.Clone()

	err := scale.ScaleNodeSusceptibles(ns, &scale.Options{
		PlayRatio: scale.Dense([]float64{0.5, 0.5}),
	})

	require.ErrorIs(t, err, scale.ErrLengthMismatch)
	assert.Contains(t, err.Error(), "2", "message must carry the series length")
	assert.Contains(t, err.Error(), "3", "message must carry the node count")
	assert.Equal(t, before.SavePlaySuscept, ns.SavePlaySuscept, "arrays must be unmodified")
	assert.Equal(t, before.PlaySuscept, ns.PlaySuscept, "arrays must be unmodified")
}

// TestScaleNodes_UnsupportedKind verifies the dispatch rejects unknown
// ratio shapes.
func TestScaleNodes_UnsupportedKind(t *testing.T) {
	ns := newNodes(10)

	err := scale.ScaleNodeSusceptibles(ns, &scale.Options{
		PlayRatio: scale.Ratio{Kind: scale.RatioKind(42)},
	})

	assert.ErrorIs(t, err, scale.ErrUnsupportedRatio)
}

// TestScaleLinks_ScalarRewritesAll verifies the unconditional scalar path.
func TestScaleLinks_ScalarRewritesAll(t *testing.T) {
	ls := newLinks([]int{1, 2, 1}, []float64{10, 11, 4})

	require.NoError(t, scale.ScaleLinkSusceptibles(ls, scale.Scalar(0.5)))

	assert.Equal(t, []float64{0, 5, 5, 2}, ls.Weight, "floor(w*0.5) per link")
	assert.Equal(t, ls.Weight, ls.Suscept, "weight and suscept must stay in lockstep")
}

// TestScaleLinks_OriginMapping verifies by-index keys are origin node ids:
// a link from node 5 under {5: 0} is zeroed in both channels, links from
// unlisted origins are untouched.
func TestScaleLinks_OriginMapping(t *testing.T) {
	ls := newLinks([]int{5, 3}, []float64{12, 7})

	require.NoError(t, scale.ScaleLinkSusceptibles(ls, scale.ByIndex(map[int]float64{5: 0})))

	assert.Zero(t, ls.Weight[1], "link from node 5 must be zeroed")
	assert.Zero(t, ls.Suscept[1], "both channels must be zeroed")
	assert.Equal(t, 7.0, ls.Weight[2], "link from unlisted node 3 must be untouched")
	assert.Equal(t, 7.0, ls.Suscept[2], "link from unlisted node 3 must be untouched")
}

// TestScaleLinks_DenseByOrigin verifies dense factors resolve through IFrom
// and identity factors skip the rewrite.
func TestScaleLinks_DenseByOrigin(t *testing.T) {
	ls := newLinks([]int{2, 1, 2}, []float64{10, 8, 3})

	require.NoError(t, scale.ScaleLinkSusceptibles(ls, scale.Dense([]float64{1.0, 0.5})))

	assert.Equal(t, []float64{0, 5, 8, 1}, ls.Weight,
		"origin-2 links halved (truncating), origin-1 links identity-skipped")
}

// TestScaleLinks_DenseOriginOutOfRange verifies validation runs before any
// write when a link's origin exceeds the series.
func TestScaleLinks_DenseOriginOutOfRange(t *testing.T) {
	ls := newLinks([]int{1, 9}, []float64{10, 10})
	before := ls.Clone()

	err := scale.ScaleLinkSusceptibles(ls, scale.Dense([]float64{0.5}))

	require.ErrorIs(t, err, scale.ErrLengthMismatch)
	assert.Equal(t, before.Weight, ls.Weight, "no link may be written on failure")
}

// TestScaleLinks_IdentityAndAbsentNoop verifies the link-side no-op paths.
func TestScaleLinks_IdentityAndAbsentNoop(t *testing.T) {
	ls := newLinks([]int{1}, []float64{9})

	require.NoError(t, scale.ScaleLinkSusceptibles(ls, scale.Scalar(1.0)))
	require.NoError(t, scale.ScaleLinkSusceptibles(ls, scale.Absent()))
	require.NoError(t, scale.ScaleLinkSusceptibles(network.NewLinks(0), scale.Scalar(0.5)))

	assert.Equal(t, 9.0, ls.Weight[1], "no-op paths must not write")
}
