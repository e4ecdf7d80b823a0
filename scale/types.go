// Package scale: ratio variant, options, and sentinel errors.
package scale

import "errors"

// Sentinel errors for scaling operations. Wrapped with context (lengths,
// kinds) at the point of detection; match with errors.Is.
var (
	// ErrLengthMismatch indicates a dense ratio series whose length does not
	// match the collection it is applied to.
	ErrLengthMismatch = errors.New("scale: dense ratio length mismatch")

	// ErrUnsupportedRatio indicates a Ratio whose kind is none of the
	// supported forms (scalar, by-index, dense).
	ErrUnsupportedRatio = errors.New("scale: unsupported ratio kind")
)

// RatioKind tags the active form of a Ratio.
type RatioKind int

const (
	// RatioAbsent marks the zero Ratio: no scaling requested, calls no-op.
	RatioAbsent RatioKind = iota

	// RatioScalar applies one factor uniformly to every index.
	RatioScalar

	// RatioByIndex applies factors only to the listed indices.
	RatioByIndex

	// RatioDense applies a positional series, entry i-1 to index i.
	RatioDense
)

// Ratio is the tagged variant describing one scaling request. Construct it
// with Scalar, ByIndex or Dense; the zero value means "absent" and turns
// the scaling call into a no-op.
type Ratio struct {
	// Kind selects which of the following fields is live.
	Kind RatioKind

	// Value is the uniform factor (RatioScalar only).
	Value float64

	// PerIndex maps entity index → factor (RatioByIndex only). For links
	// the keys are origin node ids, not link ids.
	PerIndex map[int]float64

	// Series holds the positional factors (RatioDense only): Series[i-1]
	// scales index i. For links the position is the origin node id.
	Series []float64
}

// Scalar returns a Ratio applying v uniformly to every index.
func Scalar(v float64) Ratio { return Ratio{Kind: RatioScalar, Value: v} }

// ByIndex returns a Ratio applying the mapped factors to the listed indices
// only; every index absent from m keeps its value (factor 1 semantically).
func ByIndex(m map[int]float64) Ratio { return Ratio{Kind: RatioByIndex, PerIndex: m} }

// Dense returns a Ratio applying the positional series s: s[i-1] scales
// index i. len(s) must equal the collection size or the call fails.
func Dense(s []float64) Ratio { return Ratio{Kind: RatioDense, Series: s} }

// Absent returns the no-op Ratio (same as the zero value, spelled out).
func Absent() Ratio { return Ratio{} }

// IsAbsent reports whether the ratio requests no scaling at all.
func (r Ratio) IsAbsent() bool { return r.Kind == RatioAbsent }

// Options configures ScaleNodeSusceptibles.
//
// Ratio is shorthand that stands in for both WorkRatio and PlayRatio when
// the specific one is absent. Only the play channel is scaled by this
// package; WorkRatio is accepted for interface compatibility with callers
// that drive the work channel elsewhere, and is never consumed here.
type Options struct {
	// Ratio is the shorthand applied wherever a specific ratio is absent.
	Ratio Ratio

	// WorkRatio is accepted but not consumed: the work channel is an
	// external concern and is not touched by this package.
	WorkRatio Ratio

	// PlayRatio scales PlaySuscept/SavePlaySuscept.
	PlayRatio Ratio
}
