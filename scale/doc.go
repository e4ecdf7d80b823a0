// Package scale applies demographic scaling ratios to the conserved
// susceptible arrays of a network's nodes and links.
//
// Description:
//
//	Splitting a population into demographic sub-networks multiplies each
//	partition's counts by an independent ratio. Counts must stay
//	integer-valued, so every scaled value passes through the biased
//	rounding rule ScaleAndRound. The integer error this introduces is NOT
//	repaired here — that is the conserve package's job; this package only
//	guarantees that the "live" and "baseline" channels of every scaled
//	entry stay in lockstep.
//
// Ratio forms (one tagged variant, resolved once at the call boundary):
//
//	Scalar(v)   — v applied uniformly to every index;
//	ByIndex(m)  — applied only to the listed indices, all others untouched;
//	Dense(s)    — positional series, s[i-1] applied to index i; the length
//	              must match the collection exactly.
//
// Link scaling resolves ByIndex keys and Dense positions through each
// link's origin node id (Links.IFrom): a link takes the factor assigned to
// the node it originates from.
//
// Errors:
//   - ErrLengthMismatch   — dense series length disagrees with the
//     collection (message carries both lengths).
//   - ErrUnsupportedRatio — ratio kind outside the three supported forms.
package scale
