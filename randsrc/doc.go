// Package randsrc provides the stateful pseudo-random source that the
// conserve package draws uniform partition indices from.
//
// The generator is xoshiro256**, seeded through a splitmix64 expansion so a
// single uint64 seed fills the full 256-bit state. Its whole state is
// exposed as an opaque []uint64 encoding (State/Restore), which is how a
// handle travels across the orchestration boundary: one handle per worker,
// even though the sequential repair phase consumes only handle 0.
//
// A Source is NOT safe for concurrent use. It carries mutable state and the
// repair algorithm's reproducibility depends on a single, ordered stream of
// draws; callers must confine each Source to one goroutine at a time.
//
// Determinism: a fixed seed yields a fixed draw sequence, which golden tests
// in the conserve package rely on.
package randsrc
