// Package timing provides the named-phase stopwatch that the conserve
// package wraps around each algorithmic stage.
//
// The surface is deliberately tiny: Timer.Start(name) returns a Handle, and
// Handle.Stop() closes the measurement. Three implementations ship:
//
//   - Noop()  — zero-cost, always substitutable when timing is not wanted;
//   - Wall    — accumulates wall-clock totals and call counts per phase,
//     queryable in-process (handy in tests and examples);
//   - Prom    — observes each phase duration into a Prometheus histogram.
//
// Phase names used by the conserve package are the Phase* constants.
package timing
