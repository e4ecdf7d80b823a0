// Package timing: Timer/Handle interfaces, phase names, Noop and Wall timers.
package timing

import (
	"sync"
	"time"
)

// Phase names the conserve package reports. External timers may see other
// names; these are the ones this module emits.
const (
	// PhaseInitialise covers the parallel copy of parent arrays into scratch.
	PhaseInitialise = "initialise"

	// PhaseCalcDifferences covers the parallel per-partition subtraction.
	PhaseCalcDifferences = "calc_differences"

	// PhaseDistributeNodes covers the sequential node repair loop.
	PhaseDistributeNodes = "distribute_nodes"

	// PhaseDistributeLinks covers the sequential link repair loop.
	PhaseDistributeLinks = "distribute_links"
)

// Timer starts named-phase measurements.
type Timer interface {
	// Start begins measuring the named phase and returns its Handle.
	Start(name string) Handle
}

// Handle closes one measurement opened by Timer.Start.
type Handle interface {
	// Stop ends the measurement. Calling Stop more than once is undefined.
	Stop()
}

// noopTimer discards all measurements.
type noopTimer struct{}

// noopHandle is the shared Handle of the no-op timer.
type noopHandle struct{}

func (noopTimer) Start(string) Handle { return noopHandle{} }
func (noopHandle) Stop()              {}

// Noop returns a Timer that measures nothing. It allocates nothing per
// Start and is the default when callers do not care about timing.
func Noop() Timer { return noopTimer{} }

// Wall accumulates wall-clock duration totals and call counts per phase.
//
// Starts and Stops happen on the measuring goroutine; the mutex only guards
// the accumulation maps so totals may be read from another goroutine after
// (or between) calls.
type Wall struct {
	mu     sync.Mutex
	totals map[string]time.Duration
	counts map[string]int
}

// NewWall returns an empty wall-clock timer.
func NewWall() *Wall {
	return &Wall{
		totals: make(map[string]time.Duration),
		counts: make(map[string]int),
	}
}

// wallHandle carries one open measurement of a Wall timer.
type wallHandle struct {
	wall  *Wall
	name  string
	begin time.Time
}

// Start begins measuring the named phase.
func (w *Wall) Start(name string) Handle {
	return &wallHandle{wall: w, name: name, begin: time.Now()}
}

// Stop ends the measurement and folds it into the per-phase totals.
func (h *wallHandle) Stop() {
	elapsed := time.Since(h.begin)
	h.wall.mu.Lock()
	h.wall.totals[h.name] += elapsed
	h.wall.counts[h.name]++
	h.wall.mu.Unlock()
}

// Total returns the accumulated duration of the named phase.
func (w *Wall) Total(name string) time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.totals[name]
}

// Count returns how many times the named phase was measured.
func (w *Wall) Count(name string) int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.counts[name]
}
