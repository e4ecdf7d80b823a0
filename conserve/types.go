// Package conserve: sentinel errors and call options.
package conserve

import (
	"errors"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/demonet/timing"
)

// Sentinel errors for remainder redistribution. Wrapped with context where
// useful; match with errors.Is.
var (
	// ErrNilParent indicates a nil parent network.
	ErrNilParent = errors.New("conserve: parent network is nil")

	// ErrNoSubnets indicates an empty sub-network list; with nothing to
	// repair against, the call is a caller-contract violation rather than a
	// no-op (a parent with zero partitions cannot conserve anything).
	ErrNoSubnets = errors.New("conserve: no sub-networks supplied")

	// ErrNilSource indicates a nil random source.
	ErrNilSource = errors.New("conserve: random source is nil")

	// ErrShapeMismatch indicates a sub-network whose node or link count
	// differs from the parent's.
	ErrShapeMismatch = errors.New("conserve: sub-network shape differs from parent")
)

// Options configures DistributeRemainders. The zero value is NOT the
// default; use DefaultOptions and override fields as needed.
type Options struct {
	// Workers is the fork-join width for the two reduction phases (INIT and
	// ACCUMULATE_DIFFS). Values < 1 fall back to runtime.NumCPU(). The
	// repair phases ignore Workers: they are sequential by design.
	Workers int

	// Timer brackets the four algorithmic phases. Nil means timing.Noop().
	Timer timing.Timer

	// Log receives the end-of-call correction diagnostic. Nil means
	// slog.Default().
	Log *slog.Logger
}

// DefaultOptions returns the standard configuration: one worker per CPU,
// no timing, the process-default logger.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.NumCPU(),
		Timer:   timing.Noop(),
		Log:     slog.Default(),
	}
}

// normalized resolves nil/zero fields to their working defaults.
func (o *Options) normalized() Options {
	opts := DefaultOptions()
	if o == nil {
		return opts
	}
	if o.Workers > 0 {
		opts.Workers = o.Workers
	}
	if o.Timer != nil {
		opts.Timer = o.Timer
	}
	if o.Log != nil {
		opts.Log = o.Log
	}

	return opts
}
