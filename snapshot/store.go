// Package snapshot: the Redis-backed store.
package snapshot

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/katalvlaran/demonet/network"
)

// bytesPerWord is the encoded size of one array element.
const bytesPerWord = 8

// Sentinel errors for snapshot operations.
var (
	// ErrNotFound indicates no snapshot exists under the requested run name.
	ErrNotFound = errors.New("snapshot: run not found")

	// ErrShapeMismatch indicates the stored arrays do not fit the target
	// network's shape.
	ErrShapeMismatch = errors.New("snapshot: stored shape differs from target network")
)

// Store saves and restores network snapshots through a Redis client.
// Any redis.Cmdable works: a plain client, a cluster client, or a pipeline
// wrapper from tests.
type Store struct {
	client redis.Cmdable
	ttl    time.Duration
}

// Option tunes a Store.
type Option func(*Store)

// WithTTL sets an expiry on every stored key; zero (the default) keeps
// snapshots until deleted.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

// New returns a Store over the given client.
func New(client redis.Cmdable, opts ...Option) *Store {
	s := &Store{client: client}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Save writes all five conserved arrays of net under the run name in one
// pipelined round trip.
func (s *Store) Save(ctx context.Context, run string, net *network.Network) error {
	if net == nil {
		return network.ErrNilNetwork
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, key(run, "nodes:play"), encodeFloats(net.Nodes.PlaySuscept), s.ttl)
	pipe.Set(ctx, key(run, "nodes:save"), encodeFloats(net.Nodes.SavePlaySuscept), s.ttl)
	pipe.Set(ctx, key(run, "links:weight"), encodeFloats(net.Links.Weight), s.ttl)
	pipe.Set(ctx, key(run, "links:suscept"), encodeFloats(net.Links.Suscept), s.ttl)
	pipe.Set(ctx, key(run, "links:ifrom"), encodeInts(net.Links.IFrom), s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("snapshot: save %q: %w", run, err)
	}

	return nil
}

// Load restores a snapshot saved under the run name into net, which must
// already have the snapshot's shape. Returns ErrNotFound when the run does
// not exist and ErrShapeMismatch when any stored array's length disagrees
// with the target; the target is only written once every array has been
// fetched and checked.
func (s *Store) Load(ctx context.Context, run string, net *network.Network) error {
	if net == nil {
		return network.ErrNilNetwork
	}

	fields := []string{"nodes:play", "nodes:save", "links:weight", "links:suscept", "links:ifrom"}
	raw := make([][]byte, len(fields))
	for i, field := range fields {
		data, err := s.client.Get(ctx, key(run, field)).Bytes()
		if errors.Is(err, redis.Nil) {
			return fmt.Errorf("snapshot: run %q field %q: %w", run, field, ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("snapshot: load %q: %w", run, err)
		}
		raw[i] = data
	}

	wordLens := [5]int{
		len(net.Nodes.PlaySuscept),
		len(net.Nodes.SavePlaySuscept),
		len(net.Links.Weight),
		len(net.Links.Suscept),
		len(net.Links.IFrom),
	}
	for i, data := range raw {
		if len(data) != wordLens[i]*bytesPerWord {
			return fmt.Errorf("snapshot: run %q field %q holds %d bytes, target needs %d: %w",
				run, fields[i], len(data), wordLens[i]*bytesPerWord, ErrShapeMismatch)
		}
	}

	decodeFloats(raw[0], net.Nodes.PlaySuscept)
	decodeFloats(raw[1], net.Nodes.SavePlaySuscept)
	decodeFloats(raw[2], net.Links.Weight)
	decodeFloats(raw[3], net.Links.Suscept)
	decodeInts(raw[4], net.Links.IFrom)

	return nil
}

// Delete removes every key of the run. Deleting a missing run is not an
// error.
func (s *Store) Delete(ctx context.Context, run string) error {
	keys := []string{
		key(run, "nodes:play"),
		key(run, "nodes:save"),
		key(run, "links:weight"),
		key(run, "links:suscept"),
		key(run, "links:ifrom"),
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("snapshot: delete %q: %w", run, err)
	}

	return nil
}

// key builds the namespaced Redis key for one array of one run.
func key(run, field string) string {
	return fmt.Sprintf("demonet:%s:%s", run, field)
}

// encodeFloats packs vals little-endian, 8 bytes per element.
func encodeFloats(vals []float64) []byte {
	buf := make([]byte, len(vals)*bytesPerWord)
	for i, v := range vals {
		binary.LittleEndian.PutUint64(buf[i*bytesPerWord:], math.Float64bits(v))
	}

	return buf
}

// decodeFloats unpacks buf into dst; lengths were checked by the caller.
func decodeFloats(buf []byte, dst []float64) {
	for i := range dst {
		dst[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[i*bytesPerWord:]))
	}
}

// encodeInts packs vals little-endian, 8 bytes per element.
func encodeInts(vals []int) []byte {
	buf := make([]byte, len(vals)*bytesPerWord)
	for i, v := range vals {
		binary.LittleEndian.PutUint64(buf[i*bytesPerWord:], uint64(v))
	}

	return buf
}

// decodeInts unpacks buf into dst; lengths were checked by the caller.
func decodeInts(buf []byte, dst []int) {
	for i := range dst {
		dst[i] = int(binary.LittleEndian.Uint64(buf[i*bytesPerWord:]))
	}
}
