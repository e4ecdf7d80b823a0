package snapshot_test

import (
	"context"
	"os"
	"testing"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/demonet/network"
	"github.com/katalvlaran/demonet/snapshot"
)

// redisClient connects to the Redis named by DEMONET_REDIS_ADDR, skipping
// the test when the variable is unset or the server is unreachable.
func redisClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("DEMONET_REDIS_ADDR")
	if addr == "" {
		t.Skip("Skipping: set DEMONET_REDIS_ADDR to run snapshot tests against a real Redis")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Skipping: Redis not reachable at %s: %v", addr, err)
	}

	return client
}

// TestStore_SaveLoadRoundTrip verifies bit-identical restoration of all
// five arrays.
func TestStore_SaveLoadRoundTrip(t *testing.T) {
	client := redisClient(t)
	store := snapshot.New(client, snapshot.WithTTL(time.Minute))
	ctx := context.Background()
	const run = "demonet-test-roundtrip"
	defer func() { _ = store.Delete(ctx, run) }()

	net := network.NewNetwork(4, 3)
	for i := 1; i <= 4; i++ {
		net.Nodes.PlaySuscept[i] = float64(11 * i)
		net.Nodes.SavePlaySuscept[i] = float64(11 * i)
	}
	for i := 1; i <= 3; i++ {
		net.Links.Weight[i] = float64(5 * i)
		net.Links.Suscept[i] = float64(5 * i)
		net.Links.IFrom[i] = i
	}

	require.NoError(t, store.Save(ctx, run, net))

	restored := network.NewNetwork(4, 3)
	require.NoError(t, store.Load(ctx, run, restored))

	assert.Equal(t, net.Nodes.PlaySuscept, restored.Nodes.PlaySuscept)
	assert.Equal(t, net.Nodes.SavePlaySuscept, restored.Nodes.SavePlaySuscept)
	assert.Equal(t, net.Links.Weight, restored.Links.Weight)
	assert.Equal(t, net.Links.Suscept, restored.Links.Suscept)
	assert.Equal(t, net.Links.IFrom, restored.Links.IFrom)
}

// TestStore_LoadMissingRun verifies the ErrNotFound path.
func TestStore_LoadMissingRun(t *testing.T) {
	client := redisClient(t)
	store := snapshot.New(client)

	err := store.Load(context.Background(), "demonet-test-never-saved", network.NewNetwork(1, 1))

	assert.ErrorIs(t, err, snapshot.ErrNotFound)
}

// TestStore_LoadShapeMismatch verifies a stored snapshot refuses to load
// into a differently shaped network.
func TestStore_LoadShapeMismatch(t *testing.T) {
	client := redisClient(t)
	store := snapshot.New(client, snapshot.WithTTL(time.Minute))
	ctx := context.Background()
	const run = "demonet-test-shape"
	defer func() { _ = store.Delete(ctx, run) }()

	require.NoError(t, store.Save(ctx, run, network.NewNetwork(4, 3)))

	target := network.NewNetwork(5, 3)
	before := target.Clone()
	err := store.Load(ctx, run, target)

	require.ErrorIs(t, err, snapshot.ErrShapeMismatch)
	assert.Equal(t, before.Nodes.PlaySuscept, target.Nodes.PlaySuscept,
		"a refused load must not write the target")
}
