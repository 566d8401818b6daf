package construct

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dualtour/matrix"
	"dualtour/search"
)

// clusteredPoints holds two well-separated clusters of four cities each; a
// sensible construction keeps each cluster in its own tour.
var clusteredPoints = []matrix.Point{
	{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 0}, {X: 2, Y: 2},
	{X: 100, Y: 0}, {X: 100, Y: 2}, {X: 102, Y: 0}, {X: 102, Y: 2},
}

func clusteredMatrix(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewEuclidean(clusteredPoints)
	require.NoError(t, err)
	return m
}

func TestRandomSplitsEvenly(t *testing.T) {
	sol, err := Random(9, 42)
	require.NoError(t, err)
	require.NoError(t, sol.Validate())
	assert.Len(t, sol.Tour(0), 4)
	assert.Len(t, sol.Tour(1), 5)

	again, err := Random(9, 42)
	require.NoError(t, err)
	assert.Equal(t, sol.Tour(0), again.Tour(0), "same seed must reproduce the split")

	other, err := Random(9, 43)
	require.NoError(t, err)
	assert.NotEqual(t, sol.Tour(0), other.Tour(0), "different seeds should diverge")
}

func TestRandomDegenerateSizes(t *testing.T) {
	for n := 0; n <= 2; n++ {
		sol, err := Random(n, 7)
		require.NoError(t, err, "n=%d", n)
		require.NoError(t, sol.Validate())
		assert.Equal(t, n, sol.Len())
	}
	_, err := Random(-1, 7)
	assert.ErrorIs(t, err, ErrInvalidInstance)
}

func TestRegretBuildsValidPartition(t *testing.T) {
	dist := clusteredMatrix(t)
	opts := DefaultOptions()
	opts.Start = 0

	sol, err := Regret(dist, opts)
	require.NoError(t, err)
	require.NoError(t, sol.Validate())
	assert.Equal(t, len(clusteredPoints), sol.Len())

	// Anchors: tour 0 grows from city 0, tour 1 from the farthest city.
	k0, _, ok := sol.Find(0)
	require.True(t, ok)
	k1, _, ok := sol.Find(7) // farthest from (0,0) is (102,2)
	require.True(t, ok)
	assert.NotEqual(t, k0, k1, "anchor cities must end up in different tours")
}

func TestRegretSeparatesDistantClusters(t *testing.T) {
	dist := clusteredMatrix(t)
	opts := DefaultOptions()
	opts.Start = 0

	sol, err := Regret(dist, opts)
	require.NoError(t, err)

	// No tour should bridge the 100-unit gap: each holds exactly one cluster.
	for k := 0; k < 2; k++ {
		tour := sol.Tour(k)
		require.NotEmpty(t, tour)
		left := tour[0] < 4
		for _, v := range tour {
			assert.Equal(t, left, v < 4, "tour %d mixes clusters: %v", k, tour)
		}
	}
}

func TestRegretDegenerateSizes(t *testing.T) {
	one, err := matrix.NewEuclidean([]matrix.Point{{X: 0, Y: 0}})
	require.NoError(t, err)
	sol, err := Regret(one, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0}, sol.Tour(0))
	assert.Empty(t, sol.Tour(1))

	two, err := matrix.NewEuclidean([]matrix.Point{{X: 0, Y: 0}, {X: 3, Y: 4}})
	require.NoError(t, err)
	opts := DefaultOptions()
	opts.Start = 0
	sol, err = Regret(two, opts)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, sol.Tour(0))
	assert.Equal(t, []int{1}, sol.Tour(1))
}

func TestRegretRejectsBadInputs(t *testing.T) {
	_, err := Regret(nil, DefaultOptions())
	assert.ErrorIs(t, err, ErrInvalidInstance)

	opts := DefaultOptions()
	opts.RegretWeight = -0.5
	_, err = Regret(clusteredMatrix(t), opts)
	assert.ErrorIs(t, err, ErrBadOptions)
}

func TestBestOfPicksCheapestAttempt(t *testing.T) {
	dist := clusteredMatrix(t)

	sol, cost, err := BestOf(context.Background(), dist, 4, DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, sol.Validate())

	recomputed, err := search.TotalCost(dist, sol)
	require.NoError(t, err)
	assert.Equal(t, recomputed, cost)

	// Every single attempt must cost at least as much as the winner.
	starts, err := permRange(dist.Rows(), rngFromSeed(0))
	require.NoError(t, err)
	for i, start := range starts[:4] {
		opts := DefaultOptions()
		opts.Start = start
		opts.Seed = deriveSeed(0, uint64(i))
		attempt, err := Regret(dist, opts)
		require.NoError(t, err)
		c, err := search.TotalCost(dist, attempt)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, c, cost)
	}
}

func TestBestOfIsReproducible(t *testing.T) {
	dist := clusteredMatrix(t)
	opts := DefaultOptions()
	opts.Seed = 99

	a, costA, err := BestOf(context.Background(), dist, 3, opts)
	require.NoError(t, err)
	b, costB, err := BestOf(context.Background(), dist, 3, opts)
	require.NoError(t, err)

	assert.Equal(t, costA, costB)
	assert.Equal(t, a.Tour(0), b.Tour(0))
	assert.Equal(t, a.Tour(1), b.Tour(1))
}

func TestBestOfRejectsBadInputs(t *testing.T) {
	dist := clusteredMatrix(t)
	_, _, err := BestOf(context.Background(), dist, 0, DefaultOptions())
	assert.ErrorIs(t, err, ErrBadOptions)

	_, _, err = BestOf(context.Background(), nil, 2, DefaultOptions())
	assert.ErrorIs(t, err, ErrInvalidInstance)
}

func TestDeriveSeedSpreadsStreams(t *testing.T) {
	seen := map[int64]bool{}
	for stream := uint64(0); stream < 64; stream++ {
		s := deriveSeed(12345, stream)
		assert.False(t, seen[s], "stream %d collided", stream)
		seen[s] = true
	}
}
