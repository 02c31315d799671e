package gasket_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gasket/exact"
	"github.com/katalvlaran/gasket/gasket"
)

// genCounts tallies circles per generation.
func genCounts(circles []gasket.Circle) map[int]int {
	counts := make(map[int]int)
	for _, c := range circles {
		counts[c.Gen]++
	}
	return counts
}

func TestGenerate_IntegralQuadruple(t *testing.T) {
	res, err := gasket.Generate(ints(-1, 2, 2, 3), 2)
	require.NoError(t, err)

	counts := genCounts(res.Circles)
	assert.Equal(t, 4, counts[0])
	assert.Equal(t, 4, counts[1])
	assert.Equal(t, 12, counts[2])
	assert.Len(t, res.Circles, 20)

	// Every curvature in this gasket is an integer, exactly.
	for _, c := range res.Circles {
		assert.Equal(t, exact.KindInt, c.K.Kind(), "curvature %s", c.K)
	}

	// First generation of (-1,2,2,3) is 3, 6, 6, 15.
	var gen1 []string
	for _, c := range res.Circles {
		if c.Gen == 1 {
			gen1 = append(gen1, c.K.String())
		}
	}
	assert.Equal(t, []string{"3", "6", "6", "15"}, gen1)
}

func TestGenerate_DepthZeroIsSeedsOnly(t *testing.T) {
	res, err := gasket.Generate(ints(-1, 2, 2, 3), 0)
	require.NoError(t, err)
	assert.Len(t, res.Circles, 4)
	for _, c := range res.Circles {
		assert.Equal(t, 0, c.Gen)
	}
}

func TestGenerate_ThreeUnitSeeds(t *testing.T) {
	res, err := gasket.Generate(ints(1, 1, 1), 2)
	require.NoError(t, err)

	counts := genCounts(res.Circles)
	assert.Equal(t, 3, counts[0])
	assert.Equal(t, 2, counts[1]) // inner 3+2√3 and enclosing 3-2√3
	assert.Equal(t, 6, counts[2])
	assert.Len(t, res.Circles, 11)

	var negatives int
	for _, c := range res.Circles {
		if c.K.Sign() < 0 {
			negatives++
		}
	}
	assert.Equal(t, 1, negatives, "exactly one enclosing circle")
}

func TestGenerate_DegenerateTripleSkipped(t *testing.T) {
	// (-1, 1, 1) places through the concentric fallback but its seed
	// triple has a negative Descartes discriminant. The triple is a dead
	// branch, not a failure: the walk finishes with the seeds alone.
	res, err := gasket.Generate(ints(-1, 1, 1), 1)
	require.NoError(t, err)
	assert.Len(t, res.Circles, 3)
	for _, c := range res.Circles {
		assert.Equal(t, 0, c.Gen)
	}

	// Deeper requests make no difference once every branch is dead.
	res, err = gasket.Generate(ints(-1, 1, 1), 3)
	require.NoError(t, err)
	assert.Len(t, res.Circles, 3)
}

func TestGenerate_FailedVerificationDiscardsCandidate(t *testing.T) {
	// Unit seeds force symbolic children whose float64 tangency residual
	// sits near machine epsilon. A tolerance far below that makes every
	// candidate fail verification; each is discarded and the walk drains
	// cleanly with the seeds alone.
	res, err := gasket.Generate(ints(1, 1, 1), 2, gasket.WithTolerance(1e-30))
	require.NoError(t, err)
	assert.Len(t, res.Circles, 3)
	for _, c := range res.Circles {
		assert.Equal(t, 0, c.Gen)
	}
}

func TestGenerate_GenerationsNonDecreasing(t *testing.T) {
	res, err := gasket.Generate(ints(-1, 2, 2, 3), 3)
	require.NoError(t, err)
	for i := 1; i < len(res.Circles); i++ {
		assert.LessOrEqual(t, res.Circles[i-1].Gen, res.Circles[i].Gen)
	}
}

func TestGenerate_NoDuplicates(t *testing.T) {
	res, err := gasket.Generate(ints(-1, 2, 2, 3), 3)
	require.NoError(t, err)
	seen := make(map[string]bool, len(res.Circles))
	for _, c := range res.Circles {
		key := c.HashKey()
		assert.False(t, seen[key], "duplicate circle %s at %s", c.K, c.Z)
		seen[key] = true
	}
}

func TestGenerate_EveryChildTouchesThreeParents(t *testing.T) {
	res, err := gasket.Generate(ints(-1, 2, 2, 3), 2)
	require.NoError(t, err)
	for i, c := range res.Circles {
		if c.Gen == 0 {
			continue
		}
		var touches int
		for j, o := range res.Circles {
			if i != j && gasket.VerifyTangency(c, o, 1e-9) {
				touches++
			}
		}
		assert.GreaterOrEqual(t, touches, 3, "circle %s at %s", c.K, c.Z)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := gasket.Generate(ints(-1, 2, 2, 3), 3)
	require.NoError(t, err)
	b, err := gasket.Generate(ints(-1, 2, 2, 3), 3)
	require.NoError(t, err)
	require.Len(t, b.Circles, len(a.Circles))
	for i := range a.Circles {
		assert.Equal(t, a.Circles[i].HashKey(), b.Circles[i].HashKey(), "index %d", i)
	}
}

func TestRun_NextMatchesBatch(t *testing.T) {
	batch, err := gasket.Generate(ints(-1, 2, 2, 3), 2)
	require.NoError(t, err)

	run, err := gasket.NewRun(ints(-1, 2, 2, 3), 2)
	require.NoError(t, err)

	var pulled []gasket.Circle
	for !run.Done() || len(pulled) < len(batch.Circles) {
		got, err := run.Next(3)
		require.NoError(t, err)
		if len(got) == 0 {
			break
		}
		pulled = append(pulled, got...)
	}
	require.Len(t, pulled, len(batch.Circles))
	for i := range pulled {
		assert.Equal(t, batch.Circles[i].HashKey(), pulled[i].HashKey(), "index %d", i)
	}
}

func TestRun_AllAfterNextReturnsRemainder(t *testing.T) {
	run, err := gasket.NewRun(ints(-1, 2, 2, 3), 1)
	require.NoError(t, err)

	head, err := run.Next(5)
	require.NoError(t, err)
	require.Len(t, head, 5)

	rest, err := run.All()
	require.NoError(t, err)
	assert.Len(t, rest, 3) // 8 circles total at depth 1
	assert.True(t, run.Done())

	again, err := run.All()
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestRun_NextRejectsNonPositive(t *testing.T) {
	run, err := gasket.NewRun(ints(-1, 2, 2, 3), 1)
	require.NoError(t, err)
	_, err = run.Next(0)
	assert.ErrorIs(t, err, gasket.ErrOptionViolation)
}

func TestGenerate_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := gasket.Generate(ints(-1, 2, 2, 3), 4, gasket.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_MaxCirclesCap(t *testing.T) {
	res, err := gasket.Generate(ints(-1, 2, 2, 3), 6, gasket.WithMaxCircles(10))
	require.NoError(t, err)
	assert.Len(t, res.Circles, 10)
}

func TestGenerate_OptionViolations(t *testing.T) {
	_, err := gasket.Generate(ints(-1, 2, 2, 3), 1, gasket.WithTolerance(0))
	assert.ErrorIs(t, err, gasket.ErrOptionViolation)

	_, err = gasket.Generate(ints(-1, 2, 2, 3), 1, gasket.WithMaxCircles(-1))
	assert.ErrorIs(t, err, gasket.ErrOptionViolation)

	_, err = gasket.Generate(ints(-1, 2, 2, 3), -1)
	assert.ErrorIs(t, err, gasket.ErrOptionViolation)
}

func TestGenerate_OnCircleSeesEmissionOrder(t *testing.T) {
	var keys []string
	res, err := gasket.Generate(ints(-1, 2, 2, 3), 1,
		gasket.WithOnCircle(func(c gasket.Circle) error {
			keys = append(keys, c.HashKey())
			return nil
		}))
	require.NoError(t, err)
	require.Len(t, keys, len(res.Circles))
	for i, c := range res.Circles {
		assert.Equal(t, c.HashKey(), keys[i], "index %d", i)
	}
}

func TestGenerate_OnCircleErrorAborts(t *testing.T) {
	boom := errors.New("sink full")
	var calls int
	_, err := gasket.Generate(ints(-1, 2, 2, 3), 2,
		gasket.WithOnCircle(func(gasket.Circle) error {
			calls++
			if calls == 6 {
				return boom
			}
			return nil
		}))
	assert.ErrorIs(t, err, gasket.ErrGeneration)
	assert.Equal(t, 6, calls)
}

func TestGenerate_IDsParentsTangents(t *testing.T) {
	res, err := gasket.Generate(ints(-1, 2, 2, 3), 2)
	require.NoError(t, err)

	byID := make(map[int64]gasket.Circle, len(res.Circles))
	for i, c := range res.Circles {
		assert.Equal(t, int64(i+1), c.ID, "IDs follow emission order")
		byID[c.ID] = c
	}
	for _, c := range res.Circles {
		if c.Gen == 0 {
			assert.Equal(t, [3]int64{}, c.Parents)
			continue
		}
		for _, pid := range c.Parents {
			p, ok := byID[pid]
			require.True(t, ok, "parent %d of circle %d", pid, c.ID)
			assert.Less(t, p.Gen, c.Gen)
			assert.True(t, gasket.VerifyTangency(c, p, 1e-9))
			assert.Contains(t, p.Tangents, c.ID, "tangency index is two-way")
		}
		assert.Equal(t, c.Parents[:], c.Tangents[:3])
	}
}

func TestPlaceInitialCircles_ConcentricFallback(t *testing.T) {
	// (-1, 1, 1): the inner circles fill the enclosure, tangent distances
	// collapse to zero and placement degrades to the x-axis fallback
	// instead of failing.
	placed, err := gasket.PlaceInitialCircles(ints(-1, 1, 1))
	require.NoError(t, err)
	require.Len(t, placed, 3)
	for _, c := range placed {
		assert.True(t, c.Z.Im.IsZero())
	}
}

func TestPlacementErrors_WrapErrPlacement(t *testing.T) {
	_, err := gasket.PlaceInitialCircles(ints(1, 1))
	assert.ErrorIs(t, err, gasket.ErrPlacement)
	assert.ErrorIs(t, err, gasket.ErrSeedCount)

	_, err = gasket.PlaceInitialCircles(ints(1, 0, 1))
	assert.ErrorIs(t, err, gasket.ErrPlacement)
	assert.ErrorIs(t, err, gasket.ErrZeroCurvature)

	_, err = gasket.PlaceInitialCircles(ints(-1, 2, 2, 5))
	assert.ErrorIs(t, err, gasket.ErrPlacement)
	assert.ErrorIs(t, err, gasket.ErrUnsolvable)
}

func TestSeedHash_OrderIndependent(t *testing.T) {
	a := gasket.SeedHash(ints(-1, 2, 2, 3))
	b := gasket.SeedHash(ints(3, 2, -1, 2))
	c := gasket.SeedHash(ints(-2, 3, 6, 7))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestResult_Metadata(t *testing.T) {
	seeds := ints(-2, 3, 6, 7)
	res, err := gasket.Generate(seeds, 1)
	require.NoError(t, err)
	assert.Equal(t, gasket.SeedHash(seeds), res.SeedHash)
	assert.Equal(t, 1, res.Depth)
	require.Len(t, res.Seeds, 4)
	for i := range seeds {
		assert.True(t, res.Seeds[i].Equal(seeds[i]))
	}
}
