package gasket_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gasket/descartes"
	"github.com/katalvlaran/gasket/exact"
	"github.com/katalvlaran/gasket/gasket"
)

func TestEnumerateRootQuadruples_KnownSmallBends(t *testing.T) {
	got := gasket.EnumerateRootQuadruples(3)
	want := []gasket.RootQuadruple{
		{-1, 2, 2, 3},
		{-2, 3, 6, 7},
		{-3, 4, 12, 13},
		{-3, 5, 8, 8},
	}
	assert.Equal(t, want, got)
}

func TestEnumerateRootQuadruples_DescartesIdentity(t *testing.T) {
	for _, q := range gasket.EnumerateRootQuadruples(12) {
		var sum, squares int64
		for _, k := range q {
			sum += k
			squares += k * k
		}
		assert.Equal(t, 2*squares, sum*sum, "quadruple %v", q)
	}
}

func TestEnumerateRootQuadruples_Primitive(t *testing.T) {
	for _, q := range gasket.EnumerateRootQuadruples(12) {
		g := q[1]
		for _, k := range q {
			if k < 0 {
				k = -k
			}
			for k != 0 {
				g, k = k, g%k
			}
		}
		assert.Equal(t, int64(1), g, "quadruple %v", q)
	}
}

func TestEnumerateRootQuadruples_AllGenerate(t *testing.T) {
	for _, q := range gasket.EnumerateRootQuadruples(6) {
		res, err := gasket.Generate(q.Curvatures(), 1)
		require.NoError(t, err, "quadruple %v", q)
		for _, c := range res.Circles {
			assert.Equal(t, exact.KindInt, c.K.Kind(), "quadruple %v curvature %s", q, c.K)
		}
	}
}

func TestRootQuadruple_Reflected(t *testing.T) {
	// The reflection is the other Descartes solution over the first three
	// members, e.g. (-1,2,2,3) reflects 3 to 3 and (-3,5,8,8) to 12.
	assert.Equal(t, int64(3), gasket.RootQuadruple{-1, 2, 2, 3}.Reflected())
	assert.Equal(t, int64(12), gasket.RootQuadruple{-3, 5, 8, 8}.Reflected())

	for _, q := range gasket.EnumerateRootQuadruples(8) {
		plus, minus, err := descartes.FourthCurvatures(
			exact.Int(q[0]), exact.Int(q[1]), exact.Int(q[2]))
		require.NoError(t, err, "quadruple %v", q)
		assert.True(t, minus.Equal(exact.Int(q[3])) || plus.Equal(exact.Int(q[3])), "quadruple %v", q)
		assert.True(t, minus.Equal(exact.Int(q.Reflected())) || plus.Equal(exact.Int(q.Reflected())), "quadruple %v", q)
	}
}

func TestEnumerateRootQuadruples_EmptyBelowOne(t *testing.T) {
	assert.Nil(t, gasket.EnumerateRootQuadruples(0))
	assert.Nil(t, gasket.EnumerateRootQuadruples(-5))
}
