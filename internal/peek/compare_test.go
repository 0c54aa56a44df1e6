package peek

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geocodec/gserial/geom"
	"github.com/geocodec/gserial/internal/treecodec"
)

func encodePoint(t *testing.T, x, y float64, srid int32) []byte {
	t.Helper()
	g := geom.NewPoint(geom.Coordinate{x, y}, 0, srid)
	rec, err := treecodec.Encode(g, treecodec.DefaultConfig())
	require.NoError(t, err)

	return rec
}

func TestCompare_Reflexive(t *testing.T) {
	a := encodePoint(t, 1, 2, 0)
	sign, err := Compare(a, a)
	require.NoError(t, err)
	require.Equal(t, 0, sign)
}

func TestCompare_Antisymmetric(t *testing.T) {
	a := encodePoint(t, 1, 2, 0)
	b := encodePoint(t, 3, 4, 0)

	ab, err := Compare(a, b)
	require.NoError(t, err)
	ba, err := Compare(b, a)
	require.NoError(t, err)

	require.Equal(t, -ab, ba)
}

func TestCompare_SamePointDifferentSRID(t *testing.T) {
	// Scenario 5: two 2D points at (0,0) with different SRIDs. The fast
	// path falls through (SRIDs differ); the slow path must still
	// return a deterministic, non-zero, antisymmetric sign.
	a := encodePoint(t, 0, 0, 4326)
	b := encodePoint(t, 0, 0, 3857)

	ab, err := Compare(a, b)
	require.NoError(t, err)
	require.NotEqual(t, 0, ab)

	ba, err := Compare(b, a)
	require.NoError(t, err)
	require.Equal(t, -ab, ba)
}

func TestCompare_EmptyMultiPointVsNonEmptyPoint(t *testing.T) {
	empty := geom.NewCollection(geom.MultiPoint, nil, 0, 7)
	rec1, err := treecodec.Encode(empty, treecodec.DefaultConfig())
	require.NoError(t, err)

	rec2 := encodePoint(t, 1, 1, 7)

	sign, err := Compare(rec1, rec2)
	require.NoError(t, err)
	require.Equal(t, -1, sign)
}

func TestCompare_FastPathDiffersOnDistinctPoints(t *testing.T) {
	a := encodePoint(t, 1, 2, 5)
	b := encodePoint(t, 100, 200, 5)

	ab, err := Compare(a, b)
	require.NoError(t, err)
	require.NotEqual(t, 0, ab)

	ba, err := Compare(b, a)
	require.NoError(t, err)
	require.Equal(t, -ab, ba)
}

func TestCompare_ExactEquality(t *testing.T) {
	a := encodePoint(t, 5, 6, 42)
	b := encodePoint(t, 5, 6, 42)

	sign, err := Compare(a, b)
	require.NoError(t, err)
	require.Equal(t, 0, sign)
}

func TestCompare_TransitiveOnSample(t *testing.T) {
	pts := [][2]float64{{0, 0}, {1, 1}, {2, 2}, {-1, 5}, {3, -2}}
	recs := make([][]byte, len(pts))
	for i, p := range pts {
		recs[i] = encodePoint(t, p[0], p[1], 1)
	}

	for i := range recs {
		for j := range recs {
			for k := range recs {
				ij, err := Compare(recs[i], recs[j])
				require.NoError(t, err)
				jk, err := Compare(recs[j], recs[k])
				require.NoError(t, err)
				ik, err := Compare(recs[i], recs[k])
				require.NoError(t, err)

				if ij <= 0 && jk <= 0 {
					require.LessOrEqual(t, ik, 0, "transitivity violated for %d,%d,%d", i, j, k)
				}
			}
		}
	}
}
