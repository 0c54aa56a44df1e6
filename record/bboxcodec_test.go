package record

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geocodec/gserial/flags"
	"github.com/geocodec/gserial/geom"
)

func TestBBoxSize(t *testing.T) {
	require.Equal(t, 16, BBoxSize(0))                          // 2D
	require.Equal(t, 24, BBoxSize(flags.Z))                    // 3D
	require.Equal(t, 32, BBoxSize(flags.Z|flags.M))            // 4D
	require.Equal(t, 24, BBoxSize(flags.Geodetic))             // fixed
	require.Equal(t, 24, BBoxSize(flags.Geodetic|flags.M))     // M ignored
}

func TestWriteReadBBox_Contains(t *testing.T) {
	f := flags.BBox | flags.Z
	box := geom.NewBBox([]float64{0.1, 0.2, 0.3}, []float64{1.1, 1.2, 1.3})

	buf := make([]byte, FixedHeaderSize+BBoxSize(f))
	n := WriteBBox(box, buf, f)
	require.Equal(t, BBoxSize(f), n)

	got, err := ReadBBox(buf, f)
	require.NoError(t, err)

	for i := range box.Min {
		require.LessOrEqualf(t, got.Min[i], box.Min[i], "stored min must not exceed exact min at axis %d", i)
		require.GreaterOrEqualf(t, got.Max[i], box.Max[i], "stored max must not be less than exact max at axis %d", i)
	}
}

func TestReadBBox_NotPresent(t *testing.T) {
	buf := make([]byte, FixedHeaderSize)
	_, err := ReadBBox(buf, 0)
	require.Error(t, err)
}

func TestRoundDownUp32_ExactValuesUnchanged(t *testing.T) {
	require.Equal(t, float32(1.0), RoundDown32(1.0))
	require.Equal(t, float32(1.0), RoundUp32(1.0))
	require.Equal(t, float32(0), RoundDown32(0))
}

func TestRoundDownUp32_Directed(t *testing.T) {
	v := 0.1 // not exactly representable in float32
	down := RoundDown32(v)
	up := RoundUp32(v)

	require.LessOrEqual(t, float64(down), v)
	require.GreaterOrEqual(t, float64(up), v)
	require.True(t, down <= up)
}

func TestWriteBBox_LineString3DScenario(t *testing.T) {
	// Concrete scenario from spec §8.1 #3: LineString of two 3D points
	// (0,0,0)-(1,1,1); stored bbox must be [-0⁻, 1⁺]^3.
	f := flags.BBox | flags.Z
	box := geom.NewBBox([]float64{0, 0, 0}, []float64{1, 1, 1})

	buf := make([]byte, FixedHeaderSize+BBoxSize(f))
	WriteBBox(box, buf, f)

	got, err := ReadBBox(buf, f)
	require.NoError(t, err)
	for i := range got.Min {
		require.LessOrEqual(t, got.Min[i], 0.0)
		require.GreaterOrEqual(t, got.Max[i], 1.0)
	}
}

func TestRoundDown32_Infinities(t *testing.T) {
	require.True(t, math.IsInf(float64(RoundDown32(math.Inf(-1))), -1))
	require.True(t, math.IsInf(float64(RoundUp32(math.Inf(1))), 1))
}
