package flags

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlags_NDims(t *testing.T) {
	var f Flags
	require.Equal(t, 2, f.NDims())

	f = f.WithZ(true)
	require.Equal(t, 3, f.NDims())

	f = f.WithM(true)
	require.Equal(t, 4, f.NDims())

	f = f.WithZ(false)
	require.Equal(t, 3, f.NDims())
}

func TestFlags_Accessors(t *testing.T) {
	var f Flags
	require.False(t, f.HasZ())
	require.False(t, f.HasM())
	require.False(t, f.HasBBox())
	require.False(t, f.IsGeodetic())
	require.False(t, f.IsReadOnly())
	require.False(t, f.IsSolid())
	require.False(t, f.IsExtended())

	f = f.WithBBox(true).WithGeodetic(true).WithSolid(true)
	require.True(t, f.HasBBox())
	require.True(t, f.IsGeodetic())
	require.True(t, f.IsSolid())
	require.False(t, f.HasZ())

	f = f.WithBBox(false)
	require.False(t, f.HasBBox())
	require.True(t, f.IsGeodetic(), "clearing one bit must not disturb others")
}

func TestFlags_RoundTripAllBits(t *testing.T) {
	f := Z | M | BBox | Geodetic | ReadOnly | Solid | Extended
	require.True(t, f.HasZ())
	require.True(t, f.HasM())
	require.True(t, f.HasBBox())
	require.True(t, f.IsGeodetic())
	require.True(t, f.IsReadOnly())
	require.True(t, f.IsSolid())
	require.True(t, f.IsExtended())
	require.Equal(t, 4, f.NDims())
}
