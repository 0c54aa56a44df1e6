package treecodec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geocodec/gserial/endian"
	"github.com/geocodec/gserial/flags"
	"github.com/geocodec/gserial/geom"
	"github.com/geocodec/gserial/record"
)

func TestEncode_EmptyPointScenario(t *testing.T) {
	g := geom.NewPoint(nil, 0, 4326)

	rec, err := Encode(g, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, rec, 16)
	require.Equal(t, uint32(16), record.Size(rec))
	require.Equal(t, flags.Flags(0), record.Flags(rec))
	require.Equal(t, []byte{0x00, 0x10, 0xE6}, []byte(rec[record.SRIDOffset:record.SRIDOffset+3]))

	body := rec[record.FixedHeaderSize:]
	engine := endian.HostEngine()
	require.Equal(t, uint32(geom.Point), engine.Uint32(body[0:4]))
	require.Equal(t, uint32(0), engine.Uint32(body[4:8]))
}

func TestEncode_2DPointNoSRIDNoBBox(t *testing.T) {
	g := geom.NewPoint(geom.Coordinate{1.0, 2.0}, 0, 0)

	rec, err := Encode(g, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, rec, 32)
}

func TestEncode_LineString3DWithBBox(t *testing.T) {
	pts := geom.Points{0, 0, 0, 1, 1, 1}
	g := geom.NewLeaf(geom.LineString, pts, flags.Z, 0)
	box, ok := geom.CalculateBBox(g)
	require.True(t, ok)
	g = g.WithBBox(&box)

	rec, err := Encode(g, DefaultConfig())
	require.NoError(t, err)
	require.True(t, record.Flags(rec).HasBBox())

	got, err := record.ReadBBox(rec, record.Flags(rec))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.LessOrEqual(t, got.Min[i], 0.0)
		require.GreaterOrEqual(t, got.Max[i], 1.0)
	}
}

func TestEncode_Polygon3RingsScenario(t *testing.T) {
	ring := geom.Points{0, 0, 1, 0, 1, 1, 0, 0}
	g := geom.NewPolygon([]geom.Points{ring, ring, ring}, 0, 0)

	rec, err := Encode(g, DefaultConfig())
	require.NoError(t, err)

	bodyLen := len(rec) - record.FixedHeaderSize
	require.Equal(t, 216, bodyLen)
}

func TestEncode_SizeMismatchNeverHappensForValidGeometry(t *testing.T) {
	g := geom.NewLeaf(geom.LineString, geom.Points{0, 0, 1, 1, 2, 2}, 0, 0)
	size, err := SizeOf(g, DefaultConfig())
	require.NoError(t, err)

	rec, err := Encode(g, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, rec, size)
}

func TestEncode_DimensionMismatch(t *testing.T) {
	bad := &geom.Geometry{Kind: geom.LineString, Flags: flags.Z, Points: geom.Points{0, 0, 1, 1}}
	_, err := Encode(bad, DefaultConfig())
	require.Error(t, err)
}

func TestEncode_ChildFlagMismatch(t *testing.T) {
	child := geom.NewLeaf(geom.LineString, geom.Points{0, 0, 1, 1}, flags.Z, 0) // wrong: no Z ordinates but Z flag
	parent := geom.NewCollection(geom.MultiLineString, []*geom.Geometry{child}, 0, 0)
	_, err := Encode(parent, DefaultConfig())
	require.Error(t, err)
}
