package gserial

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geocodec/gserial/errs"
	"github.com/geocodec/gserial/geom"
)

// TestEncodeDecode_RoundTrip verifies the public facade round-trips a
// geometry with no option overrides.
func TestEncodeDecode_RoundTrip(t *testing.T) {
	g := geom.NewPoint(geom.Coordinate{-122.4, 37.8}, 0, 4326)

	rec, err := Encode(g)
	require.NoError(t, err)
	require.NotEmpty(t, rec)

	back, err := Decode(rec)
	require.NoError(t, err)
	require.Equal(t, geom.Point, back.Kind)
	require.Equal(t, int32(4326), back.SRID)
}

// TestEncode_WithNeedsBBoxPolicy verifies an option override reaches the
// underlying treecodec.Config.
func TestEncode_WithNeedsBBoxPolicy(t *testing.T) {
	g := geom.NewLeaf(geom.LineString, geom.Points{0, 0, 1, 1, 2, 2}, 0, 0)

	noBBox := WithNeedsBBoxPolicy(func(*geom.Geometry) bool { return false })
	rec, err := Encode(g, noBBox)
	require.NoError(t, err)

	back, err := Decode(rec, noBBox)
	require.NoError(t, err)
	require.Nil(t, back.BBox)
}

// TestEncode_WithErrorReporter verifies the error reporter hook fires on
// a failing encode.
func TestEncode_WithErrorReporter(t *testing.T) {
	// An ordinate run whose length isn't a multiple of ndims can't be
	// sized, so Encode fails before ever allocating.
	g := geom.NewLeaf(geom.LineString, geom.Points{0, 0, 1}, 0, 0)

	var reported string
	_, err := Encode(g, WithErrorReporter(func(format string, args ...any) {
		reported = format
	}))

	require.Error(t, err)
	require.NotEmpty(t, reported)
}

// TestPeekBBox_PointDerivable verifies the peek facade delegates without
// a full Decode.
func TestPeekBBox_PointDerivable(t *testing.T) {
	g := geom.NewPoint(geom.Coordinate{3, 4}, 0, 0)

	rec, err := Encode(g, WithNeedsBBoxPolicy(func(*geom.Geometry) bool { return false }))
	require.NoError(t, err)

	box, err := PeekBBox(rec)
	require.NoError(t, err)
	require.Equal(t, float64(3), box.Min.X())
}

// TestPeekFirstPoint_EmptyPoint verifies the peek facade surfaces the
// empty-point error.
func TestPeekFirstPoint_EmptyPoint(t *testing.T) {
	g := geom.NewPoint(nil, 0, 0)

	rec, err := Encode(g)
	require.NoError(t, err)

	_, err = PeekFirstPoint(rec)
	require.ErrorIs(t, err, errs.ErrEmptyPoint)
}

// TestCompare_Reflexive verifies the facade's Compare delegates to the
// underlying comparator correctly.
func TestCompare_Reflexive(t *testing.T) {
	g := geom.NewPoint(geom.Coordinate{1, 2}, 0, 0)

	rec, err := Encode(g)
	require.NoError(t, err)

	sign, err := Compare(rec, rec)
	require.NoError(t, err)
	require.Equal(t, 0, sign)
}
