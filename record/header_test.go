package record

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geocodec/gserial/errs"
	"github.com/geocodec/gserial/flags"
)

func TestHeaderSize(t *testing.T) {
	require.Equal(t, 8, HeaderSize(0))

	f := flags.BBox
	require.Equal(t, 8+16, HeaderSize(f)) // 2D, no Z/M: bbox = 2*2*4=16

	f = flags.BBox | flags.Z | flags.M
	require.Equal(t, 8+32, HeaderSize(f)) // 4D: bbox = 2*4*4=32

	fGeo := flags.BBox | flags.Geodetic
	require.Equal(t, 8+24, HeaderSize(fGeo))
}

func TestMaxHeaderSize(t *testing.T) {
	require.Equal(t, 8+32, MaxHeaderSize())
}

func TestWriteParseHeader_RoundTrip(t *testing.T) {
	buf := make([]byte, FixedHeaderSize)
	f := flags.Z
	clamped := WriteHeader(buf, 16, f, 4326, nil)
	require.Equal(t, int32(4326), clamped)

	size, gotFlags, srid, err := ParseHeader(buf)
	require.NoError(t, err)
	require.Equal(t, uint32(16), size)
	require.Equal(t, f, gotFlags)
	require.Equal(t, int32(4326), srid)
}

func TestParseHeader_Truncated(t *testing.T) {
	_, _, _, err := ParseHeader(make([]byte, 4))
	require.ErrorIs(t, err, errs.ErrTruncatedRecord)
}
