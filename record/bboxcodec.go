package record

import (
	"math"

	"github.com/geocodec/gserial/endian"
	"github.com/geocodec/gserial/errs"
	"github.com/geocodec/gserial/flags"
	"github.com/geocodec/gserial/geom"
)

// BBoxSize returns bbox_size(flags) (spec §3.3, §4.2): 24 bytes for a
// geodetic box (fixed geocentric X,Y,Z; the M bit is ignored), otherwise
// 2*ndims*4 bytes — a min/max float32 pair per live axis, in X, Y, Z, M
// order.
func BBoxSize(f flags.Flags) int {
	if f.IsGeodetic() {
		return GeodeticBBoxSize
	}

	return 2 * f.NDims() * 4
}

// ReadBBox decodes the bbox immediately following the fixed header
// (spec §4.2). It fails with errs.ErrBBoxNotPresent if f's bbox bit is
// clear, and errs.ErrTruncatedRecord if data is too short.
func ReadBBox(data []byte, f flags.Flags) (geom.BBox, error) {
	if !f.HasBBox() {
		return geom.BBox{}, errs.ErrBBoxNotPresent
	}

	size := BBoxSize(f)
	if len(data) < FixedHeaderSize+size {
		return geom.BBox{}, errs.ErrTruncatedRecord
	}

	buf := data[FixedHeaderSize : FixedHeaderSize+size]
	engine := endian.HostEngine()

	axes := f.NDims()
	if f.IsGeodetic() {
		axes = 3
	}

	min := make([]float64, axes)
	max := make([]float64, axes)
	for i := 0; i < axes; i++ {
		off := i * 8
		min[i] = float64(math.Float32frombits(engine.Uint32(buf[off : off+4])))
		max[i] = float64(math.Float32frombits(engine.Uint32(buf[off+4 : off+8])))
	}

	return geom.NewBBox(min, max), nil
}

// WriteBBox writes box into out[FixedHeaderSize:FixedHeaderSize+BBoxSize(f)]
// using the directed rounding of spec §3.3 and §4.2: each min is rounded
// to the largest float32 that does not exceed the float64 value, each max
// to the smallest float32 not less than it, so the stored box always
// contains the input. Returns the number of bytes written.
func WriteBBox(box geom.BBox, out []byte, f flags.Flags) int {
	size := BBoxSize(f)
	buf := out[FixedHeaderSize : FixedHeaderSize+size]
	engine := endian.HostEngine()

	axes := size / 8
	for i := 0; i < axes; i++ {
		off := i * 8
		engine.PutUint32(buf[off:off+4], math.Float32bits(RoundDown32(box.Min[i])))
		engine.PutUint32(buf[off+4:off+8], math.Float32bits(RoundUp32(box.Max[i])))
	}

	return size
}

// RoundDown32 returns the largest float32 that is <= v.
func RoundDown32(v float64) float32 {
	f := float32(v)
	if float64(f) > v {
		f = math.Nextafter32(f, float32(math.Inf(-1)))
	}

	return f
}

// RoundUp32 returns the smallest float32 that is >= v.
func RoundUp32(v float64) float32 {
	f := float32(v)
	if float64(f) < v {
		f = math.Nextafter32(f, float32(math.Inf(1)))
	}

	return f
}
