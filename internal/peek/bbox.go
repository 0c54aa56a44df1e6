package peek

import (
	"math"

	"github.com/geocodec/gserial/endian"
	"github.com/geocodec/gserial/errs"
	"github.com/geocodec/gserial/flags"
	"github.com/geocodec/gserial/geom"
	"github.com/geocodec/gserial/record"
)

// BBox implements peek_bbox (spec §4.5.1): derives a bounding box from a
// record without constructing a geom.Geometry, whenever the record
// already stores one or its body is one of the handful of shapes simple
// enough to bound without a full decode.
func BBox(rec record.Serialized) (geom.BBox, error) {
	_, f, _, err := record.ParseHeader(rec)
	if err != nil {
		return geom.BBox{}, err
	}

	if f.HasBBox() {
		return record.ReadBBox(rec, f)
	}

	box, ok := deriveBBox(rec, record.FixedHeaderSize, f)
	if !ok {
		return geom.BBox{}, errs.ErrPeekNotDerivable
	}

	return widenBBox(box), nil
}

// deriveBBox implements the shape enumeration of spec §4.5.1: a
// non-empty, non-geodetic Point; a 2-point LineString; a MultiPoint or
// MultiLineString wrapping exactly one such shape. Every other shape
// (including ones nested more than one level deep) is not derivable.
func deriveBBox(data []byte, offset int, f flags.Flags) (geom.BBox, bool) {
	if len(data) < offset+8 {
		return geom.BBox{}, false
	}

	engine := endian.HostEngine()
	kind := geom.Kind(engine.Uint32(data[offset : offset+4]))
	count := int(engine.Uint32(data[offset+4 : offset+8]))
	ndims := f.NDims()
	body := offset + 8

	switch kind {
	case geom.Point:
		if f.IsGeodetic() || count == 0 {
			return geom.BBox{}, false
		}
		c, ok := readPoint(data, body, ndims)
		if !ok {
			return geom.BBox{}, false
		}

		return geom.NewBBox(append([]float64(nil), c...), append([]float64(nil), c...)), true

	case geom.LineString:
		if count != 2 {
			return geom.BBox{}, false
		}
		p0, ok := readPoint(data, body, ndims)
		if !ok {
			return geom.BBox{}, false
		}
		p1, ok := readPoint(data, body+ndims*8, ndims)
		if !ok {
			return geom.BBox{}, false
		}

		return pairBBox(p0, p1), true

	case geom.MultiPoint, geom.MultiLineString:
		if count != 1 {
			return geom.BBox{}, false
		}

		return deriveBBox(data, body, f)

	default:
		return geom.BBox{}, false
	}
}

func readPoint(data []byte, offset, ndims int) ([]float64, bool) {
	need := ndims * 8
	if len(data) < offset+need {
		return nil, false
	}

	engine := endian.HostEngine()
	out := make([]float64, ndims)
	for i := 0; i < ndims; i++ {
		off := offset + i*8
		out[i] = math.Float64frombits(engine.Uint64(data[off : off+8]))
	}

	return out, true
}

func pairBBox(p0, p1 []float64) geom.BBox {
	min := make([]float64, len(p0))
	max := make([]float64, len(p0))
	for i := range min {
		min[i], max[i] = p0[i], p0[i]
		if p1[i] < min[i] {
			min[i] = p1[i]
		}
		if p1[i] > max[i] {
			max[i] = p1[i]
		}
	}

	return geom.NewBBox(min, max)
}

// widenBBox applies the directed float32 rounding of spec §3.3 to a
// derived double-precision box, so it is byte-comparable with a box that
// went through record.WriteBBox.
func widenBBox(box geom.BBox) geom.BBox {
	min := make([]float64, len(box.Min))
	max := make([]float64, len(box.Max))
	for i := range min {
		min[i] = float64(record.RoundDown32(box.Min[i]))
		max[i] = float64(record.RoundUp32(box.Max[i]))
	}

	return geom.NewBBox(min, max)
}
