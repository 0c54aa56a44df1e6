package peek

import (
	"bytes"
	"math"

	"github.com/geocodec/gserial/endian"
	"github.com/geocodec/gserial/flags"
	"github.com/geocodec/gserial/geom"
	"github.com/geocodec/gserial/internal/treecodec"
	"github.com/geocodec/gserial/record"
)

// Compare implements the total order of spec §4.5.3, suitable as a
// database B-tree comparator: reflexive, antisymmetric, and transitive
// on the hash-then-tie-break ladder described there.
func Compare(a, b record.Serialized) (int, error) {
	_, fa, srida, err := record.ParseHeader(a)
	if err != nil {
		return 0, err
	}
	_, fb, sridb, err := record.ParseHeader(b)
	if err != nil {
		return 0, err
	}

	if sign, ok := fastPathCompare(a, fa, srida, b, fb, sridb); ok {
		return sign, nil
	}

	boxA, emptyA := bboxOrEmpty(a, fa)
	boxB, emptyB := bboxOrEmpty(b, fb)

	if emptyA && !emptyB {
		return -1, nil
	}
	if !emptyA && emptyB {
		return 1, nil
	}

	bodyA := a[record.HeaderSize(fa):]
	bodyB := b[record.HeaderSize(fb):]
	bsz := min(len(bodyA), len(bodyB))
	cmp := bytes.Compare(bodyA[:bsz], bodyB[:bsz])

	if len(bodyA) == len(bodyB) && srida == sridb && cmp == 0 {
		return 0, nil
	}

	if !emptyA && !emptyB {
		hashA := sortableHash(boxA, fa)
		hashB := sortableHash(boxB, fb)
		if hashA != hashB {
			if hashA > hashB {
				return 1, nil
			}
			return -1, nil
		}

		if sign, ok := tieBreakBBox(boxA, boxB); ok {
			return sign, nil
		}
	}

	if len(bodyA) != len(bodyB) {
		if len(bodyA) < len(bodyB) {
			return -1, nil
		}
		return 1, nil
	}

	if cmp != 0 {
		if cmp > 0 {
			return 1, nil
		}
		return -1, nil
	}

	// Bodies are byte-identical and equal length but SRIDs differ: the
	// exact-equality check above already requires matching SRIDs, so
	// reaching here means srida != sridb. Break the tie on SRID itself
	// rather than returning an order-independent sign, so the result
	// stays antisymmetric (spec §8 scenario 5).
	if srida < sridb {
		return -1, nil
	}

	return 1, nil
}

// fastPathCompare implements the §4.5.3 step 1 short-circuit: two
// non-empty points of the same SRID, neither carrying a bbox. The type
// tag is read via record.HeaderSize, the same header-skip routine the
// rest of the codec uses, rather than a hardcoded offset (spec §9 open
// question), so the read location is correct regardless of whether a
// bbox is present — though the guard below rules that case out anyway.
func fastPathCompare(a record.Serialized, fa flags.Flags, srida int32, b record.Serialized, fb flags.Flags, sridb int32) (int, bool) {
	if fa.HasBBox() || fb.HasBBox() || srida != sridb {
		return 0, false
	}

	offA := record.HeaderSize(fa)
	offB := record.HeaderSize(fb)
	if len(a) < offA+8 || len(b) < offB+8 {
		return 0, false
	}

	engine := endian.HostEngine()
	if geom.Kind(engine.Uint32(a[offA:offA+4])) != geom.Point || geom.Kind(engine.Uint32(b[offB:offB+4])) != geom.Point {
		return 0, false
	}

	countA := int(engine.Uint32(a[offA+4 : offA+8]))
	countB := int(engine.Uint32(b[offB+4 : offB+8]))
	if countA == 0 || countB == 0 {
		return 0, false
	}

	pa, okA := readPoint(a, offA+8, fa.NDims())
	pb, okB := readPoint(b, offB+8, fb.NDims())
	if !okA || !okB {
		return 0, false
	}

	ha := fastHash(pa[0], pa[1])
	hb := fastHash(pb[0], pb[1])
	if ha == hb {
		return 0, false
	}
	if ha > hb {
		return 1, true
	}

	return -1, true
}

// fastHash computes the "×2" sortable hash of spec §4.5.3 step 1: the
// multiply-by-2 only bumps the exponent, preserving sort order, and
// exists solely to dodge a divide in the non-fast-path centroid
// computation (spec §9).
func fastHash(x, y float64) uint64 {
	xb := math.Float32bits(float32(2 * x))
	yb := math.Float32bits(float32(2 * y))

	return mortonHash64(xb, yb)
}

// bboxOrEmpty implements get_bbox_or_compute (spec §4.5.3 step 2): a
// record is empty iff this fails to produce a box. It tries, in order,
// the stored box, the peek-derivable shapes, and finally a full decode
// plus calculate_bbox for anything more complex.
func bboxOrEmpty(rec record.Serialized, f flags.Flags) (geom.BBox, bool) {
	if f.HasBBox() {
		box, err := record.ReadBBox(rec, f)
		if err == nil {
			return box, false
		}
	} else if box, ok := deriveBBox(rec, record.FixedHeaderSize, f); ok {
		return widenBBox(box), false
	}

	g, err := treecodec.Decode(rec, treecodec.DefaultConfig())
	if err != nil || g.IsEmpty() {
		return geom.BBox{}, true
	}

	if g.BBox != nil {
		return *g.BBox, false
	}

	box, ok := geom.CalculateBBox(g)
	if !ok {
		return geom.BBox{}, true
	}

	return box, false
}

// sortableHash implements the §4.5.3 step 4 centroid hash: Cartesian
// boxes interleave the bit patterns of the (undivided) coordinate sums;
// geodetic boxes normalize the geocentric centroid onto the unit sphere,
// convert to longitude/latitude, and interleave those instead. Per the
// spec §9 open question, the centroid here is not normalized before the
// sum (division by 2 is omitted, as in the Cartesian branch); this is
// safe because the subsequent sphere-normalization only depends on
// direction, which a uniform scale factor does not change.
func sortableHash(box geom.BBox, f flags.Flags) uint64 {
	if f.IsGeodetic() {
		cx := box.Min[0] + box.Max[0]
		cy := box.Min[1] + box.Max[1]
		cz := box.Min[2] + box.Max[2]

		lon, lat := geographicOf(cx, cy, cz)

		return mortonHash64(math.Float32bits(float32(lon)), math.Float32bits(float32(lat)))
	}

	x := box.Min[0] + box.Max[0]
	y := box.Min[1] + box.Max[1]

	return mortonHash64(math.Float32bits(float32(x)), math.Float32bits(float32(y)))
}

// geographicOf converts a geocentric point to (longitude, latitude) on
// the unit sphere. Behavior for a centroid near the antimeridian is not
// specially handled, matching the original mapping this is preserved
// for compatibility with (spec §9 open question).
func geographicOf(x, y, z float64) (lon, lat float64) {
	norm := math.Sqrt(x*x + y*y + z*z)
	if norm == 0 {
		return 0, 0
	}

	return math.Atan2(y/norm, x/norm), math.Asin(z / norm)
}

// tieBreakBBox implements the §4.5.3 step 5 tie-break ladder: xmin,
// ymin, xmax, ymax in order.
func tieBreakBBox(a, b geom.BBox) (int, bool) {
	if sign, ok := cmpFloat(a.Min[0], b.Min[0]); ok {
		return sign, true
	}
	if sign, ok := cmpFloat(a.Min[1], b.Min[1]); ok {
		return sign, true
	}
	if sign, ok := cmpFloat(a.Max[0], b.Max[0]); ok {
		return sign, true
	}
	if sign, ok := cmpFloat(a.Max[1], b.Max[1]); ok {
		return sign, true
	}

	return 0, false
}

func cmpFloat(x, y float64) (int, bool) {
	switch {
	case x < y:
		return -1, true
	case x > y:
		return 1, true
	default:
		return 0, false
	}
}
