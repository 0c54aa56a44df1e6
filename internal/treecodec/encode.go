package treecodec

import (
	"math"

	"github.com/geocodec/gserial/endian"
	"github.com/geocodec/gserial/errs"
	"github.com/geocodec/gserial/flags"
	"github.com/geocodec/gserial/geom"
	"github.com/geocodec/gserial/record"
)

// SizeOf computes size_of(geom) (spec §4.3): the exact encoded size by
// recursive descent over the body, plus the fixed header, plus a bbox if
// one will be emitted under cfg's needs-bbox policy.
func SizeOf(g *geom.Geometry, cfg Config) (int, error) {
	bodySize, err := bodySizeOf(g, g.Flags)
	if err != nil {
		return 0, err
	}

	size := record.FixedHeaderSize + bodySize
	if hasBBox(g, cfg) {
		size += record.BBoxSize(g.Flags.WithBBox(true))
	}

	return size, nil
}

func hasBBox(g *geom.Geometry, cfg Config) bool {
	return g.BBox != nil || (cfg.NeedsBBox != nil && cfg.NeedsBBox(g))
}

// bodySizeOf recursively measures a node's body (spec §3.4), validating
// along the way that every descendant's Z/M bits equal the root's
// (spec §3.1's "mixing triggers a serialization error" invariant) and
// that each coordinate run's length is an exact multiple of ndims.
func bodySizeOf(g *geom.Geometry, rootFlags flags.Flags) (int, error) {
	if g.Flags&(flags.Z|flags.M) != rootFlags&(flags.Z|flags.M) {
		return 0, errs.ErrDimensionMismatch
	}

	ndims := rootFlags.NDims()

	switch {
	case g.Kind.IsLeaf():
		n := g.Points.Len(ndims)
		if n*ndims != len(g.Points) {
			return 0, errs.ErrDimensionMismatch
		}

		return 8 + 8*n*ndims, nil

	case g.Kind.IsPolygon():
		nrings := len(g.Rings)
		size := 8 + 4*nrings
		if nrings%2 == 1 {
			size += 4 // alignment padding
		}

		for _, ring := range g.Rings {
			n := ring.Len(ndims)
			if n*ndims != len(ring) {
				return 0, errs.ErrDimensionMismatch
			}
			size += 8 * n * ndims
		}

		return size, nil

	default: // collection
		size := 8
		for _, child := range g.Children {
			childSize, err := bodySizeOf(child, rootFlags)
			if err != nil {
				return 0, err
			}
			size += childSize
		}

		return size, nil
	}
}

// Encode implements encode(geom) -> Serialized (spec §4.3).
func Encode(g *geom.Geometry, cfg Config) (record.Serialized, error) {
	box := g.BBox
	if box == nil && cfg.NeedsBBox != nil && cfg.NeedsBBox(g) {
		if b, ok := cfg.CalculateBBox(g); ok {
			box = &b
		}
	}

	f := g.Flags.WithBBox(box != nil)

	bodySize, err := bodySizeOf(g, g.Flags)
	if err != nil {
		cfg.reportError("gserial: encode: %v", err)
		return nil, err
	}

	total := record.FixedHeaderSize + bodySize
	if box != nil {
		total += record.BBoxSize(f)
	}

	alloc := cfg.Allocator
	if alloc == nil {
		alloc = defaultAllocator
	}
	buf := alloc.Alloc(total)

	record.WriteHeader(buf, uint32(total), f, g.SRID, cfg.Notify)

	offset := record.FixedHeaderSize
	if box != nil {
		offset += record.WriteBBox(*box, buf, f)
	}

	engine := endian.HostEngine()
	ndims := g.Flags.NDims()
	written := writeBody(buf, offset, g, ndims, engine)

	if written != total {
		err := errs.ErrSizeMismatch
		cfg.reportError("gserial: encode: %v", err)
		return nil, err
	}

	return record.Serialized(buf), nil
}

func writeBody(buf []byte, offset int, g *geom.Geometry, ndims int, engine endian.EndianEngine) int {
	switch {
	case g.Kind.IsLeaf():
		n := g.Points.Len(ndims)
		engine.PutUint32(buf[offset:offset+4], uint32(g.Kind))
		engine.PutUint32(buf[offset+4:offset+8], uint32(n))
		offset += 8
		offset = writeOrdinates(buf, offset, g.Points, engine)

		return offset

	case g.Kind.IsPolygon():
		engine.PutUint32(buf[offset:offset+4], uint32(geom.Polygon))
		nrings := len(g.Rings)
		engine.PutUint32(buf[offset+4:offset+8], uint32(nrings))
		offset += 8

		for _, ring := range g.Rings {
			engine.PutUint32(buf[offset:offset+4], uint32(ring.Len(ndims)))
			offset += 4
		}
		if nrings%2 == 1 {
			engine.PutUint32(buf[offset:offset+4], 0)
			offset += 4
		}

		for _, ring := range g.Rings {
			offset = writeOrdinates(buf, offset, ring, engine)
		}

		return offset

	default: // collection
		engine.PutUint32(buf[offset:offset+4], uint32(g.Kind))
		engine.PutUint32(buf[offset+4:offset+8], uint32(len(g.Children)))
		offset += 8

		for _, child := range g.Children {
			offset = writeBody(buf, offset, child, ndims, engine)
		}

		return offset
	}
}

func writeOrdinates(buf []byte, offset int, points geom.Points, engine endian.EndianEngine) int {
	for _, v := range points {
		engine.PutUint64(buf[offset:offset+8], math.Float64bits(v))
		offset += 8
	}

	return offset
}
