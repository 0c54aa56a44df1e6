package treecodec

import (
	"unsafe"

	"github.com/geocodec/gserial/endian"
	"github.com/geocodec/gserial/errs"
	"github.com/geocodec/gserial/flags"
	"github.com/geocodec/gserial/geom"
	"github.com/geocodec/gserial/record"
)

// Decode implements decode(record) -> Geometry (spec §4.4). The returned
// Geometry's coordinate arrays are views into rec (spec §3.5); rec must
// outlive every Geometry decoded from it.
func Decode(rec record.Serialized, cfg Config) (*geom.Geometry, error) {
	_, f, srid, err := record.ParseHeader(rec)
	if err != nil {
		cfg.reportError("gserial: decode: %v", err)
		return nil, err
	}

	offset := record.FixedHeaderSize

	var box *geom.BBox
	if f.HasBBox() {
		b, err := record.ReadBBox(rec, f)
		if err != nil {
			cfg.reportError("gserial: decode: %v", err)
			return nil, err
		}
		box = &b
		offset += record.BBoxSize(f)
	}

	engine := endian.HostEngine()
	ndims := f.NDims()

	root, _, err := readBody(rec, offset, f, ndims, engine, cfg)
	if err != nil {
		cfg.reportError("gserial: decode: %v", err)
		return nil, err
	}
	root.SRID = srid

	if box != nil {
		root.BBox = box
	} else if cfg.NeedsBBox != nil && cfg.NeedsBBox(root) {
		if b, ok := cfg.CalculateBBox(root); ok {
			root.BBox = &b
		}
	}

	return root, nil
}

// readBody decodes one body node starting at offset, returning the node
// and the offset immediately past it. Every read is bounds-checked
// against len(data) first (spec §4.4's "detected by bounds-checking every
// read, not by trusting the record length").
func readBody(data []byte, offset int, f flags.Flags, ndims int, engine endian.EndianEngine, cfg Config) (*geom.Geometry, int, error) {
	if len(data) < offset+8 {
		return nil, 0, errs.ErrTruncatedRecord
	}

	kind := geom.Kind(engine.Uint32(data[offset : offset+4]))
	if !kind.Valid() {
		return nil, 0, errs.ErrUnknownType
	}
	count := int(engine.Uint32(data[offset+4 : offset+8]))
	offset += 8

	switch {
	case kind.IsLeaf():
		need := count * ndims * 8
		if len(data) < offset+need {
			return nil, 0, errs.ErrTruncatedRecord
		}

		points := viewPoints(data[offset : offset+need])
		offset += need

		return &geom.Geometry{Kind: kind, Flags: f, Points: points}, offset, nil

	case kind.IsPolygon():
		if len(data) < offset+4*count {
			return nil, 0, errs.ErrTruncatedRecord
		}

		ringLens := make([]int, count)
		for i := range ringLens {
			ringLens[i] = int(engine.Uint32(data[offset : offset+4]))
			offset += 4
		}
		if count%2 == 1 {
			if len(data) < offset+4 {
				return nil, 0, errs.ErrTruncatedRecord
			}
			offset += 4 // alignment padding
		}

		rings := make([]geom.Points, count)
		for i, rl := range ringLens {
			need := rl * ndims * 8
			if len(data) < offset+need {
				return nil, 0, errs.ErrTruncatedRecord
			}
			rings[i] = viewPoints(data[offset : offset+need])
			offset += need
		}

		return &geom.Geometry{Kind: kind, Flags: f, Rings: rings}, offset, nil

	default: // collection
		childFlags := f.WithBBox(false)
		children := make([]*geom.Geometry, 0, count)

		for i := 0; i < count; i++ {
			if len(data) < offset+4 {
				return nil, 0, errs.ErrTruncatedRecord
			}
			childKind := geom.Kind(engine.Uint32(data[offset : offset+4]))
			if !childKind.Valid() {
				return nil, 0, errs.ErrUnknownType
			}
			if cfg.AllowsSubtype != nil && !cfg.AllowsSubtype(kind, childKind) {
				return nil, 0, errs.ErrSubtypeNotAllowed
			}

			child, next, err := readBody(data, offset, childFlags, ndims, engine, cfg)
			if err != nil {
				return nil, 0, err
			}
			children = append(children, child)
			offset = next
		}

		return &geom.Geometry{Kind: kind, Flags: f, Children: children}, offset, nil
	}
}

// viewPoints reinterprets an 8-byte-aligned run of host-endian float64
// bytes as a geom.Points view, with no copy (spec §3.5), the same way the
// teacher's encoding.unsafeDecodeFloat64Slice casts a numeric column's raw
// bytes to a []float64.
func viewPoints(data []byte) geom.Points {
	n := len(data) / 8
	if n == 0 {
		return geom.Points{}
	}

	ptr := (*float64)(unsafe.Pointer(&data[0]))

	return geom.Points(unsafe.Slice(ptr, n))
}
