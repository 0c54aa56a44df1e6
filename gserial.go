// Package gserial implements a bidirectional binary codec between an
// in-memory geometry tree and a compact serialized record, grounded on
// PostGIS's GSERIALIZED wire format (spec §1-§5).
//
// # Core Features
//
//   - Fixed 8-byte header: total size, bit-packed flags, 21-bit SRID
//   - Zero-copy deserialization over the record's backing array
//   - Directed-rounding bbox storage (mins rounded down, maxes rounded up,
//     so the stored float32 box contains the exact one)
//   - Peek helpers that read a bbox or a first point without a full Decode
//   - A Compare usable directly as a database B-tree comparator
//
// # Basic Usage
//
//	import "github.com/geocodec/gserial"
//
//	g := geom.NewPoint(geom.Coordinate{-122.4, 37.8}, 0, 4326)
//	rec, err := gserial.Encode(g)
//	if err != nil {
//	    // handle error
//	}
//
//	back, err := gserial.Decode(rec)
//	if err != nil {
//	    // handle error
//	}
//
// Peek helpers avoid a full Decode when only a bbox or first point is
// needed; Compare decodes only when neither record stores or peeks a bbox:
//
//	box, err := gserial.PeekBBox(rec)
//	pt, err := gserial.PeekFirstPoint(rec)
//	sign, err := gserial.Compare(recA, recB)
package gserial

import (
	"github.com/geocodec/gserial/geom"
	"github.com/geocodec/gserial/internal/options"
	"github.com/geocodec/gserial/internal/peek"
	"github.com/geocodec/gserial/internal/treecodec"
	"github.com/geocodec/gserial/record"
)

// Encode serializes g into its wire-format record (spec §3), applying
// any collaborator overrides in opts on top of treecodec.DefaultConfig.
func Encode(g *geom.Geometry, opts ...EncodeOption) (record.Serialized, error) {
	cfg := treecodec.DefaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return treecodec.Encode(g, cfg)
}

// Decode parses rec back into a geometry tree (spec §4), applying any
// collaborator overrides in opts on top of treecodec.DefaultConfig.
func Decode(rec record.Serialized, opts ...EncodeOption) (*geom.Geometry, error) {
	cfg := treecodec.DefaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return treecodec.Decode(rec, cfg)
}

// PeekBBox reads rec's bounding box without a full Decode (spec §4.5.1):
// the stored box if present, else one derived from a small set of
// trivial shapes, else an error.
func PeekBBox(rec record.Serialized) (geom.BBox, error) {
	return peek.BBox(rec)
}

// PeekFirstPoint reads rec's first coordinate without a full Decode
// (spec §4.5.2).
func PeekFirstPoint(rec record.Serialized) (geom.Coordinate, error) {
	return peek.FirstPoint(rec)
}

// Compare orders two records (spec §4.5.3): reflexive, antisymmetric,
// and transitive, so it is safe to use directly as a database B-tree
// comparator.
func Compare(a, b record.Serialized) (int, error) {
	return peek.Compare(a, b)
}
