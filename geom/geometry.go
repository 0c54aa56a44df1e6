// Package geom is the in-memory geometry tree (spec §3.1): a tagged
// variant over fifteen kinds, independent of how it is serialized.
//
// It follows the teacher's "shared header embedded in the concrete type"
// shape (compare section.NumericHeader embedded by reference into every
// blob) and the pack's devork/twkb Hdr-embedding pattern, collapsed into
// a single struct because the codec (internal/treecodec, internal/peek)
// must dispatch on Kind at runtime, not on fifteen distinct Go types.
package geom

import "github.com/geocodec/gserial/flags"

// SRIDUnknown is the sentinel SRID meaning "no spatial reference
// assigned" (spec §3.2). It is what a stored zero decodes to.
const SRIDUnknown int32 = 0

// Geometry is the tagged variant described by spec §3.1. Exactly one of
// the three payload shapes is populated, selected by Kind:
//
//   - Kind.IsLeaf(): Points holds a flat, ndims-interleaved coordinate run.
//   - Kind.IsPolygon(): Rings holds one Points per ring.
//   - Kind.IsCollection(): Children holds the child geometries.
type Geometry struct {
	Kind  Kind
	Flags flags.Flags
	SRID  int32
	BBox  *BBox // nil if no box is cached

	Points   Points      // leaf kinds only
	Rings    []Points    // Polygon only
	Children []*Geometry // collection kinds only
}

// NDims returns the geometry's ordinates per coordinate (2, 3, or 4).
func (g *Geometry) NDims() int {
	return g.Flags.NDims()
}

// IsEmpty reports whether g carries zero coordinates (a leaf with no
// points, a polygon with no rings, or a collection with no children).
// Spec §3.1: "a Point with zero coordinates is the canonical empty point."
func (g *Geometry) IsEmpty() bool {
	switch {
	case g.Kind.IsLeaf():
		return g.Points.Len(g.NDims()) == 0
	case g.Kind.IsPolygon():
		return len(g.Rings) == 0
	default:
		return len(g.Children) == 0
	}
}

// NewPoint builds a Point geometry from a single coordinate. Pass a nil
// or empty coord to build the canonical empty point.
func NewPoint(coord Coordinate, f flags.Flags, srid int32) *Geometry {
	g := &Geometry{Kind: Point, Flags: f, SRID: srid}
	if len(coord) > 0 {
		g.Points = Points(coord.Clone())
	}

	return g
}

// NewLeaf builds a leaf geometry (LineString, CircularString, or
// Triangle) from a flat, ndims-interleaved coordinate run. points must
// already be a multiple of f.NDims().
func NewLeaf(kind Kind, points Points, f flags.Flags, srid int32) *Geometry {
	if !kind.IsLeaf() {
		panic("geom: NewLeaf called with non-leaf kind " + kind.String())
	}

	return &Geometry{Kind: kind, Flags: f, SRID: srid, Points: points}
}

// NewPolygon builds a Polygon from its rings, each a flat coordinate run.
func NewPolygon(rings []Points, f flags.Flags, srid int32) *Geometry {
	return &Geometry{Kind: Polygon, Flags: f, SRID: srid, Rings: rings}
}

// NewCollection builds a collection geometry (MultiPoint, MultiLineString,
// MultiPolygon, GeometryCollection, CompoundCurve, CurvePolygon,
// MultiCurve, MultiSurface, PolyhedralSurface, or Tin) from its children.
//
// It validates membership via AllowsSubtype and panics on violation: this
// constructor is for building geometries programmatically, where a
// caller-side bug should fail loudly. Decode (spec §4.4) performs the same
// check but returns errs.ErrSubtypeNotAllowed instead, since there the
// input is untrusted bytes, not caller-constructed values.
func NewCollection(kind Kind, children []*Geometry, f flags.Flags, srid int32) *Geometry {
	if !kind.IsCollection() {
		panic("geom: NewCollection called with non-collection kind " + kind.String())
	}

	for _, child := range children {
		if !AllowsSubtype(kind, child.Kind) {
			panic("geom: " + kind.String() + " does not admit child kind " + child.Kind.String())
		}
	}

	return &Geometry{Kind: kind, Flags: f, SRID: srid, Children: children}
}

// WithBBox returns g with its cached bbox replaced (or cleared, if box is
// nil), also toggling the flags.BBox bit to match. Does not mutate g.
func (g *Geometry) WithBBox(box *BBox) *Geometry {
	out := *g
	out.BBox = box
	out.Flags = g.Flags.WithBBox(box != nil)

	return &out
}
