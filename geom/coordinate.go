package geom

// Coordinate is a single point's ordinates, in X, Y, [Z], [M] order
// (spec §3.1). Its length is always 2, 3, or 4 and must match the owning
// geometry's flags.NDims(). A Coordinate returned from a decoded Geometry
// is a view over the record's backing array (spec §3.5); callers must not
// retain it past the record's lifetime without copying.
type Coordinate []float64

// X returns the first ordinate.
func (c Coordinate) X() float64 { return c[0] }

// Y returns the second ordinate.
func (c Coordinate) Y() float64 { return c[1] }

// Z returns the Z ordinate. Panics if the coordinate has no Z; callers
// should check against the owning geometry's flags first.
func (c Coordinate) Z(hasZ bool) float64 {
	if !hasZ {
		panic("geom: coordinate has no Z ordinate")
	}

	return c[2]
}

// M returns the M ordinate. Panics if the coordinate has no M; callers
// should check against the owning geometry's flags first.
func (c Coordinate) M(hasZ, hasM bool) float64 {
	if !hasM {
		panic("geom: coordinate has no M ordinate")
	}

	if hasZ {
		return c[3]
	}

	return c[2]
}

// Clone returns an owned copy of c, detached from any backing record.
func (c Coordinate) Clone() Coordinate {
	out := make(Coordinate, len(c))
	copy(out, c)

	return out
}

// Points is a flat, ndims-interleaved run of coordinates: a leaf
// geometry's body, or a single polygon ring. Indexing is in units of
// coordinates, not float64s; callers supply ndims (from the owning
// geometry's flags) since Points itself carries no dimensionality.
//
// A Points value produced by decode is a view (unsafe.Slice) over the
// record's backing array; one produced any other way owns its storage.
type Points []float64

// Len returns the number of coordinates packed into p, given ndims.
func (p Points) Len(ndims int) int {
	if ndims == 0 {
		return 0
	}

	return len(p) / ndims
}

// At returns the i-th coordinate as a view into p.
func (p Points) At(i, ndims int) Coordinate {
	return Coordinate(p[i*ndims : i*ndims+ndims])
}

// Clone returns an owned copy of p, detached from any backing record.
func (p Points) Clone() Points {
	out := make(Points, len(p))
	copy(out, p)

	return out
}
