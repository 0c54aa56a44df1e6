package geom

// BBox is the double-precision axis-aligned bounding box cached on a
// Geometry (spec §3.1) or produced by the calculate_bbox collaborator
// (spec §6). Min/Max hold X, Y, and, when present, Z and M; a geodetic
// box instead carries geocentric X, Y, Z in those same three slots
// (spec §3.3) and ignores M entirely.
//
// record.WriteBBox narrows a BBox to the 32-bit, directed-rounding wire
// representation; this type always stays at double precision.
type BBox struct {
	Min, Max Coordinate
}

// NewBBox builds a BBox from flat min/max ordinate slices. len(min) and
// len(max) must equal ndims.
func NewBBox(min, max []float64) BBox {
	return BBox{Min: Coordinate(min), Max: Coordinate(max)}
}

// Union returns the smallest BBox containing both b and other. Panics if
// their dimensionality differs.
func (b BBox) Union(other BBox) BBox {
	if len(b.Min) != len(other.Min) {
		panic("geom: BBox.Union dimensionality mismatch")
	}

	min := make([]float64, len(b.Min))
	max := make([]float64, len(b.Max))
	for i := range min {
		min[i] = minFloat(b.Min[i], other.Min[i])
		max[i] = maxFloat(b.Max[i], other.Max[i])
	}

	return NewBBox(min, max)
}

// Contains reports whether c lies within b on every axis, inclusive.
func (b BBox) Contains(c Coordinate) bool {
	for i := range c {
		if i >= len(b.Min) {
			return false
		}
		if c[i] < b.Min[i] || c[i] > b.Max[i] {
			return false
		}
	}

	return true
}

// Centroid returns the midpoint of b on each axis.
func (b BBox) Centroid() Coordinate {
	out := make(Coordinate, len(b.Min))
	for i := range out {
		out[i] = (b.Min[i] + b.Max[i]) / 2
	}

	return out
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}

	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}

	return b
}

// NeedsBBox is the default needs_bbox collaborator (spec §4.3, §6): every
// kind except Point benefits from an inlined bbox, and an empty geometry
// never does because it has no coordinates to bound.
func NeedsBBox(g *Geometry) bool {
	if g.Kind == Point {
		return false
	}

	return !g.IsEmpty()
}
