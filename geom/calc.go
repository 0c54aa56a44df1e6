package geom

import "math"

// CalculateBBox is the default calculate_bbox collaborator (spec §6): a
// pure recursive min/max walk over g's coordinates. The geometric algebra
// library itself stays out of this codec's scope (spec §1); this default
// exists only so the round-trip properties in spec §8 are runnable
// without a caller-supplied calculator, and remains fully overridable via
// WithBBoxCalculator (see the root gserial package).
//
// Returns ok=false for an empty geometry, which has no coordinates to
// bound.
func CalculateBBox(g *Geometry) (BBox, bool) {
	ndims := g.NDims()

	// A geodetic bbox always carries exactly 3 (geocentric X,Y,Z) axes,
	// regardless of whether the M bit is set on the coordinates
	// themselves (spec §3.3); the mapping from geodetic coordinates to
	// geocentric XYZ is the external geometric algebra this codec does
	// not implement (spec §1), so this default simply bounds the first
	// min(ndims,3) ordinates as-is.
	axes := ndims
	if g.Flags.IsGeodetic() && axes > 3 {
		axes = 3
	}

	min := make([]float64, axes)
	max := make([]float64, axes)
	for i := range min {
		min[i] = math.Inf(1)
		max[i] = math.Inf(-1)
	}

	found := false
	walkBBox(g, ndims, min, max, &found)
	if !found {
		return BBox{}, false
	}

	return NewBBox(min, max), true
}

func walkBBox(g *Geometry, ndims int, min, max []float64, found *bool) {
	switch {
	case g.Kind.IsLeaf():
		n := g.Points.Len(ndims)
		for i := 0; i < n; i++ {
			c := g.Points.At(i, ndims)
			accumulate(c, min, max)
			*found = true
		}
	case g.Kind.IsPolygon():
		for _, ring := range g.Rings {
			n := ring.Len(ndims)
			for i := 0; i < n; i++ {
				c := ring.At(i, ndims)
				accumulate(c, min, max)
				*found = true
			}
		}
	default:
		for _, child := range g.Children {
			walkBBox(child, ndims, min, max, found)
		}
	}
}

func accumulate(c Coordinate, min, max []float64) {
	for i := range min {
		if c[i] < min[i] {
			min[i] = c[i]
		}
		if c[i] > max[i] {
			max[i] = c[i]
		}
	}
}
