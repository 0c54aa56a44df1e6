// Package peek implements the byte-level peek and compare operations of
// spec §4.5: deriving a bounding box or first coordinate without
// constructing a geom.Geometry, and a total order over Serialized records
// suitable as a database B-tree comparator.
//
// It mirrors the teacher's internal/hash package's role (a small, pure,
// allocation-free helper used by a hot comparison path) even though the
// concrete algorithm — Morton bit-interleaving over a centroid — has no
// analogue in the teacher; the interleave itself is grounded directly on
// spec §4.5.3's five-step shift-and-mask description.
package peek

// interleave performs the standard 32+32 -> 64 bit Morton spread (spec
// §4.5.3): even bits of the result come from x, odd bits from y.
func interleave(x, y uint32) uint64 {
	return spread(x) | (spread(y) << 1)
}

// spread takes the low 32 bits of v and inserts a zero bit after each
// one, producing a 64-bit value with v's bits in the even positions.
func spread(v uint32) uint64 {
	x := uint64(v)
	x = (x | (x << 16)) & 0x0000FFFF0000FFFF
	x = (x | (x << 8)) & 0x00FF00FF00FF00FF
	x = (x | (x << 4)) & 0x0F0F0F0F0F0F0F0F
	x = (x | (x << 2)) & 0x3333333333333333
	x = (x | (x << 1)) & 0x5555555555555555

	return x
}

// mortonHash64 interleaves xBits and yBits, the 32-bit IEEE-754 bit
// patterns, per the "fast path" and "centroid hash" steps of spec
// §4.5.3. Bit patterns here are expected to already be reduced to 32
// bits by the caller (truncating a float64's bits loses precision but
// preserves the sortable exponent+mantissa-prefix ordering needed for a
// locality key, not an exact comparison).
func mortonHash64(xBits, yBits uint32) uint64 {
	return interleave(xBits, yBits)
}
