// Package flags defines the one-byte geometry flag word shared by the geom
// and record packages (spec §3.2): Z, M, bbox-present, geodetic, readonly,
// solid, and extended bits, plus the derived dimensionality they imply.
//
// It plays the same zero-dependency, pure-enum role the teacher's format
// package plays for encoding/compression type bytes: both geom (the
// in-memory tree) and record (the wire codec) import flags rather than
// one importing the other.
package flags

// Flags is the packed one-byte geometry descriptor. Bit order is LSB
// first: Z, M, bbox, geodetic, readonly, solid, extended, reserved.
type Flags uint8

const (
	Z        Flags = 1 << 0
	M        Flags = 1 << 1
	BBox     Flags = 1 << 2
	Geodetic Flags = 1 << 3
	ReadOnly Flags = 1 << 4
	Solid    Flags = 1 << 5
	Extended Flags = 1 << 6
	reserved Flags = 1 << 7
)

// HasZ reports whether the Z ordinate is present.
func (f Flags) HasZ() bool { return f&Z != 0 }

// HasM reports whether the M ordinate is present.
func (f Flags) HasM() bool { return f&M != 0 }

// HasBBox reports whether a bounding box is (or should be) inlined.
func (f Flags) HasBBox() bool { return f&BBox != 0 }

// IsGeodetic reports whether coordinates are geographic (lon/lat[/height])
// rather than Cartesian.
func (f Flags) IsGeodetic() bool { return f&Geodetic != 0 }

// IsReadOnly reports the readonly bit. The codec round-trips it but never
// interprets it.
func (f Flags) IsReadOnly() bool { return f&ReadOnly != 0 }

// IsSolid reports the solid bit. Per spec §9 it plays no role in the codec
// contract; it is surfaced opaquely and round-tripped on encode.
func (f Flags) IsSolid() bool { return f&Solid != 0 }

// IsExtended reports the type-extension bit, reserved for a future wider
// type-tag space. The codec round-trips it but does not interpret it.
func (f Flags) IsExtended() bool { return f&Extended != 0 }

// NDims returns the number of ordinates per coordinate: 2, plus 1 for Z,
// plus 1 for M.
func (f Flags) NDims() int {
	n := 2
	if f.HasZ() {
		n++
	}
	if f.HasM() {
		n++
	}

	return n
}

// WithZ returns f with the Z bit set to on.
func (f Flags) WithZ(on bool) Flags { return f.set(Z, on) }

// WithM returns f with the M bit set to on.
func (f Flags) WithM(on bool) Flags { return f.set(M, on) }

// WithBBox returns f with the bbox-present bit set to on.
func (f Flags) WithBBox(on bool) Flags { return f.set(BBox, on) }

// WithGeodetic returns f with the geodetic bit set to on.
func (f Flags) WithGeodetic(on bool) Flags { return f.set(Geodetic, on) }

// WithReadOnly returns f with the readonly bit set to on.
func (f Flags) WithReadOnly(on bool) Flags { return f.set(ReadOnly, on) }

// WithSolid returns f with the solid bit set to on.
func (f Flags) WithSolid(on bool) Flags { return f.set(Solid, on) }

// WithExtended returns f with the extended bit set to on.
func (f Flags) WithExtended(on bool) Flags { return f.set(Extended, on) }

func (f Flags) set(bit Flags, on bool) Flags {
	if on {
		return f | bit
	}

	return f &^ bit
}
