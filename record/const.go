// Package record implements the wire layout described in spec §3.2–§3.4:
// the fixed 8-byte header, the 21-bit SRID codec, the optional inlined
// bounding box, and the Serialized record type the rest of the codec
// (internal/treecodec, internal/peek) operates on.
//
// It mirrors the teacher's section package (NumericHeader/NumericFlag):
// small, pure, byte-slice-in/byte-slice-out functions, validated on parse,
// driven by a single endian.EndianEngine.
package record

// Fixed byte offsets within the record, per spec §3.2.
const (
	SizeAndVarlenOffset = 0
	SizeAndVarlenSize   = 4
	SRIDOffset          = 4
	SRIDSize            = 3
	FlagsOffset         = 7
	FlagsSize           = 1

	// FixedHeaderSize is the fixed portion of the header, before any bbox.
	FixedHeaderSize = 8

	// varlenBits is the number of low bits of the size word reserved for
	// the host storage system's own varlen flags (spec §3.2, §6); the
	// codec writes size<<2 and never interprets these bits itself.
	varlenBits = 2
)

// SRID range constants (spec §3.2), matching liblwgeom's clamp_srid.
const (
	// SRIDUnknown is the sentinel meaning "no spatial reference assigned".
	SRIDUnknown int32 = 0
	// SRIDMaximum is the largest SRID the 21-bit field can portably carry
	// without folding into the user range.
	SRIDMaximum int32 = 999999
	// SRIDUserMaximum is the largest SRID reserved for user-defined
	// spatial reference systems; values above SRIDMaximum are folded back
	// into (SRIDUserMaximum, SRIDMaximum].
	SRIDUserMaximum int32 = 998999
)

// Bounding-box sizes (spec §3.3), in bytes, as 32-bit floats.
const (
	// GeodeticBBoxSize is the fixed size of a geodetic bbox: geocentric
	// xmin,xmax,ymin,ymax,zmin,zmax. The M bit is ignored for geodetic
	// boxes.
	GeodeticBBoxSize = 24
	// MaxBBoxSize is the largest possible non-geodetic bbox: 4 dims * 2
	// (min/max) * 4 bytes.
	MaxBBoxSize = 2 * 4 * 4

	// MaxPossibleHeaderSize is header_size() at its largest: fixed header
	// plus the biggest possible bbox.
	MaxPossibleHeaderSize = FixedHeaderSize + MaxBBoxSize
)
