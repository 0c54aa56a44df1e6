package record

import (
	"github.com/geocodec/gserial/endian"
	"github.com/geocodec/gserial/errs"
	"github.com/geocodec/gserial/flags"
)

// Flags reads the one-byte flag word at record[FlagsOffset] (spec §3.2,
// §4.1). Callers must have already bounds-checked data; use ParseHeader
// for a checked read.
func Flags(data []byte) flags.Flags {
	return flags.Flags(data[FlagsOffset])
}

// SRID reads the record's spatial reference identifier (spec §4.1).
func SRID(data []byte) int32 {
	return ReadSRID(data)
}

// Size returns the record's total byte length, decoded from the size word
// at offset 0: the low 2 varlen bits (spec §3.2, §6) belong to the
// surrounding storage system and are stripped here.
func Size(data []byte) uint32 {
	return endian.HostEngine().Uint32(data[SizeAndVarlenOffset:SizeAndVarlenOffset+SizeAndVarlenSize]) >> varlenBits
}

// HeaderSize returns header_size(record) (spec §4.1): the fixed 8-byte
// header, plus BBoxSize(f) if f's bbox bit is set.
func HeaderSize(f flags.Flags) int {
	if f.HasBBox() {
		return FixedHeaderSize + BBoxSize(f)
	}

	return FixedHeaderSize
}

// MaxHeaderSize returns max_header_size(): the header size for the
// largest possible bbox (4D Cartesian).
func MaxHeaderSize() int {
	return MaxPossibleHeaderSize
}

// ParseHeader validates and decodes the fixed 8-byte header prefix of
// data, returning the total record size, the flag word, and the SRID.
// It does not read any bbox; callers check Flags().HasBBox() and call
// ReadBBox separately.
func ParseHeader(data []byte) (size uint32, f flags.Flags, srid int32, err error) {
	if len(data) < FixedHeaderSize {
		return 0, 0, 0, errs.ErrTruncatedRecord
	}

	return Size(data), Flags(data), SRID(data), nil
}

// WriteHeader writes the fixed 8-byte header into out[:8]: the size word
// (totalSize<<2, varlen bits left zero for the storage layer to set), the
// clamped SRID, and the flag byte. Returns the clamped SRID actually
// written.
func WriteHeader(out []byte, totalSize uint32, f flags.Flags, srid int32, notify Notifier) int32 {
	endian.HostEngine().PutUint32(out[SizeAndVarlenOffset:SizeAndVarlenOffset+SizeAndVarlenSize], totalSize<<varlenBits)
	clamped := WriteSRID(out, srid, notify)
	out[FlagsOffset] = byte(f)

	return clamped
}
