package record

import "github.com/geocodec/gserial/flags"

// Serialized is an immutable, single-owner wire record (spec §3.2, §3.5):
// header, optional bbox, and a tagged geometry body. It is typically the
// database page buffer itself, or a freshly allocated buffer produced by
// Encode.
//
// A Serialized value never copies on construction from an existing
// buffer — treecodec.Decode borrows its bytes for a decoded Geometry's
// ordinate views, so the buffer must outlive every Geometry decoded from
// it.
type Serialized []byte

// Bytes returns the record's raw bytes.
func (s Serialized) Bytes() []byte { return []byte(s) }

// Size returns the record's declared total length (the size word at
// offset 0, varlen bits stripped).
func (s Serialized) Size() uint32 { return Size(s) }

// Flags returns the record's flag byte.
func (s Serialized) Flags() flags.Flags { return Flags(s) }

// SRID returns the record's spatial reference identifier.
func (s Serialized) SRID() int32 { return SRID(s) }

// HeaderSize returns this record's header_size(): 8 bytes, plus a bbox if
// one is present.
func (s Serialized) HeaderSize() int { return HeaderSize(s.Flags()) }

// Body returns the bytes following the header: the tagged geometry body
// (spec §3.4).
func (s Serialized) Body() []byte { return s[s.HeaderSize():s.Size()] }
