// Package treecodec implements the tree serializer and deserializer (spec
// §4.3, §4.4): walking an in-memory geom.Geometry to or from its body
// bytes (spec §3.4).
//
// It plays the role the teacher's encoding package plays for
// NumericEncoder/NumericDecoder: small per-shape read/write routines
// driven by a single endian.EndianEngine, with the collaborator hooks of
// spec §6 threaded through as a Config rather than baked in as package
// globals, so the root gserial package can expose them as options.
package treecodec

import (
	"github.com/geocodec/gserial/geom"
	"github.com/geocodec/gserial/internal/pool"
	"github.com/geocodec/gserial/record"
)

// Allocator is the encode-time memory hook (spec §6): Encode asks it for a
// buffer of at least size bytes and writes the record into buf[:size].
type Allocator interface {
	Alloc(size int) []byte
}

// PoolAllocator adapts a pool.ByteBufferPool into an Allocator. Buffers
// drawn from the pool are not returned to it automatically: a Serialized
// record is single-owner (spec §3.5), and the pool has no way to know
// when the caller is done with it.
type PoolAllocator struct {
	pool *pool.ByteBufferPool
}

// NewPoolAllocator wraps p as an Allocator.
func NewPoolAllocator(p *pool.ByteBufferPool) *PoolAllocator {
	return &PoolAllocator{pool: p}
}

// Alloc draws a buffer from the pool and extends it to exactly size bytes.
func (a *PoolAllocator) Alloc(size int) []byte {
	bb := a.pool.Get()
	bb.Grow(size)
	bb.B = bb.B[:size]

	return bb.B
}

var defaultAllocator Allocator = NewPoolAllocator(pool.NewByteBufferPool(pool.RecordBufferDefaultSize, pool.RecordBufferMaxThreshold))

// Config bundles the external collaborators of spec §6 that Encode and
// Decode need: the bbox calculator, the needs-bbox policy, the
// collection-membership rule, the allocator, and the two reporter sinks.
type Config struct {
	CalculateBBox func(*geom.Geometry) (geom.BBox, bool)
	NeedsBBox     func(*geom.Geometry) bool
	AllowsSubtype func(parent, child geom.Kind) bool
	Allocator     Allocator

	// Notify is the notice_reporter hook (spec §6): invoked for
	// non-fatal diagnostics such as an SRID clamp.
	Notify record.Notifier
	// ReportError is the error_reporter hook (spec §6): invoked just
	// before a fatal error is returned.
	ReportError record.Notifier
}

// DefaultConfig returns the Config used when a caller supplies no
// collaborator overrides: geom's pure default calculate_bbox,
// needs_bbox, and allows_subtype implementations, and the package's
// pooled Allocator.
func DefaultConfig() Config {
	return Config{
		CalculateBBox: geom.CalculateBBox,
		NeedsBBox:     geom.NeedsBBox,
		AllowsSubtype: geom.AllowsSubtype,
		Allocator:     defaultAllocator,
	}
}

func (c Config) reportError(format string, args ...any) {
	if c.ReportError != nil {
		c.ReportError(format, args...)
	}
}
