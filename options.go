package gserial

import (
	"github.com/geocodec/gserial/geom"
	"github.com/geocodec/gserial/internal/options"
	"github.com/geocodec/gserial/internal/treecodec"
	"github.com/geocodec/gserial/record"
)

// EncodeOption configures Encode and Decode's collaborator hooks (spec
// §6): the bbox calculator, the needs-bbox policy, the collection
// membership rule, the allocator, and the two reporter sinks. It mirrors
// the teacher's blob.NumericEncoderOption: a type alias over the generic
// options.Option, specialized to treecodec.Config.
type EncodeOption = options.Option[*treecodec.Config]

// WithBBoxCalculator overrides the default calculate_bbox collaborator.
// The geometric algebra it implements stays outside this codec's scope
// (spec §1); this lets a caller supply one without touching the codec.
func WithBBoxCalculator(fn func(*geom.Geometry) (geom.BBox, bool)) EncodeOption {
	return options.NoError(func(c *treecodec.Config) {
		c.CalculateBBox = fn
	})
}

// WithNeedsBBoxPolicy overrides the default needs_bbox collaborator.
func WithNeedsBBoxPolicy(fn func(*geom.Geometry) bool) EncodeOption {
	return options.NoError(func(c *treecodec.Config) {
		c.NeedsBBox = fn
	})
}

// WithSubtypePolicy overrides the default allows_subtype collaborator
// consulted by Decode when walking a collection's children.
func WithSubtypePolicy(fn func(parent, child geom.Kind) bool) EncodeOption {
	return options.NoError(func(c *treecodec.Config) {
		c.AllowsSubtype = fn
	})
}

// WithAllocator overrides the default pooled Allocator Encode draws its
// output buffer from.
func WithAllocator(a treecodec.Allocator) EncodeOption {
	return options.NoError(func(c *treecodec.Config) {
		c.Allocator = a
	})
}

// WithNoticeReporter sets the notice_reporter sink (spec §6): invoked for
// non-fatal diagnostics such as an out-of-range SRID being clamped.
func WithNoticeReporter(fn record.Notifier) EncodeOption {
	return options.NoError(func(c *treecodec.Config) {
		c.Notify = fn
	})
}

// WithErrorReporter sets the error_reporter sink (spec §6): invoked just
// before Encode or Decode returns a fatal error.
func WithErrorReporter(fn record.Notifier) EncodeOption {
	return options.NoError(func(c *treecodec.Config) {
		c.ReportError = fn
	})
}
