// Package errs collects the sentinel errors raised across gserial's codec
// packages (record, geom, internal/treecodec, internal/peek).
//
// Callers should compare with errors.Is; call sites wrap these with
// fmt.Errorf("...: %w", ...) to attach positional context before returning.
package errs

import "errors"

var (
	// ErrInvalidHeaderSize names a header byte slice shorter than the
	// fixed header size. No codec path returns it: record.ParseHeader
	// reports that case as ErrTruncatedRecord.
	ErrInvalidHeaderSize = errors.New("gserial: invalid header size")

	// ErrTruncatedRecord is returned when a read would run past the end of
	// the record's byte slice.
	ErrTruncatedRecord = errors.New("gserial: truncated record")

	// ErrDimensionMismatch is returned by encode when a geometry's flags
	// disagree with the dimensionality of its coordinates, or a child
	// geometry's flags disagree with its parent's.
	ErrDimensionMismatch = errors.New("gserial: dimension mismatch")

	// ErrSizeMismatch is returned by encode when the number of bytes
	// actually written does not match the precomputed size.
	ErrSizeMismatch = errors.New("gserial: encoded size mismatch")

	// ErrUnknownType is returned when a type tag is not one of the fifteen
	// known geometry kinds.
	ErrUnknownType = errors.New("gserial: unknown geometry type")

	// ErrSubtypeNotAllowed is returned by decode when a collection contains
	// a child kind its parent kind does not admit.
	ErrSubtypeNotAllowed = errors.New("gserial: subtype not allowed in collection")

	// ErrPeekNotDerivable is returned by peek operations when the record's
	// shape does not permit deriving the requested value without a full
	// decode.
	ErrPeekNotDerivable = errors.New("gserial: value not derivable from peek")

	// ErrEmptyPoint is returned by peek_first_point when the record is a
	// Point with zero coordinates.
	ErrEmptyPoint = errors.New("gserial: point is empty")

	// ErrBBoxNotPresent is returned by the bounding-box codec when the
	// bbox flag bit is clear but a caller asked to read one anyway.
	ErrBBoxNotPresent = errors.New("gserial: record carries no bounding box")
)
