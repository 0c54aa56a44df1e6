package peek

import (
	"github.com/geocodec/gserial/endian"
	"github.com/geocodec/gserial/errs"
	"github.com/geocodec/gserial/geom"
	"github.com/geocodec/gserial/record"
)

// FirstPoint implements peek_first_point (spec §4.5.2): returns a
// record's first coordinate, the only peek operation exposed for
// ordinates. Fails with errs.ErrEmptyPoint on an empty Point and
// errs.ErrPeekNotDerivable for every other kind.
func FirstPoint(rec record.Serialized) (geom.Coordinate, error) {
	_, f, _, err := record.ParseHeader(rec)
	if err != nil {
		return nil, err
	}

	offset := record.HeaderSize(f)
	if len(rec) < offset+8 {
		return nil, errs.ErrTruncatedRecord
	}

	engine := endian.HostEngine()
	kind := geom.Kind(engine.Uint32(rec[offset : offset+4]))
	if kind != geom.Point {
		return nil, errs.ErrPeekNotDerivable
	}

	count := int(engine.Uint32(rec[offset+4 : offset+8]))
	if count == 0 {
		return nil, errs.ErrEmptyPoint
	}

	c, ok := readPoint(rec, offset+8, f.NDims())
	if !ok {
		return nil, errs.ErrTruncatedRecord
	}

	return geom.Coordinate(c), nil
}
