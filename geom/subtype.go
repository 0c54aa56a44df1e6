package geom

// AllowsSubtype is the default allows_subtype collaborator (spec §4.4,
// §6): it decides which child kinds a collection kind admits. Decode
// calls it while walking a collection body and rejects the record with
// errs.ErrSubtypeNotAllowed on a violation; NewCollection calls it too,
// panicking instead since there the caller controls the input.
func AllowsSubtype(parent, child Kind) bool {
	switch parent {
	case MultiPoint:
		return child == Point
	case MultiLineString:
		return child == LineString
	case MultiPolygon:
		return child == Polygon
	case GeometryCollection:
		return child.Valid()
	case CompoundCurve:
		return child == LineString || child == CircularString
	case CurvePolygon:
		return child == LineString || child == CircularString || child == CompoundCurve
	case MultiCurve:
		return child == LineString || child == CircularString || child == CompoundCurve
	case MultiSurface:
		return child == Polygon || child == CurvePolygon
	case PolyhedralSurface:
		return child == Polygon
	case Tin:
		return child == Triangle
	default:
		return false
	}
}
