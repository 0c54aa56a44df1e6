package record

// Notifier receives non-fatal diagnostics (spec §6's notice_reporter
// collaborator; spec §7's SridClamped notice). A nil Notifier is valid
// and simply discards the message.
type Notifier func(format string, args ...any)

func (n Notifier) notify(format string, args ...any) {
	if n != nil {
		n(format, args...)
	}
}

// ClampSRID applies the ingress clamp rule of spec §3.2: a non-positive
// SRID maps to SRIDUnknown; an SRID above SRIDMaximum is folded into the
// user-defined range via SRIDUserMaximum+1+(srid mod (max-usermax-1)).
// Either branch calls notify with a SridClamped-style message; a value
// already in range passes through silently.
func ClampSRID(srid int32, notify Notifier) int32 {
	switch {
	case srid <= 0:
		if srid != SRIDUnknown {
			notify.notify("SRID value %d converted to the officially unknown SRID value %d", srid, SRIDUnknown)
		}

		return SRIDUnknown
	case srid > SRIDMaximum:
		folded := SRIDUserMaximum + 1 + (srid % (SRIDMaximum - SRIDUserMaximum - 1))
		notify.notify("SRID value %d > SRID_MAXIMUM converted to %d", srid, folded)

		return folded
	default:
		return srid
	}
}

// ReadSRID decodes the 3-byte, big-endian-within-its-bytes, sign-extended
// 21-bit SRID field at record[SRIDOffset:SRIDOffset+3] (spec §3.2). A
// stored zero decodes to SRIDUnknown.
func ReadSRID(data []byte) int32 {
	packed := int32(data[SRIDOffset])<<16 | int32(data[SRIDOffset+1])<<8 | int32(data[SRIDOffset+2])
	// Sign-extend from bit 20: shift the 21-bit field up against the top
	// of the word, then arithmetic-shift back down.
	return (packed << 11) >> 11
}

// WriteSRID clamps srid (spec §3.2) and writes it into
// data[SRIDOffset:SRIDOffset+3]; the unknown sentinel is written back as
// the all-zero pattern. Returns the clamped value actually written.
func WriteSRID(data []byte, srid int32, notify Notifier) int32 {
	clamped := ClampSRID(srid, notify)

	packed := uint32(clamped) & 0x1FFFFF // low 21 bits
	data[SRIDOffset] = byte(packed >> 16)
	data[SRIDOffset+1] = byte(packed >> 8)
	data[SRIDOffset+2] = byte(packed)

	return clamped
}
