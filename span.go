package vxlmap

// spanHeaderSize is the fixed, unpadded size of a span header on the
// wire: four unsigned bytes, serialized field by field (no reliance
// on any in-memory struct layout).
const spanHeaderSize = 4

// spanHeader is one run-length record within a column: an air region
// followed by a top-surface-solid color run, and, for every span but
// the last, a bottom-surface-solid color run belonging to the span
// that follows.
type spanHeader struct {
	length     uint8
	colorStart uint8
	colorEnd   uint8
	airStart   uint8
}

func decodeSpanHeader(b []byte) spanHeader {
	return spanHeader{
		length:     b[0],
		colorStart: b[1],
		colorEnd:   b[2],
		airStart:   b[3],
	}
}

func (s spanHeader) encode() [spanHeaderSize]byte {
	return [spanHeaderSize]byte{s.length, s.colorStart, s.colorEnd, s.airStart}
}

// topLen is the number of colors this span's top run carries.
func (s spanHeader) topLen() int {
	return int(s.colorEnd) - int(s.colorStart) + 1
}

// spanLength is the size, in bytes, of this span's full body
// (header plus every color it carries). A terminator (length == 0)
// carries only its top run.
func (s spanHeader) spanLength() int {
	if s.length > 0 {
		return int(s.length) * 4
	}
	return (int(s.colorEnd) - int(s.colorStart) + 2) * 4
}
