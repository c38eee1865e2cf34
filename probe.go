package vxlmap

import "math"

// Probe scans a VXL buffer's span headers without building a Map,
// letting a caller size one before constructing it. It counts
// terminator spans (length == 0) to find the number of columns, and
// tracks the largest color_end+1 seen as the observed depth. The
// side of the (square) map is floor(sqrt(columns)).
//
// Probe is a best-effort scan, not a validating decode: if the buffer
// ends mid-header, it simply stops scanning and returns whatever
// side/depth it accumulated so far, rather than failing. The one
// recoverable decode failure the library surfaces is from Decode.
func Probe(buf []byte) (side, depth int) {
	columns := 0
	offset := 0

	for offset+spanHeaderSize <= len(buf) {
		hdr := decodeSpanHeader(buf[offset : offset+spanHeaderSize])
		if int(hdr.colorEnd)+1 > depth {
			depth = int(hdr.colorEnd) + 1
		}
		if hdr.length == 0 {
			columns++
		}
		offset += hdr.spanLength()
	}

	side = int(math.Sqrt(float64(columns)))
	return side, depth
}
