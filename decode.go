package vxlmap

import (
	"encoding/binary"
	"fmt"
)

// Decode parses a VXL byte stream into a new W×H×D map. Geometry
// starts all-solid; the decoder clears exactly the z-ranges each
// column's spans mark as air, and appends a colored chunk entry for
// every z-range a span marks as a top or bottom surface run. Columns
// are read in (y-major, x-minor) order, matching the encoder.
//
// Decode returns a *DecodeError if the buffer is exhausted before a
// column, or a span within it, can be fully read. It does not
// distinguish truncation from corruption.
func Decode(w, h, d int, buf []byte) (*Map, error) {
	m := newMap(w, h, d)
	m.geom.fill()

	offset := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			next, err := decodeColumn(m, x, y, buf, offset)
			if err != nil {
				return nil, err
			}
			offset = next
		}
	}
	return m, nil
}

func readHeaderAt(buf []byte, x, y, offset int) (spanHeader, error) {
	if offset+spanHeaderSize > len(buf) {
		return spanHeader{}, newDecodeError(x, y, offset, "buffer exhausted reading span header")
	}
	return decodeSpanHeader(buf[offset : offset+spanHeaderSize]), nil
}

func readColors(buf []byte, x, y, offset, n int) ([]uint32, error) {
	need := offset + n*4
	if need > len(buf) {
		return nil, newDecodeError(x, y, offset, "buffer exhausted reading span colors")
	}
	colors := make([]uint32, n)
	for i := 0; i < n; i++ {
		colors[i] = binary.LittleEndian.Uint32(buf[offset+i*4 : offset+i*4+4])
	}
	return colors, nil
}

// decodeColumn decodes every span of column (x, y) starting at
// offset, and returns the offset of the byte immediately following
// the column's terminator span.
func decodeColumn(m *Map, x, y int, buf []byte, offset int) (int, error) {
	c := m.chunkAt(x, y)

	for {
		hdr, err := readHeaderAt(buf, x, y, offset)
		if err != nil {
			return 0, err
		}

		for z := int(hdr.airStart); z < int(hdr.colorStart); z++ {
			m.geom.set(x, y, z, false)
		}

		topLen := hdr.topLen()
		if topLen < 0 {
			return 0, newDecodeError(x, y, offset, "span color_end precedes color_start")
		}
		topColors, err := readColors(buf, x, y, offset+spanHeaderSize, topLen)
		if err != nil {
			return 0, err
		}
		for i, z := 0, int(hdr.colorStart); z <= int(hdr.colorEnd); i, z = i+1, z+1 {
			c.appendEntry(packKey(x, y, z), maskColor(topColors[i]))
		}

		if hdr.length == 0 {
			return offset + hdr.spanLength(), nil
		}

		nextOffset := offset + hdr.spanLength()
		nextHdr, err := readHeaderAt(buf, x, y, nextOffset)
		if err != nil {
			return 0, err
		}

		bottomLen := int(hdr.length) - 1 - topLen
		if bottomLen < 0 {
			return 0, wrapDecodeError(x, y, offset,
				fmt.Errorf("length %d too small for top run of %d colors", hdr.length, topLen),
				"span header inconsistent with its own top run")
		}
		bottomColors, err := readColors(buf, x, y, offset+spanHeaderSize+topLen*4, bottomLen)
		if err != nil {
			return 0, err
		}
		bottomStart := int(nextHdr.airStart) - bottomLen
		for i, z := 0, bottomStart; z < int(nextHdr.airStart); i, z = i+1, z+1 {
			c.appendEntry(packKey(x, y, z), maskColor(bottomColors[i]))
		}

		offset = nextOffset
	}
}
