package vxlmap

import (
	"bytes"
	"encoding/binary"
	"os"
)

// Encode walks every column of the map, in (y-major, x-minor) order,
// and emits the VXL span sequence that reproduces its current layout.
// Decoding Encode's output and encoding the result again reproduces
// that output byte-for-byte. A buffer whose bottom run repeats a depth
// its own top run already covers decodes, but does not re-encode to
// the same bytes: the repeated depth is stored once, and Encode emits
// no overlapping runs.
func Encode(m *Map) []byte {
	var out bytes.Buffer
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			encodeColumn(&out, m, x, y)
		}
	}
	return out.Bytes()
}

// WriteFile encodes the map and writes it to path, returning the
// number of bytes written.
func WriteFile(m *Map, path string) (int, error) {
	data := Encode(m)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, err
	}
	return len(data), nil
}

func writeUint32LE(buf *bytes.Buffer, v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	buf.Write(tmp[:])
}

// firstMatch returns the smallest z in [from, d) for which pred holds,
// or d if pred never holds.
func firstMatch(from, d int, pred func(z int) bool) int {
	for z := from; z < d; z++ {
		if pred(z) {
			return z
		}
	}
	return d
}

func (m *Map) colorAt(x, y, z int) uint32 {
	if e, ok := m.chunkAt(x, y).lookup(packKey(x, y, z)); ok {
		return e.color
	}
	return defaultColor(x, y, z)
}

func encodeColumn(out *bytes.Buffer, m *Map, x, y int) {
	solid := func(z int) bool { return m.geom.get(x, y, z) }
	onSurface := func(z int) bool { return m.OnSurface(x, y, z) }

	z := 0
	for {
		topStart := firstMatch(z, m.D, solid)
		topEnd := firstMatch(topStart, m.D, func(zz int) bool {
			return !solid(zz) || !onSurface(zz)
		})
		bottomStart := firstMatch(topEnd, m.D, func(zz int) bool {
			return !solid(zz) || onSurface(zz)
		})
		bottomEnd := firstMatch(bottomStart, m.D, func(zz int) bool {
			return !solid(zz) || !onSurface(zz)
		})

		hdr := spanHeader{
			airStart:   uint8(z),
			colorStart: uint8(topStart),
			colorEnd:   uint8(topEnd - 1),
		}
		topLen := topEnd - topStart

		if bottomStart == m.D {
			hdr.length = 0
			writeSpanHeader(out, hdr)
			writeColumnColors(out, m, x, y, topStart, topEnd)
			return
		}

		if bottomEnd < m.D {
			bottomLen := bottomEnd - bottomStart
			hdr.length = uint8(1 + topLen + bottomLen)
			writeSpanHeader(out, hdr)
			writeColumnColors(out, m, x, y, topStart, topEnd)
			writeColumnColors(out, m, x, y, bottomStart, bottomEnd)
			z = bottomEnd
		} else {
			hdr.length = uint8(1 + topLen)
			writeSpanHeader(out, hdr)
			writeColumnColors(out, m, x, y, topStart, topEnd)
			z = bottomStart
		}
	}
}

func writeSpanHeader(out *bytes.Buffer, hdr spanHeader) {
	b := hdr.encode()
	out.Write(b[:])
}

func writeColumnColors(out *bytes.Buffer, m *Map, x, y, from, to int) {
	for z := from; z < to; z++ {
		writeUint32LE(out, m.colorAt(x, y, z)|wireAlpha)
	}
}
