// Package kv6 exports a vxlmap.Map to the KV6 point-sprite format, a
// thin consumer of the core map: it walks solid voxels column by
// column and writes MagicaVoxel/voxlap-style KV6 records, grounded on
// the chunked binary.Write layout the space-carving .vox exporter in
// this module's lineage used for its own point-sprite output.
package kv6

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"

	"vxlmap"
)

var magic = [4]byte{'K', 'v', 'x', 'l'}

// face bits for visfaces, set iff the corresponding neighbor is solid.
const (
	facePlusX  = 1 << 0
	faceMinusX = 1 << 1
	facePlusY  = 1 << 2
	faceMinusY = 1 << 3
	facePlusZ  = 1 << 4
	faceMinusZ = 1 << 5
)

// Write encodes m as a KV6 file at path. Blocks are emitted in
// (y-major, x-minor) column order, the same order the VXL stream
// uses, and the trailing x-count and xy-count index tables are built
// to match.
func Write(m *vxlmap.Map, path string) error {
	data, err := Encode(m)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "could not write kv6 file")
	}
	return nil
}

// Encode renders m as a KV6 byte buffer.
func Encode(m *vxlmap.Map) ([]byte, error) {
	var body bytes.Buffer
	xyCounts := make([]int16, m.W*m.H)
	xCounts := make([]uint32, m.W)
	total := uint32(0)

	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			count := int16(0)
			for z := 0; z < m.D; z++ {
				if !m.IsSolid(x, y, z) {
					continue
				}
				if err := writeBlock(&body, m, x, y, z); err != nil {
					return nil, err
				}
				count++
				total++
			}
			xyCounts[x+y*m.W] = count
			xCounts[x] += uint32(count)
		}
	}

	var out bytes.Buffer
	out.Write(magic[:])
	writeU32(&out, uint32(m.W))
	writeU32(&out, uint32(m.H))
	writeU32(&out, uint32(m.D))
	writeF32(&out, float32(m.W)/2)
	writeF32(&out, float32(m.H)/2)
	writeF32(&out, float32(m.D)/2)
	writeU32(&out, total)

	out.Write(body.Bytes())

	for _, c := range xCounts {
		writeU32(&out, c)
	}
	for _, c := range xyCounts {
		if err := binary.Write(&out, binary.LittleEndian, c); err != nil {
			return nil, errors.Wrap(err, "could not write kv6 xy-count table")
		}
	}

	return out.Bytes(), nil
}

func writeBlock(w io.Writer, m *vxlmap.Map, x, y, z int) error {
	color := m.Get(x, y, z)
	visfaces := visfacesAt(m, x, y, z)

	var rec [4 + 2 + 1 + 1]byte
	binary.LittleEndian.PutUint32(rec[0:4], color)
	binary.LittleEndian.PutUint16(rec[4:6], uint16(z))
	rec[6] = visfaces
	rec[7] = normalFor(visfaces)

	_, err := w.Write(rec[:])
	if err != nil {
		return errors.Wrap(err, "could not write kv6 block record")
	}
	return nil
}

func visfacesAt(m *vxlmap.Map, x, y, z int) byte {
	var v byte
	if m.IsSolid(x+1, y, z) {
		v |= facePlusX
	}
	if m.IsSolid(x-1, y, z) {
		v |= faceMinusX
	}
	if m.IsSolid(x, y+1, z) {
		v |= facePlusY
	}
	if m.IsSolid(x, y-1, z) {
		v |= faceMinusY
	}
	if m.IsSolid(x, y, z+1) {
		v |= facePlusZ
	}
	if m.IsSolid(x, y, z-1) {
		v |= faceMinusZ
	}
	return v
}

// normalFor picks the first exposed face as the block's normal index,
// 0 (+x) if the voxel happens to have no exposed face recorded.
func normalFor(visfaces byte) byte {
	for i := byte(0); i < 6; i++ {
		if visfaces&(1<<i) == 0 {
			return i
		}
	}
	return 0
}

func writeU32(buf *bytes.Buffer, v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	buf.Write(tmp[:])
}

func writeF32(buf *bytes.Buffer, v float32) {
	writeU32(buf, math.Float32bits(v))
}
