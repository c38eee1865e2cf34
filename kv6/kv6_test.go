package kv6

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vxlmap"
)

func TestEncodeHeaderFields(t *testing.T) {
	m := vxlmap.NewFlat(4, 4, 8)
	data, err := Encode(m)
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(data), 28)
	assert.Equal(t, magic[:], data[0:4])

	w := binary.LittleEndian.Uint32(data[4:8])
	h := binary.LittleEndian.Uint32(data[8:12])
	d := binary.LittleEndian.Uint32(data[12:16])
	assert.Equal(t, uint32(4), w)
	assert.Equal(t, uint32(4), h)
	assert.Equal(t, uint32(8), d)

	total := binary.LittleEndian.Uint32(data[28:32])
	assert.Equal(t, uint32(16), total, "one solid voxel per column on a flat floor")
}

func TestNormalForPicksFirstUnsetFace(t *testing.T) {
	assert.Equal(t, byte(0), normalFor(0))
	assert.Equal(t, byte(1), normalFor(facePlusX))
	assert.Equal(t, byte(2), normalFor(facePlusX|faceMinusX))
}

func TestVisfacesAtReflectsSolidNeighbors(t *testing.T) {
	m := vxlmap.NewFlat(4, 4, 8)
	v := visfacesAt(m, 1, 1, 7)
	assert.NotZero(t, v&facePlusZ, "below the floor is the solid shell")
	assert.Zero(t, v&faceMinusZ, "above the floor voxel is air")
}

func TestEncodeProducesOneRecordPerSolidVoxel(t *testing.T) {
	m := vxlmap.NewFlat(2, 2, 3)
	data, err := Encode(m)
	require.NoError(t, err)

	headerSize := 4 + 4*3 + 4*3 + 4
	recordSize := 8
	trailerSize := 2*4 + 2*2*2 // xCounts[2] (u32) + xyCounts[4] (i16)

	assert.Equal(t, headerSize+4*recordSize+trailerSize, len(data))
}

func TestEncodeNonSquareMapOrdersBlocksYMajorXMinor(t *testing.T) {
	// 3-wide, 2-tall map: place a single solid voxel at column (x=2,
	// y=0) and leave every other column air, so the block stream and
	// the xy-count table only have one non-zero slot each to check.
	m := vxlmap.NewFlat(3, 2, 4)
	for x := 0; x < 3; x++ {
		for y := 0; y < 2; y++ {
			m.Clear(x, y, 3)
		}
	}
	m.Place(2, 0, 0, 0x123456)

	data, err := Encode(m)
	require.NoError(t, err)

	headerSize := 4 + 4*3 + 4*3 + 4
	recordSize := 8
	trailerOffset := headerSize + recordSize

	z := binary.LittleEndian.Uint16(data[headerSize+4 : headerSize+6])
	assert.Equal(t, uint16(0), z, "the single block belongs to column (2,0)")

	xCounts := data[trailerOffset : trailerOffset+3*4]
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(xCounts[0:4]), "x=0 has no solid voxels")
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(xCounts[4:8]), "x=1 has no solid voxels")
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(xCounts[8:12]), "x=2 carries the one solid voxel")

	xyOffset := trailerOffset + 3*4
	xyCounts := data[xyOffset : xyOffset+6*2]
	var counts [6]int16
	for i := range counts {
		counts[i] = int16(binary.LittleEndian.Uint16(xyCounts[i*2 : i*2+2]))
	}
	// xyCounts is indexed x + y*W: column (2,0) is slot 2.
	assert.Equal(t, [6]int16{0, 0, 1, 0, 0, 0}, counts)
}
