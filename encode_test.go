package vxlmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrip asserts that encoding m, decoding that output, and
// encoding again reproduces the same bytes — the property a canonical
// encoding (one produced by Encode itself, never hand-built) must
// have, since Encode never emits an overlapping top/bottom run.
func roundTrip(t *testing.T, m *Map) {
	t.Helper()
	first := Encode(m)
	decoded, err := Decode(m.W, m.H, m.D, first)
	require.NoError(t, err)
	second := Encode(decoded)
	assert.Equal(t, first, second)
}

func TestEncodeDecodeRoundTripFlatFloor(t *testing.T) {
	roundTrip(t, NewFlat(4, 4, 4))
}

func TestEncodeDecodeRoundTripAfterMutation(t *testing.T) {
	m := NewFlat(6, 6, 6)
	m.Place(2, 2, 2, 0xAA1122)
	m.Place(2, 2, 1, 0xBB3344)
	m.Place(2, 2, 0, 0xCC5566)
	m.Clear(2, 2, 0)
	roundTrip(t, m)
}

func TestEncodeDecodeRoundTripSolidCube(t *testing.T) {
	m := newMap(6, 6, 6)
	for x := 1; x <= 3; x++ {
		for y := 1; y <= 3; y++ {
			for z := 0; z <= 2; z++ {
				m.Place(x, y, z, 0x808080)
			}
		}
	}
	roundTrip(t, m)
}

func TestEncodeEmitsTerminatorForAllAirColumn(t *testing.T) {
	m := newMap(1, 1, 4)
	out := Encode(m)
	hdr := decodeSpanHeader(out[:spanHeaderSize])
	assert.Equal(t, uint8(0), hdr.length)
	assert.Equal(t, uint8(0), hdr.airStart)
}

func TestWriteFileReturnsByteCount(t *testing.T) {
	m := NewFlat(2, 2, 2)
	dir := t.TempDir()
	n, err := WriteFile(m, dir+"/out.vxl")
	require.NoError(t, err)
	assert.Equal(t, len(Encode(m)), n)
}
