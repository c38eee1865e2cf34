package vxlmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProbeOnSquareMap(t *testing.T) {
	m := NewFlat(4, 4, 6)
	buf := Encode(m)

	side, depth := Probe(buf)
	assert.Equal(t, 4, side)
	assert.Equal(t, 6, depth)
}

func TestProbeOnTruncatedBufferStopsWithoutFailing(t *testing.T) {
	side, depth := Probe([]byte{1, 2})
	assert.Equal(t, 0, side)
	assert.Equal(t, 0, depth)
}

func TestProbeOnBufferTruncatedMidScanKeepsPriorColumns(t *testing.T) {
	col := buildColumn()
	buf := append(append([]byte{}, col...), col...)
	// Keep the first full column (24 bytes) plus 2 bytes of the
	// second column's first span header, which is not enough to read
	// that header.
	buf = buf[:len(col)+2]

	side, depth := Probe(buf)
	assert.Equal(t, 1, side, "only the first full column was scanned before truncation")
	assert.Equal(t, 4, depth)
}

func TestProbeColumnCountNonSquare(t *testing.T) {
	col := buildColumn()
	var buf []byte
	for i := 0; i < 10; i++ {
		buf = append(buf, col...)
	}
	side, _ := Probe(buf)
	assert.Equal(t, 3, side)
}
