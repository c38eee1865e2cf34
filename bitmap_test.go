package vxlmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeometryGetSetRoundTrip(t *testing.T) {
	g := newGeometry(4, 4, 8)
	assert.False(t, g.get(1, 2, 3))

	g.set(1, 2, 3, true)
	assert.True(t, g.get(1, 2, 3))

	g.set(1, 2, 3, false)
	assert.False(t, g.get(1, 2, 3))
}

func TestGeometrySetOutOfBoundsIsNoOp(t *testing.T) {
	g := newGeometry(2, 2, 2)
	assert.NotPanics(t, func() {
		g.set(-1, 0, 0, true)
		g.set(0, 5, 0, true)
		g.set(0, 0, 9, true)
	})
}

func TestGeometryFill(t *testing.T) {
	g := newGeometry(3, 3, 3)
	g.fill()
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 3; z++ {
				assert.True(t, g.get(x, y, z))
			}
		}
	}
}

func TestGeometryDoesNotAliasAcrossVoxels(t *testing.T) {
	g := newGeometry(5, 5, 5)
	g.set(2, 2, 2, true)
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			for z := 0; z < 5; z++ {
				if x == 2 && y == 2 && z == 2 {
					continue
				}
				assert.False(t, g.get(x, y, z))
			}
		}
	}
}
