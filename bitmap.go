package vxlmap

// geometry is a dense, one-bit-per-voxel solidity bitmap. The bit for
// voxel (x, y, z) lives at linear offset z + (x + y*w)*d. A set bit
// means solid; a clear bit means air.
type geometry struct {
	words []uint32
	w, h, d int
}

func newGeometry(w, h, d int) *geometry {
	n := w * h * d
	return &geometry{
		words: make([]uint32, (n+31)/32),
		w:     w, h: h, d: d,
	}
}

func (g *geometry) offset(x, y, z int) int {
	return z + (x+y*g.w)*g.d
}

// get has no bounds check; callers must guard themselves. This
// mirrors the map's own IsSolid, which applies the boundary
// convention before ever touching the bitmap.
func (g *geometry) get(x, y, z int) bool {
	off := g.offset(x, y, z)
	return g.words[off/32]&(1<<uint(off%32)) != 0
}

// set is a no-op for any coordinate outside the volume.
func (g *geometry) set(x, y, z int, solid bool) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h || z < 0 || z >= g.d {
		return
	}
	off := g.offset(x, y, z)
	word, bit := off/32, uint(off%32)
	if solid {
		g.words[word] |= 1 << bit
	} else {
		g.words[word] &^= 1 << bit
	}
}

// fill sets every bit to one, the all-solid state decode starts from
// before clearing explicit air ranges.
func (g *geometry) fill() {
	for i := range g.words {
		g.words[i] = ^uint32(0)
	}
}
