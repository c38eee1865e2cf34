package vxlmap

// Map is a cuboid voxel world of dimensions W (x, 0..<W), H (y, 0..<H)
// and D (z, 0..<D). Z grows downward: z=0 is the top of the world,
// z=D-1 the bottom. A Map owns a geometry bitmap and a grid of column
// chunks; it is mutated only through Place and Clear.
type Map struct {
	W, H, D int

	geom    *geometry
	chunks  []*chunk
	chunksX int
	chunksY int

	// streamCount is the advisory streamed-reader counter: it is
	// incremented on stream open and decremented on close, documenting
	// (but not enforcing) that no mutation should occur while a stream
	// is live.
	streamCount int
}

func newMap(w, h, d int) *Map {
	cx := (w + chunkSize - 1) / chunkSize
	cy := (h + chunkSize - 1) / chunkSize
	m := &Map{
		W: w, H: h, D: d,
		geom:    newGeometry(w, h, d),
		chunks:  make([]*chunk, cx*cy),
		chunksX: cx,
		chunksY: cy,
	}
	for i := range m.chunks {
		m.chunks[i] = newChunk()
	}
	return m
}

// NewFlat builds a W×H×D map whose only solid voxels form a flat
// floor at z=D-1, each carrying the default color. This is the only
// map-generation behavior the library offers.
func NewFlat(w, h, d int) *Map {
	m := newMap(w, h, d)
	z := d - 1
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.geom.set(x, y, z, true)
			m.chunkAt(x, y).appendEntry(packKey(x, y, z), defaultColor(x, y, z))
		}
	}
	return m
}

// Free releases the map's resources. In Go, the geometry bitmap,
// chunk grid, and each chunk's entry array are ordinary garbage
// collected values with no backreferences escaping the map, so Free
// is a deliberate no-op kept only to mirror the operation named in
// the external interface — see DESIGN.md.
func (m *Map) Free() {}

func (m *Map) chunkIndex(x, y int) int {
	return (y/chunkSize)*m.chunksX + x/chunkSize
}

func (m *Map) chunkAt(x, y int) *chunk {
	return m.chunks[m.chunkIndex(x, y)]
}

// IsInside reports whether (x, y, z) lies within the map's bounds.
func (m *Map) IsInside(x, y, z int) bool {
	return x >= 0 && x < m.W && y >= 0 && y < m.H && z >= 0 && z < m.D
}

// IsSolid applies the map's boundary convention: out of bounds is
// solid on the four lateral sides and below the floor (modeling a
// solid shell), except above the top (z<0), which is air (open sky).
func (m *Map) IsSolid(x, y, z int) bool {
	if z < 0 {
		return false
	}
	if x < 0 || x >= m.W || y < 0 || y >= m.H || z >= m.D {
		return true
	}
	return m.geom.get(x, y, z)
}

var neighborOffsets = [6][3]int{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// hasExposedNeighbor reports whether any of the six axis-neighbors of
// (x, y, z) is non-solid, under the boundary convention.
func (m *Map) hasExposedNeighbor(x, y, z int) bool {
	for _, off := range neighborOffsets {
		if !m.IsSolid(x+off[0], y+off[1], z+off[2]) {
			return true
		}
	}
	return false
}

// OnSurface reports whether (x, y, z) is a surface voxel: solid, and
// with at least one non-solid axis-neighbor.
func (m *Map) OnSurface(x, y, z int) bool {
	return m.IsSolid(x, y, z) && m.hasExposedNeighbor(x, y, z)
}

// Get returns the color of the voxel at (x, y, z): 0 if out of bounds
// or air; the stored color for a surface voxel; the deterministic
// default color for a buried interior solid voxel (invariant I4).
func (m *Map) Get(x, y, z int) uint32 {
	if !m.IsInside(x, y, z) || !m.geom.get(x, y, z) {
		return 0
	}
	if e, ok := m.chunkAt(x, y).lookup(packKey(x, y, z)); ok {
		return e.color
	}
	return defaultColor(x, y, z)
}

// Top returns the color and z of the shallowest solid voxel in column
// (x, y). If the column is entirely air, it returns (0, D).
func (m *Map) Top(x, y int) (uint32, int) {
	for z := 0; z < m.D; z++ {
		if m.geom.get(x, y, z) {
			return m.Get(x, y, z), z
		}
	}
	return 0, m.D
}
