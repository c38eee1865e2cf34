package vxlmap

// Place sets the voxel at (x, y, z) solid with the given color and
// re-evaluates its six neighbors so buried voxels lose their stored
// color (invariant I1). Out-of-bounds coordinates are a no-op.
func (m *Map) Place(x, y, z int, color uint32) {
	if !m.IsInside(x, y, z) {
		return
	}

	// A voxel that is already solid and strictly interior has no
	// storable color; placing the same color changes nothing.
	if m.geom.get(x, y, z) && !m.hasExposedNeighbor(x, y, z) {
		return
	}

	m.chunkAt(x, y).insert(packKey(x, y, z), maskColor(color))
	m.geom.set(x, y, z, true)

	for _, off := range neighborOffsets {
		nx, ny, nz := x+off[0], y+off[1], z+off[2]
		if !m.IsInside(nx, ny, nz) {
			continue
		}
		if m.geom.get(nx, ny, nz) && !m.hasExposedNeighbor(nx, ny, nz) {
			m.chunkAt(nx, ny).delete(packKey(nx, ny, nz))
		}
	}
}

// Clear removes the voxel at (x, y, z), turning it to air, and
// materializes default-colored entries at any neighbor the removal
// has newly exposed. Out-of-bounds coordinates are a no-op.
func (m *Map) Clear(x, y, z int) {
	if !m.IsInside(x, y, z) {
		return
	}

	type neighbor struct {
		x, y, z      int
		wasOnSurface bool
	}
	var neighbors [6]neighbor
	for i, off := range neighborOffsets {
		nx, ny, nz := x+off[0], y+off[1], z+off[2]
		neighbors[i] = neighbor{nx, ny, nz, m.OnSurface(nx, ny, nz)}
	}

	m.chunkAt(x, y).delete(packKey(x, y, z))
	m.geom.set(x, y, z, false)

	for _, n := range neighbors {
		if !m.IsInside(n.x, n.y, n.z) {
			continue
		}
		if !n.wasOnSurface && m.OnSurface(n.x, n.y, n.z) {
			m.chunkAt(n.x, n.y).insert(packKey(n.x, n.y, n.z), defaultColor(n.x, n.y, n.z))
		}
	}
}
