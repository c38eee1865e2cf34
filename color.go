package vxlmap

// wireAlpha is ORed into every color emitted on the wire.
// Only the low 24 bits of a stored color participate in the format;
// the decoder discards whatever alpha byte it finds on read.
const wireAlpha = 0x7F000000

// defaultColor is the deterministic color materialized for a voxel
// that was solid-but-buried and has just become exposed, or for any
// buried interior voxel queried through Get. Any deterministic
// function of (x, y, z) is conformant (invariant I4); this one picks
// a single fixed earthy tone, independent of position, matching the
// reference behavior described for buried voxels.
func defaultColor(x, y, z int) uint32 {
	const tone = 0x6B4F3A
	return tone
}

// maskColor keeps only the low 24 bits a stored color contributes to
// the wire format.
func maskColor(c uint32) uint32 {
	return c & 0x00FFFFFF
}
