// Package vxlmap implements an in-memory editable voxel map and a
// bidirectional codec for the run-length column format used by the
// voxlap/Ace-of-Spades family of voxel engines ("VXL").
//
// A Map keeps two representations of the same volume in lockstep: a
// dense bitmap of solidity and a sparse, per-chunk, sorted list of
// colored surface voxels. Non-surface solid voxels carry no stored
// color; their color is regenerated on demand. Place and Clear keep
// both representations — and the six-neighbor surface exposure they
// imply — consistent on every mutation.
package vxlmap
