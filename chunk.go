package vxlmap

import "sort"

const (
	// chunkSize is the side length, in voxels, of one XY tile. The
	// map is partitioned into a grid of these tiles (invariant I3).
	chunkSize = 16

	// chunkGrowth is how many additional entries a chunk's backing
	// array gains each time it overflows, and how many it gives back
	// each time deletion leaves enough slack.
	chunkGrowth = 512

	// chunkInitialCap holds two fully populated layers of a tile
	// without reallocation.
	chunkInitialCap = 2 * chunkSize * chunkSize
)

// blockEntry is a stored surface voxel: its packed position and its
// ARGB color. Non-surface solid voxels have no corresponding entry —
// that is the core space saving of the format (invariant I1).
type blockEntry struct {
	pos   positionKey
	color uint32
}

// chunk owns the sorted entries for one 16x16 tile of columns. Entries
// are kept strictly increasing by position key (invariant I2); the
// backing array grows and shrinks in fixed-size steps rather than via
// Go's doubling append, mirroring the realloc-by-increment discipline
// of the format this chunk store exists to serve.
type chunk struct {
	entries []blockEntry
}

func newChunk() *chunk {
	return &chunk{entries: make([]blockEntry, 0, chunkInitialCap)}
}

func (c *chunk) len() int { return len(c.entries) }

func (c *chunk) search(pos positionKey) (int, bool) {
	i := sort.Search(len(c.entries), func(i int) bool {
		return c.entries[i].pos >= pos
	})
	if i < len(c.entries) && c.entries[i].pos == pos {
		return i, true
	}
	return i, false
}

func (c *chunk) lookup(pos positionKey) (blockEntry, bool) {
	i, ok := c.search(pos)
	if !ok {
		return blockEntry{}, false
	}
	return c.entries[i], true
}

func (c *chunk) grow() {
	if len(c.entries) < cap(c.entries) {
		return
	}
	grown := make([]blockEntry, len(c.entries), cap(c.entries)+chunkGrowth)
	copy(grown, c.entries)
	c.entries = grown
}

func (c *chunk) shrinkIfSlack() {
	slack := cap(c.entries) - len(c.entries)
	if slack <= 2*chunkGrowth {
		return
	}
	newCap := cap(c.entries) - chunkGrowth
	shrunk := make([]blockEntry, len(c.entries), newCap)
	copy(shrunk, c.entries)
	c.entries = shrunk
}

// insert overwrites the color on an exact position match, or shifts
// the tail right by one to keep the array sorted (invariant I2).
func (c *chunk) insert(pos positionKey, color uint32) {
	i, ok := c.search(pos)
	if ok {
		c.entries[i].color = color
		return
	}
	c.grow()
	c.entries = append(c.entries, blockEntry{})
	copy(c.entries[i+1:], c.entries[i:])
	c.entries[i] = blockEntry{pos: pos, color: color}
}

// appendEntry appends unchecked, assuming the caller (the span
// decoder) feeds strictly increasing positions. A repeat of the most
// recently appended position overwrites its color in place rather
// than violating I2 — this tolerates a decoded span whose bottom
// color run abuts its top run at the same depth.
func (c *chunk) appendEntry(pos positionKey, color uint32) {
	if n := len(c.entries); n > 0 && c.entries[n-1].pos == pos {
		c.entries[n-1].color = color
		return
	}
	c.grow()
	c.entries = append(c.entries, blockEntry{pos: pos, color: color})
}

// delete removes the entry at pos, if any, shifting the tail left and
// shrinking the backing array once slack crosses the threshold.
func (c *chunk) delete(pos positionKey) {
	i, ok := c.search(pos)
	if !ok {
		return
	}
	copy(c.entries[i:], c.entries[i+1:])
	c.entries = c.entries[:len(c.entries)-1]
	c.shrinkIfSlack()
}
