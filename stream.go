package vxlmap

import "bytes"

// StreamEncoder incrementally encodes a map into fixed-size frames
// without ever staging the whole encoding in memory. It walks columns
// in the same (y-major, x-minor) order Encode does, buffering just
// enough to satisfy each Read.
type StreamEncoder struct {
	m       *Map
	scratch bytes.Buffer
	column  int // next column to encode, linear index y*W+x
	closed  bool
}

// NewStreamEncoder opens a stream over m. It increments m's advisory
// streamed-reader counter; Close decrements it. Mutating m while a
// stream is open yields undefined output, since the stream assumes
// stable chunk ordering between frames — this is advisory only and
// not enforced.
func NewStreamEncoder(m *Map) *StreamEncoder {
	m.streamCount++
	return &StreamEncoder{m: m}
}

// Read fills out with up to len(out) bytes of encoded output and
// returns how many bytes it wrote. A return of 0 signals end of
// stream.
func (s *StreamEncoder) Read(out []byte) int {
	frameSize := len(out)
	total := s.m.W * s.m.H

	for s.scratch.Len() < frameSize && s.column < total {
		x := s.column % s.m.W
		y := s.column / s.m.W
		encodeColumn(&s.scratch, s.m, x, y)
		s.column++
	}

	n := s.scratch.Len()
	if n > frameSize {
		n = frameSize
	}
	copy(out[:n], s.scratch.Bytes()[:n])
	s.scratch.Next(n)
	return n
}

// Close releases the stream's scratch buffer and decrements m's
// advisory streamed-reader counter. Callers abandoning a stream must
// call Close to release it.
func (s *StreamEncoder) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.scratch.Reset()
	s.m.streamCount--
}
