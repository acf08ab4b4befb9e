// Package locator builds the compact binary paths used to address nested
// fields and array elements, such as Memos[0].MemoType, in host calls
// that the flat field getters cannot reach.
package locator

import "encoding/binary"

// BufferSize bounds a locator. The first packed value of a slotted
// locator takes 5 bytes and every further segment 4, so 64 bytes cover
// any path the host accepts.
const BufferSize = 64

// Locator packs little-endian 4-byte segments, each holding either a
// field code or an array index, into a fixed 64-byte buffer.
type Locator struct {
	buf [BufferSize]byte
	n   int
}

// New returns an empty locator.
func New() *Locator {
	return &Locator{}
}

// NewWithSlot returns a locator whose first byte addresses a cache slot.
func NewWithSlot(slot uint8) *Locator {
	l := &Locator{}
	l.buf[0] = slot
	l.n = 1
	return l
}

// Pack appends one 4-byte segment. It reports false, leaving the locator
// untouched, when the buffer cannot hold another segment.
func (l *Locator) Pack(v int32) bool {
	if l.n+4 > BufferSize {
		return false
	}
	binary.LittleEndian.PutUint32(l.buf[l.n:], uint32(v))
	l.n += 4
	return true
}

// RepackLast overwrites the most recently packed segment, for walking
// sibling fields of the same parent without rebuilding the path. It
// reports false when nothing has been packed.
func (l *Locator) RepackLast(v int32) bool {
	if l.n < 4 {
		return false
	}
	binary.LittleEndian.PutUint32(l.buf[l.n-4:], uint32(v))
	return true
}

// Bytes returns the packed prefix of the buffer.
func (l *Locator) Bytes() []byte {
	return l.buf[:l.n]
}

// Len returns the number of packed bytes.
func (l *Locator) Len() int {
	return l.n
}

// IsEmpty reports whether nothing has been packed.
func (l *Locator) IsEmpty() bool {
	return l.n == 0
}
