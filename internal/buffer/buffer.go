// Package buffer provides ByteBuffer, a growable UTF-8 byte sink for
// building up text without repeated allocation. No other package in
// this module imports it.
package buffer

import "fmt"

// DefaultCapacity is the initial capacity used by New.
const DefaultCapacity = 256

// ByteBuffer is a growable byte sink with amortized O(1) append. The
// zero value is not usable; construct one with New or NewWithCapacity.
type ByteBuffer struct {
	bytes []byte
}

// New creates a ByteBuffer with the default initial capacity.
func New() *ByteBuffer {
	return NewWithCapacity(DefaultCapacity)
}

// NewWithCapacity creates a ByteBuffer with the given initial capacity.
// A non-positive capacity falls back to the default.
func NewWithCapacity(capacity int) *ByteBuffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &ByteBuffer{bytes: make([]byte, 0, capacity)}
}

// Size returns the number of bytes currently held.
func (b *ByteBuffer) Size() int {
	return len(b.bytes)
}

// Capacity returns the underlying storage capacity.
func (b *ByteBuffer) Capacity() int {
	return cap(b.bytes)
}

// Clear empties the buffer without releasing its storage.
func (b *ByteBuffer) Clear() {
	b.bytes = b.bytes[:0]
}

// Append appends raw bytes to the buffer, growing storage as needed.
// It returns the number of bytes appended.
func (b *ByteBuffer) Append(content []byte) int {
	if len(content) == 0 {
		return 0
	}
	b.grow(len(content))
	b.bytes = append(b.bytes, content...)
	return len(content)
}

// AppendString is a convenience wrapper around Append for string content.
func (b *ByteBuffer) AppendString(content string) int {
	return b.Append([]byte(content))
}

// Appendf formats according to format and appends the result.
func (b *ByteBuffer) Appendf(format string, args ...any) int {
	return b.AppendString(fmt.Sprintf(format, args...))
}

// Nappendf formats according to format, truncates the result to at most
// maxSize bytes, and appends it. It mirrors the C original's
// byte_buffer_nappendf, which caps the formatted output before storing it.
func (b *ByteBuffer) Nappendf(maxSize int, format string, args ...any) int {
	if maxSize <= 0 {
		return 0
	}
	content := fmt.Sprintf(format, args...)
	if len(content) > maxSize {
		content = content[:maxSize]
	}
	return b.AppendString(content)
}

// Drain returns the buffered content as a string and clears the buffer.
// The returned string owns its own storage; mutating the buffer
// afterward does not affect it.
func (b *ByteBuffer) Drain() string {
	s := string(b.bytes)
	b.Clear()
	return s
}

// String returns the buffered content without clearing the buffer.
func (b *ByteBuffer) String() string {
	return string(b.bytes)
}

// grow doubles capacity (starting from DefaultCapacity if it is zero)
// until at least extra more bytes fit, so the new capacity is the
// smallest capacity*2^k that is >= needed.
func (b *ByteBuffer) grow(extra int) {
	needed := len(b.bytes) + extra
	if needed <= cap(b.bytes) {
		return
	}
	newCap := cap(b.bytes)
	if newCap == 0 {
		newCap = DefaultCapacity
	}
	for newCap < needed {
		newCap *= 2
	}
	grown := make([]byte, len(b.bytes), newCap)
	copy(grown, b.bytes)
	b.bytes = grown
}
