// Package inputbuf implements a double-buffered byte reader: two
// equal-size buffers, each holding size-1 content bytes followed by a
// sentinel 0, so pulling past the end of an active buffer's content
// triggers a refill of the other one rather than a reallocation. 0 is
// reserved and doubles as the end-of-stream signal; callers are expected
// to feed ASCII text with no embedded NUL bytes.
package inputbuf

import (
	"io"

	"github.com/lexkit/lexkit/internal/sysinfo"
)

// MinBufferSize is the smallest usable buffer size: one content byte plus
// its trailing sentinel.
const MinBufferSize = 2

// DefaultBufferSize returns the host's memory page size on Unix platforms
// and 4096 elsewhere, the default buffer size a caller should use absent a
// specific reason to pick their own.
func DefaultBufferSize() int {
	return sysinfo.PageSize()
}

// Buffer is the double-buffered pull-one-byte reader. It is not safe for
// concurrent use.
type Buffer struct {
	r      io.Reader
	size   int
	bufs   [2][]byte
	filled [2]int  // count of real content bytes in each buffer, before its sentinel
	atEnd  [2]bool // whether that buffer's sentinel marks genuine end-of-stream
	cur    int
	pos    int
	done   bool // true once the genuine end-of-stream byte has been surfaced
}

// New wraps r in a double-buffered reader using two buffers of size bytes
// each. size must be at least MinBufferSize.
func New(r io.Reader, size int) (*Buffer, error) {
	if size < MinBufferSize {
		return nil, ErrBufferTooSmall
	}
	b := &Buffer{r: r, size: size}
	b.bufs[0] = make([]byte, size)
	b.bufs[1] = make([]byte, size)
	if err := b.fill(0); err != nil {
		return nil, err
	}
	return b, nil
}

// fill loads buffer idx with up to size-1 content bytes from r, then writes
// the sentinel 0 immediately after the last content byte.
func (b *Buffer) fill(idx int) error {
	capacity := b.size - 1
	n, err := io.ReadFull(b.r, b.bufs[idx][:capacity])
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return &IOError{Err: err}
	}
	b.filled[idx] = n
	b.bufs[idx][n] = 0
	b.atEnd[idx] = err == io.EOF || err == io.ErrUnexpectedEOF
	return nil
}

// NextByte returns the next byte of the stream, or 0 once the stream is
// exhausted (0 is reserved as the end-of-stream marker). Once exhausted
// it keeps returning (0, nil) on every subsequent call.
func (b *Buffer) NextByte() (byte, error) {
	if b.done {
		return 0, nil
	}
	c := b.bufs[b.cur][b.pos]
	if b.pos == b.filled[b.cur] { // at the sentinel
		if b.atEnd[b.cur] {
			b.done = true
			return 0, nil
		}
		other := 1 - b.cur
		if err := b.fill(other); err != nil {
			return 0, err
		}
		b.cur = other
		b.pos = 0
		return b.NextByte()
	}
	b.pos++
	return c, nil
}

// Bytes drains the buffer into a slice, stopping at end-of-stream. It is a
// test/debugging convenience, not part of the streaming contract.
func (b *Buffer) Bytes() ([]byte, error) {
	var out []byte
	for {
		c, err := b.NextByte()
		if err != nil {
			return out, err
		}
		if c == 0 && b.done {
			return out, nil
		}
		out = append(out, c)
	}
}
