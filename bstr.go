// Package bstr implements a compact polymorphic byte-string buffer.
//
// A Buffer holds its content in one of four representations: inline
// storage for short strings (no heap allocation), a refcounted heap
// block it owns, a reference into another Buffer's heap block, or a
// raw view over caller memory. Views and references are zero-copy;
// the caller must ensure view-backing memory outlives the view.
//
// The ownership model is single-threaded: no locks, no atomic
// refcounts. Buffers must be used through the *Buffer they were
// created as; copying a Buffer by value steps outside the release
// protocol and is not supported.
package bstr

import (
	"errors"
	"unsafe"
)

var (
	ErrOutOfMemory = errors.New("allocation failed")
	ErrOutOfRange  = errors.New("slice bounds out of range")
)

// InlineCap is the number of data bytes a Buffer stores without heap
// allocation. Fixed by the Buffer layout; one extra byte is reserved
// for the terminator.
const InlineCap = 15

// Tag identifies a Buffer's current representation.
type Tag uint8

const (
	Inline Tag = iota
	Owned
	Ref
	View
)

func (t Tag) String() string {
	switch t {
	case Inline:
		return "inline"
	case Owned:
		return "owned"
	case Ref:
		return "ref"
	case View:
		return "view"
	default:
		return "invalid"
	}
}

// Buffer is the handle. The zero value is an empty inline buffer.
type Buffer struct {
	tag  Tag
	ilen uint8
	ins  [InlineCap + 1]byte

	blk *block // Owned, Ref
	off int    // Ref: offset into blk's data
	n   int    // Owned, Ref, View: logical length

	ext []byte // View: aliased caller memory, starting at the view base
}

// NewCopy copies p into a fresh Buffer. Content up to InlineCap bytes
// is stored inline; longer content gets its own heap block. Fails only
// with ErrOutOfMemory.
func NewCopy(p []byte) (*Buffer, error) {
	b := &Buffer{}
	if err := b.setCopy(p); err != nil {
		return nil, err
	}
	return b, nil
}

// NewCopyString is NewCopy for string content.
func NewCopyString(s string) (*Buffer, error) {
	return NewCopy([]byte(s))
}

// NewView wraps p without copying. The view does not participate in
// any lifetime tracking: p must stay valid and unmoved for as long as
// the view (or anything derived from it) is read.
func NewView(p []byte) *Buffer {
	return &Buffer{tag: View, ext: p, n: len(p)}
}

func (b *Buffer) setCopy(p []byte) error {
	if len(p) <= InlineCap {
		copy(b.ins[:], p)
		b.ins[len(p)] = 0
		b.tag = Inline
		b.ilen = uint8(len(p))
		return nil
	}
	blk, err := allocBlock(len(p))
	if err != nil {
		return err
	}
	copy(blk.data, p)
	blk.terminate(len(p))
	b.tag = Owned
	b.blk = blk
	b.n = len(p)
	return nil
}

// Tag reports the Buffer's current representation.
func (b *Buffer) Tag() Tag {
	return b.tag
}

// Len returns the logical length in bytes.
func (b *Buffer) Len() int {
	if b.tag == Inline {
		return int(b.ilen)
	}
	return b.n
}

// Cap returns the writable capacity: InlineCap for inline buffers, the
// owned block's capacity for owned ones, and 0 for refs and views
// (they cannot be written in place).
func (b *Buffer) Cap() int {
	switch b.tag {
	case Inline:
		return InlineCap
	case Owned:
		return b.blk.capacity()
	default:
		return 0
	}
}

// Bytes returns the content without copying. For Inline and Owned the
// byte after the slice is the terminator; for Ref and View no
// terminator is guaranteed and the slice may have spare capacity past
// Len.
func (b *Buffer) Bytes() []byte {
	switch b.tag {
	case Inline:
		return b.ins[:b.ilen]
	case Owned:
		return b.blk.data[:b.n]
	case Ref:
		return b.blk.data[b.off : b.off+b.n]
	default:
		return b.ext[:b.n]
	}
}

// Data returns the address of the first content byte. An empty inline
// buffer points at its own (terminated) storage; a view over nil
// returns nil.
func (b *Buffer) Data() unsafe.Pointer {
	switch b.tag {
	case Inline:
		return unsafe.Pointer(&b.ins[0])
	case Owned:
		return unsafe.Pointer(unsafe.SliceData(b.blk.data))
	case Ref:
		return unsafe.Pointer(unsafe.SliceData(b.blk.data[b.off:]))
	default:
		return unsafe.Pointer(unsafe.SliceData(b.ext))
	}
}
