package bstr

// checkRange validates a slice request against the current length.
// Written so off+n cannot overflow: off is bounded first, then n is
// compared against the remaining room.
func (b *Buffer) checkRange(off, n int) error {
	l := b.Len()
	if off < 0 || n < 0 || off > l || n > l-off {
		return ErrOutOfRange
	}
	return nil
}

// CopySlice returns an independent copy of n bytes starting at off.
// The result never aliases b. Fails with ErrOutOfRange or
// ErrOutOfMemory.
func (b *Buffer) CopySlice(off, n int) (*Buffer, error) {
	if err := b.checkRange(off, n); err != nil {
		return nil, err
	}
	return NewCopy(b.Bytes()[off : off+n])
}

// ViewSlice returns a zero-copy slice of n bytes starting at off.
//
// Slicing an Owned buffer yields a Ref that holds one unit of the
// block's refcount; the block outlives the owner's Free until the last
// such Ref is freed. Slicing a Ref yields another Ref on the same
// origin block with the offsets added, so chains never deepen.
// Slicing an Inline buffer or a View yields a View straight into the
// source bytes with no lifetime tracking: the source must outlive the
// result.
func (b *Buffer) ViewSlice(off, n int) (*Buffer, error) {
	if err := b.checkRange(off, n); err != nil {
		return nil, err
	}
	switch b.tag {
	case Owned:
		b.blk.refs++
		return &Buffer{tag: Ref, blk: b.blk, off: off, n: n}, nil
	case Ref:
		b.blk.refs++
		return &Buffer{tag: Ref, blk: b.blk, off: b.off + off, n: n}, nil
	default:
		return &Buffer{tag: View, ext: b.Bytes()[off:], n: n}, nil
	}
}

// Free disposes the buffer and resets it to an empty inline value.
//
// Freeing an Owned buffer while refs on its block are alive defers the
// block's release to the last Ref's Free; until then the refs keep
// reading valid bytes, and the moment the last one goes this handle is
// reset again in place (it must not be reused before that). Freeing an
// already-empty buffer is a no-op, so Free is idempotent.
func (b *Buffer) Free() {
	switch b.tag {
	case Ref:
		blk := b.blk
		*b = Buffer{}
		blk.dropRef()
	case Owned:
		blk := b.blk
		*b = Buffer{}
		if blk.refs == 0 {
			blk.release()
			return
		}
		blk.ownerGone = true
		blk.owner = b
	default:
		*b = Buffer{}
	}
}
