package bstr

// Append writes p after the current content and returns the new
// length. The representation may change underneath: inline content
// promotes to Owned when it outgrows the inline capacity, and refs and
// views detach onto their own storage before mutating (the slice
// target is never written through).
//
// An Owned buffer grows in place while it has spare capacity; refs
// into it simply observe the longer content. When growth is needed and
// live refs exist, the owner copies itself onto a fresh block instead
// of reallocating under the refs: they keep reading the old block,
// which is released by the last Free as if the owner had relinquished
// it.
//
// On ErrOutOfMemory the buffer is left unmodified.
func (b *Buffer) Append(p []byte) (int, error) {
	switch b.tag {
	case Inline:
		return b.appendInline(p)
	case Owned:
		return b.appendOwned(p)
	default:
		return b.appendDetach(p)
	}
}

// AppendString is Append for string content.
func (b *Buffer) AppendString(s string) (int, error) {
	return b.Append([]byte(s))
}

func (b *Buffer) appendInline(p []byte) (int, error) {
	total := int(b.ilen) + len(p)
	if total <= InlineCap {
		copy(b.ins[b.ilen:], p)
		b.ins[total] = 0
		b.ilen = uint8(total)
		return total, nil
	}
	blk, err := allocBlock(total)
	if err != nil {
		return 0, err
	}
	w := copy(blk.data, b.ins[:b.ilen])
	copy(blk.data[w:], p)
	blk.terminate(total)
	*b = Buffer{tag: Owned, blk: blk, n: total}
	return total, nil
}

func (b *Buffer) appendOwned(p []byte) (int, error) {
	blk := b.blk
	total := b.n + len(p)
	if total > blk.capacity() {
		if blk.refs > 0 {
			return b.appendCopyOnWrite(p, total)
		}
		if err := blk.grow(total); err != nil {
			return 0, err
		}
	}
	copy(blk.data[b.n:], p)
	blk.terminate(total)
	b.n = total
	return total, nil
}

// appendCopyOnWrite detaches the owner onto a fresh block so the old
// one keeps its address for the live refs. The old block behaves as if
// the owner had freed it: the last ref's Free releases it, with no
// reset target since this handle lives on.
func (b *Buffer) appendCopyOnWrite(p []byte, total int) (int, error) {
	blk, err := allocBlock(total)
	if err != nil {
		return 0, err
	}
	w := copy(blk.data, b.blk.data[:b.n])
	copy(blk.data[w:], p)
	blk.terminate(total)

	b.blk.ownerGone = true
	b.blk.owner = nil
	b.blk = blk
	b.n = total
	return total, nil
}

func (b *Buffer) appendDetach(p []byte) (int, error) {
	cur := b.Bytes()
	total := len(cur) + len(p)
	blk, err := allocBlock(total)
	if err != nil {
		return 0, err
	}
	w := copy(blk.data, cur)
	copy(blk.data[w:], p)
	blk.terminate(total)

	old := b.blk
	*b = Buffer{tag: Owned, blk: blk, n: total}
	if old != nil {
		old.dropRef()
	}
	return total, nil
}
