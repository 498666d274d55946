package bstr

import (
	"fmt"

	"github.com/rawbytedev/bstr/internal/common"
)

// CString returns the content as a terminated slice: Len()+1 bytes
// with a trailing NUL. Inline and Owned buffers hand out their
// existing storage (mustFree false); Refs and Views have no terminator
// of their own, so a fresh terminated copy is allocated and mustFree
// is true — the caller gives it back with FreeExported.
func (b *Buffer) CString() (buf []byte, mustFree bool, err error) {
	switch b.tag {
	case Inline:
		return b.ins[:b.ilen+1], false, nil
	case Owned:
		return b.blk.data[:b.n+1], false, nil
	default:
		buf, err = b.exportTerminated()
		return buf, true, err
	}
}

// Export returns a freshly allocated terminated copy of the content,
// regardless of representation. The caller owns it and gives it back
// with FreeExported.
func (b *Buffer) Export() ([]byte, error) {
	return b.exportTerminated()
}

// FreeExported hands a copy returned by Export, or by CString with
// mustFree set, back to the package allocator. Under the default heap
// allocator this is a no-op (the GC reclaims the copy), and recycling
// allocators may decline odd-sized buffers; skipping the call is then
// a leak only for allocators that track every allocation.
func FreeExported(buf []byte) {
	defaultAlloc.Free(buf)
}

func (b *Buffer) exportTerminated() ([]byte, error) {
	src := b.Bytes()
	out, err := defaultAlloc.Alloc(len(src) + 1)
	if err != nil {
		return nil, ErrOutOfMemory
	}
	copy(out, src)
	out[len(src)] = 0
	return out, nil
}

// String renders a debug dump of the handle. Read-only; long content
// is truncated.
func (b *Buffer) String() string {
	return fmt.Sprintf("bstr{%s len=%d cap=%d %s}",
		b.tag, b.Len(), b.Cap(), common.Preview(b.Bytes(), 32))
}
