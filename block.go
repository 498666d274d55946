package bstr

import (
	"github.com/rawbytedev/bstr/internal/common"
)

// Allocator is the injected allocation capability. Alloc returns a
// slice of exactly size bytes (content unspecified, recycled
// allocators hand back dirty storage) or fails; Free hands storage
// back (a no-op for the garbage-collected default).
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Free(buf []byte)
}

// HeapAlloc allocates from the Go heap and lets the GC reclaim.
type HeapAlloc struct{}

func (HeapAlloc) Alloc(size int) ([]byte, error) { return make([]byte, size), nil }

func (HeapAlloc) Free([]byte) {}

var defaultAlloc Allocator = HeapAlloc{}

// SetAllocator swaps the package allocator used for new blocks.
// Passing nil restores the default heap allocator. Blocks free through
// the allocator they were born from, so swapping is safe while buffers
// from the previous allocator are still alive.
func SetAllocator(a Allocator) {
	if a == nil {
		a = HeapAlloc{}
	}
	defaultAlloc = a
}

// block is the shared backing store for Owned and Ref buffers. It is
// released exactly once: when the refcount is zero and the owner has
// relinquished it, whichever happens last.
type block struct {
	data []byte // full allocation, capacity()+1 bytes

	refs      int
	ownerGone bool
	owner     *Buffer // reset target while a deferred release is pending

	alloc Allocator
}

// allocBlock reserves storage for size content bytes plus the
// terminator, rounded up to the next power of two.
func allocBlock(size int) (*block, error) {
	data, err := defaultAlloc.Alloc(common.NextPow2(size + 1))
	if err != nil {
		return nil, ErrOutOfMemory
	}
	return &block{data: data, alloc: defaultAlloc}, nil
}

func (k *block) capacity() int {
	return len(k.data) - 1
}

func (k *block) terminate(n int) {
	k.data[n] = 0
}

// grow moves the block to a larger allocation. The old data address is
// invalidated; callers must ensure no ref still points at it.
func (k *block) grow(size int) error {
	data, err := k.alloc.Alloc(common.NextPow2(size + 1))
	if err != nil {
		return ErrOutOfMemory
	}
	copy(data, k.data)
	old := k.data
	k.data = data
	k.alloc.Free(old)
	return nil
}

func (k *block) release() {
	k.alloc.Free(k.data)
	k.data = nil
}

// dropRef gives back one reference. The last ref of a relinquished
// block finishes the deferred release: the stale owner handle (if one
// is recorded) is reset to an empty inline buffer and the storage goes
// back to the allocator.
func (k *block) dropRef() {
	k.refs--
	if k.refs > 0 || !k.ownerGone {
		return
	}
	if k.owner != nil {
		*k.owner = Buffer{}
		k.owner = nil
	}
	k.release()
}
