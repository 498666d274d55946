// Package pool provides a size-class allocator for bstr built on
// sync.Pool. Allocations are served from power-of-two classes and
// recycled on Free, trading zeroed storage for fewer heap allocations
// on hot construct/free paths.
package pool

import (
	"sync"

	"github.com/rawbytedev/bstr"
	"github.com/rawbytedev/bstr/internal/common"
)

const defaultClassCount = 26 // largest class 32MB

// Pool is a power-of-two size-class allocator. It satisfies
// bstr.Allocator; returned slices have unspecified content.
type Pool struct {
	classes []*sync.Pool
	maxSize int
}

var _ bstr.Allocator = (*Pool)(nil)

// New returns a Pool with the default class count.
func New() *Pool {
	return NewSize(defaultClassCount)
}

// NewSize returns a Pool with the given number of size classes; class
// i serves buffers of capacity 1<<i.
func NewSize(classes int) *Pool {
	if classes <= 0 || classes > 48 {
		panic("pool: invalid class count")
	}
	p := &Pool{
		classes: make([]*sync.Pool, classes),
		maxSize: 1 << (classes - 1),
	}
	for i := range p.classes {
		size := 1 << i
		p.classes[i] = &sync.Pool{New: func() any {
			return make([]byte, size)
		}}
	}
	return p
}

func (p *Pool) ind(size int) int {
	ind := 0
	for 1<<ind < size {
		ind++
	}
	return ind
}

// Alloc serves size bytes from the smallest class that fits. Requests
// beyond the largest class fall through to the heap and are not
// recycled.
func (p *Pool) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, nil
	}
	if size > p.maxSize {
		return make([]byte, size), nil
	}
	buf := p.classes[p.ind(size)].Get().([]byte)
	return buf[:size], nil
}

// Free recycles buf into its class. Buffers that did not come from a
// class (odd capacity or oversize) are dropped for the GC.
func (p *Pool) Free(buf []byte) {
	c := cap(buf)
	if c == 0 || c > p.maxSize || !common.IsPow2(c) {
		return
	}
	p.classes[p.ind(c)].Put(buf[:c])
}
