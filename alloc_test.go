package bstr

// Test allocators for deterministic out-of-memory and release
// accounting.

// failAlloc satisfies a fixed number of allocations and then fails
// every request.
type failAlloc struct {
	allow int
}

func (a *failAlloc) Alloc(size int) ([]byte, error) {
	if a.allow <= 0 {
		return nil, ErrOutOfMemory
	}
	a.allow--
	return make([]byte, size), nil
}

func (a *failAlloc) Free([]byte) {}

// countAlloc counts allocations and frees.
type countAlloc struct {
	allocs int
	frees  int
}

func (a *countAlloc) Alloc(size int) ([]byte, error) {
	a.allocs++
	return make([]byte, size), nil
}

func (a *countAlloc) Free([]byte) {
	a.frees++
}
