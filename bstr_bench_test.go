package bstr

import (
	"bytes"
	"testing"
)

func BenchmarkInlineConstruct(b *testing.B) {
	p := []byte("short value")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf, _ := NewCopy(p)
		buf.Free()
	}
}

func BenchmarkHeapConstructFree(b *testing.B) {
	p := bytes.Repeat([]byte{'a'}, 256)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf, _ := NewCopy(p)
		buf.Free()
	}
}

func BenchmarkViewSlice(b *testing.B) {
	owner, _ := NewCopy(bytes.Repeat([]byte{'a'}, 256))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r, _ := owner.ViewSlice(16, 64)
		r.Free()
	}
}

func BenchmarkAppendInline(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var buf Buffer
		buf.Append([]byte("abcdef"))
	}
}

func BenchmarkAppendGrowth(b *testing.B) {
	chunk := bytes.Repeat([]byte{'x'}, 64)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var buf Buffer
		for j := 0; j < 16; j++ {
			buf.Append(chunk)
		}
		buf.Free()
	}
}
