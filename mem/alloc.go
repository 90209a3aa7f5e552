package mem

import (
	"errors"
	"unsafe"
)

// ErrOutOfMemory reports that a backing block could not be obtained.
var ErrOutOfMemory = errors.New("mem: allocation failed")

// TotalAllocated tracks bytes currently allocated via mem helpers.
var TotalAllocated int64

// ResetStats resets memory tracking.
func ResetStats() {
	TotalAllocated = 0
}

func sizeOf[T any]() int64 {
	var zero T
	return int64(unsafe.Sizeof(zero))
}

// Alloc allocates a block of n element slots.
func Alloc[T any](n int) (buf []T, err error) {
	if n < 0 {
		return nil, errors.New("mem: negative allocation size")
	}
	defer func() {
		if recover() != nil {
			buf = nil
			err = ErrOutOfMemory
		}
	}()
	buf = make([]T, n)
	TotalAllocated += int64(n) * sizeOf[T]()
	return buf, nil
}

// Free releases a block and updates counters. The Go runtime reclaims
// the storage; only the bookkeeping is immediate.
func Free[T any](buf []T) {
	if buf == nil {
		return
	}
	TotalAllocated -= int64(len(buf)) * sizeOf[T]()
}

// Realloc resizes a block, copying the previous contents. The old block
// is freed once the new one holds the data.
func Realloc[T any](buf []T, n int) ([]T, error) {
	newBuf, err := Alloc[T](n)
	if err != nil {
		return nil, err
	}
	copy(newBuf, buf)
	Free(buf)
	return newBuf, nil
}
