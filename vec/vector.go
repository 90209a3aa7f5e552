package vec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wilhasse/dynarray-go/mem"
)

var (
	// ErrIndexOutOfRange reports an access outside [0, Len()).
	ErrIndexOutOfRange = errors.New("vec: index out of range")
	// ErrEmpty reports a removal from a vector with no elements.
	ErrEmpty = errors.New("vec: empty vector")
)

// shrinkFloor is the capacity below which removals never shrink storage.
const shrinkFloor = 16

// Vec is a growable vector over one contiguous backing block. Live
// elements occupy the physical window [front, back); logical index i
// maps to physical index front+i, so front removal is a cursor bump
// rather than a slide. Vec is not safe for concurrent use without
// external synchronization.
type Vec[T any] struct {
	data  []T
	front int
	back  int
}

// Info is a diagnostic view of a vector. Data identifies the backing
// block for human inspection only; it is nil when capacity is zero.
type Info[T any] struct {
	Length   int
	Capacity int
	Data     *T
}

// New allocates a vector with room for capacity elements and length zero.
func New[T any](capacity int) (*Vec[T], error) {
	buf, err := mem.Alloc[T](capacity)
	if err != nil {
		return nil, err
	}
	return &Vec[T]{data: buf}, nil
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.back - v.front
}

// Cap returns the number of element slots in the backing block.
func (v *Vec[T]) Cap() int {
	if v == nil {
		return 0
	}
	return len(v.data)
}

// Get returns the element at logical index i.
func (v *Vec[T]) Get(i int) (T, error) {
	if i < 0 || i >= v.Len() {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	return v.data[v.front+i], nil
}

// Set overwrites the element at logical index i.
func (v *Vec[T]) Set(i int, val T) error {
	if i < 0 || i >= v.Len() {
		return ErrIndexOutOfRange
	}
	v.data[v.front+i] = val
	return nil
}

// At returns the element at index i without a bounds check. The caller
// must have validated 0 <= i < Len().
func (v *Vec[T]) At(i int) T {
	return v.data[v.front+i]
}

// Put overwrites the element at index i without a bounds check. The
// caller must have validated 0 <= i < Len().
func (v *Vec[T]) Put(i int, val T) {
	v.data[v.front+i] = val
}

// Append adds val as the new last element, growing storage as needed.
// Amortized O(1): growth doubles capacity, and an in-place slide only
// happens after at least Cap()/2 front removals.
func (v *Vec[T]) Append(val T) error {
	if v == nil {
		return nil
	}
	if v.back == len(v.data) {
		if err := v.makeRoom(); err != nil {
			return err
		}
	}
	v.data[v.back] = val
	v.back++
	return nil
}

// makeRoom frees up at least one tail slot, by sliding the live window
// to offset zero when enough leading slots are dead, otherwise by
// doubling the backing block.
func (v *Vec[T]) makeRoom() error {
	if v.front > 0 && v.front >= len(v.data)/2 {
		n := copy(v.data, v.data[v.front:v.back])
		clear(v.data[n:v.back])
		v.front, v.back = 0, n
		return nil
	}
	newCap := 2 * len(v.data)
	if newCap == 0 {
		newCap = 1
	}
	return v.realloc(newCap)
}

// realloc replaces the backing block with one of newCap slots, moving
// the live window to offset zero. The old block is retired exactly
// once, after the copy. newCap must be at least Len().
func (v *Vec[T]) realloc(newCap int) error {
	newData, err := mem.Alloc[T](newCap)
	if err != nil {
		return err
	}
	n := copy(newData, v.data[v.front:v.back])
	mem.Free(v.data)
	v.data = newData
	v.front, v.back = 0, n
	return nil
}

// PopBack removes and returns the last element. The element is removed
// even when a shrink reallocation fails; the failure is still reported.
func (v *Vec[T]) PopBack() (T, error) {
	var zero T
	if v.Len() == 0 {
		return zero, ErrEmpty
	}
	v.back--
	val := v.data[v.back]
	v.data[v.back] = zero
	if v.front == v.back {
		v.front, v.back = 0, 0
	}
	return val, v.maybeShrink()
}

// PopFront removes and returns the first element. Same shrink-failure
// contract as PopBack.
func (v *Vec[T]) PopFront() (T, error) {
	var zero T
	if v.Len() == 0 {
		return zero, ErrEmpty
	}
	val := v.data[v.front]
	v.data[v.front] = zero
	v.front++
	if v.front == v.back {
		v.front, v.back = 0, 0
	}
	return val, v.maybeShrink()
}

// maybeShrink halves the backing block when the vector is at most a
// quarter full and capacity is above the floor. The quarter-full
// trigger is strictly tighter than the grow-on-full trigger, so a
// grow is never immediately undone by the next removal.
func (v *Vec[T]) maybeShrink() error {
	capNow := len(v.data)
	if capNow <= shrinkFloor || v.Len() > capNow/4 {
		return nil
	}
	newCap := capNow / 2
	if newCap < shrinkFloor {
		newCap = shrinkFloor
	}
	return v.realloc(newCap)
}

// Slice returns the live window of the backing block. The slice is
// invalidated by any mutation of the vector.
func (v *Vec[T]) Slice() []T {
	if v == nil {
		return nil
	}
	return v.data[v.front:v.back]
}

// Info returns the diagnostic (length, capacity, block identity) triple.
func (v *Vec[T]) Info() Info[T] {
	info := Info[T]{Length: v.Len(), Capacity: v.Cap()}
	if v != nil && len(v.data) > 0 {
		info.Data = &v.data[0]
	}
	return info
}

// String renders the live elements as {e0, e1, ...}, {} when empty.
func (v *Vec[T]) String() string {
	if v == nil {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i := v.front; i < v.back; i++ {
		if i > v.front {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", v.data[i])
	}
	b.WriteByte('}')
	return b.String()
}

// Reset drops all elements while keeping the backing block.
func (v *Vec[T]) Reset() {
	if v == nil {
		return
	}
	clear(v.data[v.front:v.back])
	v.front, v.back = 0, 0
}

// Free releases the backing block. The vector is empty with zero
// capacity afterwards and may be reused.
func (v *Vec[T]) Free() {
	if v == nil {
		return
	}
	mem.Free(v.data)
	v.data = nil
	v.front, v.back = 0, 0
}
