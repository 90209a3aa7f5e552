package mem

import "testing"

func TestAllocFreeAndRealloc(t *testing.T) {
	ResetStats()
	buf, err := Alloc[int32](10)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if len(buf) != 10 || TotalAllocated != 40 {
		t.Fatalf("alloc len=%d total=%d", len(buf), TotalAllocated)
	}
	buf[9] = 7
	buf, err = Realloc(buf, 20)
	if err != nil {
		t.Fatalf("Realloc: %v", err)
	}
	if len(buf) != 20 || TotalAllocated != 80 {
		t.Fatalf("realloc len=%d total=%d", len(buf), TotalAllocated)
	}
	if buf[9] != 7 {
		t.Fatalf("realloc lost contents: %d", buf[9])
	}
	Free(buf)
	if TotalAllocated != 0 {
		t.Fatalf("total=%d", TotalAllocated)
	}
}

func TestAllocNegative(t *testing.T) {
	if _, err := Alloc[byte](-1); err == nil {
		t.Fatalf("expected error for negative size")
	}
}

func TestAllocZeroLength(t *testing.T) {
	ResetStats()
	buf, err := Alloc[byte](0)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if len(buf) != 0 || TotalAllocated != 0 {
		t.Fatalf("len=%d total=%d", len(buf), TotalAllocated)
	}
}

func TestAllocFailureIsReported(t *testing.T) {
	// A length beyond the address space makes the runtime panic inside
	// make; Alloc must turn that into an error instead.
	if _, err := Alloc[int64](int(^uint(0) >> 2)); err == nil {
		t.Fatalf("expected allocation failure")
	}
}
