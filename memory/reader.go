package memory

import (
	"errors"
	"math"
)

var ErrReadFailed = errors.New("read failed")

// Reader is the typed read capability over a foreign address space.
// Scalar reads never fail: an unreadable address yields the zero value,
// the same as a read through a stale pointer would. Only the array read
// reports failure, because callers use it to detect unsupported paths.
type Reader interface {
	ReadString(addr uintptr) string
	ReadFloat(addr uintptr) float32
	ReadBool(addr uintptr) bool
	ReadInt(addr uintptr) int32
	ReadInt64Array(addr uintptr, count int) ([]int64, error)
}

// ReadPointer dereferences one 64-bit pointer. Zero on failure.
func ReadPointer(r Reader, addr uintptr) uintptr {
	v, err := r.ReadInt64Array(addr, 1)
	if err != nil || len(v) == 0 {
		return 0
	}
	return uintptr(v[0])
}

// ReadFloats reads count consecutive float32 values.
func ReadFloats(r Reader, addr uintptr, count int) []float32 {
	out := make([]float32, count)
	for i := range out {
		out[i] = r.ReadFloat(addr + uintptr(i*4))
	}
	return out
}

// IsValidPtr rejects null, low and kernel-half addresses.
func IsValidPtr(ptr uintptr) bool {
	return ptr >= 0x10000 && uint64(ptr) < 0x7FFFFFFFFFFF
}

func IsValidCoord(val float32) bool {
	if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
		return false
	}
	return val > -100000 && val < 100000
}

// completeRead maps a ReadProcessMemory result to an error. A short read
// counts as a failure so callers never see zero padding as data.
func completeRead(ret, got, want uintptr) error {
	if ret == 0 || got != want {
		return ErrReadFailed
	}
	return nil
}

func cString(buf []byte) string {
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}
