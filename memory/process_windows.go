//go:build windows

package memory

import (
	"math"
	"unsafe"

	"golang.org/x/sys/windows"

	"orbwalker/config"
)

var (
	kernel32              = windows.NewLazySystemDLL("kernel32.dll")
	ProcReadProcessMemory = kernel32.NewProc("ReadProcessMemory")
)

// ProcessReader reads another process through ReadProcessMemory.
type ProcessReader struct {
	Handle windows.Handle
}

func NewProcessReader(handle windows.Handle) *ProcessReader {
	return &ProcessReader{Handle: handle}
}

func (p *ProcessReader) ReadMemoryBytes(addr uintptr, buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	var bytesRead uintptr
	ret, _, _ := ProcReadProcessMemory.Call(
		uintptr(p.Handle),
		addr,
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		uintptr(unsafe.Pointer(&bytesRead)),
	)
	return completeRead(ret, bytesRead, uintptr(len(buf)))
}

func (p *ProcessReader) ReadString(addr uintptr) string {
	buf := make([]byte, config.NAME_MAX_LEN)
	if p.ReadMemoryBytes(addr, buf) != nil {
		return ""
	}
	return cString(buf)
}

func (p *ProcessReader) ReadFloat(addr uintptr) float32 {
	return math.Float32frombits(uint32(p.ReadInt(addr)))
}

func (p *ProcessReader) ReadBool(addr uintptr) bool {
	var v byte
	ProcReadProcessMemory.Call(uintptr(p.Handle), addr, uintptr(unsafe.Pointer(&v)), 1, 0)
	return v != 0
}

func (p *ProcessReader) ReadInt(addr uintptr) int32 {
	var v int32
	ProcReadProcessMemory.Call(uintptr(p.Handle), addr, uintptr(unsafe.Pointer(&v)), 4, 0)
	return v
}

func (p *ProcessReader) ReadInt64Array(addr uintptr, count int) ([]int64, error) {
	if count <= 0 {
		return nil, nil
	}
	out := make([]int64, count)
	var bytesRead uintptr
	ret, _, _ := ProcReadProcessMemory.Call(
		uintptr(p.Handle),
		addr,
		uintptr(unsafe.Pointer(&out[0])),
		uintptr(count*8),
		uintptr(unsafe.Pointer(&bytesRead)),
	)
	if err := completeRead(ret, bytesRead, uintptr(count*8)); err != nil {
		return nil, err
	}
	return out, nil
}
