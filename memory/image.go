package memory

import (
	"encoding/binary"
	"math"

	"orbwalker/config"
)

// Image is a sparse little-endian address space held in memory. It
// implements Reader so snapshots can be replayed or faked without a
// live process. Unmapped bytes read as zero.
type Image struct {
	bytes map[uintptr]byte
}

func NewImage() *Image {
	return &Image{bytes: make(map[uintptr]byte)}
}

func (m *Image) Put(addr uintptr, b []byte) {
	for i, v := range b {
		m.bytes[addr+uintptr(i)] = v
	}
}

func (m *Image) PutFloat(addr uintptr, v float32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
	m.Put(addr, b[:])
}

func (m *Image) PutInt(addr uintptr, v int32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	m.Put(addr, b[:])
}

func (m *Image) PutBool(addr uintptr, v bool) {
	var b byte
	if v {
		b = 1
	}
	m.Put(addr, []byte{b})
}

func (m *Image) PutInt64(addr uintptr, v int64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	m.Put(addr, b[:])
}

func (m *Image) PutPointer(addr, target uintptr) {
	m.PutInt64(addr, int64(target))
}

// PutString writes s followed by a terminating zero.
func (m *Image) PutString(addr uintptr, s string) {
	m.Put(addr, append([]byte(s), 0))
}

func (m *Image) read(addr uintptr, n int) ([]byte, bool) {
	buf := make([]byte, n)
	mapped := true
	for i := range buf {
		v, ok := m.bytes[addr+uintptr(i)]
		if !ok {
			mapped = false
		}
		buf[i] = v
	}
	return buf, mapped
}

func (m *Image) ReadString(addr uintptr) string {
	buf, _ := m.read(addr, config.NAME_MAX_LEN)
	return cString(buf)
}

func (m *Image) ReadFloat(addr uintptr) float32 {
	buf, _ := m.read(addr, 4)
	return math.Float32frombits(binary.LittleEndian.Uint32(buf))
}

func (m *Image) ReadBool(addr uintptr) bool {
	buf, _ := m.read(addr, 1)
	return buf[0] != 0
}

func (m *Image) ReadInt(addr uintptr) int32 {
	buf, _ := m.read(addr, 4)
	return int32(binary.LittleEndian.Uint32(buf))
}

func (m *Image) ReadInt64Array(addr uintptr, count int) ([]int64, error) {
	if count <= 0 {
		return nil, nil
	}
	buf, mapped := m.read(addr, count*8)
	if !mapped {
		return nil, ErrReadFailed
	}
	out := make([]int64, count)
	for i := range out {
		out[i] = int64(binary.LittleEndian.Uint64(buf[i*8:]))
	}
	return out, nil
}
