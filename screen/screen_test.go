package screen

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"orbwalker/memory"
)

var viewport = Viewport{Width: 1920, Height: 1080}

func TestWorldToScreenCenter(t *testing.T) {
	p, ok := WorldToScreen(Identity(), 0, 0, 0, viewport)
	if !ok {
		t.Fatal("origin rejected")
	}
	if p.X != 960 || p.Y != 540 {
		t.Errorf("origin -> %+v, want center", p)
	}
}

func TestWorldToScreenBehindCamera(t *testing.T) {
	m := Identity()
	m[15] = 0
	m[11] = 1 // w = z
	if _, ok := WorldToScreen(m, 0, 0, -5, viewport); ok {
		t.Error("point behind camera accepted")
	}
}

func TestFrameOnScreen(t *testing.T) {
	f := Frame{Matrix: Identity(), Viewport: viewport}
	tests := []struct {
		x, y float32
		want bool
	}{
		{0, 0, true},
		{0.5, -0.5, true},
		{1, 1, true},
		{1.5, 0, false},
		{0, -2, false},
	}
	for _, tc := range tests {
		if got := f.OnScreen(tc.x, tc.y, 0); got != tc.want {
			t.Errorf("OnScreen(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestMemorySourceCombinesMatrices(t *testing.T) {
	m := memory.NewImage()
	base := uintptr(0x5000)
	scale := Identity()
	scale[0], scale[5] = 2, 3
	for i := 0; i < 16; i++ {
		m.PutFloat(base+uintptr(i*4), Identity()[i])
		m.PutFloat(base+0x40+uintptr(i*4), scale[i])
	}

	got := MemorySource{Mem: m, Address: base}.ViewProjection()
	if got != scale {
		t.Errorf("ViewProjection = %v, want %v", got, scale)
	}
}

func TestViewProjectionAppliesViewFirst(t *testing.T) {
	m := memory.NewImage()
	base := uintptr(0x6000)
	view := mgl32.Translate3D(0.25, 0, 0)
	proj := mgl32.Scale3D(2, 2, 1)
	for i := 0; i < 16; i++ {
		m.PutFloat(base+uintptr(i*4), view[i])
		m.PutFloat(base+0x40+uintptr(i*4), proj[i])
	}

	f := Frame{Matrix: MemorySource{Mem: m, Address: base}.ViewProjection(), Viewport: viewport}
	p, ok := f.Project(0, 0, 0)
	if !ok {
		t.Fatal("origin rejected")
	}
	// translate then scale: x = 0.5 in clip space
	if p.X != 1440 || p.Y != 540 {
		t.Errorf("origin -> %+v, want {1440 540}", p)
	}
}
