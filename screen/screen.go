package screen

import (
	"github.com/go-gl/mathgl/mgl32"

	"orbwalker/memory"
)

// Matrix is the client's 4x4 matrix. The client stores row-major
// matrices for row vectors, which is the same memory layout as a
// column-major mgl32.Mat4 applied to column vectors.
type Matrix = mgl32.Mat4

func Identity() Matrix {
	return mgl32.Ident4()
}

type Viewport struct {
	Width, Height float32
}

type Point struct {
	X, Y float32
}

func (v Viewport) Contains(p Point) bool {
	return p.X >= 0 && p.X <= v.Width && p.Y >= 0 && p.Y <= v.Height
}

// WorldToScreen projects a world position (y is the vertical axis) into
// pixel coordinates. ok is false when the point is behind the camera.
func WorldToScreen(m Matrix, x, y, z float32, v Viewport) (Point, bool) {
	clip := m.Mul4x1(mgl32.Vec4{x, y, z, 1})
	w := clip.W()
	if w < 0.1 {
		return Point{}, false
	}

	ndcX := clip.X() / w
	ndcY := clip.Y() / w
	return Point{
		X: (ndcX + 1) * v.Width / 2,
		Y: (1 - ndcY) * v.Height / 2,
	}, true
}

// Frame binds one view-projection matrix to a viewport for the length of
// a poll cycle.
type Frame struct {
	Matrix   Matrix
	Viewport Viewport
}

func (f Frame) Project(x, y, z float32) (Point, bool) {
	return WorldToScreen(f.Matrix, x, y, z, f.Viewport)
}

// OnScreen reports whether the position projects inside the viewport.
func (f Frame) OnScreen(x, y, z float32) bool {
	p, ok := f.Project(x, y, z)
	return ok && f.Viewport.Contains(p)
}

// MemorySource reads the view matrix and the projection matrix stored
// back to back at Address and combines them into view then projection.
type MemorySource struct {
	Mem     memory.Reader
	Address uintptr
}

func (s MemorySource) ViewProjection() Matrix {
	var view, proj Matrix
	copy(view[:], memory.ReadFloats(s.Mem, s.Address, 16))
	copy(proj[:], memory.ReadFloats(s.Mem, s.Address+0x40, 16))
	return proj.Mul4(view)
}
