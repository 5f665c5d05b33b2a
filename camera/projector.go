package camera

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/tidewake/vmath"
)

// Projector maps viewport coordinates to a world-space ray and back
type Projector interface {
	// Ray returns the world ray through viewport point (x, y), origin top-left
	Ray(x, y float64) (vmath.Ray, error)
	// Project maps a world point to viewport coordinates; ok is false when behind the viewer
	Project(p mgl64.Vec3) (x, y float64, ok bool)
}

func validatePointer(x, y, w, h float64) error {
	if !vmath.Finite(x, y) {
		return fmt.Errorf("pointer (%v, %v): %w", x, y, ErrInvalidPointer)
	}
	if !vmath.Finite(w, h) || w <= 0 || h <= 0 {
		return fmt.Errorf("viewport %vx%v: %w", w, h, ErrDegenerateViewport)
	}
	if x < 0 || y < 0 || x > w || y > h {
		return fmt.Errorf("pointer (%v, %v) outside %vx%v: %w", x, y, w, h, ErrInvalidPointer)
	}
	return nil
}

// Perspective is a pinhole camera at a Pose
type Perspective struct {
	Pose   Pose
	FOV    float64 // vertical, degrees
	Near   float64
	Far    float64
	Width  float64
	Height float64
}

// View returns the world-to-camera matrix
func (p Perspective) View() mgl64.Mat4 {
	return mgl64.LookAtV(p.Pose.Position, p.Pose.LookAt, mgl64.Vec3{0, 1, 0})
}

// Projection returns the camera-to-clip matrix
func (p Perspective) Projection() mgl64.Mat4 {
	aspect := 1.0
	if p.Height > 0 {
		aspect = p.Width / p.Height
	}
	return mgl64.Perspective(mgl64.DegToRad(p.FOV), aspect, p.Near, p.Far)
}

func (p Perspective) Ray(x, y float64) (vmath.Ray, error) {
	if err := validatePointer(x, y, p.Width, p.Height); err != nil {
		return vmath.Ray{}, err
	}
	nx := 2*x/p.Width - 1
	ny := 1 - 2*y/p.Height

	inv := p.Projection().Mul4(p.View()).Inv()
	near := mgl64.TransformCoordinate(mgl64.Vec3{nx, ny, -1}, inv)
	far := mgl64.TransformCoordinate(mgl64.Vec3{nx, ny, 1}, inv)
	dir := far.Sub(near)
	if dir.Len() == 0 || !vmath.Finite(dir.X(), dir.Y(), dir.Z()) {
		return vmath.Ray{}, fmt.Errorf("unproject (%v, %v): %w", x, y, ErrDegenerateViewport)
	}
	return vmath.Ray{Origin: near, Dir: dir.Normalize()}, nil
}

func (p Perspective) Project(w mgl64.Vec3) (float64, float64, bool) {
	clip := p.Projection().Mul4(p.View()).Mul4x1(w.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	nx, ny := clip.X()/clip.W(), clip.Y()/clip.W()
	return (nx + 1) / 2 * p.Width, (1 - ny) / 2 * p.Height, true
}

// TopDown is an orthographic overhead view, +X right and +Z down the screen
// CellAspect is the height of one row in column widths, about 2 for terminals
type TopDown struct {
	Center     mgl64.Vec2 // world (x, z) at the viewport center
	Span       float64    // world units across the viewport width
	Width      float64
	Height     float64
	CellAspect float64
}

const topDownAltitude = 1000.0

func (t TopDown) unitsPerColumn() float64 {
	if t.Width <= 0 {
		return 0
	}
	return t.Span / t.Width
}

func (t TopDown) unitsPerRow() float64 {
	aspect := t.CellAspect
	if aspect <= 0 {
		aspect = 1
	}
	return t.unitsPerColumn() * aspect
}

// World maps viewport coordinates to world (x, z)
func (t TopDown) World(x, y float64) mgl64.Vec2 {
	return mgl64.Vec2{
		t.Center.X() + (x-t.Width/2)*t.unitsPerColumn(),
		t.Center.Y() + (y-t.Height/2)*t.unitsPerRow(),
	}
}

func (t TopDown) Ray(x, y float64) (vmath.Ray, error) {
	if err := validatePointer(x, y, t.Width, t.Height); err != nil {
		return vmath.Ray{}, err
	}
	if t.Span <= 0 {
		return vmath.Ray{}, fmt.Errorf("top-down span %v: %w", t.Span, ErrDegenerateViewport)
	}
	w := t.World(x, y)
	return vmath.Ray{
		Origin: mgl64.Vec3{w.X(), topDownAltitude, w.Y()},
		Dir:    mgl64.Vec3{0, -1, 0},
	}, nil
}

func (t TopDown) Project(w mgl64.Vec3) (float64, float64, bool) {
	upc, upr := t.unitsPerColumn(), t.unitsPerRow()
	if upc == 0 {
		return 0, 0, false
	}
	return t.Width/2 + (w.X()-t.Center.X())/upc, t.Height/2 + (w.Z()-t.Center.Y())/upr, true
}
