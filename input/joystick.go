package input

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/tidewake/parameter"
	"github.com/lixenwraith/tidewake/vmath"
)

// ErrInvalidDisplacement rejects NaN/Inf joystick input; state is left untouched
var ErrInvalidDisplacement = errors.New("invalid joystick displacement")

// Joystick is the virtual touch stick
// Displacement is measured from the stick center in screen pixels, +Y down
type Joystick struct {
	Active       bool
	Displacement mgl64.Vec2
	MaxRadius    float64
	DeadZone     float64
}

// NewJoystick creates a released stick, maxRadius is floored at JoystickMinRadius
func NewJoystick(maxRadius, deadZone float64) *Joystick {
	j := &Joystick{DeadZone: deadZone}
	j.SetMaxRadius(maxRadius)
	return j
}

// SetMaxRadius updates travel (viewport resize), re-clamping any held displacement
func (j *Joystick) SetMaxRadius(r float64) {
	if !vmath.Finite(r) || r < parameter.JoystickMinRadius {
		r = parameter.JoystickMinRadius
	}
	j.MaxRadius = r
	j.Displacement = clampMagnitude(j.Displacement, r)
}

// Move sets the displacement, clamped to MaxRadius, and activates the stick
func (j *Joystick) Move(d mgl64.Vec2) error {
	if !vmath.Finite(d.X(), d.Y()) {
		return ErrInvalidDisplacement
	}
	j.Active = true
	j.Displacement = clampMagnitude(d, j.MaxRadius)
	return nil
}

// Release recenters the stick; State becomes empty
func (j *Joystick) Release() {
	j.Active = false
	j.Displacement = mgl64.Vec2{}
}

// Normalized returns displacement scaled into the unit disc
func (j *Joystick) Normalized() mgl64.Vec2 {
	r := max(j.MaxRadius, parameter.JoystickMinRadius)
	return j.Displacement.Mul(1 / r)
}

// State converts the normalized axes through the dead zone, each axis independently
func (j *Joystick) State() State {
	if !j.Active {
		return State{}
	}
	n := j.Normalized()
	dz := j.DeadZone
	return State{
		Up:    n.Y() < -dz,
		Down:  n.Y() > dz,
		Left:  n.X() < -dz,
		Right: n.X() > dz,
	}
}

func clampMagnitude(v mgl64.Vec2, r float64) mgl64.Vec2 {
	l := v.Len()
	if l <= r || l == 0 {
		return v
	}
	return v.Mul(r / l)
}
