// Package camera computes the viewing pose each tick and turns screen
// coordinates back into world rays for hit-testing.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/tidewake/core"
	"github.com/lixenwraith/tidewake/parameter"
	"github.com/lixenwraith/tidewake/physics"
	"github.com/lixenwraith/tidewake/vmath"
)

// Mode selects between the static orbit and the chase camera
type Mode uint8

const (
	ModeStatic Mode = iota
	ModeFollow
)

func (m Mode) String() string {
	if m == ModeFollow {
		return "follow"
	}
	return "static"
}

// Pose is where the camera sits and what it looks at
type Pose struct {
	Position mgl64.Vec3
	LookAt   mgl64.Vec3
}

// DefaultPose is the static orbit's resting pose
func DefaultPose() Pose {
	return Pose{
		Position: mgl64.Vec3(parameter.CameraDefaultPosition),
		LookAt:   mgl64.Vec3(parameter.CameraDefaultTarget),
	}
}

// Forward returns the unit view direction, or -Z when the pose is degenerate
func (p Pose) Forward() mgl64.Vec3 {
	d := p.LookAt.Sub(p.Position)
	if d.Len() < 1e-12 {
		return mgl64.Vec3{0, 0, -1}
	}
	return d.Normalize()
}

// Controller owns the camera mode and recomputes the pose every tick
type Controller struct {
	mode       Mode
	preset     Preset
	home       Pose
	orbitSpeed float64
	orbitAngle float64
	yawDamping float64
	pose       Pose
}

// NewController starts in static mode at the home pose
func NewController(home Pose, orbitSpeed, yawDamping float64) *Controller {
	c := &Controller{
		home:       home,
		orbitSpeed: orbitSpeed,
		yawDamping: yawDamping,
		preset:     DesktopPreset(),
	}
	c.Reset()
	return c
}

// NewDefaultController uses the parameter pose and rates
func NewDefaultController() *Controller {
	return NewController(DefaultPose(), parameter.CameraAutoRotateSpeed, parameter.CameraYawDamping)
}

func (c *Controller) Mode() Mode     { return c.mode }
func (c *Controller) Pose() Pose     { return c.pose }
func (c *Controller) Preset() Preset { return c.preset }

// Follow switches to the chase camera with the given preset
func (c *Controller) Follow(p Preset) {
	c.mode = ModeFollow
	c.preset = p
}

// Reset returns to the static orbit at the home pose, dropping any orbit progress
func (c *Controller) Reset() {
	c.mode = ModeStatic
	c.orbitAngle = 0
	c.pose = c.home
}

// Update recomputes the pose from scratch
// Static mode orbits the home target at orbitSpeed; follow mode trails the transform
func (c *Controller) Update(target core.Transform, dt float64) Pose {
	switch c.mode {
	case ModeFollow:
		c.pose = Chase(target, c.preset, c.yawDamping)
	default:
		c.orbitAngle = vmath.WrapAngle(c.orbitAngle + c.orbitSpeed*dt)
		c.pose = orbit(c.home, c.orbitAngle)
	}
	return c.pose
}

// Chase computes the follow pose behind a transform
func Chase(target core.Transform, p Preset, yawDamping float64) Pose {
	pos := target.Position
	behind := physics.Forward3(target.Yaw).Mul(p.Distance)
	ahead := physics.Forward3(target.Yaw * yawDamping).Mul(p.LookAhead)
	return Pose{
		Position: pos.Sub(behind).Add(mgl64.Vec3{0, p.Height, 0}),
		LookAt:   pos.Add(ahead).Add(mgl64.Vec3{0, p.LookHeight, 0}),
	}
}

func orbit(home Pose, angle float64) Pose {
	if angle == 0 {
		return home
	}
	offset := home.Position.Sub(home.LookAt)
	s, c := math.Sincos(angle)
	rotated := mgl64.Vec3{
		offset.X()*c + offset.Z()*s,
		offset.Y(),
		-offset.X()*s + offset.Z()*c,
	}
	return Pose{Position: home.LookAt.Add(rotated), LookAt: home.LookAt}
}
