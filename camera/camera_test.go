package camera

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tidewake/core"
)

func TestStaticHoldsDefaultPose(t *testing.T) {
	c := NewDefaultController()
	for i := 0; i < 10; i++ {
		c.Update(core.Transform{Position: mgl64.Vec3{30, 1, 30}, Yaw: 1}, 1.0/60)
	}
	assert.Equal(t, ModeStatic, c.Mode())
	assert.Equal(t, DefaultPose(), c.Pose())
	assert.Equal(t, mgl64.Vec3{0, 25, 50}, c.Pose().Position)
}

func TestStaticOrbitKeepsRadius(t *testing.T) {
	c := NewController(DefaultPose(), 0.5, 0.3)
	home := DefaultPose()
	r := home.Position.Sub(home.LookAt).Len()
	p := c.Update(core.Transform{}, 1)
	assert.InDelta(t, r, p.Position.Sub(p.LookAt).Len(), 1e-9)
	assert.InDelta(t, home.Position.Y(), p.Position.Y(), 1e-12)
	assert.NotEqual(t, home.Position, p.Position)
}

func TestChaseFromBehind(t *testing.T) {
	p := DesktopPreset()
	pose := Chase(core.Transform{Position: mgl64.Vec3{0, 0, 0}, Yaw: 0}, p, 0.3)
	assert.InDelta(t, 0.0, pose.Position.X(), 1e-12)
	assert.InDelta(t, p.Height, pose.Position.Y(), 1e-12)
	assert.InDelta(t, -p.Distance, pose.Position.Z(), 1e-12)
	assert.InDelta(t, p.LookAhead, pose.LookAt.Z(), 1e-12)
	assert.InDelta(t, p.LookHeight, pose.LookAt.Y(), 1e-12)
}

func TestChaseDampsLookYaw(t *testing.T) {
	p := DesktopPreset()
	yaw := math.Pi / 2
	pose := Chase(core.Transform{Yaw: yaw}, p, 0.3)
	assert.InDelta(t, -p.Distance, pose.Position.X(), 1e-9)
	assert.InDelta(t, p.LookAhead*math.Sin(0.3*yaw), pose.LookAt.X(), 1e-9)
	assert.InDelta(t, p.LookAhead*math.Cos(0.3*yaw), pose.LookAt.Z(), 1e-9)
}

func TestFollowThenReset(t *testing.T) {
	c := NewDefaultController()
	c.Follow(TouchPreset())
	tr := core.Transform{Position: mgl64.Vec3{10, 1, -5}, Yaw: 0.4}
	got := c.Update(tr, 1.0/60)
	assert.Equal(t, ModeFollow, c.Mode())
	assert.Equal(t, Chase(tr, TouchPreset(), 0.3), got)

	c.Reset()
	assert.Equal(t, ModeStatic, c.Mode())
	assert.Equal(t, DefaultPose(), c.Pose())
}

func TestPresetByName(t *testing.T) {
	p, err := PresetByName("touch")
	require.NoError(t, err)
	assert.Equal(t, TouchPreset(), p)

	p, err = PresetByName("")
	require.NoError(t, err)
	assert.Equal(t, DesktopPreset(), p)

	_, err = PresetByName("vr")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func testPerspective() Perspective {
	return Perspective{Pose: DefaultPose(), FOV: 60, Near: 0.1, Far: 1000, Width: 800, Height: 600}
}

func TestPerspectiveCenterRay(t *testing.T) {
	p := testPerspective()
	r, err := p.Ray(400, 300)
	require.NoError(t, err)
	fwd := p.Pose.Forward()
	assert.InDelta(t, 1.0, r.Dir.Dot(fwd), 1e-9)
}

func TestPerspectiveRoundTrip(t *testing.T) {
	p := testPerspective()
	x, y, ok := p.Project(mgl64.Vec3{5, 0, 3})
	require.True(t, ok)
	r, err := p.Ray(x, y)
	require.NoError(t, err)
	hit, ok := r.IntersectPlaneY(0)
	require.True(t, ok)
	assert.InDelta(t, 5.0, hit.X(), 1e-6)
	assert.InDelta(t, 3.0, hit.Z(), 1e-6)
}

func TestPerspectiveRejectsBadPointer(t *testing.T) {
	p := testPerspective()
	for _, pt := range [][2]float64{
		{math.NaN(), 10},
		{10, math.Inf(1)},
		{-1, 10},
		{10, 601},
	} {
		_, err := p.Ray(pt[0], pt[1])
		assert.True(t, errors.Is(err, ErrInvalidPointer), "%v", pt)
	}

	p.Width = 0
	_, err := p.Ray(0, 0)
	assert.ErrorIs(t, err, ErrDegenerateViewport)
}

func TestTopDownRoundTrip(t *testing.T) {
	td := TopDown{Span: 200, Width: 100, Height: 50, CellAspect: 2}
	r, err := td.Ray(75, 10)
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec3{0, -1, 0}, r.Dir)

	x, y, ok := td.Project(r.Origin)
	require.True(t, ok)
	assert.InDelta(t, 75.0, x, 1e-9)
	assert.InDelta(t, 10.0, y, 1e-9)

	w := td.World(50, 25)
	assert.InDelta(t, 0.0, w.X(), 1e-12)
	assert.InDelta(t, 0.0, w.Y(), 1e-12)
}
