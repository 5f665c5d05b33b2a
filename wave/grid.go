package wave

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/tidewake/core"
)

// Grid owns the per-vertex buffers of a square sampling lattice centered on the origin
// Vertex (i, j) sits at x = -Size/2 + i*Step, z = -Size/2 + j*Step, stored row-major by j
type Grid struct {
	Segments int
	Size     float64
	Step     float64

	Heights []float64
	Colors  []core.RGB
	Normals []mgl64.Vec3

	normalInterval int
	updates        uint64
	normalsVersion uint64
}

// NewGrid allocates buffers for segments x segments quads over a size x size plane
// normalInterval <= 0 recomputes normals on every update
func NewGrid(segments int, size float64, normalInterval int) *Grid {
	if segments < 1 {
		segments = 1
	}
	if normalInterval <= 0 {
		normalInterval = 1
	}
	n := (segments + 1) * (segments + 1)
	return &Grid{
		Segments:       segments,
		Size:           size,
		Step:           size / float64(segments),
		Heights:        make([]float64, n),
		Colors:         make([]core.RGB, n),
		Normals:        make([]mgl64.Vec3, n),
		normalInterval: normalInterval,
	}
}

// Side is the vertex count along one edge
func (g *Grid) Side() int {
	return g.Segments + 1
}

// Vertex returns the world (x, z) of lattice vertex (i, j)
func (g *Grid) Vertex(i, j int) (x, z float64) {
	half := g.Size / 2
	return -half + float64(i)*g.Step, -half + float64(j)*g.Step
}

// Index returns the buffer offset of vertex (i, j)
func (g *Grid) Index(i, j int) int {
	return j*g.Side() + i
}

// Update recomputes heights and colors for time t, and normals on the configured cadence
// Returns true when normals were refreshed
func (g *Grid) Update(t float64) bool {
	side := g.Side()
	for j := 0; j < side; j++ {
		for i := 0; i < side; i++ {
			x, z := g.Vertex(i, j)
			s := At(x, z, t)
			idx := j*side + i
			g.Heights[idx] = s.Height
			g.Colors[idx] = s.Color
		}
	}

	refresh := g.updates%uint64(g.normalInterval) == 0
	g.updates++
	if refresh {
		g.computeNormals()
		g.normalsVersion++
	}
	return refresh
}

// Updates is the number of Update calls so far
func (g *Grid) Updates() uint64 {
	return g.updates
}

// NormalsVersion increments each time normals are rebuilt, renderers re-upload on change
func (g *Grid) NormalsVersion() uint64 {
	return g.normalsVersion
}

// computeNormals derives vertex normals from the height buffer by central differences
// Edge vertices fall back to one-sided differences
func (g *Grid) computeNormals() {
	side := g.Side()
	for j := 0; j < side; j++ {
		for i := 0; i < side; i++ {
			il, ir := max(i-1, 0), min(i+1, side-1)
			jd, ju := max(j-1, 0), min(j+1, side-1)
			dx := float64(ir-il) * g.Step
			dz := float64(ju-jd) * g.Step
			sx := (g.Heights[j*side+ir] - g.Heights[j*side+il]) / dx
			sz := (g.Heights[ju*side+i] - g.Heights[jd*side+i]) / dz
			g.Normals[j*side+i] = mgl64.Vec3{-sx, 1, -sz}.Normalize()
		}
	}
}

// Nearest returns the buffer offset of the vertex closest to world (x, z)
// ok is false outside the lattice
func (g *Grid) Nearest(x, z float64) (idx int, ok bool) {
	half := g.Size / 2
	if x < -half || x > half || z < -half || z > half {
		return 0, false
	}
	i := int((x+half)/g.Step + 0.5)
	j := int((z+half)/g.Step + 0.5)
	i = min(max(i, 0), g.Segments)
	j = min(max(j, 0), g.Segments)
	return g.Index(i, j), true
}
