package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/tidewake/scene"
	"github.com/lixenwraith/tidewake/vmath"
)

// HullLoader fetches the vessel's hit-test proxy, possibly slowly
type HullLoader interface {
	LoadHull(ctx context.Context) (scene.Hull, error)
}

// HullLoaderFunc adapts a function to HullLoader
type HullLoaderFunc func(ctx context.Context) (scene.Hull, error)

func (f HullLoaderFunc) LoadHull(ctx context.Context) (scene.Hull, error) { return f(ctx) }

// StaticHull always succeeds with its value
type StaticHull scene.Hull

func (h StaticHull) LoadHull(context.Context) (scene.Hull, error) { return scene.Hull(h), nil }

// FileHull reads {"halfExtents": [x, y, z]} from Path
type FileHull struct {
	Path string
}

type hullDocument struct {
	HalfExtents [3]float64 `json:"halfExtents"`
}

func (f FileHull) LoadHull(ctx context.Context) (scene.Hull, error) {
	if err := ctx.Err(); err != nil {
		return scene.Hull{}, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return scene.Hull{}, fmt.Errorf("%w: hull %s: %w", ErrAssetUnavailable, f.Path, err)
	}
	var doc hullDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return scene.Hull{}, fmt.Errorf("%w: hull %s: %w", ErrAssetUnavailable, f.Path, err)
	}
	he := mgl64.Vec3(doc.HalfExtents)
	if !vmath.Finite(he.X(), he.Y(), he.Z()) || he.X() <= 0 || he.Y() <= 0 || he.Z() <= 0 {
		return scene.Hull{}, fmt.Errorf("%w: hull %s: extents %v", ErrAssetUnavailable, f.Path, he)
	}
	return scene.Hull{HalfExtents: he}, nil
}

// LoadHull runs loader on the calling goroutine and attaches the result
// On failure hit-testing is disabled, HullUnavailable is emitted, and the
// simulation keeps running; a later AttachHull or LoadHull may succeed
func (s *Simulation) LoadHull(ctx context.Context, loader HullLoader) error {
	h, err := loader.LoadHull(ctx)
	if err != nil {
		return s.hullFailed(err)
	}
	s.AttachHull(h)
	s.log.Info().Floats64("halfExtents", h.HalfExtents[:]).Msg("hull attached")
	return nil
}
