package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 720

	// DefaultFOV is the vertical field of view in radians
	DefaultFOV = math.Pi / 2.3

	// BackgroundCutoff is the distance beyond which a hit counts as sky.
	// It is an arbitrary threshold sized for a room about 30 units deep.
	BackgroundCutoff = 1000.0

	// roomMargin widens the room so planes lying on its faces are not clipped away
	roomMargin = 1e-3
)

// DefaultBackground is the color of rays that escape the scene
var DefaultBackground = core.NewVec3(0.1, 0.8, 0.8)

// DefaultRoom returns the clipping box shared by the room's walls and floor
func DefaultRoom() core.AABB {
	return core.NewAABB(
		core.NewVec3(-10, -4, -30),
		core.NewVec3(10, 8, -10),
	).Expand(roomMargin)
}

// DefaultCameraConfig returns the fixed camera used by the built-in scenes
func DefaultCameraConfig() geometry.CameraConfig {
	return geometry.CameraConfig{
		Center: core.NewVec3(0, 2, 0),
		Width:  DefaultWidth,
		Height: DefaultHeight,
		FOV:    DefaultFOV,
	}
}

// Scene contains all the elements needed for rendering.
// It is built once and only read afterwards.
type Scene struct {
	Camera       *geometry.Camera
	CameraConfig geometry.CameraConfig
	Figures      []geometry.Figure   // Objects in the scene
	Lights       []lights.PointLight // Lights in the scene
	Background   core.Vec3
}

// NewScene creates a scene over copies of the given figures and lights
func NewScene(cameraConfig geometry.CameraConfig, figures []geometry.Figure, sceneLights []lights.PointLight) *Scene {
	return &Scene{
		Camera:       geometry.NewCamera(cameraConfig),
		CameraConfig: cameraConfig,
		Figures:      append([]geometry.Figure(nil), figures...),
		Lights:       append([]lights.PointLight(nil), sceneLights...),
		Background:   DefaultBackground,
	}
}

// Intersect finds the nearest figure hit by the ray. In preview mode the
// reported material is always material.Wire.
func (s *Scene) Intersect(ray core.Ray, mode core.RenderMode) (*geometry.HitRecord, bool) {
	var nearest geometry.Figure
	closestSoFar := math.MaxFloat64

	for _, figure := range s.Figures {
		if t, isHit := figure.Intersect(ray); isHit && t < closestSoFar {
			closestSoFar = t
			nearest = figure
		}
	}

	if nearest == nil || closestSoFar >= BackgroundCutoff {
		return nil, false
	}

	hit := geometry.NewHitRecord(ray, closestSoFar, nearest)
	if mode == core.ModePreview {
		hit.Material = material.Wire
	}
	return hit, true
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *geometry.Camera {
	return s.Camera
}

// GetLights returns the scene lights
func (s *Scene) GetLights() []lights.PointLight {
	return s.Lights
}

// GetBackground returns the color of rays that hit nothing
func (s *Scene) GetBackground() core.Vec3 {
	return s.Background
}
