package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// CameraConfig contains all parameters for the pinhole camera
type CameraConfig struct {
	Center core.Vec3 // Camera position
	Width  int       // Image width in pixels
	Height int       // Image height in pixels
	FOV    float64   // Field of view in radians
}

// Camera is a fixed pinhole camera looking down -Z with +Y up
type Camera struct {
	config      CameraConfig
	focalLength float64 // Distance to the image plane, in pixels
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	return &Camera{
		config:      config,
		focalLength: float64(config.Height) / (2 * math.Tan(config.FOV/2)),
	}
}

// GetRay returns the unit-direction ray through the center of pixel (i, j).
// Row j grows downwards in the image and upwards in the scene.
func (c *Camera) GetRay(i, j int) core.Ray {
	direction := core.NewVec3(
		(float64(i)+0.5)-float64(c.config.Width)/2,
		-(float64(j)+0.5)+float64(c.config.Height)/2,
		-c.focalLength,
	)
	return core.NewRay(c.config.Center, direction.Normalize())
}

// GetConfig returns the camera configuration
func (c *Camera) GetConfig() CameraConfig {
	return c.config
}

// MergeCameraConfig applies the non-zero fields of override on top of base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Center != (core.Vec3{}) {
		result.Center = override.Center
	}
	if override.Width > 0 {
		result.Width = override.Width
	}
	if override.Height > 0 {
		result.Height = override.Height
	}
	if override.FOV > 0 {
		result.FOV = override.FOV
	}
	return result
}
