package lights

import "github.com/df07/go-recursive-raytracer/pkg/core"

// PointLight is an omnidirectional light at a fixed position
type PointLight struct {
	Position  core.Vec3
	Intensity float64
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3, intensity float64) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// LightSample describes the light as seen from a shading point
type LightSample struct {
	Direction core.Vec3 // Unit direction from the shading point to the light
	Distance  float64   // Distance to the light
	Intensity float64
}

// Sample returns the direction and distance from point to the light.
// The point must not coincide with the light position.
func (l PointLight) Sample(point core.Vec3) LightSample {
	toLight := l.Position.Subtract(point)
	distance := toLight.Length()
	return LightSample{
		Direction: toLight.Normalize(),
		Distance:  distance,
		Intensity: l.Intensity,
	}
}
