package geometry

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// Figure is a surface that can be hit by rays. The set of figures is closed:
// only *Sphere and *Plane implement it.
type Figure interface {
	// Intersect returns the ray parameter of the nearest valid intersection
	Intersect(ray core.Ray) (float64, bool)
	// Normal returns the surface normal at a point on the figure
	Normal(point core.Vec3) core.Vec3
	// GetMaterial returns the figure's material
	GetMaterial() material.Material

	figure()
}

// HitRecord contains information about a ray-figure intersection
type HitRecord struct {
	T        float64           // Parameter t along the ray
	Point    core.Vec3         // Point of intersection
	Normal   core.Vec3         // Surface normal at intersection
	Material material.Material // Material used to shade the hit
	Figure   Figure            // The figure that was hit
}

// NewHitRecord fills a hit record for figure at parameter t along ray
func NewHitRecord(ray core.Ray, t float64, figure Figure) *HitRecord {
	point := ray.At(t)
	return &HitRecord{
		T:        t,
		Point:    point,
		Normal:   figure.Normal(point),
		Material: figure.GetMaterial(),
		Figure:   figure,
	}
}
