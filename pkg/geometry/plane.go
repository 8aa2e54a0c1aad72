package geometry

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// PlaneEpsilon rejects near-parallel rays and intersections too close to the ray origin
const PlaneEpsilon = 1e-3

// borderTolerance is the distance to a room face that counts as "at the border"
const borderTolerance = 0.1

// Plane is the plane ax+by+cz+d=0 clipped to an axis-aligned room box.
// Only rays travelling against the normal hit it.
type Plane struct {
	Coefficients core.Vec4 // (a, b, c, d), scaled so that (a, b, c) is unit length
	UnitNormal   core.Vec3
	Room         core.AABB // Clipping box bounding the visible part of the plane
	Material     material.Material
}

// NewPlane creates a plane from its equation coefficients
func NewPlane(coefficients core.Vec4, room core.AABB, material material.Material) *Plane {
	normal := coefficients.XYZ()
	length := normal.Length()
	if length == 0 {
		panic("geometry: plane normal must be non-zero")
	}

	return &Plane{
		Coefficients: coefficients.Multiply(1 / length),
		UnitNormal:   normal.Multiply(1 / length),
		Room:         room,
		Material:     material,
	}
}

// NewPlaneFromPoints creates the plane through three non-collinear points.
// The normal is (p3-p1) × (p2-p1).
func NewPlaneFromPoints(p1, p2, p3 core.Vec3, room core.AABB, material material.Material) *Plane {
	v1 := p3.Subtract(p1)
	v2 := p2.Subtract(p1)
	normal := v1.Cross(v2)

	return NewPlane(core.NewVec4(normal.X, normal.Y, normal.Z, -normal.Dot(p1)), room, material)
}

// Intersect tests the ray against the front side of the plane inside the room
func (p *Plane) Intersect(ray core.Ray) (float64, bool) {
	denominator := p.UnitNormal.Dot(ray.Direction)

	// Parallel or pointing away from the front face
	if denominator > -PlaneEpsilon {
		return 0, false
	}

	t := -(p.UnitNormal.Dot(ray.Origin) + p.Coefficients.W) / denominator
	if t < PlaneEpsilon {
		return 0, false
	}
	if !p.Room.Contains(ray.At(t)) {
		return 0, false
	}
	return t, true
}

// Normal returns the plane's unit normal, which is the same everywhere
func (p *Plane) Normal(core.Vec3) core.Vec3 {
	return p.UnitNormal
}

// GetMaterial returns the plane's material
func (p *Plane) GetMaterial() material.Material {
	return p.Material
}

// Contains reports whether point lies on the plane within tolerance
func (p *Plane) Contains(point core.Vec3, tolerance float64) bool {
	distance := p.UnitNormal.Dot(point) + p.Coefficients.W
	return distance <= tolerance && distance >= -tolerance
}

// AtBorder reports whether point is close to the room faces of at least two axes
func (p *Plane) AtBorder(point core.Vec3) bool {
	return p.Room.AxesNearFaces(point, borderTolerance) >= 2
}

func (p *Plane) figure() {}
