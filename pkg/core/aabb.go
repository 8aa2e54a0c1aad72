package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// Contains reports whether p lies inside the box, faces included
func (aabb AABB) Contains(p Vec3) bool {
	return p.X >= aabb.Min.X && p.X <= aabb.Max.X &&
		p.Y >= aabb.Min.Y && p.Y <= aabb.Max.Y &&
		p.Z >= aabb.Min.Z && p.Z <= aabb.Max.Z
}

// AxesNearFaces counts the axes on which p is within tolerance of either
// the min or the max face of the box
func (aabb AABB) AxesNearFaces(p Vec3, tolerance float64) int {
	near := func(v, a, b float64) bool {
		return math.Abs(v-a) <= tolerance || math.Abs(v-b) <= tolerance
	}

	count := 0
	for axis := 0; axis < 3; axis++ {
		if near(p.Component(axis), aabb.Min.Component(axis), aabb.Max.Component(axis)) {
			count++
		}
	}
	return count
}

// Expand returns an AABB expanded by the given amount in all directions
func (aabb AABB) Expand(amount float64) AABB {
	expansion := NewVec3(amount, amount, amount)
	return AABB{
		Min: aabb.Min.Subtract(expansion),
		Max: aabb.Max.Add(expansion),
	}
}
