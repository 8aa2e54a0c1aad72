package renderer

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// totalInternalReflection is returned by Refract when no refracted ray exists.
// It is a fixed stand-in direction, not a physical result.
var totalInternalReflection = core.NewVec3(1, 0, 0)

// Reflect mirrors the incident direction about the normal
func Reflect(incident, normal core.Vec3) core.Vec3 {
	return ReflectScaled(incident, normal, 1)
}

// ReflectScaled mirrors the incident direction about the normal with the
// normal component scaled by size
func ReflectScaled(incident, normal core.Vec3, size float64) core.Vec3 {
	return incident.Subtract(normal.Multiply(2 * incident.Dot(normal) * size))
}

// Refract bends the incident direction through a surface using Snell's law.
// etaT is the refractive index on the far side of the surface and etaI the
// index the ray travels in. A ray leaving the medium (incident along the
// normal) is handled by flipping the normal and swapping the indices.
func Refract(incident, normal core.Vec3, etaT, etaI float64) core.Vec3 {
	cosi := -max(-1, min(1, incident.Dot(normal)))
	if cosi < 0 {
		return Refract(incident, normal.Negate(), etaI, etaT)
	}

	eta := etaI / etaT
	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return totalInternalReflection
	}
	return incident.Multiply(eta).Add(normal.Multiply(eta*cosi - math.Sqrt(k)))
}
