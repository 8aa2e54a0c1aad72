package renderer

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
)

// Config contains shading configuration
type Config struct {
	MaxDepth     int     // Maximum recursion depth in full mode
	PreviewDepth int     // Maximum recursion depth in preview mode
	Bias         float64 // Offset along the normal for secondary ray origins
}

// DefaultConfig returns the standard shading configuration
func DefaultConfig() Config {
	return Config{
		MaxDepth:     3,
		PreviewDepth: 3,
		Bias:         1e-3,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *geometry.Camera
	GetLights() []lights.PointLight
	GetBackground() core.Vec3
	Intersect(ray core.Ray, mode core.RenderMode) (*geometry.HitRecord, bool)
}

var white = core.NewVec3(1, 1, 1)

// Raytracer shades rays against a scene
type Raytracer struct {
	scene  Scene
	config Config
	logger core.Logger
}

// NewRaytracer creates a new raytracer with the default configuration
func NewRaytracer(scene Scene, logger core.Logger) *Raytracer {
	return &Raytracer{
		scene:  scene,
		config: DefaultConfig(),
		logger: logger,
	}
}

// SetConfig updates the shading configuration
func (rt *Raytracer) SetConfig(config Config) {
	rt.config = config
}

// GetConfig returns the shading configuration
func (rt *Raytracer) GetConfig() Config {
	return rt.config
}

// CastRay returns the color seen along ray. The ray direction must be unit length.
func (rt *Raytracer) CastRay(ray core.Ray, mode core.RenderMode, depth int) core.Vec3 {
	background := rt.scene.GetBackground()
	if depth > rt.config.MaxDepth {
		return background
	}

	hit, isHit := rt.scene.Intersect(ray, mode)
	if !isHit || (mode == core.ModePreview && depth > rt.config.PreviewDepth) {
		return background
	}

	mat := hit.Material
	diffuse, specular := rt.lightIntensities(ray, hit, mode)
	diffuseColor := mat.DiffuseColor.Multiply(diffuse * mat.DiffuseWeight())

	if mode == core.ModePreview {
		return diffuseColor
	}

	reflectColor := rt.castSecondary(hit, Reflect(ray.Direction, hit.Normal), depth)
	refractColor := rt.castSecondary(hit, Refract(ray.Direction, hit.Normal, mat.RefractiveIndex, 1), depth)

	return diffuseColor.
		Add(white.Multiply(specular * mat.SpecularWeight())).
		Add(reflectColor.Multiply(mat.ReflectWeight())).
		Add(refractColor.Multiply(mat.RefractWeight()))
}

// lightIntensities sums the diffuse and specular intensity of every light
// visible from the hit point. Shadows are only tested in full mode.
func (rt *Raytracer) lightIntensities(ray core.Ray, hit *geometry.HitRecord, mode core.RenderMode) (diffuse, specular float64) {
	for _, light := range rt.scene.GetLights() {
		sample := light.Sample(hit.Point)

		if mode == core.ModeFull && rt.inShadow(hit, sample) {
			continue
		}

		diffuse += sample.Intensity * max(0, sample.Direction.Dot(hit.Normal))

		highlight := Reflect(sample.Direction.Negate(), hit.Normal).Negate().Dot(ray.Direction)
		specular += math.Pow(max(0, highlight), hit.Material.SpecularExponent) * sample.Intensity
	}
	return diffuse, specular
}

// inShadow reports whether something lies between the hit point and the light
func (rt *Raytracer) inShadow(hit *geometry.HitRecord, sample lights.LightSample) bool {
	origin := rt.offsetOrigin(hit, sample.Direction)
	blocker, isHit := rt.scene.Intersect(core.NewRay(origin, sample.Direction), core.ModeFull)
	return isHit && blocker.Point.Subtract(origin).Length() < sample.Distance
}

// castSecondary traces a reflected or refracted ray one level deeper
func (rt *Raytracer) castSecondary(hit *geometry.HitRecord, direction core.Vec3, depth int) core.Vec3 {
	direction.Normalize()
	return rt.CastRay(core.NewRay(rt.offsetOrigin(hit, direction), direction), core.ModeFull, depth+1)
}

// offsetOrigin moves the hit point off the surface, to the side direction
// points into, so a secondary ray does not hit the surface it starts on
func (rt *Raytracer) offsetOrigin(hit *geometry.HitRecord, direction core.Vec3) core.Vec3 {
	offset := hit.Normal.Multiply(rt.config.Bias)
	if direction.Dot(hit.Normal) < 0 {
		return hit.Point.Subtract(offset)
	}
	return hit.Point.Add(offset)
}
