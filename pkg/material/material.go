package material

import (
	"fmt"
	"sort"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Material describes how a surface responds to light.
//
// Albedo weights the four shading terms, in order: Lambertian diffuse,
// specular highlight, traced reflection and traced refraction. The weights
// need not sum to one.
type Material struct {
	Name             string
	RefractiveIndex  float64
	Albedo           core.Vec4
	DiffuseColor     core.Vec3
	SpecularExponent float64
}

// NewMaterial creates a named material
func NewMaterial(name string, refractiveIndex float64, albedo core.Vec4, diffuseColor core.Vec3, specularExponent float64) Material {
	return Material{
		Name:             name,
		RefractiveIndex:  refractiveIndex,
		Albedo:           albedo,
		DiffuseColor:     diffuseColor,
		SpecularExponent: specularExponent,
	}
}

// DiffuseWeight returns the albedo weight of the diffuse term
func (m Material) DiffuseWeight() float64 { return m.Albedo.X }

// SpecularWeight returns the albedo weight of the specular term
func (m Material) SpecularWeight() float64 { return m.Albedo.Y }

// ReflectWeight returns the albedo weight of the reflected color
func (m Material) ReflectWeight() float64 { return m.Albedo.Z }

// RefractWeight returns the albedo weight of the refracted color
func (m Material) RefractWeight() float64 { return m.Albedo.W }

// Catalogue
var (
	Ivory      = NewMaterial("ivory", 1.0, core.NewVec4(0.6, 0.3, 0.1, 0), core.NewVec3(0.4, 0.4, 0.3), 50)
	Glass      = NewMaterial("glass", 1.5, core.NewVec4(0, 0.5, 0.1, 0.8), core.NewVec3(0.6, 0.7, 0.8), 125)
	Mirror     = NewMaterial("mirror", 1.0, core.NewVec4(0, 10, 0.8, 0), core.NewVec3(1, 1, 1), 1425)
	RedRubber  = NewMaterial("red-rubber", 1.0, core.NewVec4(0.9, 0.1, 0, 0), core.NewVec3(0.3, 0.1, 0.1), 10)
	SceneWalls = NewMaterial("scene-walls", 1.0, core.NewVec4(0.8, 0.2, 0.2, 0), core.NewVec3(0.7, 0.7, 0.7), 100)
	Custom     = NewMaterial("custom", 1.0, core.NewVec4(0.4, 0.3, 0.1, 0), core.NewVec3(0.6, 0.3, 0.6), 50)

	// Wire replaces every surface material in preview mode
	Wire = NewMaterial("wire", 1.0, core.NewVec4(0.6, 0.3, 0.1, 0), core.NewVec3(0.1, 0.1, 0.1), 50)
)

var catalogue = map[string]Material{
	Ivory.Name:      Ivory,
	Glass.Name:      Glass,
	Mirror.Name:     Mirror,
	RedRubber.Name:  RedRubber,
	SceneWalls.Name: SceneWalls,
	Custom.Name:     Custom,
	Wire.Name:       Wire,
}

// ByName looks up a catalogue material
func ByName(name string) (Material, error) {
	m, ok := catalogue[name]
	if !ok {
		return Material{}, fmt.Errorf("unknown material: %s", name)
	}
	return m, nil
}

// Names returns the catalogue material names in sorted order
func Names() []string {
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
