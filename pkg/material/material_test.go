package material

import (
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/google/go-cmp/cmp"
)

func TestCatalogueValues(t *testing.T) {
	tests := []struct {
		material        Material
		refractiveIndex float64
		albedo          core.Vec4
		diffuse         core.Vec3
		specular        float64
	}{
		{Ivory, 1.0, core.NewVec4(0.6, 0.3, 0.1, 0), core.NewVec3(0.4, 0.4, 0.3), 50},
		{Glass, 1.5, core.NewVec4(0, 0.5, 0.1, 0.8), core.NewVec3(0.6, 0.7, 0.8), 125},
		{Mirror, 1.0, core.NewVec4(0, 10, 0.8, 0), core.NewVec3(1, 1, 1), 1425},
		{RedRubber, 1.0, core.NewVec4(0.9, 0.1, 0, 0), core.NewVec3(0.3, 0.1, 0.1), 10},
		{SceneWalls, 1.0, core.NewVec4(0.8, 0.2, 0.2, 0), core.NewVec3(0.7, 0.7, 0.7), 100},
		{Custom, 1.0, core.NewVec4(0.4, 0.3, 0.1, 0), core.NewVec3(0.6, 0.3, 0.6), 50},
		{Wire, 1.0, core.NewVec4(0.6, 0.3, 0.1, 0), core.NewVec3(0.1, 0.1, 0.1), 50},
	}

	for _, tt := range tests {
		t.Run(tt.material.Name, func(t *testing.T) {
			want := NewMaterial(tt.material.Name, tt.refractiveIndex, tt.albedo, tt.diffuse, tt.specular)
			if diff := cmp.Diff(want, tt.material); diff != "" {
				t.Errorf("Material mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAlbedoWeights(t *testing.T) {
	if Glass.DiffuseWeight() != 0 || Glass.SpecularWeight() != 0.5 ||
		Glass.ReflectWeight() != 0.1 || Glass.RefractWeight() != 0.8 {
		t.Errorf("Unexpected glass weights %v", Glass.Albedo)
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		m, err := ByName(name)
		if err != nil {
			t.Errorf("ByName(%q) failed: %v", name, err)
			continue
		}
		if m.Name != name {
			t.Errorf("ByName(%q) returned %q", name, m.Name)
		}
	}

	if _, err := ByName("unobtainium"); err == nil {
		t.Error("Expected error for unknown material")
	}
	if len(Names()) != 7 {
		t.Errorf("Expected 7 catalogue materials, got %d", len(Names()))
	}
}
