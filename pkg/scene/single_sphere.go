package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// NewSphereScene creates a single sphere of the given material at (0,0,-5)
// with radius 1, lit by one light of intensity 1 at (0,5,0)
func NewSphereScene(mat material.Material, cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	figures := []geometry.Figure{
		geometry.NewSphere(core.NewVec3(0, 0, -5), 1, mat),
	}
	sceneLights := []lights.PointLight{
		lights.NewPointLight(core.NewVec3(0, 5, 0), 1),
	}

	return NewScene(cameraConfig, figures, sceneLights)
}
