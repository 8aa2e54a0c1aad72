package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// NewDefaultScene creates the room scene: six spheres in front of a floor,
// two side walls and a back wall, lit by three point lights
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	room := DefaultRoom()

	figures := []geometry.Figure{
		geometry.NewSphere(core.NewVec3(-5, 0, -16), 3, material.Ivory),
		geometry.NewSphere(core.NewVec3(-1.0, -1.5, -12), 2, material.Glass),
		geometry.NewSphere(core.NewVec3(1.5, -0.5, -18), 3, material.Custom),
		geometry.NewSphere(core.NewVec3(4, 5.7, -18), 3.5, material.RedRubber),
		geometry.NewSphere(core.NewVec3(6, -2, -14), 1.5, material.Ivory),
		geometry.NewSphere(core.NewVec3(6, -2, -11), 0.5, material.Custom),

		geometry.NewPlane(core.NewVec4(0, 1, 0, 4), room, material.RedRubber),   // floor
		geometry.NewPlane(core.NewVec4(1, 0, 0, 10), room, material.SceneWalls), // left wall
		geometry.NewPlane(core.NewVec4(0, 0, 1, 30), room, material.SceneWalls), // back wall
		geometry.NewPlane(core.NewVec4(-1, 0, 0, 10), room, material.SceneWalls), // right wall
	}

	sceneLights := []lights.PointLight{
		lights.NewPointLight(core.NewVec3(-20, 20, 20), 1.5),
		lights.NewPointLight(core.NewVec3(30, 50, -25), 1.8),
		lights.NewPointLight(core.NewVec3(-10, 30, -35), 1.3),
	}

	return NewScene(cameraConfig, figures, sceneLights)
}
