package scene

import (
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// SceneInfo represents a built-in scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
}

type sceneFactory func(cameraOverrides ...geometry.CameraConfig) *Scene

var builtinScenes = []struct {
	info    SceneInfo
	factory sceneFactory
}{
	{
		info: SceneInfo{
			ID:          "default",
			DisplayName: "Room",
			Description: "Six spheres in a walled room lit by three point lights",
		},
		factory: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "ivory-sphere",
			DisplayName: "Ivory sphere",
			Description: "A single ivory sphere under one light",
		},
		factory: func(cameraOverrides ...geometry.CameraConfig) *Scene {
			return NewSphereScene(material.Ivory, cameraOverrides...)
		},
	},
	{
		info: SceneInfo{
			ID:          "glass-sphere",
			DisplayName: "Glass sphere",
			Description: "A single glass sphere under one light",
		},
		factory: func(cameraOverrides ...geometry.CameraConfig) *Scene {
			return NewSphereScene(material.Glass, cameraOverrides...)
		},
	},
}

// ListScenes returns the built-in scenes in display order
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, s := range builtinScenes {
		scenes = append(scenes, s.info)
	}
	return scenes
}

// Create builds the built-in scene with the given id
func Create(id string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	for _, s := range builtinScenes {
		if s.info.ID == id {
			return s.factory(cameraOverrides...), nil
		}
	}
	return nil, fmt.Errorf("unknown scene: %s", id)
}
