package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
	"github.com/df07/go-recursive-raytracer/viewer/display"
	"github.com/df07/go-recursive-raytracer/viewer/session"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene to display")
	width := flag.Int("width", 0, "Window width in pixels (0 = scene default)")
	height := flag.Int("height", 0, "Window height in pixels (0 = scene default)")
	savePath := flag.String("out", "out.png", "Path written by the save command")
	flag.Parse()

	selectedScene, err := scene.Create(*sceneType, geometry.CameraConfig{Width: *width, Height: *height})
	if err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}

	raytracer := renderer.NewRaytracer(selectedScene, renderer.NewDefaultLogger())
	sess := session.New(raytracer, *savePath)

	// Start in view mode
	sess.Start(core.ModePreview)

	config := selectedScene.CameraConfig
	if err := display.Run(sess, "Raytracing", config.Width, config.Height); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
