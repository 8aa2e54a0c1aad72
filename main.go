package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/output"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type (see -help for the list)")
	modeName := flag.String("mode", "full", "Render mode: 'full' or 'preview'")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	height := flag.Int("height", 0, "Image height in pixels (0 = scene default)")
	outPath := flag.String("out", "", "Output PNG path (default output/<scene>/render_<mode>_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Recursive Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, info := range scene.ListScenes() {
			fmt.Printf("  %-13s - %s\n", info.ID, info.Description)
		}
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/render_<mode>_<timestamp>.png")
		return
	}

	mode, err := core.ParseRenderMode(*modeName)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	selectedScene, err := createScene(*sceneType, *width, *height)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Rendering scene '%s' in %s mode at %dx%d...\n",
		*sceneType, mode, selectedScene.CameraConfig.Width, selectedScene.CameraConfig.Height)

	raytracer := renderer.NewRaytracer(selectedScene, renderer.NewDefaultLogger())
	img, stats := raytracer.Render(mode)

	fmt.Printf("Render completed in %v (%d pixels)\n", stats.Elapsed, stats.TotalPixels)
	fmt.Printf("Average luminance: %.3f\n", renderer.CalculateAverageLuminance(img))

	filename := *outPath
	if filename == "" {
		filename = outputFilename(*sceneType, mode, time.Now())
	}

	if err := output.SavePNG(img, filename); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		return
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// createScene builds a named scene, overriding the viewport when width or height are positive
func createScene(sceneType string, width, height int) (*scene.Scene, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	return scene.Create(sceneType, geometry.CameraConfig{Width: width, Height: height})
}

// outputFilename returns the timestamped default output path for a render
func outputFilename(sceneType string, mode core.RenderMode, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneType, fmt.Sprintf("render_%s_%s.png", mode, timestamp))
}
