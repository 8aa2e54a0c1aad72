package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// RowCallback is called after each finished scanline
type RowCallback func(rowsDone, totalRows int)

// Render renders the whole viewport in the given mode
func (rt *Raytracer) Render(mode core.RenderMode) (*image.RGBA, RenderStats) {
	img, stats, _ := rt.RenderContext(context.Background(), mode, nil)
	return img, stats
}

// RenderContext renders the viewport row by row, top to bottom. Cancellation
// is checked between rows; on cancellation the partially filled image is
// returned together with the context error.
func (rt *Raytracer) RenderContext(ctx context.Context, mode core.RenderMode, onRow RowCallback) (*image.RGBA, RenderStats, error) {
	camera := rt.scene.GetCamera()
	width, height := camera.GetConfig().Width, camera.GetConfig().Height

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	stats := RenderStats{
		TotalPixels: width * height,
		Mode:        mode,
	}
	startTime := time.Now()
	percentage := 0

	for j := 0; j < height; j++ {
		if err := ctx.Err(); err != nil {
			stats.Elapsed = time.Since(startTime)
			return img, stats, err
		}

		for i := 0; i < width; i++ {
			c := rt.CastRay(camera.GetRay(i, j), mode, 0)
			img.SetRGBA(i, j, vec3ToColor(c))
		}
		stats.Rows++

		if onRow != nil {
			onRow(j+1, height)
		}
		if current := (j + 1) * 100 / height; current != percentage {
			percentage = current
			rt.logger.Printf("%d%%\n", percentage)
		}
	}

	stats.Elapsed = time.Since(startTime)
	return img, stats, nil
}

// vec3ToColor clamps each channel to [0, 1] and quantizes it to 8 bits
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
