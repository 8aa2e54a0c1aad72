package output

import (
	"image"

	"github.com/fogleman/gg"
)

// PreviewHint is drawn over preview renders to point at the full render command
const PreviewHint = "Press R to render!"

// Annotate returns a copy of img with text drawn in white at its center.
// The source image is left untouched.
func Annotate(img *image.RGBA, text string) *image.RGBA {
	dc := gg.NewContextForImage(img)
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(text, float64(dc.Width())/2, float64(dc.Height())/2, 0.5, 0.5)
	return dc.Image().(*image.RGBA)
}
