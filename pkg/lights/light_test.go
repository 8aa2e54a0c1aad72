package lights

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func TestPointLight_Sample(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 5, 0), 1.5)

	sample := light.Sample(core.NewVec3(0, 1, 0))

	if sample.Direction != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected direction (0,1,0), got %v", sample.Direction)
	}
	if sample.Distance != 4 {
		t.Errorf("Expected distance 4, got %f", sample.Distance)
	}
	if sample.Intensity != 1.5 {
		t.Errorf("Expected intensity 1.5, got %f", sample.Intensity)
	}

	// Off-axis sample must still be unit length
	sample = light.Sample(core.NewVec3(3, 1, -2))
	if math.Abs(sample.Direction.Length()-1) > 1e-12 {
		t.Errorf("Expected unit direction, got length %f", sample.Direction.Length())
	}
	if math.Abs(sample.Distance-math.Sqrt(29)) > 1e-12 {
		t.Errorf("Expected distance sqrt(29), got %f", sample.Distance)
	}
}
