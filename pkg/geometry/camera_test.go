package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCamera_GetRay(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Center: core.NewVec3(0, 2, 0),
		Width:  4,
		Height: 2,
		FOV:    math.Pi / 2,
	})

	// tan(45°) = 1, so the image plane sits height/2 = 1 pixel away
	ray := camera.GetRay(2, 0)
	expected := core.NewVec3(0.5, 0.5, -1).Normalized()

	if ray.Origin != core.NewVec3(0, 2, 0) {
		t.Errorf("Expected origin (0,2,0), got %v", ray.Origin)
	}
	if diff := cmp.Diff(expected, ray.Direction, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Direction mismatch (-want +got):\n%s", diff)
	}
}

func TestCamera_GetRay_Orientation(t *testing.T) {
	camera := NewCamera(CameraConfig{Width: 1024, Height: 720, FOV: math.Pi / 2.3})

	topLeft := camera.GetRay(0, 0).Direction
	bottomRight := camera.GetRay(1023, 719).Direction

	if topLeft.X >= 0 || topLeft.Y <= 0 {
		t.Errorf("Expected top-left ray to point left and up, got %v", topLeft)
	}
	if bottomRight.X <= 0 || bottomRight.Y >= 0 {
		t.Errorf("Expected bottom-right ray to point right and down, got %v", bottomRight)
	}
	for _, d := range []core.Vec3{topLeft, bottomRight} {
		if d.Z >= 0 {
			t.Errorf("Expected ray to look down -Z, got %v", d)
		}
		if math.Abs(d.Length()-1) > 1e-12 {
			t.Errorf("Expected unit direction, got length %f", d.Length())
		}
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := CameraConfig{Center: core.NewVec3(0, 2, 0), Width: 1024, Height: 720, FOV: 1}
	merged := MergeCameraConfig(base, CameraConfig{Width: 320, Height: 240})

	expected := CameraConfig{Center: core.NewVec3(0, 2, 0), Width: 320, Height: 240, FOV: 1}
	if diff := cmp.Diff(expected, merged); diff != "" {
		t.Errorf("Merged config mismatch (-want +got):\n%s", diff)
	}
}
