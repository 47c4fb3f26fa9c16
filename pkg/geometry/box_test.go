package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestBox_Hit(t *testing.T) {
	box := NewBox(core.NewVec3(1, 1, 1), core.NewVec3(-1, -1, -1), nil)

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		expectHit bool
		expectedT float64
	}{
		{"from +Z", core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), true, 4},
		{"from -X", core.NewVec3(-3, 0.5, 0.5), core.NewVec3(1, 0, 0), true, 2},
		{"from inside", core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), true, 1},
		{"miss", core.NewVec3(3, 3, 5), core.NewVec3(0, 0, -1), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := box.Hit(core.NewRay(tt.origin, tt.direction), 0.001, 100)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if isHit && math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestBox_BoundingBoxAndTranslate(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(2, 3, 4), nil)

	bbox, ok := box.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected bounding box")
	}
	// Each face rect pads its fixed axis by rectThickness
	pad := core.NewVec3(rectThickness, rectThickness, rectThickness)
	expectedMin := core.NewVec3(0, 0, 0).Subtract(pad)
	expectedMax := core.NewVec3(2, 3, 4).Add(pad)
	if !vecClose(bbox.Min, expectedMin, 1e-12) || !vecClose(bbox.Max, expectedMax, 1e-12) {
		t.Errorf("Expected box [%v, %v], got %v", expectedMin, expectedMax, bbox)
	}

	box.Translate(core.NewVec3(10, 0, 0))
	if box.Min != core.NewVec3(10, 0, 0) || box.Max != core.NewVec3(12, 3, 4) {
		t.Errorf("Unexpected corners after translate: %v %v", box.Min, box.Max)
	}
	hit, isHit := box.Hit(core.NewRay(core.NewVec3(11, 1, 10), core.NewVec3(0, 0, -1)), 0.001, 100)
	if !isHit || math.Abs(hit.T-6) > 1e-9 {
		t.Errorf("Expected hit at t=6 after translate, got %v %v", hit, isHit)
	}
}
