package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func TestQuad_Intersect_BasicIntersection(t *testing.T) {
	// Create a 1x1 quad in the XZ plane at y=0
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), nil)

	// Ray shooting down at the center of the quad
	isect := quad.Intersect(core.NewRay(core.NewVec3(0.5, 1, 0.5), core.NewVec3(0, -1, 0)))
	if !isect.Happened {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(isect.Distance-1.0) > 1e-9 {
		t.Errorf("Expected t=1, got t=%f", isect.Distance)
	}
	if !vecClose(isect.Coords, core.NewVec3(0.5, 0, 0.5), 1e-9) {
		t.Errorf("Expected hit point (0.5, 0, 0.5), got %v", isect.Coords)
	}
	// Geometric normal is U × V = -Y; the hit normal faces the ray origin
	if !vecClose(isect.Normal, core.NewVec3(0, 1, 0), 1e-9) {
		t.Errorf("Expected face-forward normal (0,1,0), got %v", isect.Normal)
	}
}

func TestQuad_Intersect_OutsideBounds(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), nil)

	tests := []struct {
		name      string
		rayOrigin core.Vec3
		rayDir    core.Vec3
	}{
		{"outside X bounds (negative)", core.NewVec3(-0.5, 1, 0.5), core.NewVec3(0, -1, 0)},
		{"outside X bounds (positive)", core.NewVec3(1.5, 1, 0.5), core.NewVec3(0, -1, 0)},
		{"outside Z bounds (negative)", core.NewVec3(0.5, 1, -0.5), core.NewVec3(0, -1, 0)},
		{"outside Z bounds (positive)", core.NewVec3(0.5, 1, 1.5), core.NewVec3(0, -1, 0)},
		{"parallel to plane", core.NewVec3(0.5, 1, 0.5), core.NewVec3(1, 0, 0)},
		{"pointing away", core.NewVec3(0.5, 1, 0.5), core.NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isect := quad.Intersect(core.NewRay(tt.rayOrigin, tt.rayDir))
			if isect.Happened {
				t.Errorf("Expected miss, but got hit at t=%f", isect.Distance)
			}
		})
	}
}

func TestQuad_BoundsAndArea(t *testing.T) {
	quad := NewQuad(core.NewVec3(1, 2, 3), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 3), nil)

	bounds := quad.Bounds()
	if bounds.Min != core.NewVec3(1, 2, 3) || bounds.Max != core.NewVec3(3, 2, 6) {
		t.Errorf("Unexpected bounds %v", bounds)
	}
	if math.Abs(quad.Area()-6) > 1e-12 {
		t.Errorf("Expected area 6, got %f", quad.Area())
	}
}

func TestQuad_Sample(t *testing.T) {
	emission := core.NewVec3(15, 15, 15)
	quad := NewQuad(core.NewVec3(0, 5, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 2), material.NewEmissive(emission))
	sampler := core.NewSeededSampler(3)

	bounds := quad.Bounds()
	for i := 0; i < 200; i++ {
		isect, pdf := quad.Sample(sampler)
		p := isect.Coords
		if p.Y != 5 || p.X < bounds.Min.X || p.X > bounds.Max.X || p.Z < bounds.Min.Z || p.Z > bounds.Max.Z {
			t.Fatalf("Sample %v outside quad", p)
		}
		if pdf != 0.25 {
			t.Fatalf("Expected pdf 0.25, got %f", pdf)
		}
		if isect.Emit != emission {
			t.Fatalf("Expected emission %v, got %v", emission, isect.Emit)
		}
		if isect.Normal != quad.Normal {
			t.Fatalf("Expected geometric normal %v, got %v", quad.Normal, isect.Normal)
		}
	}
}
