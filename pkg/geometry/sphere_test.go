package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func vecClose(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	isect := sphere.Intersect(ray)
	if isect.Happened {
		t.Errorf("Expected miss, but got hit at t=%f", isect.Distance)
	}
	if !math.IsInf(isect.Distance, 1) {
		t.Errorf("Expected infinite distance on miss, got %f", isect.Distance)
	}
}

func TestSphere_Intersect_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit from inside",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isect := sphere.Intersect(core.NewRay(tt.rayOrigin, tt.rayDirection))
			if !isect.Happened {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(isect.Distance-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, isect.Distance)
			}
			if !vecClose(isect.Normal, tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, isect.Normal)
			}
			if isect.Object != sphere {
				t.Error("Expected intersection to reference the sphere")
			}
		})
	}
}

func TestSphere_Intersect_BehindOrigin(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, nil)
	isect := sphere.Intersect(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)))
	if isect.Happened {
		t.Errorf("Expected miss for sphere behind the ray, got t=%f", isect.Distance)
	}
}

func TestSphere_EmissionAndArea(t *testing.T) {
	light := NewSphere(core.NewVec3(0, 0, 0), 2.0, material.NewEmissive(core.NewVec3(4, 4, 4)))
	diffuse := NewSphere(core.NewVec3(0, 0, 0), 2.0, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	if !light.HasEmit() {
		t.Error("Expected emissive sphere to emit")
	}
	if diffuse.HasEmit() {
		t.Error("Expected diffuse sphere not to emit")
	}

	isect := light.Intersect(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)))
	if isect.Emit != core.NewVec3(4, 4, 4) {
		t.Errorf("Expected emission on hit record, got %v", isect.Emit)
	}
	if isect.Material == nil {
		t.Error("Expected material on hit record")
	}

	if math.Abs(light.Area()-16*math.Pi) > 1e-9 {
		t.Errorf("Expected area 16π, got %f", light.Area())
	}
}

func TestSphere_SampleOnSurface(t *testing.T) {
	center := core.NewVec3(1, 2, 3)
	sphere := NewSphere(center, 0.5, material.NewEmissive(core.NewVec3(1, 1, 1)))
	sampler := core.NewSeededSampler(42)

	for i := 0; i < 200; i++ {
		isect, pdf := sphere.Sample(sampler)
		if d := isect.Coords.Subtract(center).Length(); math.Abs(d-0.5) > 1e-9 {
			t.Fatalf("Sample off surface: distance %f", d)
		}
		if math.Abs(pdf-1.0/sphere.Area()) > 1e-12 {
			t.Fatalf("Expected pdf 1/area, got %f", pdf)
		}
		outward := isect.Coords.Subtract(center).Normalize()
		if !vecClose(isect.Normal, outward, 1e-9) {
			t.Fatalf("Expected outward normal %v, got %v", outward, isect.Normal)
		}
	}
}
