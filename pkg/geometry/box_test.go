package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func TestNewAxisAlignedBox(t *testing.T) {
	box := NewAxisAlignedBox(core.NewVec3(-1, 0, 2), core.NewVec3(1, 4, 3), nil)

	if box.Center != core.NewVec3(0, 2, 2.5) {
		t.Errorf("Expected center (0,2,2.5), got %v", box.Center)
	}
	if box.Size != core.NewVec3(1, 2, 0.5) {
		t.Errorf("Expected half-extents (1,2,0.5), got %v", box.Size)
	}

	bounds := box.Bounds()
	if !vecClose(bounds.Min, core.NewVec3(-1, 0, 2), 1e-12) || !vecClose(bounds.Max, core.NewVec3(1, 4, 3), 1e-12) {
		t.Errorf("Unexpected bounds %v", bounds)
	}

	// 2x4x1 box: 2*(2*4 + 2*1 + 4*1)
	if math.Abs(box.Area()-28) > 1e-9 {
		t.Errorf("Expected area 28, got %f", box.Area())
	}
}

func TestBox_FaceNormalsPointOutward(t *testing.T) {
	box := NewBox(core.NewVec3(3, 1, -2), core.NewVec3(1, 2, 3), core.NewVec3(0, 0.3, 0), nil)

	for i, face := range box.Faces() {
		faceCenter := face.Corner.Add(face.U.Multiply(0.5)).Add(face.V.Multiply(0.5))
		outward := faceCenter.Subtract(box.Center)
		if face.Normal.Dot(outward) <= 0 {
			t.Errorf("Face %d normal %v points inward", i, face.Normal)
		}
	}
}

func TestBox_Intersect(t *testing.T) {
	box := NewAxisAlignedBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), nil)

	tests := []struct {
		name           string
		origin         core.Vec3
		direction      core.Vec3
		shouldHit      bool
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{"front", core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), true, 4, core.NewVec3(0, 0, 1)},
		{"right", core.NewVec3(5, 0.5, 0), core.NewVec3(-1, 0, 0), true, 4, core.NewVec3(1, 0, 0)},
		{"from inside", core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), true, 1, core.NewVec3(0, -1, 0)},
		{"miss", core.NewVec3(3, 3, 5), core.NewVec3(0, 0, -1), false, 0, core.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isect := box.Intersect(core.NewRay(tt.origin, tt.direction))
			if isect.Happened != tt.shouldHit {
				t.Fatalf("Expected hit=%t, got %t", tt.shouldHit, isect.Happened)
			}
			if !tt.shouldHit {
				return
			}
			if math.Abs(isect.Distance-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, isect.Distance)
			}
			if !vecClose(isect.Normal, tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, isect.Normal)
			}
			if isect.Object != box {
				t.Error("Expected the box as hit object")
			}
		})
	}
}

func TestBox_SampleIsAreaWeighted(t *testing.T) {
	// Thin slab: the two large faces hold almost all of the area
	box := NewAxisAlignedBox(core.NewVec3(0, 0, 0), core.NewVec3(10, 10, 0.1), material.NewEmissive(core.NewVec3(1, 1, 1)))
	sampler := core.NewSeededSampler(17)

	const n = 20000
	onLargeFaces := 0
	for i := 0; i < n; i++ {
		isect, pdf := box.Sample(sampler)
		if math.Abs(pdf-1.0/box.Area()) > 1e-12 {
			t.Fatalf("Expected pdf 1/area, got %f", pdf)
		}
		if math.Abs(isect.Normal.Z) > 0.5 {
			onLargeFaces++
		}
	}

	expected := 200.0 / box.Area()
	if got := float64(onLargeFaces) / n; math.Abs(got-expected) > 0.01 {
		t.Errorf("Expected %.3f of samples on large faces, got %.3f", expected, got)
	}
}
