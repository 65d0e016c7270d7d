package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestEmissive(t *testing.T) {
	tests := []struct {
		name         string
		emission     core.Vec3
		expectedEmit bool
	}{
		{"Red emission", core.NewVec3(1.0, 0.0, 0.0), true},
		{"White emission", core.NewVec3(1.0, 1.0, 1.0), true},
		{"Zero emission", core.NewVec3(0.0, 0.0, 0.0), false},
		{"High intensity emission", core.NewVec3(10.0, 5.0, 2.0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emissive := NewEmissive(tt.emission)

			if emissive.HasEmission() != tt.expectedEmit {
				t.Errorf("HasEmission: expected %t", tt.expectedEmit)
			}
			if emissive.Emission() != tt.emission {
				t.Errorf("Expected emission %v, got %v", tt.emission, emissive.Emission())
			}

			// Emissive materials don't reflect
			n := core.NewVec3(0, 1, 0)
			sampler := core.NewSeededSampler(42)
			wi := emissive.Sample(n, n, sampler)
			if pdf := emissive.PDF(wi, n, n); pdf != 0 {
				t.Errorf("Expected zero pdf, got %f", pdf)
			}
			if brdf := emissive.Eval(wi, n, n); !brdf.IsZero() {
				t.Errorf("Expected zero BRDF, got %v", brdf)
			}
		})
	}
}
