// Package material provides reference surface materials for the path tracer.
//
// All materials follow the direction convention of core.Material: wi points
// from the surface toward the light or next path vertex, wo points toward the
// viewer, and n is the unit shading normal on the side of wo.
package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

var (
	_ core.Material = (*Lambertian)(nil)
	_ core.Material = (*Emissive)(nil)
)
