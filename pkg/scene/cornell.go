package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Cornell box dimensions (standard 555x555x555 units)
const cornellSize = 555.0

// NewCornellScene creates the classic Cornell box: five diffuse walls, a
// downward-facing area light below the ceiling and two rotated white blocks
func NewCornellScene(opts Options) *Scene {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewEmissive(core.NewVec3(15.0, 15.0, 15.0))

	objects := []core.Object{
		// Floor (white) - XZ plane at y=0
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(cornellSize, 0, 0), core.NewVec3(0, 0, cornellSize), white),
		// Ceiling (white) - XZ plane at y=555
		geometry.NewQuad(core.NewVec3(0, cornellSize, 0), core.NewVec3(cornellSize, 0, 0), core.NewVec3(0, 0, cornellSize), white),
		// Back wall (white) - XY plane at z=555
		geometry.NewQuad(core.NewVec3(0, 0, cornellSize), core.NewVec3(cornellSize, 0, 0), core.NewVec3(0, cornellSize, 0), white),
		// Left wall (red) - YZ plane at x=0
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, cornellSize), core.NewVec3(0, cornellSize, 0), red),
		// Right wall (green) - YZ plane at x=555
		geometry.NewQuad(core.NewVec3(cornellSize, 0, 0), core.NewVec3(0, cornellSize, 0), core.NewVec3(0, 0, cornellSize), green),
	}

	// Ceiling light slightly below the ceiling; U × V points down into the box
	lightSize := 130.0
	lightOffset := (cornellSize - lightSize) / 2.0
	objects = append(objects, geometry.NewQuad(
		core.NewVec3(lightOffset, cornellSize-1, lightOffset),
		core.NewVec3(lightSize, 0, 0),
		core.NewVec3(0, 0, lightSize),
		light,
	))

	// Short block (front left) and tall block (back right)
	objects = append(objects,
		geometry.NewBox(core.NewVec3(185, 82.5, 169), core.NewVec3(82.5, 82.5, 82.5), core.NewVec3(0, -0.314, 0), white),
		geometry.NewBox(core.NewVec3(368, 165, 351), core.NewVec3(82.5, 165, 82.5), core.NewVec3(0, 0.297, 0), white),
	)

	s := New(objects, opts)
	s.View = View{
		Center: core.NewVec3(278, 278, -800), // outside the open front of the box
		LookAt: core.NewVec3(278, 278, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   40.0,
	}
	return s
}
