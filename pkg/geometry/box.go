package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Box represents a rectangular box made up of 6 quads with optional rotation
type Box struct {
	Center   core.Vec3     // Center point of the box
	Size     core.Vec3     // Half-extents along each axis
	Rotation core.Vec3     // Rotation angles in radians (X, Y, Z)
	Material core.Material // Material for all faces
	faces    [6]*Quad
	bounds   core.Bounds3
	area     float64
}

// NewBox creates a new box with the given center, half-extents, rotation and
// material. A size of (1,1,1) creates a 2x2x2 box. Rotation is in radians
// around X, Y, Z axes (applied in that order). Face normals point outward.
func NewBox(center, size, rotation core.Vec3, material core.Material) *Box {
	box := &Box{
		Center:   center,
		Size:     size,
		Rotation: rotation,
		Material: material,
	}
	box.generateFaces()
	return box
}

// NewAxisAlignedBox creates a box spanning min to max with no rotation
func NewAxisAlignedBox(min, max core.Vec3, material core.Material) *Box {
	center := min.Add(max).Multiply(0.5)
	size := max.Subtract(min).Multiply(0.5)
	return NewBox(center, size, core.Vec3{}, material)
}

func (b *Box) generateFaces() {
	corners := [8]core.Vec3{
		core.NewVec3(-1, -1, -1), // 0: left-bottom-back
		core.NewVec3(1, -1, -1),  // 1: right-bottom-back
		core.NewVec3(1, 1, -1),   // 2: right-top-back
		core.NewVec3(-1, 1, -1),  // 3: left-top-back
		core.NewVec3(-1, -1, 1),  // 4: left-bottom-front
		core.NewVec3(1, -1, 1),   // 5: right-bottom-front
		core.NewVec3(1, 1, 1),    // 6: right-top-front
		core.NewVec3(-1, 1, 1),   // 7: left-top-front
	}

	for i := range corners {
		corners[i] = rotateVertex(corners[i].MultiplyVec(b.Size), b.Rotation).Add(b.Center)
	}

	// corner, u, v per face with u × v pointing outward
	quad := func(c, u, v int) *Quad {
		return NewQuad(corners[c], corners[u].Subtract(corners[c]), corners[v].Subtract(corners[c]), b.Material)
	}
	b.faces = [6]*Quad{
		quad(4, 5, 7), // front (Z+)
		quad(1, 0, 2), // back (Z-)
		quad(5, 1, 6), // right (X+)
		quad(0, 4, 3), // left (X-)
		quad(3, 7, 2), // top (Y+)
		quad(4, 0, 5), // bottom (Y-)
	}

	b.bounds = core.NewBoundsFromPoints(corners[:]...)
	b.area = 0
	for _, face := range b.faces {
		b.area += face.Area()
	}
}

// Intersect returns the nearest hit among the six faces
func (b *Box) Intersect(ray core.Ray) core.Intersection {
	closest := core.NoIntersection()
	for _, face := range b.faces {
		if isect := face.Intersect(ray); isect.HitDistance() < closest.HitDistance() {
			closest = isect
		}
	}
	if closest.Happened {
		closest.Object = b
	}
	return closest
}

// Bounds returns the axis-aligned bounding box for this box
func (b *Box) Bounds() core.Bounds3 {
	return b.bounds
}

// HasEmit reports whether the box's material emits light
func (b *Box) HasEmit() bool {
	return hasEmission(b.Material)
}

// Area returns the summed area of the six faces
func (b *Box) Area() float64 {
	return b.area
}

// Faces returns the six quads of the box
func (b *Box) Faces() [6]*Quad {
	return b.faces
}

// Sample picks a face with probability proportional to its area, then a
// uniform point on it
func (b *Box) Sample(sampler core.Sampler) (core.Intersection, float64) {
	if b.area <= 0 {
		return core.NoIntersection(), 0
	}
	p := sampler.Get1D() * b.area
	face := b.faces[len(b.faces)-1]
	for _, f := range b.faces {
		if p < f.Area() {
			face = f
			break
		}
		p -= f.Area()
	}
	isect, _ := face.Sample(sampler)
	isect.Object = b
	return isect, 1.0 / b.area
}
