package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/bvh"
	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrInvalidMesh is returned when mesh indices or options are inconsistent
var ErrInvalidMesh = errors.New("geometry: invalid mesh")

// Mesh represents a collection of triangles with efficient ray intersection.
// It uses an internal BVH both for intersection and for area sampling.
type Mesh struct {
	triangles []*Triangle
	tree      *bvh.Tree
	emits     bool
}

// MeshOptions contains optional parameters for mesh creation
type MeshOptions struct {
	Materials []core.Material // Optional per-triangle materials
	Rotation  *core.Vec3      // Optional rotation (radians about X, Y, Z) to apply to vertices
	Center    *core.Vec3      // Optional center point for rotation
	BVH       bvh.Options     // Options for the internal BVH
}

// NewMesh creates a new mesh from vertices and face indices.
// Each group of 3 indices in faces forms a triangle; material is the default
// for all triangles and options may be nil.
func NewMesh(vertices []core.Vec3, faces []int, material core.Material, options *MeshOptions) (*Mesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("%w: %d face indices is not a multiple of 3", ErrInvalidMesh, len(faces))
	}
	numTriangles := len(faces) / 3

	bvhOptions := bvh.DefaultOptions()
	if options != nil {
		if options.Materials != nil && len(options.Materials) != numTriangles {
			return nil, fmt.Errorf("%w: %d materials for %d triangles", ErrInvalidMesh, len(options.Materials), numTriangles)
		}
		bvhOptions = options.BVH
	}

	// Apply rotation if specified
	workingVertices := vertices
	if options != nil && options.Rotation != nil {
		workingVertices = make([]core.Vec3, len(vertices))
		for i, vertex := range vertices {
			// Translate to center, rotate, then translate back
			if options.Center != nil {
				vertex = vertex.Subtract(*options.Center)
			}
			vertex = rotateVertex(vertex, *options.Rotation)
			if options.Center != nil {
				vertex = vertex.Add(*options.Center)
			}
			workingVertices[i] = vertex
		}
	}

	mesh := &Mesh{triangles: make([]*Triangle, numTriangles)}
	objects := make([]core.Object, numTriangles)
	for i := 0; i < numTriangles; i++ {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]
		for _, index := range [3]int{i0, i1, i2} {
			if index < 0 || index >= len(workingVertices) {
				return nil, fmt.Errorf("%w: face index %d out of range [0, %d)", ErrInvalidMesh, index, len(workingVertices))
			}
		}

		triangleMaterial := material
		if options != nil && options.Materials != nil {
			triangleMaterial = options.Materials[i]
		}

		triangle := NewTriangle(workingVertices[i0], workingVertices[i1], workingVertices[i2], triangleMaterial)
		mesh.triangles[i] = triangle
		objects[i] = triangle
		mesh.emits = mesh.emits || triangle.HasEmit()
	}

	mesh.tree = bvh.Build(objects, bvhOptions)
	return mesh, nil
}

// Intersect tests if a ray intersects with any triangle in the mesh
func (m *Mesh) Intersect(ray core.Ray) core.Intersection {
	return m.tree.Intersect(ray)
}

// Bounds returns the axis-aligned bounding box for the entire mesh
func (m *Mesh) Bounds() core.Bounds3 {
	return m.tree.Bounds()
}

// HasEmit reports whether any triangle emits light
func (m *Mesh) HasEmit() bool {
	return m.emits
}

// Area returns the summed area of all triangles
func (m *Mesh) Area() float64 {
	return m.tree.Area()
}

// Sample picks a point uniformly by area over the whole mesh
func (m *Mesh) Sample(sampler core.Sampler) (core.Intersection, float64) {
	return m.tree.Sample(sampler)
}

// TriangleCount returns the number of triangles in this mesh
func (m *Mesh) TriangleCount() int {
	return len(m.triangles)
}

// Triangles returns the individual triangles
func (m *Mesh) Triangles() []*Triangle {
	return m.triangles
}

// Tree returns the mesh's internal BVH
func (m *Mesh) Tree() *bvh.Tree {
	return m.tree
}

// rotateVertex applies rotation around X, Y, Z axes (in that order)
func rotateVertex(vertex, rotation core.Vec3) core.Vec3 {
	if rotation.X != 0 {
		cos, sin := math.Cos(rotation.X), math.Sin(rotation.X)
		vertex = core.NewVec3(vertex.X, vertex.Y*cos-vertex.Z*sin, vertex.Y*sin+vertex.Z*cos)
	}
	if rotation.Y != 0 {
		cos, sin := math.Cos(rotation.Y), math.Sin(rotation.Y)
		vertex = core.NewVec3(vertex.X*cos+vertex.Z*sin, vertex.Y, -vertex.X*sin+vertex.Z*cos)
	}
	if rotation.Z != 0 {
		cos, sin := math.Cos(rotation.Z), math.Sin(rotation.Z)
		vertex = core.NewVec3(vertex.X*cos-vertex.Y*sin, vertex.X*sin+vertex.Y*cos, vertex.Z)
	}
	return vertex
}
