package bvh

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Intersect returns the nearest intersection of the ray with any object in
// the tree. Subtrees whose bounds the ray misses are never visited. An empty
// tree, or a ray that hits nothing, yields core.NoIntersection().
func (t *Tree) Intersect(ray core.Ray) core.Intersection {
	root, ok := t.Root()
	if !ok {
		return core.NoIntersection()
	}

	invDir, dirIsNeg := ray.InvDirection()
	return t.intersectNode(root, ray, invDir, dirIsNeg)
}

// intersectNode descends into both children of every internal node whose
// box the ray enters; the strictly nearer result wins and ties keep the left
func (t *Tree) intersectNode(index int, ray core.Ray, invDir core.Vec3, dirIsNeg [3]bool) core.Intersection {
	node := &t.nodes[index]

	if !node.Bounds.IntersectP(ray, invDir, dirIsNeg) {
		return core.NoIntersection()
	}

	if node.IsLeaf() {
		return node.Object.Intersect(ray)
	}

	left := t.intersectNode(int(node.Left), ray, invDir, dirIsNeg)
	right := t.intersectNode(int(node.Right), ray, invDir, dirIsNeg)
	if right.HitDistance() < left.HitDistance() {
		return right
	}
	return left
}
