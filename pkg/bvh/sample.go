package bvh

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Sample picks a point uniformly by area over all objects in the tree.
//
// The descent chooses each child with probability proportional to its
// subtree area and the chosen leaf samples its own surface uniformly, so the
// returned pdf is 1/Area() with respect to surface area. An empty or
// zero-area tree returns core.NoIntersection() and a zero pdf.
func (t *Tree) Sample(sampler core.Sampler) (core.Intersection, float64) {
	root, ok := t.Root()
	if !ok || t.nodes[root].Area <= 0 {
		return core.NoIntersection(), 0
	}

	p := sampler.Get1D() * t.nodes[root].Area
	index := root
	for !t.nodes[index].IsLeaf() {
		node := &t.nodes[index]
		leftArea := t.nodes[node.Left].Area
		if p < leftArea {
			index = int(node.Left)
		} else {
			p -= leftArea
			index = int(node.Right)
		}
	}

	isect, _ := t.nodes[index].Object.Sample(sampler)
	return isect, 1.0 / t.nodes[root].Area
}
