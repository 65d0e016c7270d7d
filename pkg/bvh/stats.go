package bvh

// Stats contains statistics about the BVH structure
type Stats struct {
	TotalNodes    int
	LeafNodes     int
	InternalNodes int
	MaxDepth      int
	AvgLeafDepth  float64
	TotalObjects  int
	SurfaceArea   float64 // surface area of the root bounds
}

// Stats returns statistics about the tree structure
func (t *Tree) Stats() Stats {
	stats := Stats{TotalObjects: t.Len()}
	root, ok := t.Root()
	if !ok {
		return stats
	}

	depthSum := 0
	t.walk(root, 0, func(n *Node, depth int) {
		stats.TotalNodes++
		if depth > stats.MaxDepth {
			stats.MaxDepth = depth
		}
		if n.IsLeaf() {
			stats.LeafNodes++
			depthSum += depth
		} else {
			stats.InternalNodes++
		}
	})

	if stats.LeafNodes > 0 {
		stats.AvgLeafDepth = float64(depthSum) / float64(stats.LeafNodes)
	}
	stats.SurfaceArea = t.nodes[root].Bounds.SurfaceArea()
	return stats
}
