// Package bvh implements a bounding volume hierarchy over scene objects.
//
// The tree is stored as an arena of nodes addressed by index. It is built
// once and never modified afterwards, so any number of goroutines may query
// it concurrently without synchronization.
package bvh

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// NodeKind distinguishes leaf nodes from internal nodes
type NodeKind uint8

const (
	// LeafNode owns exactly one object
	LeafNode NodeKind = iota
	// InternalNode owns exactly two children
	InternalNode
)

func (k NodeKind) String() string {
	if k == LeafNode {
		return "leaf"
	}
	return "internal"
}

// noNode marks an absent root or child
const noNode = -1

// Node is a single BVH node. For a leaf, Bounds equals the object's bounds
// and Left/Right are unset. For an internal node, Bounds is the union of the
// children's bounds and Object is nil.
type Node struct {
	Bounds core.Bounds3
	Kind   NodeKind
	Object core.Object // leaf only
	Left   int32       // internal only
	Right  int32       // internal only
	Area   float64     // summed surface area of all objects below this node
}

// IsLeaf reports whether the node holds an object
func (n *Node) IsLeaf() bool {
	return n.Kind == LeafNode
}

// Tree is an immutable BVH: a node arena plus the index of its root
type Tree struct {
	nodes   []Node
	root    int32
	objects int
}

// Root returns the index of the root node; ok is false for an empty tree
func (t *Tree) Root() (index int, ok bool) {
	if t == nil || t.root == noNode {
		return noNode, false
	}
	return int(t.root), true
}

// Node returns a copy of the node at index
func (t *Tree) Node(index int) Node {
	return t.nodes[index]
}

// NumNodes returns the number of nodes in the arena
func (t *Tree) NumNodes() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// Len returns the number of objects in the tree
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return t.objects
}

// Bounds returns the bounds of the whole tree, empty when there is no root
func (t *Tree) Bounds() core.Bounds3 {
	root, ok := t.Root()
	if !ok {
		return core.EmptyBounds()
	}
	return t.nodes[root].Bounds
}

// Area returns the total surface area of all objects in the tree
func (t *Tree) Area() float64 {
	root, ok := t.Root()
	if !ok {
		return 0
	}
	return t.nodes[root].Area
}

// Leaves returns the objects in left-to-right leaf order
func (t *Tree) Leaves() []core.Object {
	root, ok := t.Root()
	if !ok {
		return nil
	}
	leaves := make([]core.Object, 0, t.objects)
	t.walk(root, 0, func(n *Node, depth int) {
		if n.IsLeaf() {
			leaves = append(leaves, n.Object)
		}
	})
	return leaves
}

// Walk visits every node depth-first, left child before right
func (t *Tree) Walk(visit func(n Node, depth int)) {
	root, ok := t.Root()
	if !ok {
		return
	}
	t.walk(root, 0, func(n *Node, depth int) { visit(*n, depth) })
}

func (t *Tree) walk(index int, depth int, visit func(n *Node, depth int)) {
	node := &t.nodes[index]
	visit(node, depth)
	if node.IsLeaf() {
		return
	}
	t.walk(int(node.Left), depth+1, visit)
	t.walk(int(node.Right), depth+1, visit)
}
