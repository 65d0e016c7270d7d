package bvh

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/log"
)

// SplitMethod selects how objects are partitioned at internal nodes
type SplitMethod int

const (
	// SplitNaive splits at the median of the centroid-sorted objects
	SplitNaive SplitMethod = iota
	// SplitSAH picks the cut of the centroid-sorted objects with the lowest
	// surface area heuristic cost
	SplitSAH
)

// ErrUnknownSplitMethod is returned by ParseSplitMethod for unknown names
var ErrUnknownSplitMethod = errors.New("bvh: unknown split method")

func (m SplitMethod) String() string {
	switch m {
	case SplitNaive:
		return "naive"
	case SplitSAH:
		return "sah"
	default:
		return fmt.Sprintf("SplitMethod(%d)", int(m))
	}
}

// ParseSplitMethod converts a name ("naive", "sah") to a SplitMethod
func ParseSplitMethod(name string) (SplitMethod, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "naive", "median":
		return SplitNaive, nil
	case "sah":
		return SplitSAH, nil
	default:
		return SplitNaive, fmt.Errorf("%w: %q", ErrUnknownSplitMethod, name)
	}
}

// maxPrimsLimit caps Options.MaxPrimsInNode
const maxPrimsLimit = 255

// Options controls BVH construction
type Options struct {
	// MaxPrimsInNode is accepted for compatibility and clamped to [1, 255].
	// Leaves always hold a single object.
	MaxPrimsInNode int
	SplitMethod    SplitMethod
}

// DefaultOptions returns single-object leaves with median splits
func DefaultOptions() Options {
	return Options{MaxPrimsInNode: 1, SplitMethod: SplitNaive}
}

type buildItem struct {
	object   core.Object
	bounds   core.Bounds3
	centroid core.Vec3
}

type builder struct {
	logger   log.Logger
	opts     Options
	nodes    []Node
	maxDepth int
	leaves   int
}

// Build constructs a BVH over objects. The input slice is not modified.
// Building from zero objects yields a tree with no root, against which every
// query returns an empty intersection.
func Build(objects []core.Object, opts Options) *Tree {
	b := &builder{
		logger: log.New("bvh"),
		opts:   opts,
	}

	switch {
	case b.opts.MaxPrimsInNode < 1:
		b.opts.MaxPrimsInNode = 1
	case b.opts.MaxPrimsInNode > maxPrimsLimit:
		b.opts.MaxPrimsInNode = maxPrimsLimit
	}
	debug := log.Enabled(log.Debug, "bvh")
	if debug && b.opts.MaxPrimsInNode > 1 {
		b.logger.Debugf("maxPrimsInNode=%d requested; leaves hold one object", b.opts.MaxPrimsInNode)
	}

	tree := &Tree{root: noNode, objects: len(objects)}
	if len(objects) == 0 {
		return tree
	}

	// Cache bounds and centroids so sorting does not call back into objects
	items := make([]buildItem, len(objects))
	for i, obj := range objects {
		bounds := obj.Bounds()
		items[i] = buildItem{object: obj, bounds: bounds, centroid: bounds.Centroid()}
	}

	start := time.Now()
	b.nodes = make([]Node, 0, 2*len(items)-1)
	tree.root = b.build(items, 0)
	tree.nodes = b.nodes

	if debug {
		b.logger.Debugf(
			"BVH build time: %d ms, split: %s, objects: %d, nodes: %d, leaves: %d, maxDepth: %d",
			time.Since(start).Milliseconds(), b.opts.SplitMethod,
			len(items), len(b.nodes), b.leaves, b.maxDepth,
		)
	}
	return tree
}

// build appends the subtree for items to the arena and returns its index
func (b *builder) build(items []buildItem, depth int) int32 {
	if depth > b.maxDepth {
		b.maxDepth = depth
	}

	switch len(items) {
	case 1:
		return b.leaf(items[0])
	case 2:
		index := b.reserve()
		left := b.build(items[:1], depth+1)
		right := b.build(items[1:], depth+1)
		b.link(index, left, right)
		return index
	}

	centroidBounds := core.EmptyBounds()
	for _, item := range items {
		centroidBounds = core.UnionPoint(centroidBounds, item.centroid)
	}
	dim := centroidBounds.MaxExtent()

	slices.SortStableFunc(items, func(a, c buildItem) int {
		ca, cc := a.centroid.Axis(dim), c.centroid.Axis(dim)
		switch {
		case ca < cc:
			return -1
		case ca > cc:
			return 1
		default:
			return 0
		}
	})

	mid := len(items) / 2
	if b.opts.SplitMethod == SplitSAH {
		mid = sahSplit(items)
	}

	index := b.reserve()
	left := b.build(items[:mid], depth+1)
	right := b.build(items[mid:], depth+1)
	b.link(index, left, right)
	return index
}

func (b *builder) leaf(item buildItem) int32 {
	b.leaves++
	b.nodes = append(b.nodes, Node{
		Bounds: item.bounds,
		Kind:   LeafNode,
		Object: item.object,
		Left:   noNode,
		Right:  noNode,
		Area:   item.object.Area(),
	})
	return int32(len(b.nodes) - 1)
}

// reserve appends a placeholder internal node so that parents precede
// their children in the arena
func (b *builder) reserve() int32 {
	b.nodes = append(b.nodes, Node{Kind: InternalNode, Left: noNode, Right: noNode})
	return int32(len(b.nodes) - 1)
}

func (b *builder) link(index, left, right int32) {
	node := &b.nodes[index]
	node.Left = left
	node.Right = right
	node.Bounds = core.Union(b.nodes[left].Bounds, b.nodes[right].Bounds)
	node.Area = b.nodes[left].Area + b.nodes[right].Area
}

// sahSplit returns the cut index in [1, n-1] minimising
// |L|*area(L) + |R|*area(R) over the sorted items. Ties go to the cut
// closest to the median.
func sahSplit(items []buildItem) int {
	n := len(items)

	// suffix[i] bounds items[i:]
	suffix := make([]float64, n)
	acc := core.EmptyBounds()
	for i := n - 1; i >= 1; i-- {
		acc = core.Union(acc, items[i].bounds)
		suffix[i] = acc.SurfaceArea()
	}

	best := n / 2
	bestCost := math.Inf(1)
	prefix := core.EmptyBounds()
	for cut := 1; cut < n; cut++ {
		prefix = core.Union(prefix, items[cut-1].bounds)
		cost := float64(cut)*prefix.SurfaceArea() + float64(n-cut)*suffix[cut]
		if cost < bestCost || (cost == bestCost && abs(cut-n/2) < abs(best-n/2)) {
			best = cut
			bestCost = cost
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
