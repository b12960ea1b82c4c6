// Package buildtree is a convenience top-down builder that turns a flat
// list of primitives into a bvh.Tree3/Tree2 satisfying the implicit
// layout the bvh package's traversal engine expects. It is not part of
// the traversal core; callers that already have their own builder can
// populate a bvh.Tree3/Tree2 directly.
package buildtree

import (
	"math/bits"
	"sort"
	"time"

	"github.com/achilleasa/go-bvh/bvh"
	"github.com/achilleasa/go-bvh/log"
)

var logger = log.New("buildtree")

// Build3 arranges prims into a Tree3 by recursively sorting each group
// along the longest axis of its bounding box and splitting it by count,
// always assigning as many items as the left half's implicit capacity
// allows before spilling the remainder right. That keeps the recursion aligned with the fixed,
// virtual-leaf-padded shape the traversal engine addresses implicitly.
func Build3(prims []bvh.BoundedVolume3) bvh.Tree3 {
	n := len(prims)
	if n == 0 {
		return bvh.Tree3{}
	}

	start := time.Now()
	capacity := nextPow2(uint32(n))
	levels := uint32(bits.Len32(capacity))
	virtualLeaves := capacity - uint32(n)

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	b := &builder3{prims: prims, byLevel: make(map[uint32][]bvh.BBox3)}
	b.split(indices, int(capacity), 1)

	nodes := make([]bvh.BBox3, 0, int(capacity)-1)
	for level := uint32(1); level < levels; level++ {
		nodes = append(nodes, b.byLevel[level]...)
	}

	logger.Debugf("Build3: %d primitives, %d levels, %d virtual leaves, %s", n, levels, virtualLeaves, time.Since(start))

	return bvh.Tree3{
		Nodes:         nodes,
		Leaves:        b.leaves,
		Order:         b.order,
		Levels:        levels,
		VirtualLeaves: virtualLeaves,
	}
}

type builder3 struct {
	prims   []bvh.BoundedVolume3
	byLevel map[uint32][]bvh.BBox3
	leaves  []bvh.BBox3
	order   []uint32
}

// split partitions indices, a non-empty group occupying slots implicit
// positions, into a leaf (slots==1) or a pair of halves. It returns the
// bounding box of the group. Callers only recurse into non-empty sides.
func (b *builder3) split(indices []int, slots int, level uint32) bvh.BBox3 {
	if slots == 1 {
		idx := indices[0]
		box := b.prims[idx].BBox()
		b.leaves = append(b.leaves, box)
		b.order = append(b.order, uint32(idx))
		return box
	}

	box := b.boundsOf(indices)
	axis := longestAxis3(box)
	sort.Slice(indices, func(i, j int) bool {
		return b.prims[indices[i]].Center()[axis] < b.prims[indices[j]].Center()[axis]
	})

	half := slots / 2
	leftCount := len(indices)
	if leftCount > half {
		leftCount = half
	}

	leftBox := b.split(indices[:leftCount], half, level+1)
	merged := leftBox
	if rightIdx := indices[leftCount:]; len(rightIdx) > 0 {
		rightBox := b.split(rightIdx, half, level+1)
		merged = leftBox.Merge(rightBox)
	}

	b.byLevel[level] = append(b.byLevel[level], merged)
	return merged
}

func (b *builder3) boundsOf(indices []int) bvh.BBox3 {
	box := b.prims[indices[0]].BBox()
	for _, idx := range indices[1:] {
		box = box.Merge(b.prims[idx].BBox())
	}
	return box
}

func longestAxis3(box bvh.BBox3) int {
	size := box.Up.Sub(box.Lo)
	axis := 0
	if size[1] > size[axis] {
		axis = 1
	}
	if size[2] > size[axis] {
		axis = 2
	}
	return axis
}

// Build2 is the 2D counterpart of Build3.
func Build2(prims []bvh.BoundedVolume2) bvh.Tree2 {
	n := len(prims)
	if n == 0 {
		return bvh.Tree2{}
	}

	start := time.Now()
	capacity := nextPow2(uint32(n))
	levels := uint32(bits.Len32(capacity))
	virtualLeaves := capacity - uint32(n)

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	b := &builder2{prims: prims, byLevel: make(map[uint32][]bvh.BBox2)}
	b.split(indices, int(capacity), 1)

	nodes := make([]bvh.BBox2, 0, int(capacity)-1)
	for level := uint32(1); level < levels; level++ {
		nodes = append(nodes, b.byLevel[level]...)
	}

	logger.Debugf("Build2: %d primitives, %d levels, %d virtual leaves, %s", n, levels, virtualLeaves, time.Since(start))

	return bvh.Tree2{
		Nodes:         nodes,
		Leaves:        b.leaves,
		Order:         b.order,
		Levels:        levels,
		VirtualLeaves: virtualLeaves,
	}
}

type builder2 struct {
	prims   []bvh.BoundedVolume2
	byLevel map[uint32][]bvh.BBox2
	leaves  []bvh.BBox2
	order   []uint32
}

func (b *builder2) split(indices []int, slots int, level uint32) bvh.BBox2 {
	if slots == 1 {
		idx := indices[0]
		box := b.prims[idx].BBox()
		b.leaves = append(b.leaves, box)
		b.order = append(b.order, uint32(idx))
		return box
	}

	box := b.boundsOf(indices)
	axis := longestAxis2(box)
	sort.Slice(indices, func(i, j int) bool {
		return b.prims[indices[i]].Center()[axis] < b.prims[indices[j]].Center()[axis]
	})

	half := slots / 2
	leftCount := len(indices)
	if leftCount > half {
		leftCount = half
	}

	leftBox := b.split(indices[:leftCount], half, level+1)
	merged := leftBox
	if rightIdx := indices[leftCount:]; len(rightIdx) > 0 {
		rightBox := b.split(rightIdx, half, level+1)
		merged = leftBox.Merge(rightBox)
	}

	b.byLevel[level] = append(b.byLevel[level], merged)
	return merged
}

func (b *builder2) boundsOf(indices []int) bvh.BBox2 {
	box := b.prims[indices[0]].BBox()
	for _, idx := range indices[1:] {
		box = box.Merge(b.prims[idx].BBox())
	}
	return box
}

func longestAxis2(box bvh.BBox2) int {
	size := box.Up.Sub(box.Lo)
	axis := 0
	if size[1] > size[axis] {
		axis = 1
	}
	return axis
}

func nextPow2(n uint32) uint32 {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len32(n-1)
}
