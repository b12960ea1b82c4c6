package bvh

import "math/bits"

// Tree3 is a flat, implicitly-indexed bounding volume hierarchy over 3D
// leaves. Nodes holds every real (non-virtual) internal node in level
// order; Leaves holds one bounding volume per real leaf in build order;
// Order[i] is the original primitive index of the i-th leaf.
type Tree3 struct {
	Nodes         []BBox3
	Leaves        []BBox3
	Order         []uint32
	Levels        uint32
	VirtualLeaves uint32
}

// Tree2 is the 2D counterpart of Tree3.
type Tree2 struct {
	Nodes         []BBox2
	Leaves        []BBox2
	Order         []uint32
	Levels        uint32
	VirtualLeaves uint32
}

// LevelRange returns the inclusive implicit index range [lo, hi] occupied
// by the given level, root at level 1.
func LevelRange(level uint32) (lo, hi uint32) {
	return pow2(level - 1), pow2(level) - 1
}

// numVirtualAtLevel returns how many of the 2^(level-1) implicit slots of
// level are virtual padding. virtual_leaves halves going up one level at a
// time, since each pair of leaf slots collapses into one parent slot.
func numVirtualAtLevel(virtualLeaves, levels, level uint32) uint32 {
	shift := levels - level
	return virtualLeaves >> shift
}

// virtualNodesBefore returns the number of virtual positions at every
// level strictly shallower than level, via the closed-form identity
// 2*v - popcount(v) where v is the virtual count one level up from level.
func virtualNodesBefore(virtualLeaves, levels, level uint32) uint32 {
	v := numVirtualAtLevel(virtualLeaves, levels, level-1)
	return 2*v - uint32(bits.OnesCount32(v))
}

// IsVirtual reports whether implicit addresses a phantom position padding
// the tree to a complete binary shape. Virtual positions have no stored
// bounding volume and must never be read from Nodes or Leaves.
func IsVirtual(implicit, levels, virtualLeaves uint32) bool {
	level := uint32(bits.Len32(implicit))
	levelStart := pow2(level - 1)
	real := levelStart - numVirtualAtLevel(virtualLeaves, levels, level)
	return implicit-levelStart >= real
}

// storageIndex converts an implicit index at level into a 0-based index
// into a Tree's Nodes slice.
func storageIndex(implicit, levels, virtualLeaves, level uint32) uint32 {
	return implicit - virtualNodesBefore(virtualLeaves, levels, level) - 1
}

// numAbove is the count of implicit positions spanning every level above
// the leaf level, assuming a perfectly balanced (non-virtual) tree.
func numAbove(levels uint32) uint32 {
	return pow2(levels-1) - 1
}

// leafOrderIndex converts an implicit index at the leaf level into a
// 0-based index into a Tree's Order/Leaves slices.
func leafOrderIndex(implicit, levels uint32) uint32 {
	return implicit - numAbove(levels) - 1
}
