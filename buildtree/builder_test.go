package buildtree

import (
	"testing"

	"github.com/achilleasa/go-bvh/bvh"
	"github.com/achilleasa/go-bvh/types"
)

func triangleAt(x float32) bvh.Triangle {
	return bvh.Triangle{
		P1: types.XYZ(x-0.5, -0.5, 0),
		P2: types.XYZ(x+0.5, -0.5, 0),
		P3: types.XYZ(x, 0.5, 0),
	}
}

func TestBuild3LeafCountMatchesPrimitiveCount(t *testing.T) {
	prims := make([]bvh.BoundedVolume3, 5)
	for i := range prims {
		prims[i] = triangleAt(float32(i))
	}

	tree := Build3(prims)
	if len(tree.Leaves) != 5 {
		t.Fatalf("expected 5 leaves; got %d", len(tree.Leaves))
	}
	if tree.VirtualLeaves != 3 {
		t.Fatalf("expected 3 virtual leaves padding to the next power of two; got %d", tree.VirtualLeaves)
	}
	if tree.Levels != 4 {
		t.Fatalf("expected 4 levels; got %d", tree.Levels)
	}
}

func TestBuild3OrderIsPermutation(t *testing.T) {
	prims := make([]bvh.BoundedVolume3, 7)
	for i := range prims {
		prims[i] = triangleAt(float32(i))
	}

	tree := Build3(prims)
	seen := make(map[uint32]bool, len(tree.Order))
	for _, idx := range tree.Order {
		if idx >= uint32(len(prims)) {
			t.Fatalf("order entry %d out of range for %d primitives", idx, len(prims))
		}
		if seen[idx] {
			t.Fatalf("duplicate order entry %d", idx)
		}
		seen[idx] = true
	}
	if len(seen) != len(prims) {
		t.Fatalf("expected order to cover every primitive exactly once; covered %d of %d", len(seen), len(prims))
	}
}

func TestBuild3RootEnclosesAllLeaves(t *testing.T) {
	prims := make([]bvh.BoundedVolume3, 9)
	for i := range prims {
		prims[i] = triangleAt(float32(i) * 2)
	}

	tree := Build3(prims)
	root := tree.Nodes[0]
	for _, leaf := range tree.Leaves {
		if !bvh.PointInBBox3(leaf.Center(), root) {
			t.Fatalf("expected root to enclose every leaf's center; leaf %v escapes root %v", leaf, root)
		}
	}
}

func TestBuild3SingleLeaf(t *testing.T) {
	prims := []bvh.BoundedVolume3{triangleAt(0)}
	tree := Build3(prims)
	if tree.Levels != 1 || len(tree.Nodes) != 0 || len(tree.Leaves) != 1 {
		t.Fatalf("unexpected single-primitive tree: %+v", tree)
	}
}

func TestBuild2LeafCount(t *testing.T) {
	prims := make([]bvh.BoundedVolume2, 3)
	for i := range prims {
		x := float32(i)
		prims[i] = bvh.Segment{P1: types.XY(x, 0), P2: types.XY(x, 1)}
	}

	tree := Build2(prims)
	if len(tree.Leaves) != 3 {
		t.Fatalf("expected 3 leaves; got %d", len(tree.Leaves))
	}
	if tree.VirtualLeaves != 1 {
		t.Fatalf("expected 1 virtual leaf padding to 4; got %d", tree.VirtualLeaves)
	}
}
