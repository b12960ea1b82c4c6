package bvh

import (
	"sort"
	"testing"

	"github.com/achilleasa/go-bvh/types"
)

// fiveLeafTree builds, by hand, the 5-real-leaf / 8-slot / levels=4 tree
// whose virtual-node layout is exercised in tree_test.go. Leaves are unit
// boxes centered at x=0..4 along the X axis.
func fiveLeafTree() *Tree3 {
	leaf := func(i float32) BBox3 {
		return NewBBox3(types.XYZ(i-0.5, -0.5, -0.5), types.XYZ(i+0.5, 0.5, 0.5))
	}

	leaves := []BBox3{leaf(0), leaf(1), leaf(2), leaf(3), leaf(4)}

	node3 := leaves[0].Merge(leaves[1])
	node4 := leaves[2].Merge(leaves[3])
	node5 := leaves[4]

	node1 := node3.Merge(node4)
	node2 := node5

	root := node1.Merge(node2)

	return &Tree3{
		Nodes:         []BBox3{root, node1, node2, node3, node4, node5},
		Leaves:        leaves,
		Order:         []uint32{0, 1, 2, 3, 4},
		Levels:        4,
		VirtualLeaves: 3,
	}
}

func TestIntersectPoints3SingleHit(t *testing.T) {
	tree := fiveLeafTree()
	points := []types.Vec3{types.XYZ(2, 0, 0)}

	got := IntersectPoints3(tree, points, DefaultOptions())
	if len(got) != 1 || got[0].Leaf != 2 || got[0].Query != 0 {
		t.Fatalf("expected a single hit against leaf 2; got %+v", got)
	}
}

func TestIntersectPoints3NoHit(t *testing.T) {
	tree := fiveLeafTree()
	points := []types.Vec3{types.XYZ(100, 100, 100)}

	got := IntersectPoints3(tree, points, DefaultOptions())
	if len(got) != 0 {
		t.Fatalf("expected no hits; got %+v", got)
	}
}

func sortPairs(p []Pair) {
	sort.Slice(p, func(i, j int) bool {
		if p[i].Query != p[j].Query {
			return p[i].Query < p[j].Query
		}
		return p[i].Leaf < p[j].Leaf
	})
}

func TestIntersectPoints3ThreadCountInvariant(t *testing.T) {
	tree := fiveLeafTree()
	points := make([]types.Vec3, 0, 5)
	for i := float32(0); i < 5; i++ {
		points = append(points, types.XYZ(i, 0, 0))
	}

	single := IntersectPoints3(tree, points, Options{NumThreads: 1, MinTraversalsPerThread: 1000})
	parallel := IntersectPoints3(tree, points, Options{NumThreads: 8, MinTraversalsPerThread: 1})

	sortPairs(single)
	sortPairs(parallel)

	if len(single) != len(parallel) {
		t.Fatalf("expected thread count to not change the number of hits: single=%d parallel=%d", len(single), len(parallel))
	}
	for i := range single {
		if single[i] != parallel[i] {
			t.Fatalf("result %d differs between thread counts: single=%+v parallel=%+v", i, single[i], parallel[i])
		}
	}
}

func TestIntersectRays3(t *testing.T) {
	tree := fiveLeafTree()
	origins := []types.Vec3{types.XYZ(-10, 0, 0)}
	dirs := []types.Vec3{types.XYZ(1, 0, 0)}

	got := IntersectRays3(tree, origins, dirs, DefaultOptions())
	if len(got) != 5 {
		t.Fatalf("expected a ray along the X axis to hit all 5 leaves; got %d hits: %+v", len(got), got)
	}
}

func TestPartitionNeverExceedsInput(t *testing.T) {
	for _, n := range []int{0, 1, 3, 7, 100} {
		ranges := partition(n, 8, 2)
		total := 0
		for _, r := range ranges {
			total += r.Hi - r.Lo
		}
		if total != n {
			t.Fatalf("partition(%d, 8, 2) covers %d items, want %d", n, total, n)
		}
	}
}
