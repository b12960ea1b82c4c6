package bvh

import (
	"runtime"
	"sync"
	"time"

	"github.com/achilleasa/go-bvh/log"
	"github.com/achilleasa/go-bvh/types"
)

var logger = log.New("bvh")

// Options configures how a traversal is split across goroutines.
type Options struct {
	// NumThreads caps the number of goroutines spawned per tree level.
	NumThreads int
	// MinTraversalsPerThread is the smallest BVTT frontier slice a task
	// will be given; it bounds how many goroutines actually get spawned
	// for small query batches.
	MinTraversalsPerThread int
}

// DefaultOptions returns an Options sized to the host machine.
func DefaultOptions() Options {
	return Options{
		NumThreads:             runtime.NumCPU(),
		MinTraversalsPerThread: 100,
	}
}

// Pair is a single (leaf, query) hit emitted by a traversal. Leaf is an
// index into the primitive slice the tree was built from, not a leaf
// implicit index.
type Pair struct {
	Leaf  uint32
	Query uint32
}

// bvttPair is a BVTT frontier entry: an implicit node index paired with
// the query that reached it. It is only meaningful while a batch is in
// flight and never escapes this package.
type bvttPair struct {
	Node  uint32
	Query uint32
}

type taskRange struct{ Lo, Hi int }

// partition splits n frontier entries into up to numThreads contiguous,
// near-equal ranges. It never produces more tasks than n/minPerThread
// (and always at least one for n > 0), so small batches stay
// single-threaded. Any remainder from the integer
// division is spread over the first few tasks rather than dumped onto
// the last one.
func partition(n, numThreads, minPerThread int) []taskRange {
	if n == 0 {
		return nil
	}
	if numThreads < 1 {
		numThreads = 1
	}
	if minPerThread < 1 {
		minPerThread = 1
	}

	tasks := numThreads
	if byMin := n / minPerThread; byMin < tasks {
		tasks = byMin
	}
	if tasks < 1 {
		tasks = 1
	}
	if tasks > n {
		tasks = n
	}

	ranges := make([]taskRange, tasks)
	base := n / tasks
	rem := n % tasks
	lo := 0
	for i := 0; i < tasks; i++ {
		size := base
		if i < rem {
			size++
		}
		ranges[i] = taskRange{Lo: lo, Hi: lo + size}
		lo += size
	}
	return ranges
}

// fanOutNodes runs rangeFn over every partition of src, in parallel when
// there is more than one task, and compacts the results into a single
// contiguous slice. Each task is reserved a worst-case region of 2x its
// input size, since an internal node step can emit at most two children
// per visited pair.
func fanOutNodes(src []bvttPair, opts Options, rangeFn func(src, dst []bvttPair) int) []bvttPair {
	n := len(src)
	ranges := partition(n, opts.NumThreads, opts.MinTraversalsPerThread)

	if len(ranges) <= 1 {
		dst := make([]bvttPair, 2*n)
		written := rangeFn(src, dst)
		return dst[:written]
	}

	starts := make([]int, len(ranges))
	reserved := make([]int, len(ranges))
	offset := 0
	for i, r := range ranges {
		reserved[i] = 2 * (r.Hi - r.Lo)
		starts[i] = offset
		offset += reserved[i]
	}

	dst := make([]bvttPair, offset)
	counts := make([]int, len(ranges))

	var wg sync.WaitGroup
	for i, r := range ranges {
		wg.Add(1)
		go func(i int, r taskRange) {
			defer wg.Done()
			region := dst[starts[i] : starts[i]+reserved[i]]
			counts[i] = rangeFn(src[r.Lo:r.Hi], region)
		}(i, r)
	}
	wg.Wait()

	return compactFrontier(dst, starts, counts)
}

// fanOutLeaves is the leaf-level counterpart of fanOutNodes. A leaf step
// emits at most one Pair per visited entry, so each task reserves a
// region exactly its input size.
func fanOutLeaves(src []bvttPair, opts Options, rangeFn func(src []bvttPair, dst []Pair) int) []Pair {
	n := len(src)
	ranges := partition(n, opts.NumThreads, opts.MinTraversalsPerThread)

	if len(ranges) <= 1 {
		dst := make([]Pair, n)
		written := rangeFn(src, dst)
		return dst[:written]
	}

	starts := make([]int, len(ranges))
	for i, r := range ranges {
		starts[i] = r.Lo
	}

	dst := make([]Pair, n)
	counts := make([]int, len(ranges))

	var wg sync.WaitGroup
	for i, r := range ranges {
		wg.Add(1)
		go func(i int, r taskRange) {
			defer wg.Done()
			region := dst[starts[i] : starts[i]+(r.Hi-r.Lo)]
			counts[i] = rangeFn(src[r.Lo:r.Hi], region)
		}(i, r)
	}
	wg.Wait()

	return compactResults(dst, starts, counts)
}

// compactFrontier slides each task's written pairs left so they sit
// immediately after the previous task's, removing the unused tail of
// each task's reserved region. Task 0 is already at offset 0.
func compactFrontier(dst []bvttPair, starts, counts []int) []bvttPair {
	write := counts[0]
	for i := 1; i < len(counts); i++ {
		copy(dst[write:write+counts[i]], dst[starts[i]:starts[i]+counts[i]])
		write += counts[i]
	}
	return dst[:write]
}

func compactResults(dst []Pair, starts, counts []int) []Pair {
	write := counts[0]
	for i := 1; i < len(counts); i++ {
		copy(dst[write:write+counts[i]], dst[starts[i]:starts[i]+counts[i]])
		write += counts[i]
	}
	return dst[:write]
}

// boxTest3 tests a single query (identified by index) against a node or
// leaf bounding box.
type boxTest3 func(q uint32, box BBox3) bool
type boxTest2 func(q uint32, box BBox2) bool

func traverseNodesRange3(tree *Tree3, level uint32, src []bvttPair, test boxTest3, dst []bvttPair) int {
	n := 0
	for _, p := range src {
		si := storageIndex(p.Node, tree.Levels, tree.VirtualLeaves, level)
		if !test(p.Query, tree.Nodes[si]) {
			continue
		}
		left := 2 * p.Node
		dst[n] = bvttPair{Node: left, Query: p.Query}
		n++
		right := left + 1
		if !IsVirtual(right, tree.Levels, tree.VirtualLeaves) {
			dst[n] = bvttPair{Node: right, Query: p.Query}
			n++
		}
	}
	return n
}

func traverseLeavesRange3(tree *Tree3, src []bvttPair, test boxTest3, dst []Pair) int {
	n := 0
	for _, p := range src {
		pos := leafOrderIndex(p.Node, tree.Levels)
		if test(p.Query, tree.Leaves[pos]) {
			dst[n] = Pair{Leaf: tree.Order[pos], Query: p.Query}
			n++
		}
	}
	return n
}

func traverseNodesRange2(tree *Tree2, level uint32, src []bvttPair, test boxTest2, dst []bvttPair) int {
	n := 0
	for _, p := range src {
		si := storageIndex(p.Node, tree.Levels, tree.VirtualLeaves, level)
		if !test(p.Query, tree.Nodes[si]) {
			continue
		}
		left := 2 * p.Node
		dst[n] = bvttPair{Node: left, Query: p.Query}
		n++
		right := left + 1
		if !IsVirtual(right, tree.Levels, tree.VirtualLeaves) {
			dst[n] = bvttPair{Node: right, Query: p.Query}
			n++
		}
	}
	return n
}

func traverseLeavesRange2(tree *Tree2, src []bvttPair, test boxTest2, dst []Pair) int {
	n := 0
	for _, p := range src {
		pos := leafOrderIndex(p.Node, tree.Levels)
		if test(p.Query, tree.Leaves[pos]) {
			dst[n] = Pair{Leaf: tree.Order[pos], Query: p.Query}
			n++
		}
	}
	return n
}

func run3(tree *Tree3, numQueries uint32, test boxTest3, opts Options) []Pair {
	if numQueries == 0 || tree.Levels == 0 {
		return nil
	}

	src := make([]bvttPair, numQueries)
	for q := uint32(0); q < numQueries; q++ {
		src[q] = bvttPair{Node: 1, Query: q}
	}

	for level := uint32(1); level < tree.Levels; level++ {
		if len(src) == 0 {
			return nil
		}
		src = fanOutNodes(src, opts, func(s, d []bvttPair) int {
			return traverseNodesRange3(tree, level, s, test, d)
		})
	}
	if len(src) == 0 {
		return nil
	}
	return fanOutLeaves(src, opts, func(s []bvttPair, d []Pair) int {
		return traverseLeavesRange3(tree, s, test, d)
	})
}

func run2(tree *Tree2, numQueries uint32, test boxTest2, opts Options) []Pair {
	if numQueries == 0 || tree.Levels == 0 {
		return nil
	}

	src := make([]bvttPair, numQueries)
	for q := uint32(0); q < numQueries; q++ {
		src[q] = bvttPair{Node: 1, Query: q}
	}

	for level := uint32(1); level < tree.Levels; level++ {
		if len(src) == 0 {
			return nil
		}
		src = fanOutNodes(src, opts, func(s, d []bvttPair) int {
			return traverseNodesRange2(tree, level, s, test, d)
		})
	}
	if len(src) == 0 {
		return nil
	}
	return fanOutLeaves(src, opts, func(s []bvttPair, d []Pair) int {
		return traverseLeavesRange2(tree, s, test, d)
	})
}

// IntersectPoints3 returns one Pair per (leaf, query) whose leaf bounding
// box contains the query point.
func IntersectPoints3(tree *Tree3, points []types.Vec3, opts Options) []Pair {
	start := time.Now()
	test := func(q uint32, box BBox3) bool { return PointInBBox3(points[q], box) }
	result := run3(tree, uint32(len(points)), test, opts)
	logger.Debugf("IntersectPoints3: %d queries -> %d hits in %s", len(points), len(result), time.Since(start))
	return result
}

// IntersectRays3 returns one Pair per (leaf, query) whose leaf bounding box
// is hit by the query ray.
func IntersectRays3(tree *Tree3, origins, directions []types.Vec3, opts Options) []Pair {
	start := time.Now()
	test := func(q uint32, box BBox3) bool { return RayIntersectsBBox3(origins[q], directions[q], box) }
	result := run3(tree, uint32(len(origins)), test, opts)
	logger.Debugf("IntersectRays3: %d queries -> %d hits in %s", len(origins), len(result), time.Since(start))
	return result
}

// IntersectPoints2 is the 2D counterpart of IntersectPoints3.
func IntersectPoints2(tree *Tree2, points []types.Vec2, opts Options) []Pair {
	start := time.Now()
	test := func(q uint32, box BBox2) bool { return PointInBBox2(points[q], box) }
	result := run2(tree, uint32(len(points)), test, opts)
	logger.Debugf("IntersectPoints2: %d queries -> %d hits in %s", len(points), len(result), time.Since(start))
	return result
}

// IntersectRays2 is the 2D counterpart of IntersectRays3.
func IntersectRays2(tree *Tree2, origins, directions []types.Vec2, opts Options) []Pair {
	start := time.Now()
	test := func(q uint32, box BBox2) bool { return RayIntersectsBBox2(origins[q], directions[q], box) }
	result := run2(tree, uint32(len(origins)), test, opts)
	logger.Debugf("IntersectRays2: %d queries -> %d hits in %s", len(origins), len(result), time.Since(start))
	return result
}
