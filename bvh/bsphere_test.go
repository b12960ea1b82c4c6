package bvh

import (
	"math"
	"testing"

	"github.com/achilleasa/go-bvh/types"
)

func almostEqualf(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func TestBSphere3FromTriangleRightAngle(t *testing.T) {
	s := BSphere3FromTriangle(types.XYZ(0, 0, 0), types.XYZ(2, 0, 0), types.XYZ(0, 2, 0))
	if !almostEqualf(s.X[0], 1, 1e-5) || !almostEqualf(s.X[1], 1, 1e-5) || !almostEqualf(s.X[2], 0, 1e-5) {
		t.Fatalf("expected circumcenter {1 1 0}; got %v", s.X)
	}
	want := float32(math.Sqrt(2))
	if !almostEqualf(s.R, want, 1e-5) {
		t.Fatalf("expected radius %f; got %f", want, s.R)
	}
}

func TestBSphere3FromTriangleCollinearFallback(t *testing.T) {
	s := BSphere3FromTriangle(types.XYZ(0, 0, 0), types.XYZ(1, 0, 0), types.XYZ(2, 0, 0))
	box := BBox3FromTriangle(types.XYZ(0, 0, 0), types.XYZ(1, 0, 0), types.XYZ(2, 0, 0))
	if s.X != box.Center() {
		t.Fatalf("expected collinear fallback to center on the bbox center; got %v want %v", s.X, box.Center())
	}
	if !PointInBSphere3(types.XYZ(0, 0, 0), BSphere3{X: s.X, R: s.R + 1e-4}) {
		t.Fatalf("expected fallback sphere to enclose the degenerate triangle's extreme point")
	}
}

func TestBSphere3MergeEnclosed(t *testing.T) {
	a := BSphere3{X: types.XYZ(0, 0, 0), R: 5}
	b := BSphere3{X: types.XYZ(1, 0, 0), R: 1}

	m := a.Merge(b)
	if m != a {
		t.Fatalf("expected merge of an enclosed sphere to return the enclosing sphere unchanged; got %v", m)
	}
}

func TestBSphere3MergeDisjoint(t *testing.T) {
	a := BSphere3{X: types.XYZ(-5, 0, 0), R: 1}
	b := BSphere3{X: types.XYZ(5, 0, 0), R: 1}

	m := a.Merge(b)
	if !almostEqualf(m.R, 6, 1e-5) {
		t.Fatalf("expected merged radius 6; got %f", m.R)
	}
	if !PointInBSphere3(a.X, BSphere3{X: m.X, R: m.R + 1e-4}) || !PointInBSphere3(b.X, BSphere3{X: m.X, R: m.R + 1e-4}) {
		t.Fatalf("expected merged sphere to enclose both source spheres' centers")
	}
}
