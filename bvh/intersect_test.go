package bvh

import (
	"testing"

	"github.com/achilleasa/go-bvh/types"
)

func TestRayIntersectsBBox3Hit(t *testing.T) {
	box := NewBBox3(types.XYZ(0, 0, 0), types.XYZ(1, 1, 1))
	origin := types.XYZ(-1, 0.5, 0.5)
	dir := types.XYZ(1, 0, 0)

	if !RayIntersectsBBox3(origin, dir, box) {
		t.Fatalf("expected ray to hit the box")
	}
}

func TestRayIntersectsBBox3BehindMiss(t *testing.T) {
	box := NewBBox3(types.XYZ(0, 0, 0), types.XYZ(1, 1, 1))
	origin := types.XYZ(-1, 0.5, 0.5)
	dir := types.XYZ(-1, 0, 0)

	if RayIntersectsBBox3(origin, dir, box) {
		t.Fatalf("expected a ray pointing away from the box to miss")
	}
}

func TestRayIntersectsBSphere3OriginInside(t *testing.T) {
	s := BSphere3{X: types.XYZ(0, 0, 0), R: 1}
	if !RayIntersectsBSphere3(types.XYZ(0, 0, 0), types.XYZ(1, 0, 0), s) {
		t.Fatalf("expected a ray originating inside the sphere to hit")
	}
}

func TestRayIntersectsBSphere3Miss(t *testing.T) {
	s := BSphere3{X: types.XYZ(0, 0, 0), R: 1}
	if RayIntersectsBSphere3(types.XYZ(-5, 5, 0), types.XYZ(1, 0, 0), s) {
		t.Fatalf("expected a ray passing well above the sphere to miss")
	}
}

func TestPointInBBox3Inclusive(t *testing.T) {
	box := NewBBox3(types.XYZ(0, 0, 0), types.XYZ(1, 1, 1))
	if !PointInBBox3(types.XYZ(1, 1, 1), box) {
		t.Fatalf("expected a point on the upper face to be classified as inside")
	}
	if PointInBBox3(types.XYZ(1.01, 1, 1), box) {
		t.Fatalf("expected a point just outside the box to be classified as outside")
	}
}

func TestPointInBSphere3Strict(t *testing.T) {
	s := BSphere3{X: types.XYZ(0, 0, 0), R: 1}
	if PointInBSphere3(types.XYZ(1, 0, 0), s) {
		t.Fatalf("expected a point exactly on the sphere's surface to be classified as outside (strict <)")
	}
	if !PointInBSphere3(types.XYZ(0.5, 0, 0), s) {
		t.Fatalf("expected a point inside the sphere to be classified as inside")
	}
}
