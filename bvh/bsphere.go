package bvh

import "github.com/achilleasa/go-bvh/types"

// epsilon32 is the machine epsilon for float32, used as the degeneracy
// threshold when inverting the circumscribed-sphere system.
const epsilon32 = 1.1920929e-7

// BSphere3 is a bounding sphere in 3D space.
type BSphere3 struct {
	X types.Vec3
	R float32
}

// BSphere2 is a bounding sphere (circle) in 2D space.
type BSphere2 struct {
	X types.Vec2
	R float32
}

// BSphere3FromSegment returns the sphere with p1-p2 as diameter.
func BSphere3FromSegment(p1, p2 types.Vec3) BSphere3 {
	center := p1.Add(p2).Mul(0.5)
	return BSphere3{X: center, R: dist3(center, p1)}
}

// BSphere2FromSegment returns the circle with p1-p2 as diameter.
func BSphere2FromSegment(p1, p2 types.Vec2) BSphere2 {
	center := p1.Add(p2).Mul(0.5)
	return BSphere2{X: center, R: dist2(center, p1)}
}

// BSphere3FromTriangle returns a bounding sphere of a 3D triangle: the
// circumscribed sphere when the circumcenter lies strictly inside the
// triangle, otherwise the sphere over one edge as diameter (s<=0: p1-p3,
// t<=0: p1-p2, s+t>=1: p2-p3). It falls back to the bounding-box diagonal
// sphere when the triangle is degenerate (collinear vertices).
func BSphere3FromTriangle(p1, p2, p3 types.Vec3) BSphere3 {
	ab := p2.Sub(p1)
	ac := p3.Sub(p1)
	abab := ab.Dot(ab)
	abac := ab.Dot(ac)
	acac := ac.Dot(ac)
	d := 2 * (abab*acac - abac*abac)

	if absf32(d) <= epsilon32 {
		box := BBox3FromTriangle(p1, p2, p3)
		center := box.Center()
		return BSphere3{X: center, R: dist3(center, box.Up)}
	}

	s := (abab*acac - acac*abac) / d
	t := (acac*abab - abab*abac) / d

	switch {
	case s <= 0:
		return BSphere3FromSegment(p1, p3)
	case t <= 0:
		return BSphere3FromSegment(p1, p2)
	case s+t >= 1:
		return BSphere3FromSegment(p2, p3)
	default:
		center := p1.Add(ab.Mul(s)).Add(ac.Mul(t))
		return BSphere3{X: center, R: dist3(center, p1)}
	}
}

// BSphere2FromTriangle returns a bounding circle of a triangle lying in 2D,
// using the same barycentric construction and edge/degenerate fallbacks as
// BSphere3FromTriangle.
func BSphere2FromTriangle(p1, p2, p3 types.Vec2) BSphere2 {
	ab := p2.Sub(p1)
	ac := p3.Sub(p1)
	abab := ab.Dot(ab)
	abac := ab.Dot(ac)
	acac := ac.Dot(ac)
	d := 2 * (abab*acac - abac*abac)

	if absf32(d) <= epsilon32 {
		box := BBox2FromSegment(p1, p2).Merge(BBox2FromSegment(p1, p3))
		center := box.Center()
		return BSphere2{X: center, R: dist2(center, box.Up)}
	}

	s := (abab*acac - acac*abac) / d
	t := (acac*abab - abab*abac) / d

	switch {
	case s <= 0:
		return BSphere2FromSegment(p1, p3)
	case t <= 0:
		return BSphere2FromSegment(p1, p2)
	case s+t >= 1:
		return BSphere2FromSegment(p2, p3)
	default:
		center := p1.Add(ab.Mul(s)).Add(ac.Mul(t))
		return BSphere2{X: center, R: dist2(center, p1)}
	}
}

// Merge returns the smallest sphere enclosing both a and b.
func (a BSphere3) Merge(b BSphere3) BSphere3 {
	l := dist3(a.X, b.X)
	if l+a.R <= b.R {
		return b
	}
	if l+b.R <= a.R {
		return a
	}
	frac := 0.5 * ((b.R-a.R)/l + 1)
	center := a.X.Add(b.X.Sub(a.X).Mul(frac))
	return BSphere3{X: center, R: (l + a.R + b.R) / 2}
}

// Merge returns the smallest circle enclosing both a and b.
func (a BSphere2) Merge(b BSphere2) BSphere2 {
	l := dist2(a.X, b.X)
	if l+a.R <= b.R {
		return b
	}
	if l+b.R <= a.R {
		return a
	}
	frac := 0.5 * ((b.R-a.R)/l + 1)
	center := a.X.Add(b.X.Sub(a.X).Mul(frac))
	return BSphere2{X: center, R: (l + a.R + b.R) / 2}
}

// Center returns the sphere's center.
func (s BSphere3) Center() types.Vec3 { return s.X }

// Center returns the circle's center.
func (s BSphere2) Center() types.Vec2 { return s.X }

func absf32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
