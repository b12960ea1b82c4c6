package bvh

import "github.com/achilleasa/go-bvh/types"

// BBox3 is an axis-aligned bounding box in 3D space.
type BBox3 struct {
	Lo, Up types.Vec3
}

// BBox2 is an axis-aligned bounding box in 2D space.
type BBox2 struct {
	Lo, Up types.Vec2
}

// NewBBox3 stores lo/up verbatim. Callers are responsible for lo <= up on
// every axis.
func NewBBox3(lo, up types.Vec3) BBox3 {
	return BBox3{Lo: lo, Up: up}
}

// NewBBox2 stores lo/up verbatim.
func NewBBox2(lo, up types.Vec2) BBox2 {
	return BBox2{Lo: lo, Up: up}
}

// BBox3FromTriangle returns the bounding box of a 3D triangle.
func BBox3FromTriangle(p1, p2, p3 types.Vec3) BBox3 {
	return BBox3{
		Lo: types.XYZ(min3f(p1[0], p2[0], p3[0]), min3f(p1[1], p2[1], p3[1]), min3f(p1[2], p2[2], p3[2])),
		Up: types.XYZ(max3f(p1[0], p2[0], p3[0]), max3f(p1[1], p2[1], p3[1]), max3f(p1[2], p2[2], p3[2])),
	}
}

// BBox3FromSegment returns the bounding box of a 3D line segment.
func BBox3FromSegment(p1, p2 types.Vec3) BBox3 {
	return BBox3{
		Lo: types.MinVec3(p1, p2),
		Up: types.MaxVec3(p1, p2),
	}
}

// BBox2FromSegment returns the bounding box of a 2D line segment.
func BBox2FromSegment(p1, p2 types.Vec2) BBox2 {
	return BBox2{
		Lo: types.MinVec2(p1, p2),
		Up: types.MaxVec2(p1, p2),
	}
}

// BBox3FromVertices dispatches to BBox3FromSegment or BBox3FromTriangle
// depending on whether verts holds 2 or 3 points.
func BBox3FromVertices(verts []types.Vec3) BBox3 {
	switch len(verts) {
	case 2:
		return BBox3FromSegment(verts[0], verts[1])
	case 3:
		return BBox3FromTriangle(verts[0], verts[1], verts[2])
	default:
		panic("bvh: BBox3FromVertices requires 2 or 3 vertices")
	}
}

// BBox2FromVertices dispatches to BBox2FromSegment depending on verts.
func BBox2FromVertices(verts []types.Vec2) BBox2 {
	switch len(verts) {
	case 2:
		return BBox2FromSegment(verts[0], verts[1])
	default:
		panic("bvh: BBox2FromVertices requires 2 vertices")
	}
}

// Merge returns the smallest box enclosing both a and b.
func (a BBox3) Merge(b BBox3) BBox3 {
	return BBox3{
		Lo: types.MinVec3(a.Lo, b.Lo),
		Up: types.MaxVec3(a.Up, b.Up),
	}
}

// Merge returns the smallest box enclosing both a and b.
func (a BBox2) Merge(b BBox2) BBox2 {
	return BBox2{
		Lo: types.MinVec2(a.Lo, b.Lo),
		Up: types.MaxVec2(a.Up, b.Up),
	}
}

// BBox3FromSphere returns the tightest axis-aligned box enclosing s.
func BBox3FromSphere(s BSphere3) BBox3 {
	r := types.XYZ(s.R, s.R, s.R)
	return BBox3{Lo: s.X.Sub(r), Up: s.X.Add(r)}
}

// BBox2FromSphere returns the tightest axis-aligned box enclosing s.
func BBox2FromSphere(s BSphere2) BBox2 {
	r := types.XY(s.R, s.R)
	return BBox2{Lo: s.X.Sub(r), Up: s.X.Add(r)}
}

// BBox3FromSpheres returns a box enclosing both spheres, short-circuiting
// when one sphere already encloses the other.
func BBox3FromSpheres(a, b BSphere3) BBox3 {
	d := dist3(a.X, b.X)
	if d+a.R <= b.R {
		return BBox3FromSphere(b)
	}
	if d+b.R <= a.R {
		return BBox3FromSphere(a)
	}
	return BBox3FromSphere(a).Merge(BBox3FromSphere(b))
}

// BBox2FromSpheres returns a box enclosing both spheres, short-circuiting
// when one sphere already encloses the other.
func BBox2FromSpheres(a, b BSphere2) BBox2 {
	d := dist2(a.X, b.X)
	if d+a.R <= b.R {
		return BBox2FromSphere(b)
	}
	if d+b.R <= a.R {
		return BBox2FromSphere(a)
	}
	return BBox2FromSphere(a).Merge(BBox2FromSphere(b))
}

// Center returns the midpoint of the box.
func (b BBox3) Center() types.Vec3 {
	return b.Lo.Add(b.Up).Mul(0.5)
}

// Center returns the midpoint of the box.
func (b BBox2) Center() types.Vec2 {
	return b.Lo.Add(b.Up).Mul(0.5)
}
