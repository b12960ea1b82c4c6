package bvh

import "github.com/achilleasa/go-bvh/types"

// RayIntersectsBBox3 tests a ray against a 3D box using the slab method.
// A ray whose origin lies inside the box, or one pointing away from it,
// is correctly classified via the tmax >= 0 check.
func RayIntersectsBBox3(origin, dir types.Vec3, box BBox3) bool {
	invX := 1 / dir[0]
	t1 := (box.Lo[0] - origin[0]) * invX
	t2 := (box.Up[0] - origin[0]) * invX
	tmin := min2f(t1, t2)
	tmax := max2f(t1, t2)

	invY := 1 / dir[1]
	t1 = (box.Lo[1] - origin[1]) * invY
	t2 = (box.Up[1] - origin[1]) * invY
	tmin = max2f(tmin, min2f(t1, t2))
	tmax = min2f(tmax, max2f(t1, t2))

	invZ := 1 / dir[2]
	t1 = (box.Lo[2] - origin[2]) * invZ
	t2 = (box.Up[2] - origin[2]) * invZ
	tmin = max2f(tmin, min2f(t1, t2))
	tmax = min2f(tmax, max2f(t1, t2))

	return tmin <= tmax && tmax >= 0
}

// RayIntersectsBBox2 tests a ray against a 2D box using the slab method.
func RayIntersectsBBox2(origin, dir types.Vec2, box BBox2) bool {
	invX := 1 / dir[0]
	t1 := (box.Lo[0] - origin[0]) * invX
	t2 := (box.Up[0] - origin[0]) * invX
	tmin := min2f(t1, t2)
	tmax := max2f(t1, t2)

	invY := 1 / dir[1]
	t1 = (box.Lo[1] - origin[1]) * invY
	t2 = (box.Up[1] - origin[1]) * invY
	tmin = max2f(tmin, min2f(t1, t2))
	tmax = min2f(tmax, max2f(t1, t2))

	return tmin <= tmax && tmax >= 0
}

// RayIntersectsBSphere3 tests a ray against a 3D sphere via the quadratic
// method, short-circuiting when the origin already lies inside the sphere.
func RayIntersectsBSphere3(origin, dir types.Vec3, s BSphere3) bool {
	pm := origin.Sub(s.X)
	a := dir.Dot(dir)
	b := 2 * pm.Dot(dir)
	c := pm.Dot(pm) - s.R*s.R

	disc := b*b - 4*a*c
	if disc < 0 {
		return false
	}
	if c <= 0 {
		return true
	}
	return b <= 0
}

// RayIntersectsBSphere2 tests a ray against a 2D circle via the quadratic
// method.
func RayIntersectsBSphere2(origin, dir types.Vec2, s BSphere2) bool {
	pm := origin.Sub(s.X)
	a := dir.Dot(dir)
	b := 2 * pm.Dot(dir)
	c := pm.Dot(pm) - s.R*s.R

	disc := b*b - 4*a*c
	if disc < 0 {
		return false
	}
	if c <= 0 {
		return true
	}
	return b <= 0
}

// PointInBBox3 reports whether p lies within box, inclusive of its faces.
func PointInBBox3(p types.Vec3, box BBox3) bool {
	return box.Lo[0] <= p[0] && p[0] <= box.Up[0] &&
		box.Lo[1] <= p[1] && p[1] <= box.Up[1] &&
		box.Lo[2] <= p[2] && p[2] <= box.Up[2]
}

// PointInBBox2 reports whether p lies within box, inclusive of its edges.
func PointInBBox2(p types.Vec2, box BBox2) bool {
	return box.Lo[0] <= p[0] && p[0] <= box.Up[0] &&
		box.Lo[1] <= p[1] && p[1] <= box.Up[1]
}

// PointInBSphere3 reports whether p lies strictly within s.
func PointInBSphere3(p types.Vec3, s BSphere3) bool {
	return dist3sq(p, s.X) < s.R*s.R
}

// PointInBSphere2 reports whether p lies strictly within s.
func PointInBSphere2(p types.Vec2, s BSphere2) bool {
	return dist2sq(p, s.X) < s.R*s.R
}
