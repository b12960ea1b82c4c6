package bvh

import "github.com/achilleasa/go-bvh/types"

// Triangle is a concrete 3D leaf primitive.
type Triangle struct {
	P1, P2, P3 types.Vec3
}

// BBox returns the triangle's bounding box.
func (t Triangle) BBox() BBox3 { return BBox3FromTriangle(t.P1, t.P2, t.P3) }

// Center returns the centroid of the triangle's bounding box.
func (t Triangle) Center() types.Vec3 { return t.BBox().Center() }

// Segment is a concrete 2D leaf primitive.
type Segment struct {
	P1, P2 types.Vec2
}

// BBox returns the segment's bounding box.
func (s Segment) BBox() BBox2 { return BBox2FromSegment(s.P1, s.P2) }

// Center returns the centroid of the segment's bounding box.
func (s Segment) Center() types.Vec2 { return s.BBox().Center() }

// BoundedVolume3 is implemented by any 3D primitive a tree builder can
// partition.
type BoundedVolume3 interface {
	BBox() BBox3
	Center() types.Vec3
}

// BoundedVolume2 is implemented by any 2D primitive a tree builder can
// partition.
type BoundedVolume2 interface {
	BBox() BBox2
	Center() types.Vec2
}
