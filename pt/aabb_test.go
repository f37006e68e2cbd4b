package pt

import "testing"

func TestSphereBoundingBoxContainsExtents(t *testing.T) {
	center := Point3{X: 1, Y: 2, Z: 3}
	radius := 2.5
	s := NewSphere(center, radius, NewLambertian(Color{}))
	box := s.BoundingBox()

	if box.X.Min > center.X-radius || box.Y.Min > center.Y-radius || box.Z.Min > center.Z-radius {
		t.Fatalf("bounding box min does not cover center - radius: %+v", box)
	}
	if box.X.Max < center.X+radius || box.Y.Max < center.Y+radius || box.Z.Max < center.Z+radius {
		t.Fatalf("bounding box max does not cover center + radius: %+v", box)
	}
}

func TestAABBHitMiss(t *testing.T) {
	box := NewAABBFromPoints(Point3{X: -1, Y: -1, Z: -1}, Point3{X: 1, Y: 1, Z: 1})
	r := NewRay(Point3{X: 10, Y: 10, Z: 10}, Vec3{X: 1, Y: 0, Z: 0})
	if box.Hit(r, NewInterval(0.001, 1e9)) {
		t.Errorf("expected ray pointing away from box to miss")
	}
}

func TestAABBHitDirect(t *testing.T) {
	box := NewAABBFromPoints(Point3{X: -1, Y: -1, Z: -1}, Point3{X: 1, Y: 1, Z: 1})
	r := NewRay(Point3{X: 0, Y: 0, Z: -5}, Vec3{X: 0, Y: 0, Z: 1})
	if !box.Hit(r, NewInterval(0.001, 1e9)) {
		t.Errorf("expected ray through the box's center to hit")
	}
}

func TestAABBUnion(t *testing.T) {
	a := NewAABBFromPoints(Point3{X: 0, Y: 0, Z: 0}, Point3{X: 1, Y: 1, Z: 1})
	b := NewAABBFromPoints(Point3{X: 2, Y: 2, Z: 2}, Point3{X: 3, Y: 3, Z: 3})
	u := NewAABBFromBoxes(a, b)
	if u.X.Min != 0 || u.X.Max != 3 {
		t.Errorf("expected union to span [0,3] on X, got [%v,%v]", u.X.Min, u.X.Max)
	}
}
