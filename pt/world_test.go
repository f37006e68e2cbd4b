package pt

import (
	"math"
	"testing"
)

func TestWorldHitNoHitOnEmptyWorld(t *testing.T) {
	world := NewWorld(nil, Color{X: 0.5, Y: 0.7, Z: 1.0})
	r := NewRay(Point3{}, Vec3{X: 0, Y: 0, Z: -1})
	var rec HitRecord
	if world.Hit(r, NewInterval(0.001, math.Inf(1)), &rec) {
		t.Errorf("expected an empty world to report no hit")
	}
}

func TestWorldBoundingBoxUnionsObjects(t *testing.T) {
	world := NewWorld(nil, Color{})
	world.Add(NewSphere(Point3{X: -5, Y: 0, Z: 0}, 1, NewLambertian(Color{})))
	world.Add(NewSphere(Point3{X: 5, Y: 0, Z: 0}, 1, NewLambertian(Color{})))

	box := world.BoundingBox()
	if box.X.Min > -6 || box.X.Max < 6 {
		t.Errorf("expected union bounding box to span at least [-6,6] on X, got [%v,%v]", box.X.Min, box.X.Max)
	}
}

func TestWorldAddIncreasesObjectCount(t *testing.T) {
	world := NewWorld(nil, Color{})
	if len(world.Objects) != 0 {
		t.Fatalf("expected a freshly constructed world to be empty")
	}
	world.Add(NewSphere(Point3{}, 1, NewLambertian(Color{})))
	if len(world.Objects) != 1 {
		t.Errorf("expected one object after Add, got %d", len(world.Objects))
	}
}
