package pt

import (
	"math"
	"testing"
)

func TestCameraCenterRayHitsSphereAtImageCenter(t *testing.T) {
	cam := NewCamera(
		Point3{X: 0, Y: 0, Z: 0},
		Point3{X: 0, Y: 0, Z: -1},
		Vec3{X: 0, Y: 1, Z: 0},
		90, 1, 0, 1,
		100, 100,
	)
	r := cam.GetRay(0.5, 0.5, NewRNG(1))

	s := NewSphere(Point3{X: 0, Y: 0, Z: -1}, 0.5, NewLambertian(Color{}))
	var rec HitRecord
	if !s.Hit(r, NewInterval(0.001, math.Inf(1)), &rec) {
		t.Fatalf("expected the image-center ray to hit the sphere")
	}
	if math.Abs(rec.T-0.5) > 1e-6 {
		t.Errorf("expected t close to 0.5, got %v", rec.T)
	}
}

func TestCameraNoLensOffsetWhenApertureZero(t *testing.T) {
	cam := NewCamera(
		Point3{X: 0, Y: 0, Z: 0},
		Point3{X: 0, Y: 0, Z: -1},
		Vec3{X: 0, Y: 1, Z: 0},
		90, 1, 0, 1,
		100, 100,
	)
	rng := NewRNG(2)
	for i := 0; i < 10; i++ {
		r := cam.GetRay(0.2, 0.7, rng)
		if r.Origin() != (Point3{X: 0, Y: 0, Z: 0}) {
			t.Fatalf("expected every ray origin to equal the camera origin when aperture is 0, got %+v", r.Origin())
		}
	}
}

func TestCameraLensOffsetVariesWhenApertureNonzero(t *testing.T) {
	cam := NewCamera(
		Point3{X: 0, Y: 0, Z: 0},
		Point3{X: 0, Y: 0, Z: -1},
		Vec3{X: 0, Y: 1, Z: 0},
		90, 1, 2.0, 1,
		100, 100,
	)
	rng := NewRNG(3)
	first := cam.GetRay(0.5, 0.5, rng).Origin()
	differs := false
	for i := 0; i < 20; i++ {
		o := cam.GetRay(0.5, 0.5, rng).Origin()
		if o != first {
			differs = true
			break
		}
	}
	if !differs {
		t.Errorf("expected defocus blur to vary ray origins across draws with a nonzero aperture")
	}
}
