package pt

import "testing"

func TestLambertianAttenuationEqualsAlbedo(t *testing.T) {
	albedo := Color{X: 0.3, Y: 0.6, Z: 0.9}
	mat := NewLambertian(albedo)
	rec := HitRecord{P: Point3{}, Normal: Vec3{X: 0, Y: 1, Z: 0}}
	rng := NewRNG(42)

	var attenuation Color
	var scattered Ray
	if !mat.Scatter(NewRay(Point3{}, Vec3{X: 0, Y: -1, Z: 0}), &rec, rng, &attenuation, &scattered) {
		t.Fatalf("expected diffuse material to always scatter")
	}
	if attenuation != albedo {
		t.Errorf("expected attenuation to equal albedo %+v, got %+v", albedo, attenuation)
	}
}

func TestLambertianScatterDirectionNeverDegenerate(t *testing.T) {
	mat := NewLambertian(Color{X: 1, Y: 1, Z: 1})
	normal := Vec3{X: 0, Y: 1, Z: 0}
	rng := NewRNG(1)

	for i := 0; i < 50; i++ {
		rec := HitRecord{P: Point3{}, Normal: normal}
		var attenuation Color
		var scattered Ray
		mat.Scatter(NewRay(Point3{}, Vec3{}), &rec, rng, &attenuation, &scattered)
		if scattered.Direction().NearZero() {
			t.Fatalf("scatter direction degenerated to near-zero on iteration %d", i)
		}
	}
}

func TestMetalScatterRequiresPositiveDot(t *testing.T) {
	mat := NewMetal(Color{X: 0.8, Y: 0.8, Z: 0.8}, 0)
	rec := HitRecord{P: Point3{}, Normal: Vec3{X: 0, Y: 1, Z: 0}}
	rng := NewRNG(3)

	var attenuation Color
	var scattered Ray
	ok := mat.Scatter(NewRay(Point3{}, Vec3{X: 1, Y: -1, Z: 0}), &rec, rng, &attenuation, &scattered)
	if !ok {
		t.Fatalf("expected reflection off the normal to scatter")
	}
	if Dot(scattered.Direction(), rec.Normal) <= 0 {
		t.Errorf("expected scattered direction to have positive dot with normal")
	}
}

func TestMetalFuzzClampedToOne(t *testing.T) {
	mat := NewMetal(Color{}, 5)
	if mat.Fuzz != 1 {
		t.Errorf("expected fuzz to clamp to 1, got %v", mat.Fuzz)
	}
}

func TestMetalScatterSatisfiesNormalCondition(t *testing.T) {
	mat := NewMetal(Color{X: 1, Y: 1, Z: 1}, 0)
	rec := HitRecord{P: Point3{}, Normal: Vec3{X: 0, Y: 1, Z: 0}}
	rng := NewRNG(5)

	var attenuation Color
	var scattered Ray
	ok := mat.Scatter(NewRay(Point3{}, Vec3{X: 1, Y: -0.01, Z: 0}), &rec, rng, &attenuation, &scattered)
	if ok && Dot(scattered.Direction(), rec.Normal) <= 0 {
		t.Errorf("a returned scatter must satisfy the positive-dot condition")
	}
}
