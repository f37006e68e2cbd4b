package pt

import "math"

// Sphere is a sphere primitive: center, radius (> 0) and an owned material.
type Sphere struct {
	Center Point3
	Radius float64
	Mat    Material
}

// NewSphere creates a new sphere with the given center, radius and material.
func NewSphere(center Point3, radius float64, mat Material) *Sphere {
	return &Sphere{
		Center: center,
		Radius: math.Max(0, radius),
		Mat:    mat,
	}
}

// Hit implements Hittable for Sphere via the quadratic formula: solving
// |origin + t*direction - center|^2 = r^2 for t.
func (s *Sphere) Hit(r Ray, rayT Interval, rec *HitRecord) bool {
	oc := s.Center.Sub(r.Origin())
	a := r.Direction().Len2()
	h := Dot(r.Direction(), oc)
	c := oc.Len2() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return false
	}

	sqrtd := math.Sqrt(discriminant)

	root := (h - sqrtd) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtd) / a
		if !rayT.Surrounds(root) {
			return false
		}
	}

	rec.T = root
	rec.P = r.At(rec.T)
	outwardNormal := rec.P.Sub(s.Center).Div(s.Radius)
	rec.SetFaceNormal(r, outwardNormal)
	rec.Mat = s.Mat
	return true
}

// BoundingBox returns the sphere's axis-aligned bounds: center +/- radius
// in every dimension.
func (s *Sphere) BoundingBox() AABB {
	rvec := Vec3{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return NewAABBFromPoints(s.Center.Sub(rvec), s.Center.Add(rvec))
}
