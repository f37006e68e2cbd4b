package pt

// HitRecord stores information about a ray-object intersection.
type HitRecord struct {
	P         Point3
	Normal    Vec3
	Mat       Material
	T         float64 // Parameter t where intersection occurs
	FrontFace bool
}

// Hittable is the polymorphic intersection interface shared by every
// primitive in the world.
type Hittable interface {
	Hit(r Ray, rayT Interval, rec *HitRecord) bool
	BoundingBox() AABB
}

// SetFaceNormal orients Normal to point against the incoming ray and
// records which side of the surface it struck.
func (rec *HitRecord) SetFaceNormal(r Ray, outwardNormal Vec3) {
	rec.FrontFace = Dot(r.Direction(), outwardNormal) < 0
	if rec.FrontFace {
		rec.Normal = outwardNormal
	} else {
		rec.Normal = outwardNormal.Neg()
	}
}
