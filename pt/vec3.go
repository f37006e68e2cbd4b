package pt

import (
	"fmt"
	"math"
)

// Vec3 is a 3-component float vector. All operations return new values;
// none mutate the receiver. NaN/+-Inf components are invalid inputs and
// need not propagate correctly through arithmetic; callers must keep
// components finite except for the sentinel infinities used as t_max.
type Vec3 struct {
	X, Y, Z float64
}

func NewVec3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Point3 and Color are Vec3 under different names: the data model uses
// the same 3-tuple for positions, directions and radiance.
type Point3 = Vec3
type Color = Vec3

func (v Vec3) String() string { return fmt.Sprintf("%g %g %g", v.X, v.Y, v.Z) }

// Basic Ops

func (v Vec3) Add(u Vec3) Vec3      { return Vec3{v.X + u.X, v.Y + u.Y, v.Z + u.Z} }
func (v Vec3) Sub(u Vec3) Vec3      { return Vec3{v.X - u.X, v.Y - u.Y, v.Z - u.Z} }
func (v Vec3) Mult(u Vec3) Vec3     { return Vec3{v.X * u.X, v.Y * u.Y, v.Z * u.Z} }
func (v Vec3) Scale(t float64) Vec3 { return Vec3{t * v.X, t * v.Y, t * v.Z} }
func (v Vec3) Div(t float64) Vec3   { return v.Scale(1 / t) }
func (v Vec3) Neg() Vec3            { return Vec3{-v.X, -v.Y, -v.Z} }

func (v Vec3) Len2() float64 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }
func (v Vec3) Len() float64  { return math.Sqrt(v.Len2()) }

func (v Vec3) Unit() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Div(l)
}

// NearZero reports whether the vector is close to the zero vector in
// every dimension; used as the Lambertian degenerate-direction guard.
func (v Vec3) NearZero() bool {
	const s = 1e-8
	return math.Abs(v.X) < s && math.Abs(v.Y) < s && math.Abs(v.Z) < s
}

// IsFinite reports whether every component is finite (not NaN or +-Inf).
func (v Vec3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

func Dot(a, b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func Cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func Reflect(v, n Vec3) Vec3 {
	return v.Sub(n.Scale(2 * Dot(v, n)))
}

// RandomVec3Range returns a Vec3 whose components are independent
// uniforms in [min, max), drawn from rng.
func RandomVec3Range(rng RNG, min, max float64) Vec3 {
	return Vec3{
		X: RandomDoubleRange(rng, min, max),
		Y: RandomDoubleRange(rng, min, max),
		Z: RandomDoubleRange(rng, min, max),
	}
}

// RandomUnitVector draws a uniformly-distributed unit vector via
// rejection sampling in the enclosing cube.
func RandomUnitVector(rng RNG) Vec3 {
	for {
		p := RandomVec3Range(rng, -1, 1)
		lensq := p.Len2()
		if 1e-160 < lensq && lensq <= 1 {
			return p.Div(math.Sqrt(lensq))
		}
	}
}

// RandomInUnitDisk draws a uniform point in the unit disk (z=0), used
// for the camera's defocus-blur lens sampling.
func RandomInUnitDisk(rng RNG) Vec3 {
	for {
		p := Vec3{X: RandomDoubleRange(rng, -1, 1), Y: RandomDoubleRange(rng, -1, 1), Z: 0}
		if p.Len2() < 1 {
			return p
		}
	}
}
