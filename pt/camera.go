package pt

import "math"

// Camera is parameterized by eye, target, up, vertical FOV, aspect ratio,
// aperture and focus distance. Every derived field is computed once in
// NewCamera and never changes afterward, so a *Camera can be shared
// freely across render worker goroutines.
type Camera struct {
	ImageWidth   int
	ImageHeight  int
	LookFrom     Point3
	LookAt       Point3
	Vup          Vec3
	Vfov         float64
	Aperture     float64
	FocusDist    float64

	lensRadius      float64
	origin          Point3
	lowerLeftCorner Point3
	horizontal      Vec3
	vertical        Vec3
	u, v, w         Vec3
}

// NewCamera computes every derived camera parameter from the constructor
// inputs. aspectRatio is width/height of the image plane.
func NewCamera(lookFrom, lookAt Point3, vup Vec3, vfov, aspectRatio, aperture, focusDist float64, imageWidth, imageHeight int) *Camera {
	theta := DegreesToRadians(vfov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h
	viewportWidth := aspectRatio * viewportHeight

	w := lookFrom.Sub(lookAt).Unit()
	u := Cross(vup, w).Unit()
	v := Cross(w, u)

	origin := lookFrom
	horizontal := u.Scale(focusDist * viewportWidth)
	vertical := v.Scale(focusDist * viewportHeight)
	lowerLeftCorner := origin.
		Sub(horizontal.Div(2)).
		Sub(vertical.Div(2)).
		Sub(w.Scale(focusDist))

	return &Camera{
		ImageWidth:      imageWidth,
		ImageHeight:     imageHeight,
		LookFrom:        lookFrom,
		LookAt:          lookAt,
		Vup:             vup,
		Vfov:            vfov,
		Aperture:        aperture,
		FocusDist:       focusDist,
		lensRadius:      aperture / 2,
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
	}
}

// GetRay returns a ray for normalized image-plane coordinates s,t in
// [0,1]. When Aperture>0 the ray origin is offset across the lens disk,
// producing defocus (depth-of-field) blur.
func (c *Camera) GetRay(s, t float64, rng RNG) Ray {
	var rayOrigin Point3
	if c.lensRadius <= 0 {
		rayOrigin = c.origin
	} else {
		rd := RandomInUnitDisk(rng).Scale(c.lensRadius)
		offset := c.u.Scale(rd.X).Add(c.v.Scale(rd.Y))
		rayOrigin = c.origin.Add(offset)
	}

	target := c.lowerLeftCorner.Add(c.horizontal.Scale(s)).Add(c.vertical.Scale(t))
	return NewRay(rayOrigin, target.Sub(rayOrigin))
}
