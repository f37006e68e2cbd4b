package pt

// World is the scene: an owned collection of hittables, the camera that
// views them, and the background color used when a ray escapes the
// scene. World uniquely owns each primitive and each primitive uniquely
// owns its material; there are no cycles. The core is the single
// producer of a World — once a render starts it is read-only and shared
// freely across worker goroutines.
type World struct {
	Objects    []Hittable
	Camera     *Camera
	Background Color
}

// NewWorld creates an empty world pointed at camera with the given
// background color.
func NewWorld(camera *Camera, background Color) *World {
	return &World{
		Objects:    make([]Hittable, 0),
		Camera:     camera,
		Background: background,
	}
}

// Add adds a hittable object to the world.
func (w *World) Add(object Hittable) {
	w.Objects = append(w.Objects, object)
}

// Hit finds the closest intersection among every object in rayT,
// narrowing the window as closer hits are found. World itself satisfies
// Hittable so it can be handed to the render pipeline uniformly.
func (w *World) Hit(r Ray, rayT Interval, rec *HitRecord) bool {
	tempRec := &HitRecord{}
	hitAnything := false
	closestSoFar := rayT.Max

	for _, object := range w.Objects {
		if object.Hit(r, NewInterval(rayT.Min, closestSoFar), tempRec) {
			hitAnything = true
			closestSoFar = tempRec.T
			*rec = *tempRec
		}
	}

	return hitAnything
}

// BoundingBox returns the union of every object's bounding box.
func (w *World) BoundingBox() AABB {
	box := EmptyAABB
	for _, object := range w.Objects {
		box = NewAABBFromBoxes(box, object.BoundingBox())
	}
	return box
}
