package pt

import "github.com/google/uuid"

// Stats summarizes a completed render.
type Stats struct {
	JobID        uuid.UUID
	RenderTimeS  float64
	FPS          float64
	MRaysPerSec  float64
	RaysShot     uint64
	RaysHit      int64
}
