package pt

import "math"

// ToneMap converts an accumulated (r,g,b) triple that has summed N
// samples into gamma-2.0-corrected, clipped 8-bit channels:
// byte = floor(256 * clip(sqrt(channel/N), 0, 0.999)).
func ToneMap(c Color, n int) (r, g, b byte) {
	inv := 1.0 / float64(n)
	return toneMapChannel(c.X*inv), toneMapChannel(c.Y*inv), toneMapChannel(c.Z*inv)
}

func toneMapChannel(v float64) byte {
	if !isFiniteScalar(v) || v < 0 {
		v = 0
	}
	g := math.Sqrt(v)
	const maxClip = 0.999
	if g < 0 {
		g = 0
	} else if g > maxClip {
		g = maxClip
	}
	return byte(256 * g)
}

func isFiniteScalar(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// WritePixels converts an entire framebuffer, accumulated over n
// samples, into an interleaved row-major RGB byte slice suitable for a
// PPM body.
func WritePixels(fb *Framebuffer, n int) []byte {
	out := make([]byte, 0, 3*fb.Width*fb.Height)
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := ToneMap(fb.At(x, y), n)
			out = append(out, r, g, b)
		}
	}
	return out
}
