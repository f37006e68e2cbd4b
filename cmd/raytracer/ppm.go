package main

import (
	"bufio"
	"fmt"
	"io"

	"go-pathtracer/pt"
)

// writePPM writes a binary (P6) PPM image: header "P6\n{W} {H}\n255\n"
// followed by interleaved row-major RGB bytes, top-to-bottom.
func writePPM(w io.Writer, fb *pt.Framebuffer, samplesPerPixel int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return err
	}
	if _, err := bw.Write(pt.WritePixels(fb, samplesPerPixel)); err != nil {
		return err
	}
	return bw.Flush()
}

// writePPMAscii writes the P3 (ASCII) variant: same header, then
// space-separated decimal triples, one pixel row per line.
func writePPMAscii(w io.Writer, fb *pt.Framebuffer, samplesPerPixel int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return err
	}
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := pt.ToneMap(fb.At(x, y), samplesPerPixel)
			if _, err := fmt.Fprintf(bw, "%d %d %d ", r, g, b); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
