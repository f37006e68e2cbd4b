// Command viewer is an optional thin live-preview window for the
// render pipeline: it runs pt.Render in the background and repaints an
// ebiten window with a snapshot of the framebuffer whenever a sample
// iteration completes. It depends on pt but pt does not depend on it —
// the core render path stays free of any windowing dependency.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"go-pathtracer/pt"
	"go-pathtracer/scene"
)

// frame is a fully tone-mapped snapshot, safe to display because it was
// built only after the render loop's worker join for that iteration —
// the same happens-before edge the render pipeline itself relies on.
type frame struct {
	img       *image.RGBA
	sample    uint32
	completed bool
	stats     pt.Stats
}

type game struct {
	width, height int
	frames        <-chan frame
	latest        *ebiten.Image
	statusText    string
	face          text.Face
	start         time.Time
}

func newGame(width, height int, frames <-chan frame) *game {
	return &game{
		width:  width,
		height: height,
		frames: frames,
		latest: ebiten.NewImage(width, height),
		face:   text.NewGoXFace(basicfont.Face7x13),
		start:  time.Now(),
	}
}

func (g *game) Update() error {
	for {
		select {
		case f, ok := <-g.frames:
			if !ok {
				return nil
			}
			g.latest.WritePixels(f.img.Pix)
			if f.completed {
				g.statusText = fmt.Sprintf("%dx%d | sample %d | COMPLETED | %.2fs | %.2f Mrays/s",
					g.width, g.height, f.sample, f.stats.RenderTimeS, f.stats.MRaysPerSec)
			} else {
				g.statusText = fmt.Sprintf("%dx%d | sample %d | %s elapsed",
					g.width, g.height, f.sample, time.Since(g.start).Round(time.Second))
			}
		default:
			return nil
		}
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.latest, nil)

	barHeight := 20
	bar := ebiten.NewImage(g.width, barHeight)
	bar.Fill(color.Black)
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(0, float64(g.height-barHeight))
	screen.DrawImage(bar, opts)

	textOpts := &text.DrawOptions{}
	textOpts.GeoM.Translate(6, float64(g.height-barHeight+4))
	textOpts.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, g.statusText, g.face, textOpts)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	width := flag.Int("w", 480, "image width in pixels (16:9 aspect)")
	samples := flag.Int("s", 6, "samples per pixel (per-side)")
	threads := flag.Int("t", 4, "number of worker threads")
	bucket := flag.Int("b", 32, "bucket size in pixels")
	sceneFile := flag.String("scene", "", "path to a scene description file (default: built-in scene)")
	flag.Parse()

	height := int(float64(*width) / (16.0 / 9.0))
	if height < 1 {
		height = 1
	}

	settings := pt.RenderSettings{
		Width:        *width,
		Height:       height,
		Bucket:       *bucket,
		Samples:      *samples,
		Distribution: pt.Jittered,
	}

	var world *pt.World
	if *sceneFile != "" {
		fh, err := os.Open(*sceneFile)
		if err != nil {
			log.Fatalf("scene: %v", err)
		}
		defer fh.Close()
		world, err = scene.Load(fh, settings.Width, settings.Height)
		if err != nil {
			log.Fatalf("scene: %v", err)
		}
	} else {
		world = scene.DefaultWorld(settings.Width, settings.Height)
	}

	fb := pt.NewFramebuffer(settings.Width, settings.Height)
	frames := make(chan frame, 1)

	go func() {
		defer close(frames)
		_, err := pt.Render(settings, fb, *threads, world, func(ev pt.Event) {
			switch ev.Kind {
			case pt.EventSampleDone:
				snapshotAndSend(frames, fb, settings, int(ev.Sample), false, pt.Stats{})
			case pt.EventCompleted:
				snapshotAndSend(frames, fb, settings, settings.Samples*settings.Samples, true, ev.Stats)
			}
		})
		if err != nil {
			log.Printf("render: %v", err)
		}
	}()

	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle("Path Tracer Preview")

	if err := ebiten.RunGame(newGame(settings.Width, settings.Height, frames)); err != nil {
		log.Fatal(err)
	}
}

// snapshotAndSend tone-maps the current framebuffer state into an RGBA
// image and delivers it non-blockingly: if the viewer hasn't drained
// the previous frame yet, this one is dropped rather than stalling the
// renderer.
func snapshotAndSend(frames chan<- frame, fb *pt.Framebuffer, settings pt.RenderSettings, sample int, completed bool, stats pt.Stats) {
	n := sample
	if n <= 0 {
		n = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := pt.ToneMap(fb.At(x, y), n)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}

	f := frame{img: img, sample: uint32(sample), completed: completed, stats: stats}
	select {
	case frames <- f:
	default:
	}
}
