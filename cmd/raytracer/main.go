// Command raytracer renders a scene of diffuse/metal spheres with a
// bucketed, multi-threaded path tracer and writes the result as a PPM
// image to stdout or a file.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"go-pathtracer/config"
	"go-pathtracer/pt"
	"go-pathtracer/scene"
)

func main() {
	width := flag.Int("w", 720, "image width in pixels (height follows a fixed 16:9 aspect ratio)")
	samples := flag.Int("s", 10, "samples per pixel (per-side; effective count is samples^2)")
	threads := flag.Int("t", runtime.NumCPU(), "number of worker threads")
	bucket := flag.Int("b", 32, "bucket size in pixels")
	sceneFile := flag.String("scene", "", "path to a scene description file (default: built-in scene)")
	configFile := flag.String("config", "", "path to a TOML render-settings file overriding the flags above")
	outFile := flag.String("o", "", "output PPM path (default: stdout)")
	ascii := flag.Bool("ascii", false, "write the ASCII (P3) PPM variant instead of binary P6")
	help := flag.Bool("h", false, "show usage")

	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}

	if *width <= 0 || *samples <= 0 || *threads <= 0 || *bucket <= 0 {
		fmt.Fprintln(os.Stderr, "error: -w, -s, -t and -b must all be positive")
		os.Exit(1)
	}

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
	numThreads := *threads

	if *configFile != "" {
		base := config.File{
			Width: *width, Height: height, Bucket: *bucket, Samples: *samples,
			Distribution: "jittered", Threads: numThreads,
		}
		f, err := config.Load(*configFile, base)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		settings = f.Settings()
		if f.Threads > 0 {
			numThreads = f.Threads
		}
		height = settings.Height
	}

	var world *pt.World
	if *sceneFile != "" {
		fh, err := os.Open(*sceneFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", pt.NewResourceError("opening scene file", err))
			os.Exit(1)
		}
		world, err = scene.Load(fh, settings.Width, settings.Height)
		fh.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	} else {
		world = scene.DefaultWorld(settings.Width, settings.Height)
	}

	fb := pt.NewFramebuffer(settings.Width, settings.Height)

	_, err := pt.Render(settings, fb, numThreads, world, func(ev pt.Event) {
		if ev.Kind == pt.EventCompleted {
			fmt.Fprintf(os.Stderr, "render %s: %.2fs, %.1f fps, %.2f Mrays/s, %d/%d rays hit\n",
				ev.Stats.JobID, ev.Stats.RenderTimeS, ev.Stats.FPS, ev.Stats.MRaysPerSec, ev.Stats.RaysHit, ev.Stats.RaysShot)
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	out := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", pt.NewResourceError("creating output file", err))
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	effectiveSamples := settings.Samples * settings.Samples
	writeErr := error(nil)
	if *ascii {
		writeErr = writePPMAscii(out, fb, effectiveSamples)
	} else {
		writeErr = writePPM(out, fb, effectiveSamples)
	}
	if writeErr != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", pt.NewResourceError("writing output", writeErr))
		os.Exit(1)
	}
}
