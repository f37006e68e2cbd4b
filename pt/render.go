package pt

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// atomicInt64 is the rays_hit counter: Render creates one per call and
// every worker goroutine of that render increments it atomically.
type atomicInt64 struct {
	v atomic.Int64
}

func (a *atomicInt64) Add(delta int64) { a.v.Add(delta) }
func (a *atomicInt64) Load() int64     { return a.v.Load() }

// MaxDepth bounds the ray_color recursion.
const MaxDepth = 10

// DefaultSamplerSets is the typical sample-set count used to decorrelate
// neighboring pixels' sub-pixel jitter.
const DefaultSamplerSets = 83

// RenderSettings configures a single render call.
type RenderSettings struct {
	Width, Height int
	Bucket        int
	Samples       int
	Distribution  Distribution
	// Seed deterministically derives every pixel's per-sample RNG when
	// nonzero, giving property 7 (render determinism) a concrete hook:
	// the same (Seed, pixel, sample iteration) always draws the same
	// values, independent of which worker processed that pixel. Zero
	// means a fresh salt is drawn from OS entropy for this render only.
	Seed int64
}

// bucketQueue is the lock-protected work queue refilled at the start of
// each sample iteration. push_back happens only on the main goroutine
// during refill; pop_front happens from worker goroutines; clear
// happens only between iterations, also on the main goroutine.
type bucketQueue struct {
	mu      sync.Mutex
	buckets []Bucket
}

func (q *bucketQueue) refill(buckets []Bucket) {
	q.mu.Lock()
	q.buckets = buckets
	q.mu.Unlock()
}

func (q *bucketQueue) pop() (b Bucket, remaining int, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.buckets) == 0 {
		return Bucket{}, 0, false
	}
	b = q.buckets[0]
	q.buckets = q.buckets[1:]
	return b, len(q.buckets), true
}

// pixelRNG returns a fresh RNG deterministically derived from salt and
// the physical pixel and sample iteration being drawn. Every random
// draw made while shading a pixel on a given sample iteration — the
// sub-pixel jitter under Random distribution, the camera's lens offset,
// and the whole ray_color scatter recursion — is seeded from this, so
// the result for a pixel never depends on which worker's goroutine won
// the race to claim its bucket that iteration.
func pixelRNG(salt int64, x, y uint32, sampleIndex int) RNG {
	seed := mixSeed(uint64(salt), uint64(x), uint64(y), uint64(sampleIndex))
	return rand.New(rand.NewSource(int64(seed)))
}

// Render runs the bucketed, multi-threaded sample-iteration loop
// described by settings over world, accumulating into fb, and reports
// progress through sink. SampleDone and Completed events are emitted
// only from this goroutine; Percent events are emitted concurrently
// from whichever worker goroutine just drained a bucket, so a sink must
// tolerate concurrent calls for Percent.
func Render(settings RenderSettings, fb *Framebuffer, numThreads int, world *World, sink EventSink) (Stats, error) {
	if settings.Width <= 0 || settings.Height <= 0 {
		return Stats{}, fmt.Errorf("pt: render: width and height must be positive")
	}
	if settings.Bucket <= 0 {
		return Stats{}, fmt.Errorf("pt: render: bucket size must be positive")
	}
	if numThreads <= 0 {
		numThreads = 1
	}
	if sink == nil {
		sink = func(Event) {}
	}

	effectiveSamples := settings.Samples * settings.Samples
	if effectiveSamples <= 0 {
		effectiveSamples = 1
	}

	var raysHit atomicInt64
	var raysShot uint64

	// salt seeds every pixel's derived RNG (see pixelRNG). A zero Seed
	// still needs a salt to draw from, so one is pulled from OS entropy
	// once per render; it need not itself be reproducible, since nothing
	// in that mode requires two renders to match.
	salt := settings.Seed
	if salt == 0 {
		salt = NewRNG(0).Int63()
	}

	var sampler *Sampler
	if settings.Distribution == Jittered {
		sampler = NewSampler(effectiveSamples, DefaultSamplerSets, Jittered, NewRNG(salt))
	}

	queue := &bucketQueue{}
	width, height, bucket := uint32(settings.Width), uint32(settings.Height), uint32(settings.Bucket)
	totalBuckets := NewBucketGrid(width, height, bucket).Count()

	start := time.Now()

	for s := 1; s <= effectiveSamples; s++ {
		queue.refill(Buckets(width, height, bucket))

		g := &errgroup.Group{}
		for w := 0; w < numThreads; w++ {
			g.Go(func() (err error) {
				defer func() {
					if r := recover(); r != nil {
						err = fmt.Errorf("pt: render: worker panic: %v", r)
					}
				}()
				return renderWorker(queue, world, settings, fb, salt, sampler, s, totalBuckets, &raysHit, sink)
			})
		}
		if err := g.Wait(); err != nil {
			return Stats{}, err
		}

		sink(sampleDoneEvent(uint32(s)))
	}

	elapsed := time.Since(start).Seconds()
	raysShot = uint64(settings.Width) * uint64(settings.Height) * uint64(effectiveSamples)

	fps := 0.0
	if elapsed > 0 {
		fps = 1 / elapsed
	}
	mrays := float64(raysShot) * fps / 1e6

	stats := Stats{
		JobID:       uuid.New(),
		RenderTimeS: elapsed,
		FPS:         fps,
		MRaysPerSec: mrays,
		RaysShot:    raysShot,
		RaysHit:     raysHit.Load(),
	}

	sink(completedEvent(stats))
	return stats, nil
}

func renderWorker(queue *bucketQueue, world *World, settings RenderSettings, fb *Framebuffer, salt int64, sampler *Sampler, sampleIndex int, totalBuckets int, raysHit *atomicInt64, sink EventSink) error {
	width, height := settings.Width, settings.Height

	for {
		b, remaining, ok := queue.pop()
		if !ok {
			return nil
		}

		if totalBuckets > 0 {
			percent := uint8((1 - float64(remaining)/float64(totalBuckets)) * 100)
			sink(percentEvent(percent))
		}

		b.Pixels(func(px, py uint32) {
			x, y := int(px), int(py)
			rng := pixelRNG(salt, px, py, sampleIndex)

			var sx, sy float64
			if sampler != nil {
				sx, sy = sampler.SampleAt(px, py, sampleIndex)
			} else {
				sx, sy = RandomDouble(rng), RandomDouble(rng)
			}

			u := (float64(x) + sx) / float64(width-1)
			v := (float64(height-y) + sy) / float64(height-1)

			r := world.Camera.GetRay(u, v, rng)
			c := rayColor(r, world, MaxDepth, rng, raysHit)

			if !c.IsFinite() {
				c = Color{}
			}

			fb.Add(x, y, c)
		})
	}
}

// rayColor computes the radiance along r by recursively scattering off
// whatever it hits, bounded by depth. A ray that escapes the world
// blends white-to-background by the ray's vertical component.
func rayColor(r Ray, world *World, depth int, rng RNG, raysHit *atomicInt64) Color {
	if depth <= 0 {
		return Color{}
	}

	var rec HitRecord
	if world.Hit(r, NewInterval(0.001, math.Inf(1)), &rec) {
		raysHit.Add(1)

		var attenuation Color
		var scattered Ray
		if rec.Mat.Scatter(r, &rec, rng, &attenuation, &scattered) {
			return attenuation.Mult(rayColor(scattered, world, depth-1, rng, raysHit))
		}
		return Color{}
	}

	unitDir := r.Direction().Unit()
	t := 0.5 * (unitDir.Y + 1)
	white := Color{X: 1, Y: 1, Z: 1}
	return white.Scale(1 - t).Add(world.Background.Scale(t))
}
