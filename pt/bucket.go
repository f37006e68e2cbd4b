package pt

// Bucket is a rectangular, half-open sub-region of the image plane:
// [TopLeftX, BottomRightX) x [TopLeftY, BottomRightY). TopLeft is always
// strictly less than BottomRight componentwise.
type Bucket struct {
	TopLeftX, TopLeftY         uint32
	BottomRightX, BottomRightY uint32
}

// Width and Height report the bucket's pixel extent.
func (b Bucket) Width() uint32  { return b.BottomRightX - b.TopLeftX }
func (b Bucket) Height() uint32 { return b.BottomRightY - b.TopLeftY }

// BucketGrid decomposes an image plane into a row-major sequence of
// buckets. The final bucket of a row or column is clipped to the image
// boundary rather than overhanging it. Iteration is single-shot and
// finite: Next returns ok=false once every bucket has been emitted.
type BucketGrid struct {
	width, height, bucketSize uint32
	cursorX, cursorY          uint32
	done                      bool
}

// NewBucketGrid builds a grid over a width x height image tiled into
// bucketSize x bucketSize buckets (clipped at the image edges).
func NewBucketGrid(width, height, bucketSize uint32) *BucketGrid {
	return &BucketGrid{width: width, height: height, bucketSize: bucketSize}
}

// Next returns the next bucket in row-major order, or ok=false once the
// grid is exhausted.
func (g *BucketGrid) Next() (b Bucket, ok bool) {
	if g.done || g.cursorY >= g.height {
		return Bucket{}, false
	}

	bottomRightX := g.cursorX + g.bucketSize
	if bottomRightX > g.width {
		bottomRightX = g.width
	}
	bottomRightY := g.cursorY + g.bucketSize
	if bottomRightY > g.height {
		bottomRightY = g.height
	}

	b = Bucket{
		TopLeftX:     g.cursorX,
		TopLeftY:     g.cursorY,
		BottomRightX: bottomRightX,
		BottomRightY: bottomRightY,
	}

	if g.cursorX+g.bucketSize >= g.width {
		g.cursorX = 0
		g.cursorY += g.bucketSize
	} else {
		g.cursorX += g.bucketSize
	}

	return b, true
}

// Count returns the total number of buckets a grid of this size produces:
// ceil(width/bucket) * ceil(height/bucket).
func (g *BucketGrid) Count() int {
	cols := ceilDiv(g.width, g.bucketSize)
	rows := ceilDiv(g.height, g.bucketSize)
	return int(cols) * int(rows)
}

func ceilDiv(a, b uint32) uint32 {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}

// Buckets materializes every bucket a grid of this size produces, in
// row-major order. Convenience wrapper around Next for callers (the
// render pipeline's queue refill) that want the whole slice at once.
func Buckets(width, height, bucketSize uint32) []Bucket {
	grid := NewBucketGrid(width, height, bucketSize)
	out := make([]Bucket, 0, grid.Count())
	for {
		b, ok := grid.Next()
		if !ok {
			break
		}
		out = append(out, b)
	}
	return out
}

// Pixels yields every (x,y) pixel coordinate inside the bucket in
// row-major order via a callback, matching the half-open rectangle
// [TopLeftX,BottomRightX) x [TopLeftY,BottomRightY).
func (b Bucket) Pixels(yield func(x, y uint32)) {
	for y := b.TopLeftY; y < b.BottomRightY; y++ {
		for x := b.TopLeftX; x < b.BottomRightX; x++ {
			yield(x, y)
		}
	}
}
