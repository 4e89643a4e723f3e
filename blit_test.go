package blit

import (
	"math/rand"
	"slices"
	"testing"
)

// The predefined 3x3 gradient patterns used as a transform oracle: each
// pattern is named after the corner holding the smallest value, and any
// flip or rotation maps one pattern onto another. The expected result of
// an arbitrary transform chain can therefore be computed by relabeling
// corners, without running the engine.
var (
	topLeftPattern = []uint8{
		1, 2, 3,
		2, 3, 4,
		3, 4, 5,
	}
	topRightPattern = []uint8{
		3, 2, 1,
		4, 3, 2,
		5, 4, 3,
	}
	bottomLeftPattern = []uint8{
		3, 4, 5,
		2, 3, 4,
		1, 2, 3,
	}
	bottomRightPattern = []uint8{
		5, 4, 3,
		4, 3, 2,
		3, 2, 1,
	}

	topLeftPattern2x = []uint8{
		1, 1, 2, 2, 3, 3,
		1, 1, 2, 2, 3, 3,
		2, 2, 3, 3, 4, 4,
		2, 2, 3, 3, 4, 4,
		3, 3, 4, 4, 5, 5,
		3, 3, 4, 4, 5, 5,
	}
)

type corner uint8

const (
	topLeft corner = iota
	topRight
	bottomLeft
	bottomRight
)

func (c corner) pattern() []uint8 {
	switch c {
	case topLeft:
		return topLeftPattern
	case topRight:
		return topRightPattern
	case bottomLeft:
		return bottomLeftPattern
	default:
		return bottomRightPattern
	}
}

func (c corner) surface(t *testing.T) *GenericSurface[uint8] {
	t.Helper()
	s, err := NewGenericSurface(slices.Clone(c.pattern()), Sz(3, 3))
	if err != nil {
		t.Fatalf("NewGenericSurface: %v", err)
	}
	return s
}

// after relabels the corner under one transform.
func (c corner) after(tr Transform) corner {
	switch tr {
	case FlipHorizontal:
		return [...]corner{topRight, topLeft, bottomRight, bottomLeft}[c]
	case FlipVertical:
		return [...]corner{bottomLeft, bottomRight, topLeft, topRight}[c]
	case FlipBoth, Rotate180:
		return [...]corner{bottomRight, bottomLeft, topRight, topLeft}[c]
	case Rotate90CW:
		return [...]corner{topRight, bottomRight, topLeft, bottomLeft}[c]
	case Rotate90CCW:
		return [...]corner{bottomLeft, topLeft, bottomRight, topRight}[c]
	}
	return c
}

func mustSurface(t *testing.T, data []uint8, size Size) *GenericSurface[uint8] {
	t.Helper()
	s, err := NewGenericSurface(data, size)
	if err != nil {
		t.Fatalf("NewGenericSurface(%v): %v", size, err)
	}
	return s
}

// TestBlitSimple blits a 3x3 region of an all-ones source into the
// middle of a 5x5 zero destination.
func TestBlitSimple(t *testing.T) {
	dstData := make([]uint8, 25)
	dst := mustSurface(t, dstData, Sz(5, 5))

	srcData := slices.Repeat([]uint8{1}, 16)
	src := mustSurface(t, srcData, Sz(4, 4))

	Blit[uint8](dst, Pt(1, 1), src, Pt(0, 0), Sz(3, 3), nil)

	want := []uint8{
		0, 0, 0, 0, 0,
		0, 1, 1, 1, 0,
		0, 1, 1, 1, 0,
		0, 1, 1, 1, 0,
		0, 0, 0, 0, 0,
	}
	if !slices.Equal(dstData, want) {
		t.Errorf("dst = %v, want %v", dstData, want)
	}
}

// TestBlitOversized asks for a copy rectangle bigger than either grid;
// the overhang is cropped away cell by cell.
func TestBlitOversized(t *testing.T) {
	dstData := make([]uint8, 25)
	dst := mustSurface(t, dstData, Sz(5, 5))

	srcData := slices.Repeat([]uint8{1}, 16)
	src := mustSurface(t, srcData, Sz(4, 4))

	Blit[uint8](dst, Pt(0, 0), src, Pt(0, 0), Sz(6, 6), nil)

	want := []uint8{
		1, 1, 1, 1, 0,
		1, 1, 1, 1, 0,
		1, 1, 1, 1, 0,
		1, 1, 1, 1, 0,
		0, 0, 0, 0, 0,
	}
	if !slices.Equal(dstData, want) {
		t.Errorf("dst = %v, want %v", dstData, want)
	}
}

// TestBlitNegativeDestPos places the whole 4x4 source at (-1,-1): the
// top row and left column fall outside the destination, so only the
// source's bottom-right 3x3 portion lands, in the top-left corner.
func TestBlitNegativeDestPos(t *testing.T) {
	dstData := make([]uint8, 25)
	dst := mustSurface(t, dstData, Sz(5, 5))

	srcData := slices.Repeat([]uint8{1}, 16)
	src := mustSurface(t, srcData, Sz(4, 4))

	count := 0
	BlitWith(dst, Pt(-1, -1), src, Pt(0, 0), Sz(4, 4), nil,
		func(d, s *uint8, _ Point) {
			*d = *s
			count++
		})

	if count != 9 {
		t.Errorf("copied %d cells, want 9", count)
	}
	want := []uint8{
		1, 1, 1, 0, 0,
		1, 1, 1, 0, 0,
		1, 1, 1, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
	}
	if !slices.Equal(dstData, want) {
		t.Errorf("dst = %v, want %v", dstData, want)
	}
}

// TestBlitFlipHorizontal blits rows of [1,2,3] with FlipHorizontal into
// the interior of a 5x5 destination; the rows come out as [3,2,1].
func TestBlitFlipHorizontal(t *testing.T) {
	dstData := make([]uint8, 25)
	dst := mustSurface(t, dstData, Sz(5, 5))

	src := mustSurface(t, []uint8{
		1, 2, 3,
		1, 2, 3,
		1, 2, 3,
	}, Sz(3, 3))

	Blit[uint8](dst, Pt(1, 1), src, Pt(0, 0), Sz(3, 3), []Transform{FlipHorizontal})

	want := []uint8{
		0, 0, 0, 0, 0,
		0, 3, 2, 1, 0,
		0, 3, 2, 1, 0,
		0, 3, 2, 1, 0,
		0, 0, 0, 0, 0,
	}
	if !slices.Equal(dstData, want) {
		t.Errorf("dst = %v, want %v", dstData, want)
	}
}

// TestBlitSubSurface blits an oversized source into a 2x2 window of a
// 5x5 destination; only the window is touched.
func TestBlitSubSurface(t *testing.T) {
	dstData := make([]uint8, 25)
	dst := mustSurface(t, dstData, Sz(5, 5))
	window := dst.Sub(Pt(1, 1), Sz(2, 2))

	srcData := slices.Repeat([]uint8{1}, 16)
	src := mustSurface(t, srcData, Sz(4, 4))

	BlitWhole[uint8](window, Pt(0, 0), src, Pt(0, 0), nil)

	want := []uint8{
		0, 0, 0, 0, 0,
		0, 1, 1, 0, 0,
		0, 1, 1, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
	}
	if !slices.Equal(dstData, want) {
		t.Errorf("dst = %v, want %v", dstData, want)
	}
}

// TestBlitTransformComposition runs random chains of the six non-scaling
// transforms against the corner-relabeling oracle.
func TestBlitTransformComposition(t *testing.T) {
	rng := rand.New(rand.NewSource(0x6213))
	choices := []Transform{
		FlipHorizontal, FlipVertical, FlipBoth,
		Rotate90CW, Rotate90CCW, Rotate180,
	}

	for i := 0; i < 5000; i++ {
		start := corner(rng.Intn(4))
		chain := make([]Transform, rng.Intn(13))
		want := start
		for j := range chain {
			chain[j] = choices[rng.Intn(len(choices))]
			want = want.after(chain[j])
		}

		dstData := make([]uint8, 9)
		dst := mustSurface(t, dstData, Sz(3, 3))
		BlitWhole[uint8](dst, Pt(0, 0), start.surface(t), Pt(0, 0), chain)

		if !slices.Equal(dstData, want.pattern()) {
			t.Fatalf("case %d: chain %v from corner %d: got %v, want %v",
				i, chain, start, dstData, want.pattern())
		}
	}
}

// TestBlitUpScale checks that UpScale(2,2) expands each source cell into
// a 2x2 block.
func TestBlitUpScale(t *testing.T) {
	dstData := make([]uint8, 36)
	dst := mustSurface(t, dstData, Sz(6, 6))

	BlitWhole[uint8](dst, Pt(0, 0), topLeft.surface(t), Pt(0, 0),
		[]Transform{UpScale(2, 2)})

	if !slices.Equal(dstData, topLeftPattern2x) {
		t.Errorf("dst = %v, want %v", dstData, topLeftPattern2x)
	}
}

// TestBlitUpScaleCellCount checks that up-scaling a (w,h) source touches
// exactly (w*sx, h*sy) destination cells when the destination is large
// enough.
func TestBlitUpScaleCellCount(t *testing.T) {
	dstData := make([]uint8, 20*20)
	dst := mustSurface(t, dstData, Sz(20, 20))
	src := mustSurface(t, make([]uint8, 12), Sz(4, 3))

	count := 0
	BlitWith(dst, Pt(0, 0), src, Pt(0, 0), Sz(4, 3),
		[]Transform{UpScale(3, 2)},
		func(_, _ *uint8, _ Point) { count++ })

	if count != 4*3*3*2 {
		t.Errorf("touched %d cells, want %d", count, 4*3*3*2)
	}
}

func TestBlitMasked(t *testing.T) {
	dstData := slices.Repeat([]uint8{9}, 9)
	dst := mustSurface(t, dstData, Sz(3, 3))

	src := mustSurface(t, []uint8{
		0, 1, 0,
		1, 1, 1,
		0, 1, 0,
	}, Sz(3, 3))

	BlitMasked[uint8](dst, Pt(0, 0), src, Pt(0, 0), Sz(3, 3), 0, nil)

	want := []uint8{
		9, 1, 9,
		1, 1, 1,
		9, 1, 9,
	}
	if !slices.Equal(dstData, want) {
		t.Errorf("dst = %v, want %v", dstData, want)
	}
}

func TestBlitConvert(t *testing.T) {
	dstData := make([]uint16, 9)
	dst, err := NewGenericSurface(dstData, Sz(3, 3))
	if err != nil {
		t.Fatal(err)
	}

	BlitConvert(dst, Pt(0, 0), topLeft.surface(t), Pt(0, 0), Sz(3, 3), nil,
		func(v uint8) uint16 { return uint16(v) * 257 })

	for i, v := range topLeftPattern {
		if dstData[i] != uint16(v)*257 {
			t.Fatalf("dst[%d] = %d, want %d", i, dstData[i], uint16(v)*257)
		}
	}
}

// TestBlitUniformSource fills a region from a single-value surface.
func TestBlitUniformSource(t *testing.T) {
	dstData := make([]uint8, 25)
	dst := mustSurface(t, dstData, Sz(5, 5))

	src := NewUniform[uint8](Sz(2, 2), 7)
	BlitWhole[uint8](dst, Pt(2, 2), src, Pt(0, 0), nil)

	want := []uint8{
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 7, 7, 0,
		0, 0, 7, 7, 0,
		0, 0, 0, 0, 0,
	}
	if !slices.Equal(dstData, want) {
		t.Errorf("dst = %v, want %v", dstData, want)
	}
}

// TestBlitZeroArea verifies that degenerate copy rectangles touch no
// cells and leave the destination unchanged.
func TestBlitZeroArea(t *testing.T) {
	sizes := []Size{Sz(0, 0), Sz(0, 5), Sz(5, 0)}

	for _, size := range sizes {
		dstData := slices.Repeat([]uint8{3}, 9)
		dst := mustSurface(t, slices.Clone(dstData), Sz(3, 3))
		src := mustSurface(t, slices.Repeat([]uint8{1}, 9), Sz(3, 3))

		count := 0
		BlitWith(dst, Pt(0, 0), src, Pt(0, 0), size, nil,
			func(_, _ *uint8, _ Point) { count++ })

		if count != 0 {
			t.Errorf("size %v: touched %d cells, want 0", size, count)
		}
		if !slices.Equal(dst.Data(), dstData) {
			t.Errorf("size %v: destination modified", size)
		}
	}
}

// axisOverlap is the one-dimensional crop oracle for the transform-chain
// engine: the overlap of [0,size) with the destination extent shifted by
// -dstPos and the source extent shifted by -srcPos.
func axisOverlap(size, dstExtent, dstPos, srcExtent, srcPos int) int {
	lo := max(0, -dstPos, -srcPos)
	hi := min(size, dstExtent-dstPos, srcExtent-srcPos)
	return max(0, hi-lo)
}

// TestBlitCropCount fuzzes geometry and checks the copied cell count
// against the intersection-area oracle.
func TestBlitCropCount(t *testing.T) {
	rng := rand.New(rand.NewSource(0x77))

	for i := 0; i < 2000; i++ {
		dstSize := Sz(1+rng.Intn(8), 1+rng.Intn(8))
		srcSize := Sz(1+rng.Intn(8), 1+rng.Intn(8))
		dstPos := Pt(rng.Intn(21)-10, rng.Intn(21)-10)
		srcPos := Pt(rng.Intn(21)-10, rng.Intn(21)-10)
		size := Sz(rng.Intn(10), rng.Intn(10))

		dst := mustSurface(t, make([]uint8, dstSize.Area()), dstSize)
		src := mustSurface(t, make([]uint8, srcSize.Area()), srcSize)

		count := 0
		BlitWith(dst, dstPos, src, srcPos, size, nil,
			func(_, _ *uint8, _ Point) { count++ })

		want := axisOverlap(size.X, dstSize.X, dstPos.X, srcSize.X, srcPos.X) *
			axisOverlap(size.Y, dstSize.Y, dstPos.Y, srcSize.Y, srcPos.Y)
		if count != want {
			t.Fatalf("case %d: dst %v at %v, src %v at %v, size %v: copied %d, want %d",
				i, dstSize, dstPos, srcSize, srcPos, size, count, want)
		}
	}
}

// TestBlitCallbackPosition verifies that the callback sees untransformed
// positions relative to the copy rectangle, each exactly once.
func TestBlitCallbackPosition(t *testing.T) {
	dst := mustSurface(t, make([]uint8, 9), Sz(3, 3))
	src := topLeft.surface(t)

	seen := map[Point]int{}
	BlitWith(dst, Pt(0, 0), src, Pt(0, 0), Sz(3, 3),
		[]Transform{Rotate90CW},
		func(_, s *uint8, pt Point) {
			seen[pt]++
			if want := topLeftPattern[pt.Y*3+pt.X]; *s != want {
				t.Errorf("src at %v = %d, want %d", pt, *s, want)
			}
		})

	if len(seen) != 9 {
		t.Fatalf("saw %d distinct positions, want 9", len(seen))
	}
	for pt, n := range seen {
		if n != 1 {
			t.Errorf("position %v visited %d times, want 1", pt, n)
		}
	}
}
