package blit

// Buffer is the legacy read-only grid contract: explicit width/height
// and positional access that is only defined inside the bounds. The
// fixed-origin blit functions clip every copy rectangle before touching
// a buffer, so At is never called out of range.
//
// New code should implement Surface instead; Buffer remains for callers
// with plain width/height storage that don't need the transform chain.
type Buffer[T any] interface {
	// Width returns the buffer width in cells.
	Width() int

	// Height returns the buffer height in cells.
	Height() int

	// At returns a pointer to the value at (x, y). It is only defined
	// for x < Width() and y < Height(); implementations may panic
	// outside that range.
	At(x, y int) *T
}

// BufferMut is the legacy read-write grid contract.
type BufferMut[T any] interface {
	Buffer[T]

	// AtMut returns a mutable pointer to the value at (x, y), with the
	// same bounds contract as At.
	AtMut(x, y int) *T
}

// Flip mirrors the destination-side iteration order of a fixed-origin
// blit within the cropped rectangle.
type Flip uint8

const (
	// FlipNone copies without mirroring.
	FlipNone Flip = iota

	// FlipX mirrors the result horizontally.
	FlipX

	// FlipY mirrors the result vertically.
	FlipY

	// FlipXY mirrors the result horizontally and vertically.
	FlipXY
)

// clampAxis resolves one axis of a possibly negative position: a
// negative position shrinks the available extent by its magnitude and
// pins the start to the origin.
func clampAxis(pos, extent int) (start, avail int) {
	if pos < 0 {
		return 0, max(0, extent+pos)
	}
	return pos, extent
}

// BlitBufferWith is the generalized fixed-origin blit. It crops the
// requested rectangle to fit both buffers, then calls f for every
// remaining cell. pt is the cell's position relative to the cropped
// rectangle, before any flip.
//
// The crop rule per axis is the minimum of: the destination's remaining
// extent from its clamped start, the source's remaining extent from its
// clamped start, and the two position-clamped sizes. Out-of-range
// geometry therefore shrinks the copy instead of failing.
func BlitBufferWith[D, S any](
	dst BufferMut[D], dstPos Point,
	src Buffer[S], srcPos Point,
	size Size,
	flip Flip,
	f func(dst *D, src *S, pt Point),
) {
	dx, dw := clampAxis(dstPos.X, size.X)
	dy, dh := clampAxis(dstPos.Y, size.Y)
	sx, sw := clampAxis(srcPos.X, size.X)
	sy, sh := clampAxis(srcPos.Y, size.Y)

	copyW := min(max(0, dst.Width()-dx), max(0, src.Width()-sx), dw, sw)
	copyH := min(max(0, dst.Height()-dy), max(0, src.Height()-sy), dh, sh)

	for iy := 0; iy < copyH; iy++ {
		for ix := 0; ix < copyW; ix++ {
			tx, ty := ix, iy
			switch flip {
			case FlipX:
				tx = copyW - ix - 1
			case FlipY:
				ty = copyH - iy - 1
			case FlipXY:
				tx = copyW - ix - 1
				ty = copyH - iy - 1
			}
			f(dst.AtMut(dx+tx, dy+ty), src.At(sx+ix, sy+iy), Pt(ix, iy))
		}
	}
}

// BlitBuffer copies a rectangle of size cells from src at srcPos to dst
// at dstPos, cropping it to fit both buffers.
func BlitBuffer[T any](
	dst BufferMut[T], dstPos Point,
	src Buffer[T], srcPos Point,
	size Size,
	flip Flip,
) {
	BlitBufferWith(dst, dstPos, src, srcPos, size, flip, func(d, s *T, _ Point) {
		*d = *s
	})
}

// BlitBufferWhole copies the entire source buffer to dst at dstPos.
func BlitBufferWhole[T any](
	dst BufferMut[T], dstPos Point,
	src Buffer[T],
	flip Flip,
) {
	BlitBuffer(dst, dstPos, src, Pt(0, 0), Sz(src.Width(), src.Height()), flip)
}

// BlitBufferMasked is BlitBuffer, except source values equal to mask are
// skipped, leaving the destination cell's previous value.
func BlitBufferMasked[T comparable](
	dst BufferMut[T], dstPos Point,
	src Buffer[T], srcPos Point,
	size Size,
	mask T,
	flip Flip,
) {
	BlitBufferWith(dst, dstPos, src, srcPos, size, flip, func(d, s *T, _ Point) {
		if *s != mask {
			*d = *s
		}
	})
}

// BlitBufferConvert is BlitBuffer between buffers of different element
// types, applying convert to every copied value.
func BlitBufferConvert[D, S any](
	dst BufferMut[D], dstPos Point,
	src Buffer[S], srcPos Point,
	size Size,
	flip Flip,
	convert func(S) D,
) {
	BlitBufferWith(dst, dstPos, src, srcPos, size, flip, func(d *D, s *S, _ Point) {
		*d = convert(*s)
	})
}
