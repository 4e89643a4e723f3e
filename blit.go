package blit

// BlitWith is the core blit engine. It iterates the transformed copy
// rectangle in row-major order and calls f once for every cell that is
// in bounds on both sides.
//
// For each cell (ix, iy) of TransformedSize(copySize, transforms):
//
//  1. The destination cell is dstPos + (ix, iy). If the destination
//     reports it absent, the cell is skipped.
//  2. (ix, iy) is mapped back through the transform chain to a point in
//     [0, copySize) space.
//  3. The source cell is srcPos + that point. If the source reports it
//     absent, the cell is skipped.
//  4. f(dst, src, pt) runs, where pt is the untransformed position
//     relative to the copy rectangle.
//
// Skipping on absence is the sole cropping mechanism: no copy rectangle
// is computed up front, so negative positions and oversized rectangles
// shrink the blit instead of failing. BlitWith itself never panics; a
// panic in f propagates to the caller with cells written so far kept.
//
// Callers must not rely on the iteration order for correctness, only on
// every touched cell being visited exactly once.
func BlitWith[D, S any](
	dst SurfaceMut[D], dstPos Point,
	src Surface[S], srcPos Point,
	copySize Size,
	transforms []Transform,
	f func(dst *D, src *S, pt Point),
) {
	transformed := TransformedSize(copySize, transforms)

	for iy := 0; iy < transformed.Y; iy++ {
		for ix := 0; ix < transformed.X; ix++ {
			d := dst.GetMut(Pt(dstPos.X+ix, dstPos.Y+iy))
			if d == nil {
				continue
			}
			pt := untransform(Pt(ix, iy), transformed, transforms)
			s := src.Get(Pt(srcPos.X+pt.X, srcPos.Y+pt.Y))
			if s == nil {
				continue
			}
			f(d, s, pt)
		}
	}
}

// Blit copies a rectangle of copySize cells from src at srcPos to dst at
// dstPos, applying the transform chain. Cells outside either surface are
// cropped away.
func Blit[T any](
	dst SurfaceMut[T], dstPos Point,
	src Surface[T], srcPos Point,
	copySize Size,
	transforms []Transform,
) {
	BlitWith(dst, dstPos, src, srcPos, copySize, transforms, func(d, s *T, _ Point) {
		*d = *s
	})
}

// BlitMasked is Blit, except source values equal to mask are skipped,
// leaving the destination cell's previous value. The mask is typically a
// transparent-color sentinel.
func BlitMasked[T comparable](
	dst SurfaceMut[T], dstPos Point,
	src Surface[T], srcPos Point,
	copySize Size,
	mask T,
	transforms []Transform,
) {
	BlitWith(dst, dstPos, src, srcPos, copySize, transforms, func(d, s *T, _ Point) {
		if *s != mask {
			*d = *s
		}
	})
}

// BlitConvert is Blit between surfaces of different element types,
// applying convert to every copied value.
func BlitConvert[D, S any](
	dst SurfaceMut[D], dstPos Point,
	src Surface[S], srcPos Point,
	copySize Size,
	transforms []Transform,
	convert func(S) D,
) {
	BlitWith(dst, dstPos, src, srcPos, copySize, transforms, func(d *D, s *S, _ Point) {
		*d = convert(*s)
	})
}

// BlitWhole blits the entire source surface: Blit with copySize set to
// src.Size().
func BlitWhole[T any](
	dst SurfaceMut[T], dstPos Point,
	src Surface[T], srcPos Point,
	transforms []Transform,
) {
	Blit(dst, dstPos, src, srcPos, src.Size(), transforms)
}
