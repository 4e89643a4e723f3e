package blit

import "fmt"

type transformKind uint8

const (
	kindFlipHorizontal transformKind = iota
	kindFlipVertical
	kindFlipBoth
	kindRotate90CW
	kindRotate90CCW
	kindRotate180
	kindUpScale
)

// Transform is one geometric step applied to the destination-space
// layout of a blit: a flip, a quarter- or half-turn rotation, or an
// integer up-scale.
//
// Transforms are immutable values and compare with ==. An ordered slice
// of transforms composes left to right: the first transform is applied
// to the copy rectangle first. Order is significant; a rotation followed
// by a flip is generally not the same as the flip followed by the
// rotation.
type Transform struct {
	kind   transformKind
	sx, sy int
}

// The six non-scaling transforms.
var (
	// FlipHorizontal mirrors across the vertical axis (left/right swap).
	FlipHorizontal = Transform{kind: kindFlipHorizontal}

	// FlipVertical mirrors across the horizontal axis (top/bottom swap).
	FlipVertical = Transform{kind: kindFlipVertical}

	// FlipBoth mirrors across both axes.
	FlipBoth = Transform{kind: kindFlipBoth}

	// Rotate90CW rotates a quarter turn clockwise.
	Rotate90CW = Transform{kind: kindRotate90CW}

	// Rotate90CCW rotates a quarter turn counter-clockwise.
	Rotate90CCW = Transform{kind: kindRotate90CCW}

	// Rotate180 rotates a half turn. Cell-for-cell it lands on the same
	// positions as FlipBoth; it is kept distinct so transform chains read
	// the way they were meant.
	Rotate180 = Transform{kind: kindRotate180}
)

// UpScale returns a transform that repeats every cell x times
// horizontally and y times vertically.
//
// Up-scaling only: both factors must be >= 1. Factors below 1 violate
// the caller contract and produce unspecified results.
func UpScale(x, y int) Transform {
	return Transform{kind: kindUpScale, sx: x, sy: y}
}

// rev reflects a coordinate across an extent, saturating at zero.
func rev(c, s int) int {
	if c >= s {
		return 0
	}
	return s - c - 1
}

// ApplySize returns the extent of a space of size s after the transform.
// Rotations swap the axes, UpScale multiplies them, flips and Rotate180
// preserve the size.
func (t Transform) ApplySize(s Size) Size {
	switch t.kind {
	case kindRotate90CW, kindRotate90CCW:
		return Sz(s.Y, s.X)
	case kindUpScale:
		return Sz(s.X*t.sx, s.Y*t.sy)
	default:
		return s
	}
}

// UnapplySize is the exact inverse of ApplySize for sizes produced by
// ApplySize. For UpScale it divides (flooring), so it is only a true
// inverse when the extents are multiples of the scale factors.
func (t Transform) UnapplySize(s Size) Size {
	switch t.kind {
	case kindRotate90CW, kindRotate90CCW:
		return Sz(s.Y, s.X)
	case kindUpScale:
		return Sz(s.X/t.sx, s.Y/t.sy)
	default:
		return s
	}
}

// Apply maps a point in an untransformed space of size s to its position
// in the transformed space.
func (t Transform) Apply(pt Point, s Size) Point {
	switch t.kind {
	case kindFlipHorizontal:
		return Pt(rev(pt.X, s.X), pt.Y)
	case kindFlipVertical:
		return Pt(pt.X, rev(pt.Y, s.Y))
	case kindFlipBoth, kindRotate180:
		return Pt(rev(pt.X, s.X), rev(pt.Y, s.Y))
	case kindRotate90CW:
		return Pt(rev(pt.Y, s.Y), pt.X)
	case kindRotate90CCW:
		return Pt(pt.Y, rev(pt.X, s.X))
	case kindUpScale:
		return Pt(pt.X*t.sx, pt.Y*t.sy)
	}
	return pt
}

// Unapply maps a point back to the untransformed space. s is the size of
// the transformed space the point lives in, not the original size.
//
// For UpScale the mapping divides (flooring), so every block of sx*sy
// destination cells maps to the same source cell. Rotate90CW and
// Rotate90CCW are mutual inverses under Unapply.
func (t Transform) Unapply(pt Point, s Size) Point {
	switch t.kind {
	case kindFlipHorizontal:
		return Pt(rev(pt.X, s.X), pt.Y)
	case kindFlipVertical:
		return Pt(pt.X, rev(pt.Y, s.Y))
	case kindFlipBoth, kindRotate180:
		return Pt(rev(pt.X, s.X), rev(pt.Y, s.Y))
	case kindRotate90CW:
		return Pt(pt.Y, rev(pt.X, s.X))
	case kindRotate90CCW:
		return Pt(rev(pt.Y, s.Y), pt.X)
	case kindUpScale:
		return Pt(pt.X/t.sx, pt.Y/t.sy)
	}
	return pt
}

// String returns the transform's name for diagnostics.
func (t Transform) String() string {
	switch t.kind {
	case kindFlipHorizontal:
		return "FlipHorizontal"
	case kindFlipVertical:
		return "FlipVertical"
	case kindFlipBoth:
		return "FlipBoth"
	case kindRotate90CW:
		return "Rotate90CW"
	case kindRotate90CCW:
		return "Rotate90CCW"
	case kindRotate180:
		return "Rotate180"
	case kindUpScale:
		return fmt.Sprintf("UpScale(%d,%d)", t.sx, t.sy)
	}
	return "Transform(?)"
}

// TransformedSize folds ApplySize over the transform chain: the extent a
// copy rectangle of the given size occupies in destination space.
func TransformedSize(size Size, transforms []Transform) Size {
	for _, t := range transforms {
		size = t.ApplySize(size)
	}
	return size
}

// untransform maps a point in fully transformed space back through the
// chain. Unapply runs in reverse order, and the size threaded through it
// is the transformed extent at each composition depth: transformed is
// the extent after the whole chain, and each step peels one transform
// off via UnapplySize. This right-to-left unwind exactly inverts the
// left-to-right composition of TransformedSize.
func untransform(pt Point, transformed Size, transforms []Transform) Point {
	for i := len(transforms) - 1; i >= 0; i-- {
		pt = transforms[i].Unapply(pt, transformed)
		transformed = transforms[i].UnapplySize(transformed)
	}
	return pt
}
