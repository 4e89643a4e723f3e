package blit

// Point is a position on a surface, measured in cells from the top-left
// corner. X increases right, Y increases down.
//
// Surface access treats any point with a negative component as out of
// bounds; the legacy buffer API additionally uses negative positions to
// express copies that start before a buffer's origin.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// In reports whether the point lies inside a surface of the given size.
func (p Point) In(s Size) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.X && p.Y < s.Y
}

// Size is the extent of a surface or copy rectangle: X is the width in
// cells, Y the height.
type Size struct {
	X, Y int
}

// Sz is a convenience function to create a Size.
func Sz(x, y int) Size {
	return Size{X: x, Y: y}
}

// Area returns the number of cells covered by the size.
// A size with a non-positive component has area zero.
func (s Size) Area() int {
	if s.Empty() {
		return 0
	}
	return s.X * s.Y
}

// Empty reports whether the size covers no cells.
func (s Size) Empty() bool {
	return s.X <= 0 || s.Y <= 0
}
