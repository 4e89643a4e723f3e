package blit

// GenericSurface is a surface backed by a flat, row-major slice. It is
// the workhorse storage type: any []T can be viewed as a 2D grid without
// copying.
//
// GenericSurface implements both capability generations: the
// Surface/SurfaceMut contract used by the transform-chain engine, and
// the legacy Buffer/BufferMut contract used by the fixed-origin engine.
type GenericSurface[T any] struct {
	data []T
	size Size
}

// NewGenericSurface creates a surface over data with the given size.
// It returns ErrSizeMismatch unless len(data) == size.X*size.Y.
func NewGenericSurface[T any](data []T, size Size) (*GenericSurface[T], error) {
	if size.X < 0 || size.Y < 0 || len(data) != size.X*size.Y {
		return nil, ErrSizeMismatch
	}
	return &GenericSurface[T]{data: data, size: size}, nil
}

// NewGenericSurfaceInfer creates a surface over data with the given
// width, inferring the height from the slice length. Cells beyond the
// last complete row are not addressable: the height is len(data)/width.
// It returns ErrBadWidth if width is not positive.
func NewGenericSurfaceInfer[T any](data []T, width int) (*GenericSurface[T], error) {
	if width <= 0 {
		return nil, ErrBadWidth
	}
	height := len(data) / width
	return &GenericSurface[T]{data: data[:width*height], size: Sz(width, height)}, nil
}

// Size returns the surface extent.
func (g *GenericSurface[T]) Size() Size {
	return g.size
}

// Get returns a pointer to the value at pt, or nil outside the bounds.
func (g *GenericSurface[T]) Get(pt Point) *T {
	if !pt.In(g.size) {
		return nil
	}
	return &g.data[pt.Y*g.size.X+pt.X]
}

// GetMut returns a mutable pointer to the value at pt, or nil outside
// the bounds.
func (g *GenericSurface[T]) GetMut(pt Point) *T {
	return g.Get(pt)
}

// Data returns the backing slice in row-major order.
func (g *GenericSurface[T]) Data() []T {
	return g.data
}

// Sub returns a mutable window into the surface at offset with the given
// size. The window shares storage with the surface.
func (g *GenericSurface[T]) Sub(offset Point, size Size) *SubSurfaceMut[T] {
	return NewSubSurfaceMut[T](g, offset, size)
}

// Width returns the surface width. Part of the legacy Buffer contract.
func (g *GenericSurface[T]) Width() int {
	return g.size.X
}

// Height returns the surface height. Part of the legacy Buffer contract.
func (g *GenericSurface[T]) Height() int {
	return g.size.Y
}

// At returns a pointer to the value at (x, y). Part of the legacy Buffer
// contract: it is only defined for x < Width() and y < Height().
func (g *GenericSurface[T]) At(x, y int) *T {
	return &g.data[y*g.size.X+x]
}

// AtMut returns a mutable pointer to the value at (x, y). Part of the
// legacy BufferMut contract.
func (g *GenericSurface[T]) AtMut(x, y int) *T {
	return &g.data[y*g.size.X+x]
}

var (
	_ SurfaceMut[byte] = (*GenericSurface[byte])(nil)
	_ BufferMut[byte]  = (*GenericSurface[byte])(nil)
)
