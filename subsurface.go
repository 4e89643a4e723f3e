package blit

// SubSurface is a read-only window into another surface: accesses are
// translated by offset and bounded by size, without copying.
//
// The window performs its own bounds check before delegating, so a
// SubSurface whose offset+size extends past the inner surface simply
// reports the overhanging cells as absent; the inner surface's own
// bounds check handles the rest. No clamping happens at construction.
type SubSurface[T any] struct {
	inner  Surface[T]
	offset Point
	size   Size
}

// NewSubSurface creates a read-only window into inner at offset with the
// given size.
func NewSubSurface[T any](inner Surface[T], offset Point, size Size) *SubSurface[T] {
	return &SubSurface[T]{inner: inner, offset: offset, size: size}
}

// Size returns the window extent.
func (s *SubSurface[T]) Size() Size {
	return s.size
}

// Get translates pt by the window offset and delegates to the inner
// surface. It returns nil if pt is outside the window.
func (s *SubSurface[T]) Get(pt Point) *T {
	if !pt.In(s.size) {
		return nil
	}
	return s.inner.Get(pt.Add(s.offset))
}

// Offset returns the window's position inside the inner surface.
func (s *SubSurface[T]) Offset() Point {
	return s.offset
}

// Inner returns the wrapped surface.
func (s *SubSurface[T]) Inner() Surface[T] {
	return s.inner
}

// SubSurfaceMut is a read-write window into another surface. It has the
// same translation and two-layer absence semantics as SubSurface.
type SubSurfaceMut[T any] struct {
	inner  SurfaceMut[T]
	offset Point
	size   Size
}

// NewSubSurfaceMut creates a mutable window into inner at offset with
// the given size.
func NewSubSurfaceMut[T any](inner SurfaceMut[T], offset Point, size Size) *SubSurfaceMut[T] {
	return &SubSurfaceMut[T]{inner: inner, offset: offset, size: size}
}

// Size returns the window extent.
func (s *SubSurfaceMut[T]) Size() Size {
	return s.size
}

// Get translates pt by the window offset and delegates to the inner
// surface. It returns nil if pt is outside the window.
func (s *SubSurfaceMut[T]) Get(pt Point) *T {
	if !pt.In(s.size) {
		return nil
	}
	return s.inner.Get(pt.Add(s.offset))
}

// GetMut translates pt by the window offset and delegates to the inner
// surface. It returns nil if pt is outside the window.
func (s *SubSurfaceMut[T]) GetMut(pt Point) *T {
	if !pt.In(s.size) {
		return nil
	}
	return s.inner.GetMut(pt.Add(s.offset))
}

// Offset returns the window's position inside the inner surface.
func (s *SubSurfaceMut[T]) Offset() Point {
	return s.offset
}

// Inner returns the wrapped surface.
func (s *SubSurfaceMut[T]) Inner() SurfaceMut[T] {
	return s.inner
}

var (
	_ Surface[byte]    = (*SubSurface[byte])(nil)
	_ SurfaceMut[byte] = (*SubSurfaceMut[byte])(nil)
)
