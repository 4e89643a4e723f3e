package blit

// Surface is the read-only capability every blit source must provide.
//
// The element type T is a static type parameter; a surface is just an
// addressable 2D collection of T values. Implementations may own their
// backing storage (GenericSurface, Pixmap) or borrow it (the adapters in
// integration/).
//
// Get must be total: it returns nil for any out-of-bounds point instead
// of panicking. The blit engine relies on this to crop silently.
type Surface[T any] interface {
	// Size returns the surface extent in cells.
	Size() Size

	// Get returns a pointer to the value at pt, or nil if pt is outside
	// the surface bounds. Get must never panic.
	Get(pt Point) *T
}

// SurfaceMut is the read-write capability every blit destination must
// provide. GetMut has the same total-function contract as Get.
type SurfaceMut[T any] interface {
	Surface[T]

	// GetMut returns a mutable pointer to the value at pt, or nil if pt
	// is outside the surface bounds. GetMut must never panic.
	GetMut(pt Point) *T
}

// Uniform is a surface that reports a single value for every cell, like
// a plain-colored rectangle. It is the blit analog of image.Uniform.
//
// Uniform is read-only: it satisfies Surface and the legacy Buffer
// contract, but not their mutable extensions.
type Uniform[T any] struct {
	size  Size
	value T
}

// NewUniform creates a uniform surface of the given size and value.
func NewUniform[T any](size Size, value T) *Uniform[T] {
	return &Uniform[T]{size: size, value: value}
}

// Size returns the surface extent.
func (u *Uniform[T]) Size() Size {
	return u.size
}

// Get returns the stored value for any in-bounds point.
func (u *Uniform[T]) Get(pt Point) *T {
	if !pt.In(u.size) {
		return nil
	}
	return &u.value
}

// Value returns a pointer to the stored value.
func (u *Uniform[T]) Value() *T {
	return &u.value
}

// Width returns the surface width. Part of the legacy Buffer contract.
func (u *Uniform[T]) Width() int {
	return u.size.X
}

// Height returns the surface height. Part of the legacy Buffer contract.
func (u *Uniform[T]) Height() int {
	return u.size.Y
}

// At returns the stored value regardless of position. Part of the legacy
// Buffer contract, which only calls At inside the cropped rectangle.
func (u *Uniform[T]) At(x, y int) *T {
	return &u.value
}

var (
	_ Surface[byte] = (*Uniform[byte])(nil)
	_ Buffer[byte]  = (*Uniform[byte])(nil)
)
