// Package blit provides a generic 2D region-copy engine for Go.
//
// # Overview
//
// blit copies rectangular regions between addressable value grids,
// optionally applying a chain of geometric transforms (flips, quarter-
// and half-turn rotations, integer up-scaling) and a per-cell combining
// function. It is agnostic to the element type and to how a grid stores
// its values: grids take part in a blit through a small capability
// contract (Surface and SurfaceMut), so pixel buffers, tile maps,
// terminal cell grids and plain slices all work the same way.
//
// # Quick Start
//
//	import "github.com/gogpu/blit"
//
//	// View two byte slices as 2D grids.
//	dst, _ := blit.NewGenericSurface(make([]uint8, 25), blit.Sz(5, 5))
//	src, _ := blit.NewGenericSurface(sprite, blit.Sz(4, 4))
//
//	// Copy a 3x3 region, rotated a quarter turn.
//	blit.Blit(dst, blit.Pt(1, 1), src, blit.Pt(0, 0), blit.Sz(3, 3),
//	    []blit.Transform{blit.Rotate90CW})
//
// # Cropping
//
// Every blit is panic-free: out-of-range positions (including negative
// ones) and oversized copy rectangles shrink the copied region instead
// of failing. A surface reports out-of-bounds cells as absent, and the
// engine simply skips them.
//
// # Architecture
//
// The library is organized into:
//   - Capability contract: Surface, SurfaceMut (and the legacy Buffer,
//     BufferMut pair for fixed-origin blits)
//   - Storage: GenericSurface, Uniform, Pixmap, SubSurface windows
//   - Engine: BlitWith and its derived operations Blit, BlitMasked,
//     BlitConvert, BlitWhole
//   - Adapters: integration/imageblit (stdlib image), integration/
//     ebitenblit (Ebitengine), integration/tcellblit (tcell)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Concurrency
//
// The engine holds no state between calls; every call is re-entrant.
// Surfaces themselves are not synchronized: a destination is exclusively
// written for the duration of one call, and callers must not write to a
// surface another blit is reading.
package blit

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
