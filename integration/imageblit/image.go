// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package imageblit

import (
	"image"

	"github.com/gogpu/blit"
)

// NRGBA wraps an *image.NRGBA as a mutable surface of blit.RGBA8
// elements. The wrapper borrows the image's storage.
type NRGBA struct {
	img *image.NRGBA
}

// WrapNRGBA wraps img. The image may be a SubImage view; the wrapper
// addresses only the pixels inside img.Bounds().
func WrapNRGBA(img *image.NRGBA) *NRGBA {
	return &NRGBA{img: img}
}

// Size returns the wrapped image's extent.
func (s *NRGBA) Size() blit.Size {
	b := s.img.Bounds()
	return blit.Sz(b.Dx(), b.Dy())
}

// Get returns a pointer to the pixel at pt, or nil outside the bounds.
// The pointer aliases the image's Pix slice.
func (s *NRGBA) Get(pt blit.Point) *blit.RGBA8 {
	if !pt.In(s.Size()) {
		return nil
	}
	b := s.img.Bounds()
	off := s.img.PixOffset(b.Min.X+pt.X, b.Min.Y+pt.Y)
	return (*blit.RGBA8)(s.img.Pix[off : off+4])
}

// GetMut returns a mutable pointer to the pixel at pt, or nil outside
// the bounds.
func (s *NRGBA) GetMut(pt blit.Point) *blit.RGBA8 {
	return s.Get(pt)
}

// Image returns the wrapped image.
func (s *NRGBA) Image() *image.NRGBA {
	return s.img
}

// RGBA wraps an *image.RGBA as a mutable surface of blit.RGBA8
// elements. The channel values are alpha-premultiplied, matching the
// wrapped image; a plain blit copies them verbatim.
type RGBA struct {
	img *image.RGBA
}

// WrapRGBA wraps img. The image may be a SubImage view.
func WrapRGBA(img *image.RGBA) *RGBA {
	return &RGBA{img: img}
}

// Size returns the wrapped image's extent.
func (s *RGBA) Size() blit.Size {
	b := s.img.Bounds()
	return blit.Sz(b.Dx(), b.Dy())
}

// Get returns a pointer to the pixel at pt, or nil outside the bounds.
func (s *RGBA) Get(pt blit.Point) *blit.RGBA8 {
	if !pt.In(s.Size()) {
		return nil
	}
	b := s.img.Bounds()
	off := s.img.PixOffset(b.Min.X+pt.X, b.Min.Y+pt.Y)
	return (*blit.RGBA8)(s.img.Pix[off : off+4])
}

// GetMut returns a mutable pointer to the pixel at pt, or nil outside
// the bounds.
func (s *RGBA) GetMut(pt blit.Point) *blit.RGBA8 {
	return s.Get(pt)
}

// Image returns the wrapped image.
func (s *RGBA) Image() *image.RGBA {
	return s.img
}

// Gray wraps an *image.Gray as a mutable surface of uint8 elements.
type Gray struct {
	img *image.Gray
}

// WrapGray wraps img. The image may be a SubImage view.
func WrapGray(img *image.Gray) *Gray {
	return &Gray{img: img}
}

// Size returns the wrapped image's extent.
func (s *Gray) Size() blit.Size {
	b := s.img.Bounds()
	return blit.Sz(b.Dx(), b.Dy())
}

// Get returns a pointer to the gray value at pt, or nil outside the
// bounds.
func (s *Gray) Get(pt blit.Point) *uint8 {
	if !pt.In(s.Size()) {
		return nil
	}
	b := s.img.Bounds()
	off := s.img.PixOffset(b.Min.X+pt.X, b.Min.Y+pt.Y)
	return &s.img.Pix[off]
}

// GetMut returns a mutable pointer to the gray value at pt, or nil
// outside the bounds.
func (s *Gray) GetMut(pt blit.Point) *uint8 {
	return s.Get(pt)
}

// Image returns the wrapped image.
func (s *Gray) Image() *image.Gray {
	return s.img
}

var (
	_ blit.SurfaceMut[blit.RGBA8] = (*NRGBA)(nil)
	_ blit.SurfaceMut[blit.RGBA8] = (*RGBA)(nil)
	_ blit.SurfaceMut[uint8]      = (*Gray)(nil)
)
