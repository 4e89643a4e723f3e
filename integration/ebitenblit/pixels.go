// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenblit

import (
	"github.com/gogpu/blit"
)

// Pixels is a CPU-side staging buffer of RGBA pixels. It implements the
// mutable surface contract with blit.RGBA8 elements, so the whole blit
// API works on it directly.
//
// The pixel layout matches what Ebitengine's ReadPixels and WritePixels
// use: row-major, 4 bytes per pixel, alpha-premultiplied.
type Pixels struct {
	width  int
	height int
	pix    []byte
}

// NewPixels creates a zeroed staging buffer of the given dimensions.
// Negative dimensions are treated as zero.
func NewPixels(width, height int) *Pixels {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Pixels{
		width:  width,
		height: height,
		pix:    make([]byte, 4*width*height),
	}
}

// Size returns the buffer extent.
func (p *Pixels) Size() blit.Size {
	return blit.Sz(p.width, p.height)
}

// Get returns a pointer to the pixel at pt, or nil outside the bounds.
// The pointer aliases the staging buffer.
func (p *Pixels) Get(pt blit.Point) *blit.RGBA8 {
	if !pt.In(p.Size()) {
		return nil
	}
	off := 4 * (pt.Y*p.width + pt.X)
	return (*blit.RGBA8)(p.pix[off : off+4])
}

// GetMut returns a mutable pointer to the pixel at pt, or nil outside
// the bounds.
func (p *Pixels) GetMut(pt blit.Point) *blit.RGBA8 {
	return p.Get(pt)
}

// Pix returns the raw staging bytes in ReadPixels/WritePixels layout.
func (p *Pixels) Pix() []byte {
	return p.pix
}

var _ blit.SurfaceMut[blit.RGBA8] = (*Pixels)(nil)
