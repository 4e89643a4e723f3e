// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenblit

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/blit"
)

// FromImage reads img into a fresh staging buffer with a single
// ReadPixels call.
func FromImage(img *ebiten.Image) *Pixels {
	b := img.Bounds()
	p := NewPixels(b.Dx(), b.Dy())
	img.ReadPixels(p.pix)

	blit.Logger().Debug("staged ebiten image",
		"width", p.width, "height", p.height)
	return p
}

// Flush writes the staging buffer back to img with a single WritePixels
// call. The image must have the same dimensions as the buffer.
func (p *Pixels) Flush(img *ebiten.Image) error {
	b := img.Bounds()
	if b.Dx() != p.width || b.Dy() != p.height {
		return blit.ErrSizeMismatch
	}
	img.WritePixels(p.pix)
	return nil
}
