// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tcellblit

import (
	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/blit"
)

// Cell is one character cell: a rune plus its tcell style. The zero
// value renders as a default-styled NUL; NewScreenBuffer initializes
// cells to a blank space instead.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Blank is the cell every buffer starts from: a space in the default
// style. It doubles as the usual mask value for BlitMasked when
// compositing text sprites.
var Blank = Cell{Rune: ' ', Style: tcell.StyleDefault}

// ScreenBuffer is an off-screen grid of cells. It implements the
// mutable surface contract, so the blit API composes directly onto it.
type ScreenBuffer struct {
	width  int
	height int
	cells  []Cell
}

// NewScreenBuffer creates a buffer of the given dimensions with every
// cell set to Blank. Negative dimensions are treated as zero.
func NewScreenBuffer(width, height int) *ScreenBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &ScreenBuffer{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for i := range b.cells {
		b.cells[i] = Blank
	}
	return b
}

// Size returns the buffer extent in cells.
func (b *ScreenBuffer) Size() blit.Size {
	return blit.Sz(b.width, b.height)
}

// Get returns a pointer to the cell at pt, or nil outside the bounds.
func (b *ScreenBuffer) Get(pt blit.Point) *Cell {
	if !pt.In(b.Size()) {
		return nil
	}
	return &b.cells[pt.Y*b.width+pt.X]
}

// GetMut returns a mutable pointer to the cell at pt, or nil outside
// the bounds.
func (b *ScreenBuffer) GetMut(pt blit.Point) *Cell {
	return b.Get(pt)
}

// SetText writes s horizontally starting at pt, cropping at the buffer
// edge.
func (b *ScreenBuffer) SetText(pt blit.Point, s string, style tcell.Style) {
	x := pt.X
	for _, r := range s {
		if c := b.GetMut(blit.Pt(x, pt.Y)); c != nil {
			*c = Cell{Rune: r, Style: style}
		}
		x++
	}
}

// Fill sets every cell to c.
func (b *ScreenBuffer) Fill(c Cell) {
	for i := range b.cells {
		b.cells[i] = c
	}
}

// Sub returns a mutable window into the buffer, sharing its storage.
func (b *ScreenBuffer) Sub(offset blit.Point, size blit.Size) *blit.SubSurfaceMut[Cell] {
	return blit.NewSubSurfaceMut[Cell](b, offset, size)
}

// Flush writes the buffer to s with SetContent. It does not call Show;
// the caller controls when the terminal updates.
func (b *ScreenBuffer) Flush(s tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			s.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
}

// FromScreen snapshots the current content of s into a new buffer.
// Combining characters are dropped; each cell keeps its primary rune.
func FromScreen(s tcell.Screen) *ScreenBuffer {
	w, h := s.Size()
	b := NewScreenBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, _, style, _ := s.GetContent(x, y)
			b.cells[y*w+x] = Cell{Rune: r, Style: style}
		}
	}
	return b
}

var _ blit.SurfaceMut[Cell] = (*ScreenBuffer)(nil)
