package blit

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// RGBA8 is a pixel in 8-bit RGBA channel order, the element type used by
// Pixmap and the adapters in integration/. Alpha is not premultiplied.
//
// The zero value is fully transparent black, which makes it the natural
// mask for BlitMasked when compositing sprites.
type RGBA8 [4]uint8

// Color converts the pixel to a color.NRGBA.
func (c RGBA8) Color() color.NRGBA {
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// Pixmap is a concrete RGBA surface: a rectangular pixel buffer that
// implements both the Surface/SurfaceMut contract and the legacy
// Buffer/BufferMut contract with element type RGBA8.
type Pixmap struct {
	width  int
	height int
	pix    []RGBA8
}

// NewPixmap creates a new pixmap with the given dimensions. Negative
// dimensions are treated as zero.
func NewPixmap(width, height int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Pixmap{
		width:  width,
		height: height,
		pix:    make([]RGBA8, width*height),
	}
}

// Size returns the pixmap extent.
func (p *Pixmap) Size() Size {
	return Sz(p.width, p.height)
}

// Get returns a pointer to the pixel at pt, or nil outside the bounds.
func (p *Pixmap) Get(pt Point) *RGBA8 {
	if !pt.In(p.Size()) {
		return nil
	}
	return &p.pix[pt.Y*p.width+pt.X]
}

// GetMut returns a mutable pointer to the pixel at pt, or nil outside
// the bounds.
func (p *Pixmap) GetMut(pt Point) *RGBA8 {
	return p.Get(pt)
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// At returns a pointer to the pixel at (x, y). Part of the legacy Buffer
// contract: it is only defined inside the bounds.
func (p *Pixmap) At(x, y int) *RGBA8 {
	return &p.pix[y*p.width+x]
}

// AtMut returns a mutable pointer to the pixel at (x, y). Part of the
// legacy BufferMut contract.
func (p *Pixmap) AtMut(x, y int) *RGBA8 {
	return &p.pix[y*p.width+x]
}

// Pix returns the raw pixel data in row-major order.
func (p *Pixmap) Pix() []RGBA8 {
	return p.pix
}

// SetPixel sets the color of a single pixel. Out-of-bounds coordinates
// are silently ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.pix[y*p.width+x] = c
}

// GetPixel returns the color of a single pixel, or the zero (fully
// transparent) pixel outside the bounds.
func (p *Pixmap) GetPixel(x, y int) RGBA8 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return RGBA8{}
	}
	return p.pix[y*p.width+x]
}

// Fill sets every pixel to c.
func (p *Pixmap) Fill(c RGBA8) {
	for i := range p.pix {
		p.pix[i] = c
	}
}

// Sub returns a mutable window into the pixmap at offset with the given
// size. The window shares storage with the pixmap.
func (p *Pixmap) Sub(offset Point, size Size) *SubSurfaceMut[RGBA8] {
	return NewSubSurfaceMut[RGBA8](p, offset, size)
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for i, c := range p.pix {
		img.Pix[i*4+0] = c[0]
		img.Pix[i*4+1] = c[1]
		img.Pix[i*4+2] = c[2]
		img.Pix[i*4+3] = c[3]
	}
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())

	for y := 0; y < pm.height; y++ {
		for x := 0; x < pm.width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			pm.pix[y*pm.width+x] = RGBA8{c.R, c.G, c.B, c.A}
		}
	}

	return pm
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

var (
	_ SurfaceMut[RGBA8] = (*Pixmap)(nil)
	_ BufferMut[RGBA8]  = (*Pixmap)(nil)
)
