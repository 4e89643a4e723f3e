// Command blitdemo demonstrates the blit library: it composites a
// generated sprite onto a canvas under a chain of transforms and saves
// the result as a PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/gogpu/blit"
)

func main() {
	var (
		width      = flag.Int("width", 256, "canvas width")
		height     = flag.Int("height", 256, "canvas height")
		output     = flag.String("output", "demo.png", "output file")
		transforms = flag.String("transforms", "", "comma-separated transform chain (flipx, flipy, rotate90cw, rotate90ccw, rotate180, scaleNxM)")
	)
	flag.Parse()

	chain, err := parseTransforms(*transforms)
	if err != nil {
		log.Fatalf("Bad transform chain: %v", err)
	}

	canvas := blit.NewPixmap(*width, *height)
	drawCheckerboard(canvas)

	sprite := makeSprite(64, 64)

	// Tile the transformed sprite across the canvas, letting edge tiles
	// crop themselves.
	tile := blit.TransformedSize(sprite.Size(), chain)
	step := blit.Sz(tile.X+8, tile.Y+8)
	for y := 4; y < *height; y += step.Y {
		for x := 4; x < *width; x += step.X {
			blit.BlitMasked[blit.RGBA8](canvas, blit.Pt(x, y),
				sprite, blit.Pt(0, 0), sprite.Size(), blit.RGBA8{}, chain)
		}
	}

	if err := canvas.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// parseTransforms turns "rotate90cw,flipx,scale2x3" into a transform
// chain.
func parseTransforms(s string) ([]blit.Transform, error) {
	if s == "" {
		return nil, nil
	}

	var chain []blit.Transform
	for _, name := range strings.Split(s, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		switch name {
		case "flipx":
			chain = append(chain, blit.FlipHorizontal)
		case "flipy":
			chain = append(chain, blit.FlipVertical)
		case "flipxy":
			chain = append(chain, blit.FlipBoth)
		case "rotate90cw":
			chain = append(chain, blit.Rotate90CW)
		case "rotate90ccw":
			chain = append(chain, blit.Rotate90CCW)
		case "rotate180":
			chain = append(chain, blit.Rotate180)
		default:
			var sx, sy int
			if n, err := fmt.Sscanf(name, "scale%dx%d", &sx, &sy); err == nil && n == 2 && sx > 0 && sy > 0 {
				chain = append(chain, blit.UpScale(sx, sy))
				continue
			}
			return nil, fmt.Errorf("unknown transform %q", name)
		}
	}
	return chain, nil
}

// drawCheckerboard fills the canvas with a dim two-tone grid.
func drawCheckerboard(pm *blit.Pixmap) {
	dark := blit.RGBA8{40, 40, 48, 255}
	light := blit.RGBA8{56, 56, 66, 255}

	size := pm.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			c := dark
			if (x/16+y/16)%2 == 0 {
				c = light
			}
			pm.SetPixel(x, y, c)
		}
	}
}

// makeSprite draws a gradient diamond with a transparent background, so
// the masked blit shows the checkerboard through it.
func makeSprite(w, h int) *blit.Pixmap {
	pm := blit.NewPixmap(w, h)
	cx, cy := w/2, h/2

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := x-cx, y-cy
			if dx < 0 {
				dx = -dx
			}
			if dy < 0 {
				dy = -dy
			}
			if dx+dy >= cx {
				continue
			}
			t := float64(dx+dy) / float64(cx)
			pm.SetPixel(x, y, blit.RGBA8{
				uint8(255 * (1 - t)),
				uint8(128 * t),
				uint8(64 + 191*t),
				255,
			})
		}
	}
	return pm
}
