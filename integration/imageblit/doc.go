// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package imageblit adapts the standard library image types to the blit
// surface contract.
//
// The wrappers borrow the image's pixel storage instead of copying it:
// a blit into a wrapped image writes straight into the image's Pix
// slice. SubImage views are respected, so a wrapper around
// img.SubImage(r) addresses exactly the pixels inside r.
//
//	img := image.NewNRGBA(image.Rect(0, 0, 128, 128))
//	dst := imageblit.WrapNRGBA(img)
//	blit.BlitWhole[blit.RGBA8](dst, blit.Pt(0, 0), sprite, blit.Pt(0, 0), nil)
package imageblit
