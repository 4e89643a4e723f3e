// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitenblit bridges blit surfaces and Ebitengine images.
//
// Ebitengine images live on the GPU, so per-pixel access through them
// is expensive. The bridge therefore goes through a CPU staging buffer:
// Pixels holds a plain RGBA byte slice that implements the surface
// contract, FromImage fills one from an *ebiten.Image in a single
// ReadPixels call, and Flush pushes it back with a single WritePixels.
//
//	px := ebitenblit.FromImage(img)
//	blit.BlitWhole[blit.RGBA8](px, blit.Pt(8, 8), sprite, blit.Pt(0, 0), nil)
//	px.Flush(img)
package ebitenblit
