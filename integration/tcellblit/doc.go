// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package tcellblit treats a terminal as a blit destination.
//
// A ScreenBuffer is a grid of styled runes implementing the mutable
// surface contract with Cell elements, so sprites, windows, and
// transforms all work on character cells exactly as they do on pixels.
// Flush pushes a buffer to a tcell.Screen with SetContent; FromScreen
// snapshots the screen's current content.
package tcellblit
