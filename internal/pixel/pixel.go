// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package pixel

import (
	"encoding/hex"
	"image"
	"image/color"
)

// Pixel is a non-premultiplied 8-bit RGBA value. Two pixels are equal iff all
// four channels match, so Pixel is usable as a map key.
type Pixel struct {
	R, G, B, A uint8
}

// Hex renders the pixel as 8 lowercase hex digits in RRGGBBAA order.
func (p Pixel) Hex() string {
	return hex.EncodeToString([]byte{p.R, p.G, p.B, p.A})
}

// RGBA implements color.Color.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}.RGBA()
}

// Reader is the read-only view of a grid the differ needs.
type Reader interface {
	Width() int
	Height() int
	At(x, y int) Pixel
}

// Grid is a width x height raster stored row-major.
type Grid struct {
	width  int
	height int
	pix    []Pixel
}

// NewGrid returns a zeroed grid. Negative dimensions are clamped to zero.
func NewGrid(width, height int) *Grid {
	width = max(width, 0)
	height = max(height, 0)
	return &Grid{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
	}
}

// FromRows builds a grid from rows of pixels. Every row must be as long as the
// first one; shorter rows are zero-filled.
func FromRows(rows [][]Pixel) *Grid {
	if len(rows) == 0 {
		return NewGrid(0, 0)
	}
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x := 0; x < g.width && x < len(row); x++ {
			g.Set(x, y, row[x])
		}
	}
	return g
}

// FromImage converts any decoded image to a grid. The grid origin is the
// image's Bounds().Min.
func FromImage(img image.Image) *Grid {
	b := img.Bounds()
	g := NewGrid(b.Dx(), b.Dy())

	// NRGBA sources are copied verbatim so fully transparent pixels keep their
	// color channels. Everything else goes through the NRGBA color model.
	if n, ok := img.(*image.NRGBA); ok {
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				c := n.NRGBAAt(b.Min.X+x, b.Min.Y+y)
				g.Set(x, y, Pixel{c.R, c.G, c.B, c.A})
			}
		}
		return g
	}

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			g.Set(x, y, Pixel{c.R, c.G, c.B, c.A})
		}
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// At returns the pixel at (x, y). Out-of-range coordinates yield the zero
// Pixel.
func (g *Grid) At(x, y int) Pixel {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return Pixel{}
	}
	return g.pix[y*g.width+x]
}

// Set writes the pixel at (x, y). Out-of-range coordinates are ignored.
func (g *Grid) Set(x, y int, p Pixel) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	g.pix[y*g.width+x] = p
}
