// Package raster converts shape outlines into coverage masks and ASCII
// previews. It backs the default Draw operations of the bundled value types.
//
// Geometry is expressed in abstract units; one unit maps to CellsPerUnit
// text cells horizontally. Masks are produced with the x/image/vector
// scanline rasterizer and rendered to text with a density ramp, sampling
// every other row to compensate for terminal cells being roughly twice as
// tall as they are wide.
package raster

import (
	"image"
	"math"
	"strings"

	"golang.org/x/image/vector"
)

const (
	// CellsPerUnit is the horizontal preview resolution in text cells per
	// geometry unit.
	CellsPerUnit = 4

	// minCells and maxCells bound the mask side length so degenerate and
	// oversized shapes still produce a usable preview.
	minCells = 4
	maxCells = 96
)

// kappa is the cubic Bézier circle approximation constant,
// 4*(sqrt(2)-1)/3.
const kappa = 0.5522847498307936

// shades maps coverage from empty to full.
var shades = []byte(" .:-=+*#%@")

// cells converts a length in geometry units to a mask side length in cells.
func cells(units float64) int {
	n := int(math.Ceil(units * CellsPerUnit))
	if n < minCells {
		return minCells
	}
	if n > maxCells {
		return maxCells
	}
	return n
}

// Circle returns the coverage mask of a filled circle with the given radius,
// inscribed in a square mask of side cells(2*radius).
func Circle(radius float64) *image.Alpha {
	n := cells(2 * radius)
	z := vector.NewRasterizer(n, n)

	c := float64(n) / 2
	r := c
	cube := func(x1, y1, x2, y2, x, y float64) {
		z.CubeTo(float32(x1), float32(y1), float32(x2), float32(y2), float32(x), float32(y))
	}

	z.MoveTo(float32(c+r), float32(c))
	cube(c+r, c+kappa*r, c+kappa*r, c+r, c, c+r)
	cube(c-kappa*r, c+r, c-r, c+kappa*r, c-r, c)
	cube(c-r, c-kappa*r, c-kappa*r, c-r, c, c-r)
	cube(c+kappa*r, c-r, c+r, c-kappa*r, c+r, c)
	z.ClosePath()

	return mask(z)
}

// Square returns the coverage mask of a filled axis-aligned square with the
// given width, filling a mask of side cells(width).
func Square(width float64) *image.Alpha {
	n := cells(width)
	z := vector.NewRasterizer(n, n)

	s := float64(n)
	z.MoveTo(0, 0)
	z.LineTo(float32(s), 0)
	z.LineTo(float32(s), float32(s))
	z.LineTo(0, float32(s))
	z.ClosePath()

	return mask(z)
}

// mask rasterizes the accumulated path into an alpha coverage mask.
func mask(z *vector.Rasterizer) *image.Alpha {
	dst := image.NewAlpha(z.Bounds())
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// ASCII renders a coverage mask as text, one byte per cell plus a trailing
// newline per row. Rows are sampled in steps of two for aspect correction.
func ASCII(m *image.Alpha) string {
	b := m.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := int(m.AlphaAt(x, y).A)
			sb.WriteByte(shades[a*(len(shades)-1)/255])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
