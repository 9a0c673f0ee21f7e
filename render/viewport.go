package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Viewport maps the arena floor (X/Z) onto a cell rectangle, seen from above
// +Z is up the screen and +X is to the left, so a left turn draws as a left turn
type Viewport struct {
	X, Y          int // Top-left cell
	Width, Height int
	Center        mgl64.Vec3
	UnitsPerCol   float64 // Rows cover twice as many units, cells being twice as tall as wide
}

// FitViewport sizes a viewport so a square of half-size half fills the rectangle
// One cell of margin on each side keeps rounded edges inside
func FitViewport(x, y, width, height int, half float64, center mgl64.Vec3) Viewport {
	upc := 1.0
	if width > 2 && height > 2 {
		upc = max(2*half/float64(width-2), 2*half/float64(2*(height-2)))
	}
	return Viewport{X: x, Y: y, Width: width, Height: height, Center: center, UnitsPerCol: upc}
}

// Project returns the cell for a world position and whether it lies inside the viewport
func (v Viewport) Project(p mgl64.Vec3) (col, row int, ok bool) {
	dx := (p[0] - v.Center[0]) / v.UnitsPerCol
	dz := (p[2] - v.Center[2]) / (2 * v.UnitsPerCol)
	col = v.X + v.Width/2 - int(math.Round(dx))
	row = v.Y + v.Height/2 - int(math.Round(dz))
	ok = col >= v.X && col < v.X+v.Width && row >= v.Y && row < v.Y+v.Height
	return col, row, ok
}

// Span returns the half-size of an extent in columns and rows, at least zero
func (v Viewport) Span(halfX, halfZ float64) (cols, rows int) {
	return int(halfX / v.UnitsPerCol), int(halfZ / (2 * v.UnitsPerCol))
}

// headingGlyphs step counter-clockwise on screen from up
var headingGlyphs = [8]rune{'↑', '↖', '←', '↙', '↓', '↘', '→', '↗'}

// HeadingGlyph returns an arrow for a yaw in radians, 0 facing +Z
func HeadingGlyph(yaw float64) rune {
	sector := int(math.Round(yaw/(math.Pi/4))) % 8
	if sector < 0 {
		sector += 8
	}
	return headingGlyphs[sector]
}

// wallGlyphs rise with wall height
var wallGlyphs = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// WallGlyph picks a block for t in [0, 1]
func WallGlyph(t float64) rune {
	t = min(max(t, 0), 1)
	return wallGlyphs[int(math.Round(t*float64(len(wallGlyphs)-1)))]
}
