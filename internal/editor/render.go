package editor

import (
	"github.com/gdamore/tcell/v2"

	"github.com/rastkit/raint"
)

// Projection selects how canvas pixels map to terminal cells.
type Projection int

const (
	// ProjectionWide renders each pixel as two side-by-side full
	// blocks, which is roughly square on common terminal fonts.
	ProjectionWide Projection = iota

	// ProjectionHalf renders two vertically stacked pixels per cell
	// using the upper half block, halving the rows the canvas needs.
	ProjectionHalf
)

// rows returns how many terminal rows the canvas occupies under the
// projection.
func (p Projection) rows(c *raint.Canvas) int {
	if p == ProjectionHalf {
		return (c.Height() + 1) / 2
	}
	return c.Height()
}

// pixelAt maps a terminal cell position to the canvas pixel it covers.
// In the half projection a cell covers two pixels; the top one is
// reported.
func (p Projection) pixelAt(cellX, cellY int) raint.Point {
	if p == ProjectionHalf {
		return raint.Pt(cellX, cellY*2)
	}
	return raint.Pt(cellX/2, cellY)
}

// cellColor converts a canvas color to a tcell RGB color.
func cellColor(c raint.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// drawCanvas renders c to the screen with its top-left pixel at cell
// (0, 0). It only stages cell content; the caller decides when to
// Show.
func drawCanvas(s tcell.Screen, c *raint.Canvas, p Projection) {
	if p == ProjectionHalf {
		drawHalf(s, c)
		return
	}
	drawWide(s, c)
}

// drawWide writes one pixel as a pair of full-block cells colored via
// the foreground.
func drawWide(s tcell.Screen, c *raint.Canvas) {
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			style := tcell.StyleDefault.Foreground(cellColor(c.GetPixel(x, y)))
			s.SetContent(x*2, y, '█', nil, style)
			s.SetContent(x*2+1, y, '█', nil, style)
		}
	}
}

// drawHalf writes two pixels per cell: the upper half block carries
// the top pixel as foreground and the cell background carries the
// bottom pixel. An odd final row reads the out-of-bounds pixel, which
// is white.
func drawHalf(s tcell.Screen, c *raint.Canvas) {
	rows := (c.Height() + 1) / 2
	for row := 0; row < rows; row++ {
		for x := 0; x < c.Width(); x++ {
			style := tcell.StyleDefault.
				Foreground(cellColor(c.GetPixel(x, row*2))).
				Background(cellColor(c.GetPixel(x, row*2+1)))
			s.SetContent(x, row, '▀', nil, style)
		}
	}
}

// drawText writes a string starting at (x, y) and returns the column
// after the last rune, so callers can continue the line.
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) int {
	col := x
	for _, r := range text {
		s.SetContent(col, y, r, nil, style)
		col++
	}
	return col
}
