package raint

// Rasterization primitives. All coordinates are signed and may lie off
// the canvas; clipping happens through the Canvas set-pixel contract,
// or through an explicit clamp for the filled box.

// bresenham walks the integer line from (x0, y0) to (x1, y1) inclusive,
// calling plot at every visited point. Both endpoints are always
// visited, so a zero-length line still plots one point. The step rule
// (e2 > -dy before e2 < dx, both may fire in one iteration) decides
// which pixels diagonal lines touch; keep the tie-break as is.
func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	x, y := x0, y0
	for {
		plot(x, y)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// DrawLine draws a one-pixel-wide line from (x0, y0) to (x1, y1) using
// Bresenham's algorithm. Both endpoints are included; a zero-length
// line colors the single pixel at the shared endpoint.
func DrawLine(c *Canvas, x0, y0, x1, y1 int, col Color) {
	bresenham(x0, y0, x1, y1, func(x, y int) {
		c.SetPixel(x, y, col)
	})
}

// Stroke draws a line from (x0, y0) to (x1, y1), stamping a square
// brush of the given thickness at every step so that fast pointer
// motion leaves no gaps between consecutive drag samples. Steps whose
// center falls outside the canvas are skipped entirely; the brush does
// not bleed in from beyond the edge.
func Stroke(c *Canvas, x0, y0, x1, y1, thickness int, col Color) {
	w, h := c.Width(), c.Height()
	bresenham(x0, y0, x1, y1, func(x, y int) {
		if x >= 0 && x < w && y >= 0 && y < h {
			Stamp(c, x, y, thickness, col)
		}
	})
}

// Stamp fills a thickness by thickness square centered on (x, y). The
// top-left corner sits at (x-thickness/2, y-thickness/2) with integer
// division, so even thicknesses lean one pixel toward the top-left.
// Pixels falling outside the canvas are clipped individually.
func Stamp(c *Canvas, x, y, thickness int, col Color) {
	for dy := 0; dy < thickness; dy++ {
		for dx := 0; dx < thickness; dx++ {
			c.SetPixel(x+dx-thickness/2, y+dy-thickness/2, col)
		}
	}
}

// DrawCircle fills the disk of the given radius centered on (cx, cy):
// every integer point at distance at most r from the center. This is a
// filled disk, not an outline.
func DrawCircle(c *Canvas, cx, cy, r int, col Color) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.SetPixel(cx+dx, cy+dy, col)
			}
		}
	}
}

// DrawRect fills the inclusive axis-aligned box [cx-hx, cx+hx] by
// [cy-hy, cy+hy]. The box is clamped to the canvas once up front; a
// box that clamps to nothing, or has negative extents, fills nothing.
func DrawRect(c *Canvas, cx, cy, hx, hy int, col Color) {
	x0 := max(cx-hx, 0)
	x1 := min(cx+hx, c.Width()-1)
	y0 := max(cy-hy, 0)
	y1 := min(cy+hy, c.Height()-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.SetPixel(x, y, col)
		}
	}
}

// DrawSquare fills the square with the given half-size centered on
// (cx, cy).
func DrawSquare(c *Canvas, cx, cy, half int, col Color) {
	DrawRect(c, cx, cy, half, half, col)
}
