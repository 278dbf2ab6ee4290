package raint

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Canvas is the fixed-size pixel grid being edited. Pixels are stored
// row-major: the pixel at (x, y) lives at index y*width+x.
type Canvas struct {
	width  int
	height int
	pixels []Color
}

// NewCanvas creates a canvas filled with white. The caller guarantees
// sane dimensions; the interactive front end clamps sizes to
// [MinCanvasSize, MaxCanvasSize] before calling.
func NewCanvas(width, height int) *Canvas {
	pixels := make([]Color, width*height)
	for i := range pixels {
		pixels[i] = White
	}
	return &Canvas{
		width:  width,
		height: height,
		pixels: pixels,
	}
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// SetPixel sets the color of a single pixel. Out-of-bounds coordinates
// are a silent no-op; every drawing primitive relies on this for
// clipping instead of special-casing edges at call sites.
func (c *Canvas) SetPixel(x, y int, col Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pixels[y*c.width+x] = col
}

// GetPixel returns the color of a single pixel. Out-of-bounds
// coordinates read as white; callers cannot distinguish the canvas
// background from the void beyond it.
func (c *Canvas) GetPixel(x, y int) Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return White
	}
	return c.pixels[y*c.width+x]
}

// Clone returns a deep copy of the canvas. The copy shares no storage
// with the original, so history snapshots and shape previews can be
// mutated independently.
func (c *Canvas) Clone() *Canvas {
	pixels := make([]Color, len(c.pixels))
	copy(pixels, c.pixels)
	return &Canvas{
		width:  c.width,
		height: c.height,
		pixels: pixels,
	}
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.GetPixel(x, y)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}

// ToImage converts the canvas to an image.RGBA.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			px := c.pixels[y*c.width+x]
			i := img.PixOffset(x, y)
			img.Pix[i+0] = px.R
			img.Pix[i+1] = px.G
			img.Pix[i+2] = px.B
			img.Pix[i+3] = 0xff
		}
	}
	return img
}

// FromImage creates a canvas from an image, discarding alpha.
func FromImage(img image.Image) *Canvas {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	c := NewCanvas(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c.SetPixel(x, y, FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}

	return c
}

// FromImageScaled creates a canvas of the given dimensions from an
// image, resampling with nearest-neighbour interpolation. Used when
// importing images larger than the canvas size domain.
func FromImageScaled(img image.Image, width, height int) *Canvas {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return FromImage(dst)
}
