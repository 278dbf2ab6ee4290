// Package rai reads and writes the editor's binary canvas format.
//
// A .rai file is little-endian with no magic or version field:
//
//	u32 width
//	u32 height
//	width*height RGB triples, row-major, row 0 first
//
// The file length is therefore exactly 8 + 3*width*height bytes.
package rai

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rastkit/raint"
)

var (
	// ErrTruncated reports a file that ends before the pixel data
	// declared by its header is complete.
	ErrTruncated = errors.New("rai: truncated file")

	// ErrDimensions reports a header whose dimensions are zero or
	// unreasonably large.
	ErrDimensions = errors.New("rai: invalid dimensions")
)

const (
	headerSize    = 8
	bytesPerPixel = 3

	// maxDim bounds decoded dimensions so a corrupt header cannot
	// request a multi-gigabyte allocation.
	maxDim = 4096
)

// Encode writes c to w in the .rai binary layout.
func Encode(w io.Writer, c *raint.Canvas) error {
	width, height := c.Width(), c.Height()
	buf := make([]byte, headerSize+width*height*bytesPerPixel)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(width))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(height))

	i := headerSize
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			px := c.GetPixel(x, y)
			buf[i+0] = px.R
			buf[i+1] = px.G
			buf[i+2] = px.B
			i += bytesPerPixel
		}
	}

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("rai: write: %w", err)
	}
	return nil
}

// Decode reads a canvas from r. The reader must supply the full pixel
// payload declared by the header; a short read returns ErrTruncated
// and no canvas.
func Decode(r io.Reader) (*raint.Canvas, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, readErr(err)
	}

	width := int(binary.LittleEndian.Uint32(header[0:4]))
	height := int(binary.LittleEndian.Uint32(header[4:8]))
	if width == 0 || height == 0 || width > maxDim || height > maxDim {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}

	pixels := make([]byte, width*height*bytesPerPixel)
	if _, err := io.ReadFull(r, pixels); err != nil {
		return nil, readErr(err)
	}

	c := raint.NewCanvas(width, height)
	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c.SetPixel(x, y, raint.RGB(pixels[i], pixels[i+1], pixels[i+2]))
			i += bytesPerPixel
		}
	}
	return c, nil
}

// readErr maps short reads to ErrTruncated and leaves other I/O
// errors intact.
func readErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return fmt.Errorf("rai: read: %w", err)
}

// Save writes c to path in the .rai format, creating any missing
// parent directories first. Home-directory expansion is the caller's
// responsibility.
func Save(path string, c *raint.Canvas) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("rai: save %s: %w", path, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("rai: save %s: %w", path, err)
	}
	defer f.Close()

	if err := Encode(f, c); err != nil {
		return err
	}
	raint.Logger().Info("canvas saved",
		"path", path, "width", c.Width(), "height", c.Height())
	return nil
}

// Load reads a canvas from the .rai file at path.
func Load(path string) (*raint.Canvas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rai: load %s: %w", path, err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, err
	}
	raint.Logger().Info("canvas loaded",
		"path", path, "width", c.Width(), "height", c.Height())
	return c, nil
}
