// Package export renders a canvas to standard interchange formats.
//
// PNG export is lossless, one image pixel per canvas pixel. PDF export
// draws each non-white pixel as a small filled square on a white page,
// which keeps even tiny canvases printable at a sensible physical
// size.
package export

import (
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"github.com/rastkit/raint"
)

// cellMM is the printed edge length of one canvas pixel in
// millimeters.
const cellMM = 2.0

// PNG writes c to w as a PNG image.
func PNG(w io.Writer, c *raint.Canvas) error {
	return png.Encode(w, c.ToImage())
}

// PDF writes c to w as a single-page PDF sized to the canvas. White
// pixels are left as page background.
func PDF(w io.Writer, c *raint.Canvas) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size: gofpdf.SizeType{
			Wd: float64(c.Width()) * cellMM,
			Ht: float64(c.Height()) * cellMM,
		},
	})
	pdf.AddPage()

	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			px := c.GetPixel(x, y)
			if px == raint.White {
				continue
			}
			pdf.SetFillColor(int(px.R), int(px.G), int(px.B))
			pdf.Rect(float64(x)*cellMM, float64(y)*cellMM, cellMM, cellMM, "F")
		}
	}

	return pdf.Output(w)
}

// WritePNG writes c to a PNG file at path, creating any missing parent
// directories first.
func WritePNG(path string, c *raint.Canvas) error {
	return writeFile(path, c, PNG)
}

// WritePDF writes c to a PDF file at path, creating any missing parent
// directories first.
func WritePDF(path string, c *raint.Canvas) error {
	return writeFile(path, c, PDF)
}

func writeFile(path string, c *raint.Canvas, encode func(io.Writer, *raint.Canvas) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := encode(f, c); err != nil {
		return err
	}
	raint.Logger().Info("canvas exported", "path", path)
	return nil
}
