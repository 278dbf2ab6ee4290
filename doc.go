// Package raint implements the core of a small raster image editor:
// a fixed-size pixel canvas, integer rasterization primitives,
// snapshot-based undo/redo history, and per-tool drawing sessions.
//
// # Overview
//
// raint edits a rectangular grid of 24-bit RGB pixels through discrete
// drawing operations: freehand strokes, straight lines, and filled
// shapes. Every committed operation records a full canvas snapshot, so
// undo and redo restore pixel-exact states. The companion packages rai
// and export persist a canvas to the editor's binary format and to PNG
// or PDF.
//
// # Quick Start
//
//	import "github.com/rastkit/raint"
//
//	c := raint.NewCanvas(40, 40)
//	h := raint.NewHistory(c)
//
//	raint.DrawCircle(c, 20, 20, 10, raint.Red)
//	h.Push(c)
//
//	if prev, ok := h.Undo(); ok {
//	    c = prev
//	}
//
// # Architecture
//
// The library is organized into:
//   - Core: Canvas, Color, Point, the draw functions, History
//   - Sessions: ShapeSession, LineSession, PaintSession state machines
//   - Persistence: rai (binary codec), export (PNG, PDF)
//   - Front end: internal/editor and cmd/raint (terminal UI)
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Drawing functions accept signed coordinates and clip to the canvas;
// nothing panics on out-of-range input.
package raint

// Version information
const (
	// Version is the current version of the editor
	Version = "1.0.0"

	// VersionMajor is the major version
	VersionMajor = 1

	// VersionMinor is the minor version
	VersionMinor = 0

	// VersionPatch is the patch version
	VersionPatch = 0
)

// Interactive input domains. The front end clamps user input to these
// ranges before it reaches the core; the core accepts values as given.
const (
	// MinCanvasSize is the smallest accepted canvas edge in pixels.
	MinCanvasSize = 2

	// MaxCanvasSize is the largest accepted canvas edge in pixels.
	MaxCanvasSize = 80

	// MinThickness is the thinnest accepted brush.
	MinThickness = 1

	// MaxThickness is the thickest accepted brush.
	MaxThickness = 10
)
