package raint

// PointerKind identifies what the pointer did in a single sample.
type PointerKind int

const (
	// PointerDown is a button press.
	PointerDown PointerKind = iota
	// PointerDrag is motion with the button held.
	PointerDrag
	// PointerMove is motion with no button held.
	PointerMove
	// PointerUp is a button release.
	PointerUp
)

// PointerEvent is one pointer sample in canvas pixel coordinates. The
// front end translates whatever its input layer produces (terminal
// cells, window points) into pixel coordinates before forwarding.
type PointerEvent struct {
	Kind PointerKind
	Pos  Point
}

// ShapeKind selects which filled shape a ShapeSession commits.
type ShapeKind int

const (
	// ShapeCircle commits a filled disk sized by the larger drag extent.
	ShapeCircle ShapeKind = iota
	// ShapeRect commits a filled box with per-axis half-extents.
	ShapeRect
)

// ShapeSession is the two-click shape tool. The first pointer-down
// anchors the shape, pointer motion resizes a live preview, and the
// second pointer-down commits the shape and one history snapshot.
// Preview rendering happens on disposable clones of the canvas; until
// commit the live canvas is never touched.
type ShapeSession struct {
	canvas  *Canvas
	history *History
	kind    ShapeKind
	color   Color

	start    Point
	end      Point
	hasStart bool
	hasEnd   bool
	done     bool
}

// NewShapeSession starts a shape tool session drawing on c.
func NewShapeSession(c *Canvas, h *History, kind ShapeKind, col Color) *ShapeSession {
	return &ShapeSession{canvas: c, history: h, kind: kind, color: col}
}

// Handle advances the session by one pointer event. Drag and move
// samples update the live end point once the anchor is placed; the
// second pointer-down draws the shape onto the live canvas, pushes a
// history snapshot, and finishes the session. Events arriving after
// that are ignored.
func (s *ShapeSession) Handle(ev PointerEvent) {
	if s.done {
		return
	}
	switch ev.Kind {
	case PointerDown:
		if !s.hasStart {
			s.start = ev.Pos
			s.hasStart = true
			return
		}
		s.end = ev.Pos
		s.hasEnd = true
		s.draw(s.canvas)
		s.history.Push(s.canvas)
		s.done = true
	case PointerDrag, PointerMove:
		if s.hasStart {
			s.end = ev.Pos
			s.hasEnd = true
		}
	}
}

// draw renders the shape described by the current start and end points
// onto dst. The center is the integer midpoint of the two points.
// Radius and half-extents are floored to 1 so that a zero-delta drag
// still produces a visible shape.
func (s *ShapeSession) draw(dst *Canvas) {
	dx := abs(s.end.X - s.start.X)
	dy := abs(s.end.Y - s.start.Y)
	cx := (s.start.X + s.end.X) / 2
	cy := (s.start.Y + s.end.Y) / 2

	switch s.kind {
	case ShapeCircle:
		DrawCircle(dst, cx, cy, max(max(dx, dy)/2, 1), s.color)
	case ShapeRect:
		DrawRect(dst, cx, cy, max(dx/2, 1), max(dy/2, 1), s.color)
	}
}

// Preview returns a disposable copy of the canvas with the in-progress
// shape drawn on it, or nil when there is nothing to preview yet.
func (s *ShapeSession) Preview() *Canvas {
	if s.done || !s.hasStart || !s.hasEnd {
		return nil
	}
	p := s.canvas.Clone()
	s.draw(p)
	return p
}

// Cancel discards the session without touching the canvas or the
// history.
func (s *ShapeSession) Cancel() {
	s.done = true
}

// Done reports whether the session has committed or been cancelled.
func (s *ShapeSession) Done() bool {
	return s.done
}

// Started reports whether the anchor point has been placed.
func (s *ShapeSession) Started() bool {
	return s.hasStart
}

// LineSession is the two-click line tool. The first pointer-down
// records the start point; the second draws a one-pixel line to the
// clicked point and commits. There is no live preview.
type LineSession struct {
	canvas  *Canvas
	history *History
	color   Color

	start    Point
	hasStart bool
	done     bool
}

// NewLineSession starts a line tool session drawing on c.
func NewLineSession(c *Canvas, h *History, col Color) *LineSession {
	return &LineSession{canvas: c, history: h, color: col}
}

// Handle advances the session by one pointer event. Only pointer-down
// events matter: the first records the start, the second draws the
// line, pushes a history snapshot, and finishes the session.
func (s *LineSession) Handle(ev PointerEvent) {
	if s.done || ev.Kind != PointerDown {
		return
	}
	if !s.hasStart {
		s.start = ev.Pos
		s.hasStart = true
		return
	}
	DrawLine(s.canvas, s.start.X, s.start.Y, ev.Pos.X, ev.Pos.Y, s.color)
	s.history.Push(s.canvas)
	s.done = true
}

// Cancel discards the session without touching the canvas or the
// history.
func (s *LineSession) Cancel() {
	s.done = true
}

// Done reports whether the session has committed or been cancelled.
func (s *LineSession) Done() bool {
	return s.done
}

// Started reports whether the start point has been placed.
func (s *LineSession) Started() bool {
	return s.hasStart
}

// PaintSession is the freehand paint tool. Drag samples are joined
// with brush strokes so fast motion leaves no gaps; releasing the
// button lifts the brush without ending the session. The session stays
// active until Finish, which records everything drawn as one history
// snapshot rather than one per segment.
type PaintSession struct {
	canvas    *Canvas
	history   *History
	thickness int
	color     Color

	last    Point
	hasLast bool
	done    bool
}

// NewPaintSession starts a freehand paint session drawing on c with
// the given brush thickness and color.
func NewPaintSession(c *Canvas, h *History, thickness int, col Color) *PaintSession {
	return &PaintSession{canvas: c, history: h, thickness: thickness, color: col}
}

// NewEraseSession starts a freehand session that paints white, which
// is how erasing works on a white-background canvas.
func NewEraseSession(c *Canvas, h *History, thickness int) *PaintSession {
	return NewPaintSession(c, h, thickness, White)
}

// Handle advances the session by one pointer event. Each drag sample
// strokes from the previous sample, or stamps a single brush mark when
// the brush has just been put down. Pointer-up lifts the brush; down
// and move samples are ignored.
func (s *PaintSession) Handle(ev PointerEvent) {
	if s.done {
		return
	}
	switch ev.Kind {
	case PointerDrag:
		if s.hasLast {
			Stroke(s.canvas, s.last.X, s.last.Y, ev.Pos.X, ev.Pos.Y, s.thickness, s.color)
		} else {
			Stamp(s.canvas, ev.Pos.X, ev.Pos.Y, s.thickness, s.color)
		}
		s.last = ev.Pos
		s.hasLast = true
	case PointerUp:
		s.hasLast = false
	}
}

// Finish ends the session and pushes one history snapshot covering
// everything drawn since it began. The snapshot is pushed even when no
// drag was ever sampled.
func (s *PaintSession) Finish() {
	if s.done {
		return
	}
	s.history.Push(s.canvas)
	s.done = true
}

// Done reports whether the session has finished.
func (s *PaintSession) Done() bool {
	return s.done
}
