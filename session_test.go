package raint

import "testing"

func TestShapeSession_CommitCircle(t *testing.T) {
	c := NewCanvas(20, 20)
	h := NewHistory(c)
	s := NewShapeSession(c, h, ShapeCircle, Red)

	s.Handle(PointerEvent{Kind: PointerDown, Pos: Pt(4, 4)})
	if !s.Started() || s.Done() {
		t.Fatalf("after first down: started=%v done=%v, want started and not done", s.Started(), s.Done())
	}
	if h.Len() != 1 {
		t.Fatalf("first down pushed history: len %d", h.Len())
	}

	s.Handle(PointerEvent{Kind: PointerDrag, Pos: Pt(8, 8)})
	s.Handle(PointerEvent{Kind: PointerDown, Pos: Pt(12, 12)})

	if !s.Done() {
		t.Fatal("second down should commit")
	}
	if h.Len() != 2 {
		t.Fatalf("after commit: history len %d, want 2", h.Len())
	}

	// Start (4,4), end (12,12): center (8,8), radius max(8,8)/2 = 4.
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			dx, dy := x-8, y-8
			inside := dx*dx+dy*dy <= 16
			got := c.GetPixel(x, y)
			if inside && got != Red {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, Red)
			}
			if !inside && got != White {
				t.Errorf("pixel (%d,%d) = %v, want white", x, y, got)
			}
		}
	}
}

func TestShapeSession_CommitRect(t *testing.T) {
	c := NewCanvas(20, 20)
	h := NewHistory(c)
	s := NewShapeSession(c, h, ShapeRect, Blue)

	s.Handle(PointerEvent{Kind: PointerDown, Pos: Pt(2, 3)})
	s.Handle(PointerEvent{Kind: PointerDown, Pos: Pt(10, 7)})

	// Deltas 8x4 give half-extents 4x2 around center (6,5).
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			inside := x >= 2 && x <= 10 && y >= 3 && y <= 7
			got := c.GetPixel(x, y)
			if inside && got != Blue {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, Blue)
			}
			if !inside && got != White {
				t.Errorf("pixel (%d,%d) = %v, want white", x, y, got)
			}
		}
	}
	if h.Len() != 2 {
		t.Errorf("history len %d, want 2", h.Len())
	}
}

// TestShapeSession_ZeroDelta verifies clicking twice on the same spot
// still commits a visible shape.
func TestShapeSession_ZeroDelta(t *testing.T) {
	t.Run("circle", func(t *testing.T) {
		c := NewCanvas(12, 12)
		h := NewHistory(c)
		s := NewShapeSession(c, h, ShapeCircle, Red)

		s.Handle(PointerEvent{Kind: PointerDown, Pos: Pt(5, 5)})
		s.Handle(PointerEvent{Kind: PointerDown, Pos: Pt(5, 5)})

		// Radius floors to 1: the center plus its four neighbors.
		if got := countPixels(c, Red); got != 5 {
			t.Errorf("colored %d pixels, want 5", got)
		}
	})

	t.Run("rect", func(t *testing.T) {
		c := NewCanvas(12, 12)
		h := NewHistory(c)
		s := NewShapeSession(c, h, ShapeRect, Red)

		s.Handle(PointerEvent{Kind: PointerDown, Pos: Pt(5, 5)})
		s.Handle(PointerEvent{Kind: PointerDown, Pos: Pt(5, 5)})

		// Half-extents floor to 1: a 3x3 block.
		if got := countPixels(c, Red); got != 9 {
			t.Errorf("colored %d pixels, want 9", got)
		}
	})
}

func TestShapeSession_Preview(t *testing.T) {
	c := NewCanvas(20, 20)
	h := NewHistory(c)
	s := NewShapeSession(c, h, ShapeCircle, Red)

	if s.Preview() != nil {
		t.Error("preview before any event should be nil")
	}

	s.Handle(PointerEvent{Kind: PointerDown, Pos: Pt(4, 4)})
	if s.Preview() != nil {
		t.Error("preview with only an anchor should be nil")
	}

	s.Handle(PointerEvent{Kind: PointerMove, Pos: Pt(12, 12)})
	p := s.Preview()
	if p == nil {
		t.Fatal("preview after move should be available")
	}
	if got := countPixels(p, Red); got == 0 {
		t.Error("preview shows no shape")
	}

	// The live canvas and history stay untouched by previewing.
	if got := countPixels(c, Red); got != 0 {
		t.Errorf("preview leaked onto the live canvas: %d pixels", got)
	}
	if h.Len() != 1 {
		t.Errorf("preview pushed history: len %d", h.Len())
	}
}

func TestShapeSession_UpDoesNotSetEnd(t *testing.T) {
	c := NewCanvas(20, 20)
	h := NewHistory(c)
	s := NewShapeSession(c, h, ShapeCircle, Red)

	s.Handle(PointerEvent{Kind: PointerDown, Pos: Pt(2, 2)})
	s.Handle(PointerEvent{Kind: PointerUp, Pos: Pt(9, 9)})

	if s.Preview() != nil {
		t.Error("pointer-up should not produce a preview point")
	}
	if s.Done() {
		t.Error("pointer-up should not commit")
	}
}

func TestShapeSession_Cancel(t *testing.T) {
	c := NewCanvas(20, 20)
	h := NewHistory(c)
	s := NewShapeSession(c, h, ShapeRect, Red)

	s.Handle(PointerEvent{Kind: PointerDown, Pos: Pt(4, 4)})
	s.Handle(PointerEvent{Kind: PointerDrag, Pos: Pt(10, 10)})
	s.Cancel()

	if !s.Done() {
		t.Fatal("cancelled session should be done")
	}
	if got := countPixels(c, Red); got != 0 {
		t.Errorf("cancel left %d pixels on the canvas", got)
	}
	if h.Len() != 1 {
		t.Errorf("cancel pushed history: len %d", h.Len())
	}

	// Events after cancel are ignored.
	s.Handle(PointerEvent{Kind: PointerDown, Pos: Pt(1, 1)})
	s.Handle(PointerEvent{Kind: PointerDown, Pos: Pt(2, 2)})
	if got := countPixels(c, Red); got != 0 {
		t.Errorf("events after cancel drew %d pixels", got)
	}
}

func TestLineSession_Commit(t *testing.T) {
	c := NewCanvas(10, 10)
	h := NewHistory(c)
	s := NewLineSession(c, h, Black)

	s.Handle(PointerEvent{Kind: PointerDown, Pos: Pt(1, 1)})
	if !s.Started() || s.Done() {
		t.Fatalf("after first down: started=%v done=%v", s.Started(), s.Done())
	}

	s.Handle(PointerEvent{Kind: PointerDown, Pos: Pt(6, 1)})
	if !s.Done() {
		t.Fatal("second down should commit")
	}

	for x := 1; x <= 6; x++ {
		if got := c.GetPixel(x, 1); got != Black {
			t.Errorf("pixel (%d,1) = %v, want %v", x, got, Black)
		}
	}
	if got := countPixels(c, Black); got != 6 {
		t.Errorf("colored %d pixels, want 6", got)
	}
	if h.Len() != 2 {
		t.Errorf("history len %d, want 2", h.Len())
	}
}

// TestLineSession_OnlyDownMatters verifies drag, move, and up samples
// neither draw nor displace the recorded start point.
func TestLineSession_OnlyDownMatters(t *testing.T) {
	c := NewCanvas(10, 10)
	h := NewHistory(c)
	s := NewLineSession(c, h, Black)

	s.Handle(PointerEvent{Kind: PointerDown, Pos: Pt(1, 1)})
	s.Handle(PointerEvent{Kind: PointerDrag, Pos: Pt(9, 9)})
	s.Handle(PointerEvent{Kind: PointerMove, Pos: Pt(0, 0)})
	s.Handle(PointerEvent{Kind: PointerUp, Pos: Pt(3, 3)})

	if got := countPixels(c, Black); got != 0 {
		t.Fatalf("non-down events drew %d pixels", got)
	}

	s.Handle(PointerEvent{Kind: PointerDown, Pos: Pt(4, 1)})
	if got := countPixels(c, Black); got != 4 {
		t.Errorf("colored %d pixels, want the 4 from (1,1)-(4,1)", got)
	}
}

func TestLineSession_Cancel(t *testing.T) {
	c := NewCanvas(10, 10)
	h := NewHistory(c)
	s := NewLineSession(c, h, Black)

	s.Handle(PointerEvent{Kind: PointerDown, Pos: Pt(1, 1)})
	s.Cancel()

	if !s.Done() {
		t.Fatal("cancelled session should be done")
	}
	s.Handle(PointerEvent{Kind: PointerDown, Pos: Pt(6, 6)})
	if got := countPixels(c, Black); got != 0 {
		t.Errorf("cancelled session drew %d pixels", got)
	}
	if h.Len() != 1 {
		t.Errorf("history len %d, want 1", h.Len())
	}
}

func TestPaintSession_StampThenStroke(t *testing.T) {
	c := NewCanvas(10, 10)
	h := NewHistory(c)
	s := NewPaintSession(c, h, 1, Red)

	// First drag sample has no previous point, so it stamps.
	s.Handle(PointerEvent{Kind: PointerDrag, Pos: Pt(3, 3)})
	if got := countPixels(c, Red); got != 1 {
		t.Fatalf("after first sample: %d pixels, want 1", got)
	}

	// The next sample strokes from the previous one.
	s.Handle(PointerEvent{Kind: PointerDrag, Pos: Pt(6, 3)})
	for x := 3; x <= 6; x++ {
		if got := c.GetPixel(x, 3); got != Red {
			t.Errorf("pixel (%d,3) = %v, want %v", x, got, Red)
		}
	}

	s.Finish()
	if h.Len() != 2 {
		t.Errorf("history len %d, want 2", h.Len())
	}
}

// TestPaintSession_LiftBrush verifies pointer-up breaks the stroke
// without ending the session.
func TestPaintSession_LiftBrush(t *testing.T) {
	c := NewCanvas(12, 12)
	h := NewHistory(c)
	s := NewPaintSession(c, h, 1, Red)

	s.Handle(PointerEvent{Kind: PointerDrag, Pos: Pt(2, 2)})
	s.Handle(PointerEvent{Kind: PointerUp, Pos: Pt(2, 2)})
	s.Handle(PointerEvent{Kind: PointerDrag, Pos: Pt(8, 8)})

	// Two isolated stamps, no connecting line.
	if got := countPixels(c, Red); got != 2 {
		t.Errorf("colored %d pixels, want 2", got)
	}
	if got := c.GetPixel(5, 5); got != White {
		t.Errorf("midpoint (5,5) = %v, want white", got)
	}
	if s.Done() {
		t.Error("pointer-up ended the session")
	}
}

func TestPaintSession_IgnoresDownAndMove(t *testing.T) {
	c := NewCanvas(10, 10)
	h := NewHistory(c)
	s := NewPaintSession(c, h, 3, Red)

	s.Handle(PointerEvent{Kind: PointerDown, Pos: Pt(5, 5)})
	s.Handle(PointerEvent{Kind: PointerMove, Pos: Pt(6, 6)})

	if got := countPixels(c, Red); got != 0 {
		t.Errorf("down/move samples drew %d pixels", got)
	}
}

func TestPaintSession_Thickness(t *testing.T) {
	c := NewCanvas(10, 10)
	h := NewHistory(c)
	s := NewPaintSession(c, h, 3, Red)

	s.Handle(PointerEvent{Kind: PointerDrag, Pos: Pt(5, 5)})
	if got := countPixels(c, Red); got != 9 {
		t.Errorf("colored %d pixels, want a 3x3 stamp", got)
	}
}

// TestPaintSession_SingleSnapshot verifies the whole session commits
// as one history entry, even when empty, and that Finish is
// idempotent.
func TestPaintSession_SingleSnapshot(t *testing.T) {
	c := NewCanvas(10, 10)
	h := NewHistory(c)
	s := NewPaintSession(c, h, 1, Red)

	s.Handle(PointerEvent{Kind: PointerDrag, Pos: Pt(1, 1)})
	s.Handle(PointerEvent{Kind: PointerDrag, Pos: Pt(5, 1)})
	s.Handle(PointerEvent{Kind: PointerUp, Pos: Pt(5, 1)})
	s.Handle(PointerEvent{Kind: PointerDrag, Pos: Pt(7, 7)})

	s.Finish()
	s.Finish()

	if h.Len() != 2 {
		t.Fatalf("history len %d, want 2", h.Len())
	}
	if !s.Done() {
		t.Error("finished session should be done")
	}

	// One undo removes the entire session.
	prev, ok := h.Undo()
	if !ok {
		t.Fatal("Undo failed")
	}
	if got := countPixels(prev, Red); got != 0 {
		t.Errorf("undo left %d painted pixels", got)
	}

	// Events after Finish are ignored.
	s.Handle(PointerEvent{Kind: PointerDrag, Pos: Pt(9, 9)})
	if got := c.GetPixel(9, 9); got != White {
		t.Errorf("drag after Finish drew pixel (9,9) = %v", got)
	}
}

func TestPaintSession_EmptyCommit(t *testing.T) {
	c := NewCanvas(10, 10)
	h := NewHistory(c)
	s := NewPaintSession(c, h, 1, Red)

	s.Finish()
	if h.Len() != 2 {
		t.Errorf("history len %d, want 2; an empty session still commits", h.Len())
	}
}

func TestEraseSession(t *testing.T) {
	c := NewCanvas(10, 10)
	h := NewHistory(c)

	// Lay down some paint first.
	DrawSquare(c, 5, 5, 3, Black)
	h.Push(c)

	s := NewEraseSession(c, h, 3)
	s.Handle(PointerEvent{Kind: PointerDrag, Pos: Pt(5, 5)})

	// The 3x3 around the sample is white again, the rest survives.
	for y := 4; y <= 6; y++ {
		for x := 4; x <= 6; x++ {
			if got := c.GetPixel(x, y); got != White {
				t.Errorf("pixel (%d,%d) = %v, want erased white", x, y, got)
			}
		}
	}
	if got := c.GetPixel(2, 2); got != Black {
		t.Errorf("pixel (2,2) = %v, want untouched black", got)
	}

	s.Finish()
	if h.Len() != 3 {
		t.Errorf("history len %d, want 3", h.Len())
	}
}
