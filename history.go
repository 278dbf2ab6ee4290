package raint

// History records full canvas snapshots for undo and redo. Every entry
// is an independent deep copy, so memory cost grows with history
// length times canvas area; at the supported canvas sizes that is a
// few kilobytes per entry.
type History struct {
	snapshots []*Canvas
	cursor    int
}

// NewHistory creates a history seeded with a snapshot of the initial
// canvas. A history is never empty and the cursor always points at a
// valid entry.
func NewHistory(initial *Canvas) *History {
	return &History{
		snapshots: []*Canvas{initial.Clone()},
	}
}

// Push records a snapshot of the canvas as the new latest entry and
// moves the cursor to it. Any redo tail beyond the cursor is discarded
// permanently.
func (h *History) Push(c *Canvas) {
	h.snapshots = append(h.snapshots[:h.cursor+1], c.Clone())
	h.cursor = len(h.snapshots) - 1
}

// Undo steps the cursor back one entry and returns a copy of the
// snapshot there. It reports false without moving when already at the
// oldest entry.
func (h *History) Undo() (*Canvas, bool) {
	if h.cursor == 0 {
		return nil, false
	}
	h.cursor--
	return h.snapshots[h.cursor].Clone(), true
}

// Redo steps the cursor forward one entry and returns a copy of the
// snapshot there. It reports false without moving when already at the
// newest entry.
func (h *History) Redo() (*Canvas, bool) {
	if h.cursor == len(h.snapshots)-1 {
		return nil, false
	}
	h.cursor++
	return h.snapshots[h.cursor].Clone(), true
}

// Len returns the number of recorded snapshots.
func (h *History) Len() int {
	return len(h.snapshots)
}

// Cursor returns the index of the snapshot the history currently
// stands on.
func (h *History) Cursor() int {
	return h.cursor
}
