package board

import (
	"github.com/CyrusCastle/DrawBox/internal/geom"
	"github.com/CyrusCastle/DrawBox/internal/history"
)

// The stroke session is a two-state machine, Idle and Capturing, with the
// active path present exactly while capturing. Expected misuse (disabled
// input, no connection, a start while already capturing, a move while idle)
// is a guarded no-op; finalizing with no active path is a state-machine
// invariant breach and panics.

// DragStart begins capturing a stroke at the pixel point (x, y). It
// requires enabled input, a connected canvas and an idle session, and
// otherwise does nothing. Starting a gesture clears the redo stack: the
// stroke in progress already commits the user to the new timeline.
func (b *Board) DragStart(x, y float64) {
	if !b.enabled || b.size == 0 || b.active != nil {
		return
	}
	b.active = []geom.Point{b.normalize(x, y)}
	b.log.ClearRedo()
	b.changed()
}

// Drag extends the active path with the pixel point (x, y). A move without
// a capture in progress is ignored.
func (b *Board) Drag(x, y float64) {
	if !b.enabled || b.active == nil {
		return
	}
	b.active = append(b.active, b.normalize(x, y))
	b.changed()
}

// DragEnd finalizes the gesture with the current tool and returns the
// session to idle. The brush commits a Draw action; the eraser commits one
// Erase action covering every stroke the path passed near, or nothing on a
// miss. Calling DragEnd with no gesture in progress is a programmer error.
func (b *Board) DragEnd() {
	if !b.enabled {
		return
	}
	if b.active == nil {
		panic("board: DragEnd without an active path")
	}
	switch b.tool {
	case ToolBrush:
		b.commitBrush()
	case ToolEraser:
		b.commitEraser()
	}
	b.active = nil
	b.changed()
}

// Tap draws (or erases) at a single point: a DragStart immediately
// finalized. A tap while already capturing, disabled or disconnected is
// ignored like the DragStart it sugars.
func (b *Board) Tap(x, y float64) {
	if b.active != nil {
		return
	}
	b.DragStart(x, y)
	if b.active != nil {
		b.DragEnd()
	}
}

// Capturing reports whether a stroke is being captured.
func (b *Board) Capturing() bool { return b.active != nil }

// ActivePath returns a copy of the in-progress normalized path, or nil
// while idle.
func (b *Board) ActivePath() []geom.Point {
	if b.active == nil {
		return nil
	}
	out := make([]geom.Point, len(b.active))
	copy(out, b.active)
	return out
}

// commitBrush turns the active path into a committed stroke. A single-point
// path gets its point duplicated: a path needs two points to render, so a
// bare tap becomes a zero-length stroke at that point.
func (b *Board) commitBrush() {
	pts := b.active
	if len(pts) == 1 {
		pts = append(pts, pts[0])
	}
	width := b.strokeWidth / b.scale()
	stroke := history.NewStroke(pts, b.col, b.opacity, width)
	b.log.Commit(history.Draw{Stroke: stroke})
}
