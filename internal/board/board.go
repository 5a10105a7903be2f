// Package board implements the drawing-surface controller: connection state
// and coordinate normalization, the stroke-capture session, styling
// parameters, the undo/redo history, and the projections a UI reads back.
//
// All mutation happens synchronously on whichever single goroutine delivers
// input events; readers observe a consistent snapshot between calls. There
// is no internal locking and no background work.
package board

import (
	"errors"
	"image"
	"image/color"

	"github.com/CyrusCastle/DrawBox/internal/geom"
	"github.com/CyrusCastle/DrawBox/internal/history"
	"github.com/CyrusCastle/DrawBox/internal/render"
)

// Defaults applied by New. Widths are in pixels at the connected canvas
// size; they are normalized at commit time.
const (
	DefaultOpacity       = 1.0
	DefaultStrokeWidth   = 4.0
	DefaultEraserWidth   = 16.0
	DefaultCanvasOpacity = 1.0
	DefaultCanvasSize    = 800
)

// Connect rejections. The board state is unchanged when any of these is
// returned; callers that treat a bad connect as expected may ignore them.
var (
	ErrNotSquare   = errors.New("board: canvas must be square")
	ErrInvalidSize = errors.New("board: canvas size must be positive")
	ErrCapturing   = errors.New("board: connect rejected while a stroke is in progress")
)

// Eraser preview styling. The ghost path for an eraser gesture always uses
// this fixed highlight rather than the brush settings.
var (
	eraserGhostColor           = color.NRGBA{R: 0xB0, G: 0xB0, B: 0xB0, A: 0xFF}
	eraserGhostOpacity float64 = 0.5
)

// Background is an optional backdrop bitmap and its placement on the canvas.
type Background struct {
	Image image.Image
	Rect  image.Rectangle
}

// Board is the drawing surface state. The zero value is not usable; call New.
type Board struct {
	log  history.Log
	size int // connected canvas side length, 0 while disconnected

	active []geom.Point // in-progress stroke, nil while idle

	col           color.Color
	opacity       float64
	strokeWidth   float64
	eraserWidth   float64
	canvasOpacity float64
	tool          Tool
	enabled       bool
	background    *Background

	rev       uint64
	listeners []func()
	dynamic   projection
	finalized projection
}

// projection memoizes a replay of the log for one mode within one revision.
type projection struct {
	rev     uint64
	valid   bool
	strokes []history.Stroke
}

// New returns a disconnected board with default styling, brush tool, input
// enabled.
func New() *Board {
	return &Board{
		col:           color.Black,
		opacity:       DefaultOpacity,
		strokeWidth:   DefaultStrokeWidth,
		eraserWidth:   DefaultEraserWidth,
		canvasOpacity: DefaultCanvasOpacity,
		tool:          ToolBrush,
		enabled:       true,
	}
}

// OnChange registers fn to run after every observable mutation. Callbacks
// run synchronously on the mutating goroutine; keep them cheap (the UI loop
// sends itself a repaint event, it does not paint inline).
func (b *Board) OnChange(fn func()) {
	b.listeners = append(b.listeners, fn)
}

func (b *Board) changed() {
	b.rev++
	for _, fn := range b.listeners {
		fn()
	}
}

// Connect establishes the canvas pixel size. The canvas must be square with
// a positive side length, and a connect is rejected while a stroke is being
// captured; in every rejection case the previous state is kept.
func (b *Board) Connect(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidSize
	}
	if width != height {
		return ErrNotSquare
	}
	if b.active != nil {
		return ErrCapturing
	}
	b.size = width
	b.changed()
	return nil
}

// Connected reports whether a canvas size has been established.
func (b *Board) Connected() bool { return b.size > 0 }

// Size returns the connected canvas side length, 0 while disconnected.
func (b *Board) Size() int { return b.size }

// scale is the divisor mapping pixel input to normalized storage. Before
// any connect it is 1, so points pass through unscaled.
func (b *Board) scale() float64 {
	if b.size == 0 {
		return 1
	}
	return float64(b.size)
}

func (b *Board) normalize(x, y float64) geom.Point {
	s := b.scale()
	return geom.Pt(x/s, y/s)
}

// SetColor sets the brush color for subsequent strokes.
func (b *Board) SetColor(c color.Color) {
	if c == nil {
		return
	}
	b.col = c
	b.changed()
}

// SetOpacity sets the brush opacity for subsequent strokes, clamped to [0,1].
func (b *Board) SetOpacity(v float64) {
	b.opacity = clamp01(v)
	b.changed()
}

// SetStrokeWidth sets the brush width in pixels at the connected canvas
// size. Non-positive widths are ignored.
func (b *Board) SetStrokeWidth(w float64) {
	if w <= 0 {
		return
	}
	b.strokeWidth = w
	b.changed()
}

// SetEraserWidth sets the eraser hit radius in pixels at the connected
// canvas size. Non-positive widths are ignored.
func (b *Board) SetEraserWidth(w float64) {
	if w <= 0 {
		return
	}
	b.eraserWidth = w
	b.changed()
}

// SetCanvasOpacity sets the white surface fill opacity used by Render,
// clamped to [0,1].
func (b *Board) SetCanvasOpacity(v float64) {
	b.canvasOpacity = clamp01(v)
	b.changed()
}

// SetTool selects the brush or the eraser for subsequent gestures.
func (b *Board) SetTool(t Tool) {
	b.tool = t
	b.changed()
}

// Tool returns the active tool.
func (b *Board) Tool() Tool { return b.tool }

// SetEnabled toggles input handling. While disabled every gesture call is
// ignored outright.
func (b *Board) SetEnabled(v bool) {
	b.enabled = v
	b.changed()
}

// Enabled reports whether gestures are accepted.
func (b *Board) Enabled() bool { return b.enabled }

// SetBackground installs a backdrop image placed into rect at render time.
// An empty rect covers the whole canvas. A nil image clears the backdrop.
func (b *Board) SetBackground(img image.Image, rect image.Rectangle) {
	if img == nil {
		b.background = nil
	} else {
		b.background = &Background{Image: img, Rect: rect}
	}
	b.changed()
}

// Background returns the current backdrop, or nil.
func (b *Board) Background() *Background { return b.background }

// Undo moves the latest action to the redo stack; a no-op on an empty log.
func (b *Board) Undo() {
	if b.log.Undo() {
		b.changed()
	}
}

// Redo reapplies the most recently undone action; a no-op when nothing was
// undone.
func (b *Board) Redo() {
	if b.log.Redo() {
		b.changed()
	}
}

// Reset clears the history, the redo stack and any in-progress stroke.
func (b *Board) Reset() {
	b.log.Reset()
	b.active = nil
	b.changed()
}

// UndoCount returns how many actions can be undone.
func (b *Board) UndoCount() int { return b.log.UndoCount() }

// RedoCount returns how many undone actions can be reapplied.
func (b *Board) RedoCount() int { return b.log.RedoCount() }

// Visible projects the board into its visible strokes in z-order. The
// result is memoized per revision; ModeDynamic appends the ghost stroke for
// any gesture in progress.
func (b *Board) Visible(mode Mode) []history.Stroke {
	cache := &b.finalized
	if mode == ModeDynamic {
		cache = &b.dynamic
	}
	if cache.valid && cache.rev == b.rev {
		return cache.strokes
	}

	strokes := b.log.Visible()
	switch mode {
	case ModeDynamic:
		if ghost, ok := b.ghost(); ok {
			strokes = append(strokes, ghost)
		}
	case ModeFinalized:
	}

	cache.rev = b.rev
	cache.valid = true
	cache.strokes = strokes
	return strokes
}

// ghost builds the uncommitted preview stroke for the active path.
func (b *Board) ghost() (history.Stroke, bool) {
	if b.active == nil {
		return history.Stroke{}, false
	}
	pts := b.active
	if len(pts) == 1 {
		pts = append(pts[:len(pts):len(pts)], pts[0])
	}
	s := b.scale()
	ghost := history.Stroke{Points: pts}
	switch b.tool {
	case ToolBrush:
		ghost.Color = b.col
		ghost.Opacity = b.opacity
		ghost.Width = b.strokeWidth / s
	case ToolEraser:
		ghost.Color = eraserGhostColor
		ghost.Opacity = eraserGhostOpacity
		ghost.Width = b.eraserWidth / s
	}
	return ghost, true
}

// Strokes returns the visible paths scaled to a target canvas side length.
func (b *Board) Strokes(mode Mode, target float64) []render.Path {
	return render.Paths(b.Visible(mode), target)
}

// Render rasterizes the board at the target size: the white surface fill at
// the canvas opacity, the backdrop in its placement rectangle, then every
// visible stroke in order.
func (b *Board) Render(mode Mode, target int) *image.RGBA {
	opts := render.Options{
		Size:          target,
		Paths:         b.Strokes(mode, float64(target)),
		CanvasOpacity: b.canvasOpacity,
	}
	if b.background != nil {
		// The placement rectangle is stored relative to the connected size;
		// rescale it for the requested output.
		opts.Background = b.background.Image
		opts.BackgroundRect = scaleRect(b.background.Rect, float64(target)/b.scale())
	}
	return render.Rasterize(opts)
}

func scaleRect(r image.Rectangle, f float64) image.Rectangle {
	return image.Rect(
		int(float64(r.Min.X)*f),
		int(float64(r.Min.Y)*f),
		int(float64(r.Max.X)*f),
		int(float64(r.Max.Y)*f),
	)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
