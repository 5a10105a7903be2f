package board

import (
	"image"
	"image/color"
	"math"
	"testing"
)

var red = color.NRGBA{R: 255, A: 255}

// drawSquiggle commits one brush stroke through the given pixel points.
func drawSquiggle(t *testing.T, b *Board, pts ...[2]float64) {
	t.Helper()
	if len(pts) == 0 {
		t.Fatal("drawSquiggle needs at least one point")
	}
	b.DragStart(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		b.Drag(p[0], p[1])
	}
	if !b.Capturing() {
		t.Fatal("gesture did not start")
	}
	b.DragEnd()
}

func TestConnectValidation(t *testing.T) {
	b := New()
	if err := b.Connect(400, 300); err != ErrNotSquare {
		t.Errorf("Connect(400,300) = %v, want ErrNotSquare", err)
	}
	if err := b.Connect(0, 0); err != ErrInvalidSize {
		t.Errorf("Connect(0,0) = %v, want ErrInvalidSize", err)
	}
	if err := b.Connect(-5, -5); err != ErrInvalidSize {
		t.Errorf("Connect(-5,-5) = %v, want ErrInvalidSize", err)
	}
	if b.Connected() {
		t.Fatal("rejected connects changed the state")
	}
	if err := b.Connect(400, 400); err != nil {
		t.Fatalf("Connect(400,400) = %v", err)
	}
	if !b.Connected() || b.Size() != 400 {
		t.Fatalf("Connected=%v Size=%d after valid connect", b.Connected(), b.Size())
	}
}

func TestConnectRejectedWhileCapturing(t *testing.T) {
	b := New()
	if err := b.Connect(100, 100); err != nil {
		t.Fatal(err)
	}
	b.DragStart(10, 10)
	if err := b.Connect(200, 200); err != ErrCapturing {
		t.Fatalf("Connect during capture = %v, want ErrCapturing", err)
	}
	if b.Size() != 100 {
		t.Fatalf("Size = %d, want unchanged 100", b.Size())
	}
}

func TestNormalizationScenario(t *testing.T) {
	// connect(400,400); dragStart(0,0); drag(400,400); dragEnd with
	// width 10 yields one stroke (0,0)..(1,1) of width 0.025.
	b := New()
	if err := b.Connect(400, 400); err != nil {
		t.Fatal(err)
	}
	b.SetColor(red)
	b.SetStrokeWidth(10)
	drawSquiggle(t, b, [2]float64{0, 0}, [2]float64{400, 400})

	if b.UndoCount() != 1 {
		t.Fatalf("UndoCount = %d, want 1", b.UndoCount())
	}
	visible := b.Visible(ModeFinalized)
	if len(visible) != 1 {
		t.Fatalf("visible strokes = %d, want 1", len(visible))
	}
	s := visible[0]
	if len(s.Points) != 2 {
		t.Fatalf("stroke points = %d, want 2", len(s.Points))
	}
	if s.Points[0].X != 0 || s.Points[0].Y != 0 || s.Points[1].X != 1 || s.Points[1].Y != 1 {
		t.Errorf("normalized points = %v", s.Points)
	}
	if math.Abs(s.Width-0.025) > 1e-9 {
		t.Errorf("normalized width = %v, want 0.025", s.Width)
	}
	if s.Color != color.Color(red) {
		t.Errorf("stroke color = %v, want %v", s.Color, red)
	}
}

func TestUnconnectedScaleIsOne(t *testing.T) {
	// Without a connect the board is not capturable, but the normalizer's
	// default scale still has to be 1 for anything that reads it.
	b := New()
	if got := b.normalize(3, 7); got.X != 3 || got.Y != 7 {
		t.Fatalf("normalize without connect = %v, want (3,7)", got)
	}
}

func TestUndoRedoScenario(t *testing.T) {
	b := New()
	if err := b.Connect(100, 100); err != nil {
		t.Fatal(err)
	}
	drawSquiggle(t, b, [2]float64{10, 10}, [2]float64{20, 20})
	drawSquiggle(t, b, [2]float64{50, 50}, [2]float64{60, 60})
	a := b.Visible(ModeFinalized)[0].ID

	b.Undo()
	visible := b.Visible(ModeFinalized)
	if len(visible) != 1 || visible[0].ID != a {
		t.Fatalf("after undo visible = %v, want only the first stroke", visible)
	}
	if b.UndoCount() != 1 || b.RedoCount() != 1 {
		t.Fatalf("counts = %d/%d, want 1/1", b.UndoCount(), b.RedoCount())
	}

	b.Redo()
	if got := len(b.Visible(ModeFinalized)); got != 2 {
		t.Fatalf("after redo visible = %d, want 2", got)
	}
}

func TestUndoEmptyIsNoop(t *testing.T) {
	b := New()
	b.Undo()
	if b.UndoCount() != 0 || b.RedoCount() != 0 {
		t.Fatalf("counts = %d/%d, want 0/0", b.UndoCount(), b.RedoCount())
	}
}

func TestNewStrokeClearsRedo(t *testing.T) {
	b := New()
	if err := b.Connect(100, 100); err != nil {
		t.Fatal(err)
	}
	drawSquiggle(t, b, [2]float64{10, 10}, [2]float64{20, 20})
	b.Undo()
	if b.RedoCount() != 1 {
		t.Fatalf("RedoCount = %d, want 1", b.RedoCount())
	}

	// Starting the next gesture already invalidates the old timeline.
	b.DragStart(30, 30)
	if b.RedoCount() != 0 {
		t.Fatalf("RedoCount after DragStart = %d, want 0", b.RedoCount())
	}
	b.DragEnd()
	b.Redo()
	if got := len(b.Visible(ModeFinalized)); got != 1 {
		t.Fatalf("visible = %d, want 1 (redo must be a no-op)", got)
	}
}

func TestResetClearsEverything(t *testing.T) {
	b := New()
	if err := b.Connect(100, 100); err != nil {
		t.Fatal(err)
	}
	drawSquiggle(t, b, [2]float64{10, 10}, [2]float64{20, 20})
	b.Undo()
	b.DragStart(5, 5)
	b.Reset()
	if b.UndoCount() != 0 || b.RedoCount() != 0 || b.Capturing() {
		t.Fatalf("state after reset: undo=%d redo=%d capturing=%v",
			b.UndoCount(), b.RedoCount(), b.Capturing())
	}
}

func TestOnChangeNotifies(t *testing.T) {
	b := New()
	var fired int
	b.OnChange(func() { fired++ })
	if err := b.Connect(100, 100); err != nil {
		t.Fatal(err)
	}
	b.SetStrokeWidth(8)
	b.DragStart(1, 1)
	b.DragEnd()
	if fired < 4 {
		t.Fatalf("change callback fired %d times, want at least 4", fired)
	}
}

func TestStyleClamps(t *testing.T) {
	b := New()
	b.SetOpacity(3)
	if b.opacity != 1 {
		t.Errorf("opacity = %v, want clamped to 1", b.opacity)
	}
	b.SetOpacity(-1)
	if b.opacity != 0 {
		t.Errorf("opacity = %v, want clamped to 0", b.opacity)
	}
	b.SetStrokeWidth(-4)
	if b.strokeWidth != DefaultStrokeWidth {
		t.Errorf("negative width accepted: %v", b.strokeWidth)
	}
	b.SetColor(nil)
	if b.col == nil {
		t.Error("nil color accepted")
	}
}

func TestStyleAppliesToNextStrokeOnly(t *testing.T) {
	b := New()
	if err := b.Connect(100, 100); err != nil {
		t.Fatal(err)
	}
	drawSquiggle(t, b, [2]float64{10, 10}, [2]float64{20, 20})
	b.SetColor(red)
	b.SetStrokeWidth(9)
	drawSquiggle(t, b, [2]float64{30, 30}, [2]float64{40, 40})

	visible := b.Visible(ModeFinalized)
	if visible[0].Color == color.Color(red) {
		t.Error("style change applied retroactively to a committed stroke")
	}
	if visible[1].Color != color.Color(red) {
		t.Error("style change missing from the next stroke")
	}
}

func TestRenderWithBackground(t *testing.T) {
	bg := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for i := range bg.Pix {
		bg.Pix[i] = 0xFF
	}
	b := New()
	if err := b.Connect(64, 64); err != nil {
		t.Fatal(err)
	}
	b.SetBackground(bg, image.Rect(0, 0, 64, 64))
	drawSquiggle(t, b, [2]float64{32, 32})

	img := b.Render(ModeFinalized, 64)
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Fatalf("render bounds = %v", img.Bounds())
	}
	if _, _, _, a := img.At(5, 5).RGBA(); a == 0 {
		t.Error("background missing from render")
	}
	r, g, bl, _ := img.At(32, 32).RGBA()
	if r != g || g != bl {
		// Default brush color is black; over white this stays grey-scale.
		t.Errorf("unexpected center pixel %v", img.At(32, 32))
	}

	b.SetBackground(nil, image.Rectangle{})
	if b.Background() != nil {
		t.Error("nil image did not clear the background")
	}
}

func TestRenderAtDifferentSize(t *testing.T) {
	b := New()
	if err := b.Connect(400, 400); err != nil {
		t.Fatal(err)
	}
	b.SetColor(red)
	b.SetStrokeWidth(10)
	drawSquiggle(t, b, [2]float64{200, 200})

	img := b.Render(ModeFinalized, 100)
	// The stroke captured at (200,200) of a 400 canvas lands at (50,50)
	// when projected to 100 pixels.
	if _, _, _, a := img.At(50, 50).RGBA(); a == 0 {
		t.Fatal("stroke missing after projecting to a smaller canvas")
	}
}
