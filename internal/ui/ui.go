// Package ui runs the interactive sketch window on top of the shiny
// screen driver.
package ui

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"

	"github.com/CyrusCastle/DrawBox/internal/board"
	"github.com/CyrusCastle/DrawBox/internal/clipboard"
	"github.com/CyrusCastle/DrawBox/internal/export"
	"github.com/CyrusCastle/DrawBox/internal/notify"
)

const shortcutBarHeight = 24
const shortcutCell = 80

type shortcut struct {
	Key   rune
	Label string
}

var shortcuts = []shortcut{
	{'B', "Brush"},
	{'E', "Eraser"},
	{'Z', "Undo"},
	{'Y', "Redo"},
	{'C', "Copy"},
	{'S', "Save"},
	{'Q', "Quit"},
}

// Options configures the sketch window.
type Options struct {
	Size     int
	SaveDir  string
	Notifier *notify.Notifier
}

// Run opens the window and blocks until it is closed. The board must
// already be configured; Run connects it to the window's canvas.
func Run(b *board.Board, opts Options) error {
	size := opts.Size
	if size <= 0 {
		size = board.DefaultCanvasSize
	}
	if err := b.Connect(size, size); err != nil {
		return fmt.Errorf("connect canvas: %w", err)
	}
	b.SetEnabled(true)

	driver.Main(func(s screen.Screen) {
		runWindow(s, b, size, opts)
	})
	return nil
}

func runWindow(s screen.Screen, b *board.Board, size int, opts Options) {
	width := size
	height := size + shortcutBarHeight
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: "DrawBox"})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()
	buf, err := s.NewBuffer(image.Point{width, height})
	if err != nil {
		log.Fatalf("new buffer: %v", err)
	}
	defer buf.Release()

	b.OnChange(func() {
		w.Send(paint.Event{})
	})

	var snackbarMsg string
	var snackbarUntil time.Time
	flash := func(msg string) {
		snackbarMsg = msg
		snackbarUntil = time.Now().Add(2 * time.Second)
		w.Send(paint.Event{})
	}

	save := func() {
		path := export.DefaultName(opts.SaveDir, "png")
		if err := export.SavePNG(b.Render(board.ModeFinalized, size), path); err != nil {
			log.Printf("save: %v", err)
			flash("Save failed")
			return
		}
		opts.Notifier.Save(path)
		flash(fmt.Sprintf("Saved %s", path))
	}
	copyImage := func() {
		if err := clipboard.WriteImage(b.Render(board.ModeFinalized, size)); err != nil {
			log.Printf("copy: %v", err)
			flash("Copy failed")
			return
		}
		opts.Notifier.Copy("sketch")
		flash("Copied to clipboard")
	}

	for {
		e := w.NextEvent()
		switch e := e.(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case paint.Event:
			canvas := b.Render(board.ModeDynamic, size)
			draw.Draw(buf.RGBA(), image.Rect(0, 0, width, size), canvas, image.Point{}, draw.Src)
			drawShortcuts(buf.RGBA(), b.Tool())
			if snackbarMsg != "" && time.Now().Before(snackbarUntil) {
				drawSnackbar(buf.RGBA(), snackbarMsg, size)
			}
			w.Upload(image.Point{}, buf, buf.Bounds())
			w.Publish()
		case mouse.Event:
			if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress && int(e.Y) >= size {
				idx := int(e.X) / shortcutCell
				if idx >= 0 && idx < len(shortcuts) {
					if quit := handleShortcut(shortcuts[idx].Key, b, w, save, copyImage); quit {
						return
					}
				}
				continue
			}
			switch e.Direction {
			case mouse.DirPress:
				if e.Button == mouse.ButtonLeft && int(e.Y) < size {
					b.DragStart(float64(e.X), float64(e.Y))
				}
			case mouse.DirNone:
				b.Drag(float64(e.X), float64(e.Y))
			case mouse.DirRelease:
				if e.Button == mouse.ButtonLeft && b.Capturing() {
					b.DragEnd()
				}
			}
		case key.Event:
			if e.Direction == key.DirPress {
				if quit := handleShortcut(e.Rune, b, w, save, copyImage); quit {
					return
				}
			}
		}
	}
}

func handleShortcut(r rune, b *board.Board, w screen.Window, save, copyImage func()) (quit bool) {
	switch r {
	case 'b', 'B':
		b.SetTool(board.ToolBrush)
		w.Send(paint.Event{})
	case 'e', 'E':
		b.SetTool(board.ToolEraser)
		w.Send(paint.Event{})
	case 'z', 'Z', 'u', 'U':
		b.Undo()
	case 'y', 'Y', 'r', 'R':
		b.Redo()
	case 's', 'S':
		save()
	case 'c', 'C':
		copyImage()
	case 'q', 'Q':
		return true
	}
	return false
}

func drawShortcuts(dst *image.RGBA, active board.Tool) {
	y := dst.Bounds().Dy() - shortcutBarHeight
	x := 0
	for _, s := range shortcuts {
		col := color.RGBA{220, 220, 220, 255}
		if (s.Key == 'B' && active == board.ToolBrush) || (s.Key == 'E' && active == board.ToolEraser) {
			col = color.RGBA{180, 180, 180, 255}
		}
		rect := image.Rect(x, y, x+shortcutCell, y+shortcutBarHeight)
		draw.Draw(dst, rect, &image.Uniform{col}, image.Point{}, draw.Src)
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.Black,
			Face: basicfont.Face7x13,
			Dot:  fixed.P(x+4, y+16),
		}
		d.DrawString(fmt.Sprintf("%c - %s", s.Key, s.Label))
		x += shortcutCell
	}
	draw.Draw(dst, image.Rect(x, y, dst.Bounds().Dx(), y+shortcutBarHeight), &image.Uniform{color.RGBA{240, 240, 240, 255}}, image.Point{}, draw.Src)
}

func drawSnackbar(dst *image.RGBA, msg string, size int) {
	width := dst.Bounds().Dx()
	box := image.Rect(width/2-120, size/2-16, width/2+120, size/2+16)
	draw.Draw(dst, box, &image.Uniform{color.RGBA{220, 220, 220, 255}}, image.Point{}, draw.Src)
	d := &font.Drawer{Dst: dst, Src: image.Black, Face: basicfont.Face7x13, Dot: fixed.P(box.Min.X+8, box.Min.Y+16)}
	d.DrawString(msg)
}
