package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"os"

	"github.com/CyrusCastle/DrawBox/internal/capture"
	"github.com/CyrusCastle/DrawBox/internal/ui"
)

type sketchCmd struct {
	*root
	fs          *flag.FlagSet
	size        int
	colorSpec   string
	opacity     float64
	strokeWidth float64
	eraserWidth float64
	background  string
	fromScreen  bool
	interactive bool
}

func (s *sketchCmd) FlagSet() *flag.FlagSet {
	return s.fs
}

func parseSketchCmd(args []string, r *root) (*sketchCmd, error) {
	fs := flag.NewFlagSet("sketch", flag.ExitOnError)
	s := &sketchCmd{root: r, fs: fs}
	fs.IntVar(&s.size, "size", 0, "canvas size in pixels (square)")
	fs.StringVar(&s.colorSpec, "color", "", "brush color name or hex value")
	fs.Float64Var(&s.opacity, "opacity", -1, "brush opacity between 0 and 1")
	fs.Float64Var(&s.strokeWidth, "width", 0, "brush width in pixels")
	fs.Float64Var(&s.eraserWidth, "eraser-width", 0, "eraser width in pixels")
	fs.StringVar(&s.background, "background", "", "PNG file to sketch over")
	fs.BoolVar(&s.fromScreen, "capture", false, "capture the screen as the background")
	fs.BoolVar(&s.interactive, "capture-region", false, "let the portal pick the capture region")
	fs.Usage = usageFunc(s)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if s.background != "" && (s.fromScreen || s.interactive) {
		return nil, fmt.Errorf("-background cannot be combined with -capture")
	}
	return s, nil
}

func (s *sketchCmd) Run() error {
	b, err := s.configureBoard(s.colorSpec, s.opacity, s.strokeWidth, s.eraserWidth)
	if err != nil {
		return err
	}

	size := s.size
	if size <= 0 {
		size = s.root.config.CanvasSize
	}

	if bg, err := s.loadBackground(); err != nil {
		return err
	} else if bg != nil {
		b.SetBackground(bg, image.Rectangle{})
	}

	return ui.Run(b, ui.Options{
		Size:     size,
		SaveDir:  s.root.saveDir,
		Notifier: s.root.notifier,
	})
}

func (s *sketchCmd) loadBackground() (image.Image, error) {
	switch {
	case s.fromScreen || s.interactive:
		img, err := capture.Screenshot(capture.Options{Interactive: s.interactive})
		if err != nil {
			return nil, fmt.Errorf("capture background: %w", err)
		}
		s.root.notifier.Capture("screen", img)
		return img, nil
	case s.background != "":
		return loadPNGFile(s.background)
	}
	return nil, nil
}

func loadPNGFile(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	img, err := png.Decode(f)
	if cerr := f.Close(); cerr != nil {
		log.Printf("error closing %q: %v", path, cerr)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, image.Point{}, draw.Src)
	return rgba, nil
}
