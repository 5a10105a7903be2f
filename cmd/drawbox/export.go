package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/CyrusCastle/DrawBox/internal/board"
	"github.com/CyrusCastle/DrawBox/internal/export"
)

// exportCmd replays a gesture script against a headless board and writes
// the finished sketch to disk.
type exportCmd struct {
	*root
	fs          *flag.FlagSet
	size        int
	colorSpec   string
	opacity     float64
	strokeWidth float64
	eraserWidth float64
	output      string
	format      string
	background  string
	script      string
}

func (e *exportCmd) FlagSet() *flag.FlagSet {
	return e.fs
}

func parseExportCmd(args []string, r *root) (*exportCmd, error) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	e := &exportCmd{root: r, fs: fs}
	fs.IntVar(&e.size, "size", 0, "canvas size in pixels (square)")
	fs.StringVar(&e.colorSpec, "color", "", "brush color name or hex value")
	fs.Float64Var(&e.opacity, "opacity", -1, "brush opacity between 0 and 1")
	fs.Float64Var(&e.strokeWidth, "width", 0, "brush width in pixels")
	fs.Float64Var(&e.eraserWidth, "eraser-width", 0, "eraser width in pixels")
	fs.StringVar(&e.output, "output", "", "output file path (defaults to a timestamped name)")
	fs.StringVar(&e.format, "format", "png", "output format: png or pdf")
	fs.StringVar(&e.background, "background", "", "PNG file rendered underneath the strokes")
	fs.Usage = usageFunc(e)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, &UsageError{of: e}
	}
	e.script = fs.Arg(0)
	switch e.format {
	case "png", "pdf":
	default:
		return nil, fmt.Errorf("unsupported format %q", e.format)
	}
	return e, nil
}

func (e *exportCmd) Run() error {
	b, err := e.configureBoard(e.colorSpec, e.opacity, e.strokeWidth, e.eraserWidth)
	if err != nil {
		return err
	}

	size := e.size
	if size <= 0 {
		size = e.root.config.CanvasSize
	}
	if err := b.Connect(size, size); err != nil {
		return fmt.Errorf("connect canvas: %w", err)
	}
	b.SetEnabled(true)

	var background image.Image
	if e.background != "" {
		background, err = loadPNGFile(e.background)
		if err != nil {
			return err
		}
		b.SetBackground(background, image.Rectangle{})
	}

	var in io.Reader
	if e.script == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(e.script)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
	}
	if err := replayScript(b, in); err != nil {
		return err
	}

	out := e.output
	if out == "" {
		out = export.DefaultName(e.root.saveDir, e.format)
	}
	switch e.format {
	case "png":
		err = export.SavePNG(b.Render(board.ModeFinalized, size), out)
	case "pdf":
		err = export.SavePDF(out, b.Visible(board.ModeFinalized), background)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "saved %s\n", out)
	e.root.notifier.Export(out)
	return nil
}

// replayScript feeds script commands through the board's gesture API so
// the output matches what the interactive window would produce.
func replayScript(b *board.Board, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		cmd, rest := fields[0], fields[1:]
		switch cmd {
		case "draw", "erase":
			points, err := parsePoints(rest)
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			tool := board.ToolBrush
			if cmd == "erase" {
				tool = board.ToolEraser
			}
			b.SetTool(tool)
			b.DragStart(points[0][0], points[0][1])
			for _, pt := range points[1:] {
				b.Drag(pt[0], pt[1])
			}
			b.DragEnd()
		case "undo":
			b.Undo()
		case "redo":
			b.Redo()
		default:
			return fmt.Errorf("line %d: unknown command %q", lineNo, cmd)
		}
	}
	return scanner.Err()
}

func parsePoints(fields []string) ([][2]float64, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("expected at least one x,y point")
	}
	points := make([][2]float64, 0, len(fields))
	for _, raw := range fields {
		parts := strings.SplitN(raw, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid point %q", raw)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid point %q", raw)
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid point %q", raw)
		}
		points = append(points, [2]float64{x, y})
	}
	return points, nil
}
