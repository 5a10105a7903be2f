// Package render projects the board's normalized strokes into pixel space:
// either as a path list for a UI to draw itself, or rasterized onto an RGBA
// bitmap with an optional background image composited underneath.
package render

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/CyrusCastle/DrawBox/internal/geom"
	"github.com/CyrusCastle/DrawBox/internal/history"
)

// Path is a stroke scaled to a concrete pixel size, ready to draw.
type Path struct {
	Points  []geom.Point
	Color   color.Color
	Opacity float64
	Width   float64
}

// Paths scales strokes to the target canvas side length. The target may
// differ from the size the strokes were captured at; that is what makes
// export-to-arbitrary-resolution possible.
func Paths(strokes []history.Stroke, target float64) []Path {
	out := make([]Path, 0, len(strokes))
	for _, s := range strokes {
		out = append(out, Path{
			Points:  geom.Scale(s.Points, target),
			Color:   s.Color,
			Opacity: s.Opacity,
			Width:   s.Width * target,
		})
	}
	return out
}

// Options configures a Rasterize call.
type Options struct {
	// Size is the square output side length in pixels.
	Size int
	// Paths are drawn in order; later paths render on top.
	Paths []Path
	// CanvasOpacity controls the white surface fill laid down before the
	// background and the strokes, 0 (transparent) to 1 (solid white).
	CanvasOpacity float64
	// Background, when non-nil, is composited into BackgroundRect after the
	// surface fill. An empty BackgroundRect covers the whole canvas.
	Background     image.Image
	BackgroundRect image.Rectangle
}

// Rasterize renders the paths onto a fresh RGBA bitmap. Each path is
// stroked with round caps and joins at its own color, opacity and width.
func Rasterize(opts Options) *image.RGBA {
	size := opts.Size
	if size < 0 {
		size = 0
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	if size == 0 {
		return dst
	}

	if opts.CanvasOpacity > 0 {
		fill := withOpacity(color.White, clamp01(opts.CanvasOpacity))
		draw.Draw(dst, dst.Bounds(), image.NewUniform(fill), image.Point{}, draw.Src)
	}

	if opts.Background != nil {
		rect := opts.BackgroundRect
		if rect.Empty() {
			rect = dst.Bounds()
		}
		xdraw.ApproxBiLinear.Scale(dst, rect, opts.Background, opts.Background.Bounds(), draw.Over, nil)
	}

	for _, p := range opts.Paths {
		strokePath(dst, p)
	}
	return dst
}

// strokePath stamps the path into an alpha mask and composites the mask in
// one pass, so a semi-transparent stroke does not double-blend where its
// segments overlap.
func strokePath(dst *image.RGBA, p Path) {
	if len(p.Points) == 0 {
		return
	}
	radius := p.Width / 2
	if radius < 0.5 {
		radius = 0.5
	}

	min, max, _ := geom.Bounds(p.Points)
	pad := int(radius) + 2
	bounds := image.Rect(int(min.X)-pad, int(min.Y)-pad, int(max.X)+pad, int(max.Y)+pad)
	bounds = bounds.Intersect(dst.Bounds())
	if bounds.Empty() {
		return
	}

	mask := image.NewAlpha(bounds)
	r := int(radius + 0.5)
	prev := p.Points[0]
	stampDisc(mask, int(prev.X+0.5), int(prev.Y+0.5), r)
	for _, pt := range p.Points[1:] {
		stampLine(mask, int(prev.X+0.5), int(prev.Y+0.5), int(pt.X+0.5), int(pt.Y+0.5), r)
		prev = pt
	}

	tint := withOpacity(p.Color, clamp01(p.Opacity))
	draw.DrawMask(dst, bounds, image.NewUniform(tint), image.Point{}, mask, bounds.Min, draw.Over)
}

// withOpacity returns c with its alpha scaled by opacity.
func withOpacity(c color.Color, opacity float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*opacity + 0.5)
	return n
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
