package render

import (
	"image"
	"image/color"
)

var alphaOpaque = color.Alpha{A: 0xFF}

// stampLine walks the Bresenham line from (x0,y0) to (x1,y1) stamping a
// filled disc at every step. Discs at the segment endpoints double as the
// round caps and joins the renderer promises.
func stampLine(mask *image.Alpha, x0, y0, x1, y1, r int) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		stampDisc(mask, x0, y0, r)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// stampDisc marks every mask pixel within r of (cx,cy) as fully covered.
func stampDisc(mask *image.Alpha, cx, cy, r int) {
	b := mask.Bounds()
	for dy := -r; dy <= r; dy++ {
		y := cy + dy
		if y < b.Min.Y || y >= b.Max.Y {
			continue
		}
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			x := cx + dx
			if x < b.Min.X || x >= b.Max.X {
				continue
			}
			mask.SetAlpha(x, y, alphaOpaque)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
