package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/jung-kurt/gofpdf"

	"github.com/CyrusCastle/DrawBox/internal/history"
)

const pdfMargin = 10 // mm

// SavePDF writes the strokes as vector line art on an A4 page. The unit
// square maps onto the largest centered square that fits inside the page
// margins, with the optional background image underneath.
func SavePDF(path string, strokes []history.Stroke, background image.Image) error {
	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()
	pageW, pageH := p.GetPageSize()
	side := math.Min(pageW, pageH) - 2*pdfMargin
	x0 := (pageW - side) / 2
	y0 := (pageH - side) / 2

	if background != nil {
		var buf bytes.Buffer
		if err := png.Encode(&buf, background); err != nil {
			return fmt.Errorf("encode background: %w", err)
		}
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		p.RegisterImageOptionsReader("background", opts, &buf)
		p.ImageOptions("background", x0, y0, side, side, false, opts, 0, "")
	}

	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")
	for _, st := range strokes {
		r, g, b, _ := st.Color.RGBA()
		p.SetDrawColor(int(r>>8), int(g>>8), int(b>>8))
		p.SetFillColor(int(r>>8), int(g>>8), int(b>>8))
		p.SetLineWidth(st.Width * side)
		p.SetAlpha(st.Opacity, "Normal")

		if len(st.Points) == 1 {
			pt := st.Points[0]
			p.Circle(x0+pt.X*side, y0+pt.Y*side, st.Width*side/2, "F")
			continue
		}
		for i := 1; i < len(st.Points); i++ {
			from, to := st.Points[i-1], st.Points[i]
			p.Line(x0+from.X*side, y0+from.Y*side, x0+to.X*side, y0+to.Y*side)
		}
	}
	p.SetAlpha(1, "Normal")
	return p.OutputFileAndClose(path)
}
