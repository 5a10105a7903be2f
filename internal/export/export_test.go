package export

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CyrusCastle/DrawBox/internal/geom"
	"github.com/CyrusCastle/DrawBox/internal/history"
)

func TestSavePNGRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.Set(3, 4, color.RGBA{R: 0xFF, A: 0xFF})

	path := filepath.Join(t.TempDir(), "nested", "out.png")
	if err := SavePNG(img, path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open saved file: %v", err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode saved file: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Fatalf("bounds mismatch: %v vs %v", decoded.Bounds(), img.Bounds())
	}
	r, _, _, _ := decoded.At(3, 4).RGBA()
	if r != 0xFFFF {
		t.Fatalf("expected red pixel at (3,4), got r=%#x", r)
	}
}

func TestSavePNGNilImage(t *testing.T) {
	if err := SavePNG(nil, filepath.Join(t.TempDir(), "out.png")); err == nil {
		t.Fatal("expected error for nil image")
	}
}

func TestDefaultName(t *testing.T) {
	name := DefaultName("/tmp/sketches", "png")
	if !strings.HasPrefix(name, "/tmp/sketches/drawbox-") || !strings.HasSuffix(name, ".png") {
		t.Fatalf("unexpected name %q", name)
	}
	bare := DefaultName("", "pdf")
	if strings.Contains(bare, string(os.PathSeparator)) {
		t.Fatalf("expected bare file name, got %q", bare)
	}
}

func TestSavePDFWritesDocument(t *testing.T) {
	strokes := []history.Stroke{
		{
			ID:      "s1",
			Points:  []geom.Point{{X: 0.1, Y: 0.1}, {X: 0.9, Y: 0.9}},
			Color:   color.RGBA{B: 0xFF, A: 0xFF},
			Opacity: 1,
			Width:   0.01,
		},
		{
			ID:      "s2",
			Points:  []geom.Point{{X: 0.5, Y: 0.5}},
			Color:   color.RGBA{R: 0xFF, A: 0xFF},
			Opacity: 0.5,
			Width:   0.02,
		},
	}
	bg := image.NewRGBA(image.Rect(0, 0, 4, 4))

	path := filepath.Join(t.TempDir(), "out.pdf")
	if err := SavePDF(path, strokes, bg); err != nil {
		t.Fatalf("SavePDF failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Fatalf("expected PDF header, got %q", data[:8])
	}
}
