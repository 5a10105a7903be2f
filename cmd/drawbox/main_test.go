package main

import (
	"image/color"
	"strings"
	"testing"

	"github.com/CyrusCastle/DrawBox/internal/board"
	"github.com/CyrusCastle/DrawBox/internal/config"
)

func scriptBoard(t *testing.T) *board.Board {
	t.Helper()
	b := board.New()
	if err := b.Connect(100, 100); err != nil {
		t.Fatalf("connect: %v", err)
	}
	b.SetEnabled(true)
	return b
}

func TestReplayScriptDrawUndoRedo(t *testing.T) {
	b := scriptBoard(t)
	script := `
# two strokes, then take one back
draw 10,10 50,50 90,90
draw 10,90 90,10
undo
`
	if err := replayScript(b, strings.NewReader(script)); err != nil {
		t.Fatalf("replayScript failed: %v", err)
	}
	if got := len(b.Visible(board.ModeFinalized)); got != 1 {
		t.Fatalf("expected 1 visible stroke, got %d", got)
	}

	if err := replayScript(b, strings.NewReader("redo\n")); err != nil {
		t.Fatalf("replayScript failed: %v", err)
	}
	if got := len(b.Visible(board.ModeFinalized)); got != 2 {
		t.Fatalf("expected 2 visible strokes after redo, got %d", got)
	}
}

func TestReplayScriptErase(t *testing.T) {
	b := scriptBoard(t)
	script := `
draw 20,20 40,40
erase 30,30
`
	if err := replayScript(b, strings.NewReader(script)); err != nil {
		t.Fatalf("replayScript failed: %v", err)
	}
	if got := len(b.Visible(board.ModeFinalized)); got != 0 {
		t.Fatalf("expected stroke to be erased, got %d visible", got)
	}
}

func TestReplayScriptErrors(t *testing.T) {
	cases := []struct {
		script string
		want   string
	}{
		{"scribble 1,1\n", "unknown command"},
		{"draw\n", "at least one"},
		{"draw 1;1\n", "invalid point"},
		{"draw 1,nope\n", "invalid point"},
	}
	for _, tc := range cases {
		b := scriptBoard(t)
		err := replayScript(b, strings.NewReader(tc.script))
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Errorf("script %q: expected error containing %q, got %v", tc.script, tc.want, err)
		}
	}
}

func TestResolveColorPrefersPalette(t *testing.T) {
	cfg := config.New()
	cfg.Palettes["brand"] = []config.PaletteColor{
		{Name: "Accent", Color: color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}},
	}

	got, err := resolveColor("accent", cfg)
	if err != nil {
		t.Fatalf("resolveColor failed: %v", err)
	}
	if got != (color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}) {
		t.Fatalf("unexpected color %+v", got)
	}

	// Unknown names still fall through to the standard set.
	if _, err := resolveColor("teal", cfg); err != nil {
		t.Fatalf("expected named color fallback, got %v", err)
	}
	if _, err := resolveColor("nope", cfg); err == nil {
		t.Fatal("expected error for unknown color")
	}
}

func TestParseExportCmdValidation(t *testing.T) {
	r := newRoot()
	if _, err := parseExportCmd([]string{"-format", "gif", "script.txt"}, r); err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if _, err := parseExportCmd([]string{}, r); err == nil {
		t.Fatal("expected usage error without a script argument")
	}
	cmd, err := parseExportCmd([]string{"-format", "pdf", "-output", "out.pdf", "-"}, r)
	if err != nil {
		t.Fatalf("parseExportCmd failed: %v", err)
	}
	if cmd.script != "-" || cmd.format != "pdf" || cmd.output != "out.pdf" {
		t.Fatalf("unexpected command %+v", cmd)
	}
}
