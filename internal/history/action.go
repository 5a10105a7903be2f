// Package history holds the append-only action log behind a drawing board:
// committed draw/erase actions, the undo/redo stacks over them, and the pure
// replay that projects the log into the currently visible strokes.
package history

import (
	"image/color"

	"github.com/google/uuid"

	"github.com/CyrusCastle/DrawBox/internal/geom"
)

// Stroke is one continuous drawn path. Points and width are stored
// normalized to the capture-time canvas size so the stroke can be projected
// at any target resolution. A stroke is immutable once committed; erase
// actions reference it by ID.
type Stroke struct {
	ID      string
	Points  []geom.Point
	Color   color.Color
	Opacity float64
	Width   float64
}

// NewStroke builds a stroke with a fresh identity.
func NewStroke(points []geom.Point, col color.Color, opacity, width float64) Stroke {
	return Stroke{
		ID:      uuid.NewString(),
		Points:  points,
		Color:   col,
		Opacity: opacity,
		Width:   width,
	}
}

// Action is one committed log entry: either a Draw adding a single stroke or
// an Erase removing a set of strokes by identity. The type set is closed;
// consumers switch over it exhaustively with no default branch so a new
// variant fails to compile everywhere it matters.
type Action interface {
	action()
}

// Draw adds one stroke on top of everything drawn before it.
type Draw struct {
	Stroke Stroke
}

// Erase removes the referenced strokes from the visible set. IDs that are
// no longer (or never were) visible are ignored on replay.
type Erase struct {
	IDs []string
}

func (Draw) action()  {}
func (Erase) action() {}

// Project replays actions in order from an empty surface and returns the
// visible strokes, earliest first (render order equals z-order). It is a
// pure function of the slice contents; live and finalized projections share
// it.
func Project(actions []Action) []Stroke {
	var visible []Stroke
	for _, a := range actions {
		switch a := a.(type) {
		case Draw:
			visible = append(visible, a.Stroke)
		case Erase:
			visible = removeByID(visible, a.IDs)
		}
	}
	return visible
}

func removeByID(strokes []Stroke, ids []string) []Stroke {
	if len(ids) == 0 {
		return strokes
	}
	erased := make(map[string]bool, len(ids))
	for _, id := range ids {
		erased[id] = true
	}
	kept := strokes[:0]
	for _, s := range strokes {
		if !erased[s.ID] {
			kept = append(kept, s)
		}
	}
	return kept
}
