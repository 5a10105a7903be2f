package board

import (
	"github.com/CyrusCastle/DrawBox/internal/geom"
	"github.com/CyrusCastle/DrawBox/internal/history"
)

// commitEraser scans every visible stroke against the erase path and
// commits a single Erase action covering all hits. A miss commits nothing
// at all, so an empty erase never occupies an undo slot.
//
// Hit-testing is point proximity, not segment intersection: a stroke is hit
// when any of its points lies within the normalized eraser radius of any
// point of the erase path. The scan is O(strokes x stroke points x erase
// points) with no spatial index; interactive drawings keep all three small.
// Fast sparse strokes can slip between sample points. That approximation is
// the intended behavior, not a shortcut to tighten later.
func (b *Board) commitEraser() {
	radius := b.eraserWidth / b.scale()
	var ids []string
	for _, s := range b.log.Visible() {
		if pathsWithin(s.Points, b.active, radius) {
			ids = append(ids, s.ID)
		}
	}
	if len(ids) == 0 {
		return
	}
	b.log.Commit(history.Erase{IDs: ids})
}

// pathsWithin reports whether any point of a lies within radius of any
// point of b.
func pathsWithin(a, b []geom.Point, radius float64) bool {
	r2 := radius * radius
	for _, p := range a {
		for _, q := range b {
			if p.DistanceSquared(q) <= r2 {
				return true
			}
		}
	}
	return false
}
