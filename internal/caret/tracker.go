package caret

import (
	"github.com/dshills/mathedit/internal/formula"
	"github.com/dshills/mathedit/internal/ranges"
)

// Tracker maintains the active-range set: the ids of the styled
// ranges the caret currently sits inside. It changes only on caret
// moves, never on document edits; after an edit the caller re-derives
// the forest and keeps moving the same tracker.
//
// Each move produces at most one transition, and when a single move
// simultaneously leaves one range and enters another (a shared
// boundary), leaving wins.
type Tracker struct {
	active map[formula.NodeID]struct{}
}

// Transition reports what a single caret move changed.
type Transition struct {
	// Entered is the id of the range the caret entered, if any.
	Entered formula.NodeID
	// Exited is the id of the range the caret left, if any.
	Exited formula.NodeID
}

// NewTracker creates a tracker with an empty active set.
func NewTracker() *Tracker {
	return &Tracker{active: make(map[formula.NodeID]struct{})}
}

// Active reports whether the range id is in the active set.
func (t *Tracker) Active(id formula.NodeID) bool {
	_, ok := t.active[id]
	return ok
}

// ActiveIDs returns the current active set. Order is unspecified.
func (t *Tracker) ActiveIDs() []formula.NodeID {
	out := make([]formula.NodeID, 0, len(t.active))
	for id := range t.active {
		out = append(out, id)
	}
	return out
}

// Reset clears the active set, e.g. when the caret leaves the surface.
func (t *Tracker) Reset() {
	t.active = make(map[formula.NodeID]struct{})
}

// Move advances the caret from prev to next over the given forest and
// updates the active set.
//
// Exits are considered first: the deepest active range that lost its
// closed-containment hold on the caret is deactivated, and the move is
// done. Only if nothing was exited does the move look for a newly
// entered range: of the ranges the caret is now strictly inside but
// was not before, the shallowest one not yet active is activated.
// Nested ranges are therefore entered outside-in and exited
// inside-out, one level per move.
func (t *Tracker) Move(rs []ranges.Range, prev, next int) Transition {
	touched := PositionRanges(rs, next, false)
	prevTouched := PositionRanges(rs, prev, false)
	inclusiveTouched := PositionRanges(rs, next, true)
	inclusivePrevTouched := PositionRanges(rs, prev, true)

	// Lists are innermost-first, so the deepest lost range is the
	// first and the shallowest gained range is the last.
	lost := subtract(inclusivePrevTouched, inclusiveTouched)
	for _, s := range lost {
		if t.Active(s.ID) {
			delete(t.active, s.ID)
			return Transition{Exited: s.ID}
		}
	}

	gained := subtract(touched, prevTouched)
	for i := len(gained) - 1; i >= 0; i-- {
		if !t.Active(gained[i].ID) {
			t.active[gained[i].ID] = struct{}{}
			return Transition{Entered: gained[i].ID}
		}
	}
	return Transition{}
}

// subtract returns the ranges of a not present (by id) in b,
// preserving a's order.
func subtract(a, b []*ranges.Styled) []*ranges.Styled {
	ids := make(map[formula.NodeID]struct{}, len(b))
	for _, s := range b {
		ids[s.ID] = struct{}{}
	}
	var out []*ranges.Styled
	for _, s := range a {
		if _, ok := ids[s.ID]; !ok {
			out = append(out, s)
		}
	}
	return out
}
