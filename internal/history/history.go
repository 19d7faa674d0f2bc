// Package history keeps a bounded, linear undo/redo sequence of design
// snapshots.
package history

import "profilecraft/internal/design"

// DefaultLimit is the number of snapshots kept.
const DefaultLimit = 20

// History owns its snapshots exclusively. The snapshot at the cursor is the
// live design. It is not safe for concurrent use.
type History struct {
	snapshots []design.Config
	cursor    int
	limit     int
}

// New starts a history holding only initial.
func New(initial design.Config) *History {
	return NewWithLimit(initial, DefaultLimit)
}

// NewWithLimit is New with a custom cap. Limits below 1 are raised to 1.
func NewWithLimit(initial design.Config, limit int) *History {
	if limit < 1 {
		limit = 1
	}
	return &History{
		snapshots: []design.Config{initial.Clone()},
		limit:     limit,
	}
}

// Record makes c the live design. Snapshots after the cursor are discarded,
// c is appended, and the oldest snapshots are dropped once the cap is
// exceeded. The cursor always ends on c.
func (h *History) Record(c design.Config) {
	h.snapshots = append(h.snapshots[:h.cursor+1], c.Clone())
	if over := len(h.snapshots) - h.limit; over > 0 {
		kept := make([]design.Config, h.limit)
		copy(kept, h.snapshots[over:])
		h.snapshots = kept
	}
	h.cursor = len(h.snapshots) - 1
}

// Undo steps back one snapshot. It reports false, and does nothing, at the
// oldest snapshot.
func (h *History) Undo() bool {
	if h.cursor == 0 {
		return false
	}
	h.cursor--
	return true
}

// Redo steps forward one snapshot. It reports false, and does nothing, at
// the newest snapshot.
func (h *History) Redo() bool {
	if h.cursor == len(h.snapshots)-1 {
		return false
	}
	h.cursor++
	return true
}

// Current returns a copy of the live design.
func (h *History) Current() design.Config {
	return h.snapshots[h.cursor].Clone()
}

func (h *History) CanUndo() bool { return h.cursor > 0 }

func (h *History) CanRedo() bool { return h.cursor < len(h.snapshots)-1 }

// Len is the number of snapshots held.
func (h *History) Len() int { return len(h.snapshots) }

// Cursor is the index of the live snapshot.
func (h *History) Cursor() int { return h.cursor }

// Limit is the snapshot cap.
func (h *History) Limit() int { return h.limit }
