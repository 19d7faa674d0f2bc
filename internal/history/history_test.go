package history

import (
	"strconv"
	"testing"

	"profilecraft/internal/design"
)

func cfg(name string) design.Config {
	return design.Config{
		ID:            name,
		Name:          name,
		GlobalOpacity: 1,
		Layers:        []design.Layer{{Text: name, FontID: "inter", FontSize: 32, Opacity: 1}},
	}
}

func assertCurrent(t *testing.T, h *History, want string) {
	t.Helper()
	if got := h.Current().ID; got != want {
		t.Fatalf("Current() = %q, want %q", got, want)
	}
}

func TestNewHistory(t *testing.T) {
	h := New(cfg("init"))
	assertCurrent(t, h, "init")
	if h.Len() != 1 || h.Cursor() != 0 {
		t.Errorf("Len() = %d, Cursor() = %d, want 1, 0", h.Len(), h.Cursor())
	}
	if h.Limit() != DefaultLimit {
		t.Errorf("Limit() = %d, want %d", h.Limit(), DefaultLimit)
	}
	if h.CanUndo() || h.CanRedo() {
		t.Error("fresh history can undo or redo")
	}
}

func TestUndoRedoWalk(t *testing.T) {
	h := New(cfg("init"))
	h.Record(cfg("A"))
	h.Record(cfg("B"))
	h.Record(cfg("C"))
	assertCurrent(t, h, "C")

	h.Undo()
	assertCurrent(t, h, "B")
	h.Undo()
	assertCurrent(t, h, "A")

	h.Redo()
	h.Redo()
	assertCurrent(t, h, "C")
}

func TestUndoRedoAtBoundsAreNoOps(t *testing.T) {
	h := New(cfg("init"))
	if h.Undo() {
		t.Error("Undo() at oldest = true")
	}
	assertCurrent(t, h, "init")

	h.Record(cfg("A"))
	if h.Redo() {
		t.Error("Redo() at newest = true")
	}
	assertCurrent(t, h, "A")
	if h.Cursor() != 1 {
		t.Errorf("Cursor() = %d, want 1", h.Cursor())
	}
}

func TestUndoThenRedoRestoresIdenticalState(t *testing.T) {
	h := New(cfg("init"))
	h.Record(cfg("A"))
	h.Record(cfg("B"))

	before := h.Current()
	beforeCursor, beforeLen := h.Cursor(), h.Len()
	h.Undo()
	h.Redo()

	if !h.Current().Equal(before) {
		t.Errorf("Current() = %+v, want %+v", h.Current(), before)
	}
	if h.Cursor() != beforeCursor || h.Len() != beforeLen {
		t.Errorf("cursor/len = %d/%d, want %d/%d", h.Cursor(), h.Len(), beforeCursor, beforeLen)
	}
}

func TestRecordDiscardsRedoBranch(t *testing.T) {
	h := New(cfg("init"))
	h.Record(cfg("A"))
	h.Record(cfg("B"))
	h.Undo()
	h.Record(cfg("D"))

	if h.Redo() {
		t.Error("Redo() after record = true")
	}
	assertCurrent(t, h, "D")

	h.Undo()
	assertCurrent(t, h, "A")
	h.Undo()
	assertCurrent(t, h, "init")
	if h.Undo() {
		t.Error("B should be unreachable; history is longer than expected")
	}
}

func TestRecordIsNotIdempotent(t *testing.T) {
	h := New(cfg("init"))
	h.Record(cfg("A"))
	h.Record(cfg("A"))
	if h.Len() != 3 {
		t.Errorf("Len() = %d, want 3", h.Len())
	}
}

func TestCapDropsOldest(t *testing.T) {
	h := New(cfg("0"))
	for i := 1; i <= 25; i++ {
		h.Record(cfg(strconv.Itoa(i)))
	}

	if h.Len() != DefaultLimit {
		t.Fatalf("Len() = %d, want %d", h.Len(), DefaultLimit)
	}
	assertCurrent(t, h, "25")
	if h.Cursor() != DefaultLimit-1 {
		t.Errorf("Cursor() = %d, want %d", h.Cursor(), DefaultLimit-1)
	}

	for h.Undo() {
	}
	assertCurrent(t, h, "6")
}

func TestCapAfterUndoMidHistory(t *testing.T) {
	h := NewWithLimit(cfg("0"), 5)
	for i := 1; i <= 4; i++ {
		h.Record(cfg(strconv.Itoa(i)))
	}
	// Full at 0..4, cursor on 4.
	h.Undo()
	h.Undo()
	// Cursor on 2; recording drops 3 and 4, so nothing overflows.
	h.Record(cfg("x"))
	if h.Len() != 4 || h.Cursor() != 3 {
		t.Fatalf("Len()/Cursor() = %d/%d, want 4/3", h.Len(), h.Cursor())
	}
	assertCurrent(t, h, "x")

	h.Record(cfg("y"))
	h.Record(cfg("z"))
	if h.Len() != 5 || h.Cursor() != 4 {
		t.Fatalf("Len()/Cursor() = %d/%d, want 5/4", h.Len(), h.Cursor())
	}
	assertCurrent(t, h, "z")
	for h.Undo() {
	}
	assertCurrent(t, h, "1")
}

func TestSnapshotsDoNotAlias(t *testing.T) {
	c := cfg("A")
	h := New(cfg("init"))
	h.Record(c)

	c.Layers[0].Text = "mutated after record"
	if h.Current().Layers[0].Text != "A" {
		t.Error("Record() stored a reference to the caller's layers")
	}

	got := h.Current()
	got.Layers[0].Text = "mutated after current"
	if h.Current().Layers[0].Text != "A" {
		t.Error("Current() exposed snapshot storage")
	}
}

func TestLimitFloor(t *testing.T) {
	h := NewWithLimit(cfg("0"), 0)
	h.Record(cfg("1"))
	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1", h.Len())
	}
	assertCurrent(t, h, "1")
}
