package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"profilecraft/internal/catalog"
	"profilecraft/internal/design"
	"profilecraft/internal/editor"
	"profilecraft/internal/preview"
	"profilecraft/internal/randomize"
	"profilecraft/internal/store"
	"profilecraft/internal/style"
)

type fakeRasterizer struct{ err error }

func (f fakeRasterizer) Capture(context.Context, style.Result) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte("png-bytes"), nil
}

func newTestModel(t *testing.T, r editor.Rasterizer, frames *preview.Publisher) model {
	t.Helper()
	session, err := editor.NewSession(editor.Options{
		Store:      store.NewMemory(),
		Randomizer: randomize.NewSeeded(3, catalog.Default()),
	})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	settings := &Settings{ExportDir: t.TempDir()}
	m := initialModel(context.Background(), session, settings, r, frames)
	m.width, m.height = 100, 40
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+y":
		return tea.KeyMsg{Type: tea.KeyCtrlY}
	case "ctrl+z":
		return tea.KeyMsg{Type: tea.KeyCtrlZ}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m model, keys ...string) (model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(model)
	}
	return m, cmd
}

func TestUndoRedoKeys(t *testing.T) {
	m := newTestModel(t, fakeRasterizer{}, nil)
	start := m.session.Current()

	m, _ = press(t, m, "c")
	colored := m.session.Current()
	if colored.Equal(start) {
		t.Fatal("random colors did not change the design")
	}

	m, _ = press(t, m, "ctrl+z")
	if !m.session.Current().Equal(start) {
		t.Error("ctrl+z did not undo")
	}
	m, _ = press(t, m, "ctrl+y")
	if !m.session.Current().Equal(colored) {
		t.Error("ctrl+y did not redo")
	}
}

func TestSurpriseKeyRecords(t *testing.T) {
	m := newTestModel(t, fakeRasterizer{}, nil)
	m, _ = press(t, m, "ctrl+r")
	if m.session.History().Len() != 2 {
		t.Errorf("history len = %d, want 2", m.session.History().Len())
	}
	if !strings.HasPrefix(m.successMessage, "Surprise!") {
		t.Errorf("status = %q", m.successMessage)
	}
}

func TestSpaceTogglesPlayback(t *testing.T) {
	m := newTestModel(t, fakeRasterizer{}, nil)
	m, _ = press(t, m, " ")
	if !m.session.Playing() {
		t.Error("space did not start playback")
	}
	m, _ = press(t, m, " ")
	if m.session.Playing() {
		t.Error("space did not pause playback")
	}
	if m.session.History().Len() != 1 {
		t.Error("playback toggled history")
	}
}

func TestEditLayerText(t *testing.T) {
	m := newTestModel(t, fakeRasterizer{}, nil)
	m, _ = press(t, m, "enter")
	if m.mode != ModeTextInput {
		t.Fatalf("mode = %s, want TEXT", m.modeString())
	}
	for range m.editText {
		m, _ = press(t, m, "backspace")
	}
	m, _ = press(t, m, "H", "i", " ", "q", "enter")

	if m.mode != ModeNormal {
		t.Errorf("mode = %s after enter", m.modeString())
	}
	if got := m.session.Current().Layers[0].Text; got != "Hi q" {
		t.Errorf("layer text = %q, want %q", got, "Hi q")
	}
	if m.session.History().Len() != 2 {
		t.Errorf("history len = %d, want 2", m.session.History().Len())
	}
}

func TestEditLayerTextCancel(t *testing.T) {
	m := newTestModel(t, fakeRasterizer{}, nil)
	before := m.session.Current()
	m, _ = press(t, m, "enter", "x", "y", "esc")
	if m.mode != ModeNormal || !m.session.Current().Equal(before) || m.session.History().Len() != 1 {
		t.Error("esc did not discard the edit")
	}
}

func TestTemplatePicker(t *testing.T) {
	m := newTestModel(t, fakeRasterizer{}, nil)
	m, _ = press(t, m, "t")
	if m.mode != ModeTemplates {
		t.Fatalf("mode = %s, want TEMPLATES", m.modeString())
	}
	if m.templates[m.listIndex].ID != catalog.DefaultTemplateID {
		t.Errorf("picker starts at %q", m.templates[m.listIndex].ID)
	}
	m, _ = press(t, m, "down", "enter")
	want := m.templates[m.listIndex].ID
	if m.session.Current().ID != want {
		t.Errorf("applied %q, want %q", m.session.Current().ID, want)
	}
	if m.mode != ModeNormal {
		t.Error("picker stayed open")
	}
}

func TestSaveAndLoadDesigns(t *testing.T) {
	m := newTestModel(t, fakeRasterizer{}, nil)
	m, _ = press(t, m, "w")
	if m.successMessage != "Design saved" {
		t.Fatalf("status = %q, error = %q", m.successMessage, m.errorMessage)
	}
	saved := m.session.Current()

	m, _ = press(t, m, "ctrl+r", "o")
	if m.mode != ModeDesigns || len(m.designs) != 1 {
		t.Fatalf("mode %s designs %d", m.modeString(), len(m.designs))
	}
	m, _ = press(t, m, "enter")
	if !m.session.Current().Equal(saved) {
		t.Error("load did not restore the saved design")
	}
	if m.session.History().Len() != 3 {
		t.Errorf("history len = %d, want 3", m.session.History().Len())
	}

	m, _ = press(t, m, "o", "x")
	if len(m.designs) != 0 {
		t.Errorf("designs after delete = %d", len(m.designs))
	}
}

func TestLoadMalformedDesignReportsError(t *testing.T) {
	session, err := editor.NewSession(editor.Options{Store: store.NewMemory("{oops")})
	if err != nil {
		t.Fatal(err)
	}
	m := initialModel(context.Background(), session, &Settings{}, fakeRasterizer{}, nil)
	m, _ = press(t, m, "o", "enter")
	if !strings.Contains(m.errorMessage, "Load failed") {
		t.Errorf("error = %q", m.errorMessage)
	}
	if m.session.History().Len() != 1 {
		t.Error("failed load recorded history")
	}
}

func TestExportWritesFile(t *testing.T) {
	m := newTestModel(t, fakeRasterizer{}, nil)
	m, cmd := press(t, m, "ctrl+s")
	if cmd == nil {
		t.Fatal("ctrl+s returned no command")
	}
	if m.exporting != 1 {
		t.Errorf("exporting = %d", m.exporting)
	}

	msg := cmd().(exportDoneMsg)
	if msg.err != nil {
		t.Fatalf("export error = %v", msg.err)
	}
	if filepath.Dir(msg.path) != m.settings.ExportDir {
		t.Errorf("exported to %q", msg.path)
	}
	data, err := os.ReadFile(msg.path)
	if err != nil || string(data) != "png-bytes" {
		t.Errorf("file = %q, %v", data, err)
	}

	next, _ := m.Update(msg)
	m = next.(model)
	if m.exporting != 0 || !strings.Contains(m.successMessage, "Exported") {
		t.Errorf("exporting %d status %q", m.exporting, m.successMessage)
	}
}

func TestExportFailureKeepsHistory(t *testing.T) {
	m := newTestModel(t, fakeRasterizer{err: errors.New("no renderer")}, nil)
	m, cmd := press(t, m, "ctrl+s")
	next, _ := m.Update(cmd())
	m = next.(model)
	if !strings.Contains(m.errorMessage, "Export failed") {
		t.Errorf("error = %q", m.errorMessage)
	}
	if m.session.History().Len() != 1 {
		t.Error("export changed history")
	}
}

func TestLayerAdjustments(t *testing.T) {
	m := newTestModel(t, fakeRasterizer{}, nil)
	l0 := m.session.Current().Layers[0]

	m, _ = press(t, m, "+", "down", "s", "n")
	l := m.session.Current().Layers[0]
	if l.FontSize != l0.FontSize+fontSizeStep {
		t.Errorf("FontSize = %v", l.FontSize)
	}
	if l.PositionY != l0.PositionY+positionStep {
		t.Errorf("PositionY = %v", l.PositionY)
	}
	if l.ShadowEnabled == l0.ShadowEnabled {
		t.Error("shadow not toggled")
	}
	if l.AnimationID == l0.AnimationID {
		t.Error("animation not cycled")
	}
	if m.session.History().Len() != 5 {
		t.Errorf("history len = %d, want 5", m.session.History().Len())
	}
}

func TestTabSelectsNextLayer(t *testing.T) {
	m := newTestModel(t, fakeRasterizer{}, nil)
	m, _ = press(t, m, "tab")
	if m.session.Selected() != 1 {
		t.Errorf("Selected() = %d, want 1", m.session.Selected())
	}
	first := m.session.Current().Layers[0]
	m, _ = press(t, m, "f")
	if got := m.session.Current().Layers[0]; got.FontID != first.FontID || got.Text != first.Text {
		t.Error("random font touched the unselected layer")
	}
	m, _ = press(t, m, "tab")
	if m.session.Selected() != 0 {
		t.Errorf("Selected() = %d after wrapping, want 0", m.session.Selected())
	}
}

func TestPreviewFramesFollowEdits(t *testing.T) {
	frames := &preview.Publisher{}
	m := newTestModel(t, fakeRasterizer{}, frames)
	if frames.Latest() == nil {
		t.Fatal("no initial frame")
	}
	m, _ = press(t, m, "d")
	f := frames.Latest()
	if f.Design.Gradient != m.session.Current().Gradient {
		t.Error("frame does not reflect the gradient toggle")
	}
	m, _ = press(t, m, "ctrl+z")
	if frames.Latest().Version <= f.Version {
		t.Error("undo did not publish")
	}
}

func TestCtrlCQuitsFromAnyMode(t *testing.T) {
	m := newTestModel(t, fakeRasterizer{}, nil)
	m, _ = press(t, m, "enter")
	_, cmd := press(t, m, "ctrl+c")
	if cmd == nil {
		t.Fatal("ctrl+c returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c did not quit")
	}
}

func TestViewRenders(t *testing.T) {
	m := newTestModel(t, fakeRasterizer{}, nil)
	m.session.Update(design.ConfigPatch{Gradient: design.Set(true), ParticleID: design.Set("sparkles")})
	for _, k := range []string{"", "t", "esc", "o", "esc", "?"} {
		if k != "" {
			m, _ = press(t, m, k)
		}
		if out := m.View(); out == "" {
			t.Errorf("View() empty in mode %s", m.modeString())
		}
	}
	if !strings.Contains(m.View(), "ctrl+z") {
		t.Error("help does not list the undo binding")
	}
}

func TestStylesheet(t *testing.T) {
	m := newTestModel(t, fakeRasterizer{}, nil)
	m.session.UpdateSelected(design.LayerPatch{AnimationID: design.Set("glitch")})
	css := stylesheet(m.session.Resolve())
	for _, want := range []string{"@keyframes glitch", ".banner {", ".banner-layer-1 {"} {
		if !strings.Contains(css, want) {
			t.Errorf("stylesheet missing %q", want)
		}
	}
}

func TestCycle(t *testing.T) {
	keys := []string{"a", "b", "c"}
	tests := []struct {
		current  string
		withNone bool
		want     string
	}{
		{"a", false, "b"},
		{"c", false, "a"},
		{"zzz", false, "a"},
		{"", true, "a"},
		{"c", true, ""},
	}
	for _, tt := range tests {
		if got := cycle(keys, tt.current, tt.withNone); got != tt.want {
			t.Errorf("cycle(%q, %v) = %q, want %q", tt.current, tt.withNone, got, tt.want)
		}
	}
}

func TestSingleLine(t *testing.T) {
	if got := singleLine("  one\r\ntwo\tthree\x07 "); got != "one two three" {
		t.Errorf("singleLine() = %q", got)
	}
}

func TestFreeRow(t *testing.T) {
	taken := []bool{false, true, true, false}
	if got := freeRow(taken, 1); got != 0 {
		t.Errorf("freeRow(1) = %d, want 0", got)
	}
	if got := freeRow(taken, 9); got != 3 {
		t.Errorf("freeRow(9) = %d, want 3", got)
	}
	if got := freeRow([]bool{true}, 0); got != -1 {
		t.Errorf("freeRow(full) = %d, want -1", got)
	}
}
