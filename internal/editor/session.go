// Package editor ties the design model, history, randomizer and saved
// designs together behind the operations the user interface triggers.
//
// A Session is driven from a single goroutine. Export is the only
// operation that does work off that goroutine, and it never touches the
// session's history.
package editor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"profilecraft/internal/catalog"
	"profilecraft/internal/design"
	"profilecraft/internal/history"
	"profilecraft/internal/randomize"
	"profilecraft/internal/store"
	"profilecraft/internal/style"
)

// Options configures a new Session. Zero values pick defaults.
type Options struct {
	Catalogs     *catalog.Catalogs
	Store        store.Store
	Randomizer   *randomize.Randomizer
	Logger       *slog.Logger
	Template     string
	HistoryLimit int
}

// Session is one editing session.
type Session struct {
	cat     *catalog.Catalogs
	history *history.History
	rand    *randomize.Randomizer
	store   store.Store
	log     *slog.Logger

	selected int
	playing  bool
}

// NewSession starts a session on opts.Template, or the default template
// when none is named.
func NewSession(opts Options) (*Session, error) {
	cat := opts.Catalogs
	if cat == nil {
		cat = catalog.Default()
	}
	id := opts.Template
	if id == "" {
		id = catalog.DefaultTemplateID
	}
	initial, ok := cat.TemplateConfig(id)
	if !ok {
		return nil, fmt.Errorf("unknown template %q", id)
	}

	st := opts.Store
	if st == nil {
		st = store.NewMemory()
	}
	rnd := opts.Randomizer
	if rnd == nil {
		rnd = randomize.NewSeeded(rand.Uint64(), cat)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	h := history.New(initial)
	if opts.HistoryLimit > 0 {
		h = history.NewWithLimit(initial, opts.HistoryLimit)
	}

	return &Session{
		cat:     cat,
		history: h,
		rand:    rnd,
		store:   st,
		log:     logger,
	}, nil
}

// Catalogs returns the catalogs the session reads from.
func (s *Session) Catalogs() *catalog.Catalogs { return s.cat }

// Current returns the live design.
func (s *Session) Current() design.Config { return s.history.Current() }

// History exposes the session's history for inspection.
func (s *Session) History() *history.History { return s.history }

// Playing reports whether animations are previewed.
func (s *Session) Playing() bool { return s.playing }

// Selected returns the index of the selected layer.
func (s *Session) Selected() int { return s.selected }

func (s *Session) record(c design.Config) {
	s.history.Record(c)
	s.clampSelection()
}

func (s *Session) clampSelection() {
	n := len(s.history.Current().Layers)
	if s.selected >= n {
		s.selected = n - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

// Update applies a canvas-level patch.
func (s *Session) Update(p design.ConfigPatch) {
	s.record(design.Derive(s.Current(), p))
}

// UpdateLayer patches one layer. An index outside the layer list records
// nothing and reports false.
func (s *Session) UpdateLayer(index int, p design.LayerPatch) bool {
	cfg := s.Current()
	if _, ok := cfg.Layer(index); !ok {
		return false
	}
	s.record(design.DeriveLayer(cfg, index, p))
	return true
}

// UpdateSelected patches the selected layer.
func (s *Session) UpdateSelected(p design.LayerPatch) bool {
	return s.UpdateLayer(s.selected, p)
}

// ApplyTemplate replaces the design with a template. Unknown ids leave the
// session unchanged and report false.
func (s *Session) ApplyTemplate(id string) bool {
	cfg, ok := s.cat.TemplateConfig(id)
	if !ok {
		return false
	}
	s.record(cfg)
	return true
}

// Surprise applies a template picked at random.
func (s *Session) Surprise() {
	s.record(s.rand.Template(s.Current()))
}

func (s *Session) RandomizeColors() {
	s.record(s.rand.Colors(s.Current()))
}

func (s *Session) RandomizeAnimation() {
	s.record(s.rand.Animation(s.Current()))
}

// RandomizeFont picks a random font for the selected layer.
func (s *Session) RandomizeFont() {
	s.record(s.rand.Font(s.Current(), s.selected))
}

func (s *Session) Undo() bool {
	if !s.history.Undo() {
		return false
	}
	s.clampSelection()
	return true
}

func (s *Session) Redo() bool {
	if !s.history.Redo() {
		return false
	}
	s.clampSelection()
	return true
}

// TogglePlayback flips the animation preview and returns the new state.
func (s *Session) TogglePlayback() bool {
	s.playing = !s.playing
	return s.playing
}

// SelectLayer selects a layer, reporting false for an index outside the
// layer list.
func (s *Session) SelectLayer(index int) bool {
	if index < 0 || index >= len(s.Current().Layers) {
		return false
	}
	s.selected = index
	return true
}

// Resolve resolves the live design for presentation.
func (s *Session) Resolve() style.Result {
	return style.Resolve(s.Current(), s.cat, s.playing)
}

// Save appends the live design to the saved designs.
func (s *Session) Save(ctx context.Context) error {
	text, err := design.Marshal(s.Current())
	if err != nil {
		return err
	}
	if err := s.store.Append(ctx, text); err != nil {
		return err
	}
	s.log.Info("design saved", "name", s.Current().Name)
	return nil
}

// Saved lists the saved designs in order. Entries that no longer decode
// are listed with a DecodeError so callers can show them as broken.
func (s *Session) Saved(ctx context.Context) ([]SavedDesign, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]SavedDesign, len(items))
	for i, text := range items {
		cfg, err := design.Unmarshal(text)
		out[i] = SavedDesign{Index: i, Config: cfg, Err: err}
	}
	return out, nil
}

// Load makes a saved design the live design as a new history entry. The
// saved text is decoded over the live design, so keys it lacks keep their
// current values. A malformed entry is reported and history is left
// untouched.
func (s *Session) Load(ctx context.Context, index int) error {
	items, err := s.store.List(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(items) {
		return fmt.Errorf("load design %d: %w", index, store.ErrIndexOutOfRange)
	}
	cfg, err := design.UnmarshalOnto(s.Current(), items[index])
	if err != nil {
		s.log.Warn("saved design is malformed", "index", index, "err", err)
		return fmt.Errorf("load design %d: %w", index, err)
	}
	s.record(cfg)
	return nil
}

// Delete removes a saved design.
func (s *Session) Delete(ctx context.Context, index int) error {
	if err := s.store.Remove(ctx, index); err != nil {
		return err
	}
	s.log.Info("design deleted", "index", index)
	return nil
}

// SavedDesign is one entry of the saved design list.
type SavedDesign struct {
	Index  int
	Config design.Config
	Err    error
}

// Label is a short description for lists.
func (d SavedDesign) Label() string {
	if d.Err != nil {
		return fmt.Sprintf("#%d (unreadable)", d.Index+1)
	}
	name := d.Config.Name
	if name == "" {
		name = d.Config.ID
	}
	if len(d.Config.Layers) > 0 && d.Config.Layers[0].Text != "" {
		return fmt.Sprintf("#%d %s: %s", d.Index+1, name, d.Config.Layers[0].Text)
	}
	return fmt.Sprintf("#%d %s", d.Index+1, name)
}
