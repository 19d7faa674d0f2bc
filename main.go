package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"profilecraft/internal/catalog"
	"profilecraft/internal/design"
	"profilecraft/internal/editor"
	"profilecraft/internal/preview"
	"profilecraft/internal/randomize"
	"profilecraft/internal/raster"
	"profilecraft/internal/store"
)

func main() {
	configPath := flag.String("config", defaultSettingsPath(), "settings file")
	exportDir := flag.String("export-dir", "", "directory for exported images")
	redisAddr := flag.String("redis", "", "keep saved designs in Redis at this address")
	previewAddr := flag.String("preview", "", "serve a live browser preview on this address")
	template := flag.String("template", "", "template to start from")
	seed := flag.Uint64("seed", 0, "seed for the randomizer (0 picks one)")
	logFile := flag.String("log", "", "write logs to this file")
	flag.Parse()

	settings, settingsErr := loadSettings(*configPath)
	home, _ := os.UserHomeDir()
	if *exportDir != "" {
		settings.ExportDir = expandPath(*exportDir, home)
	}
	if *redisAddr != "" {
		settings.RedisAddr = *redisAddr
	}
	if *previewAddr != "" {
		settings.PreviewAddr = *previewAddr
	}
	if *template != "" {
		settings.StartTemplate = *template
	}
	if *seed != 0 {
		settings.Seed = *seed
	}
	if *logFile != "" {
		settings.LogFile = expandPath(*logFile, home)
	}

	logger, closeLog, err := openLogger(settings.LogFile)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()
	slog.SetDefault(logger)
	if settingsErr != nil {
		slog.Warn("using default settings", "error", settingsErr)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	designs, closeStore := openStore(settings)
	defer closeStore()

	cat := catalog.Default()
	opts := editor.Options{
		Catalogs:     cat,
		Store:        designs,
		Logger:       logger,
		Template:     settings.StartTemplate,
		HistoryLimit: settings.HistoryLimit,
	}
	if settings.Seed != 0 {
		opts.Randomizer = randomize.NewSeeded(settings.Seed, cat)
	}
	session, err := editor.NewSession(opts)
	if err != nil {
		log.Fatal(err)
	}

	renderer := raster.NewRenderer(raster.NewGoFonts(cat.Fonts.All()))

	var frames *preview.Publisher
	if settings.PreviewAddr != "" {
		frames = &preview.Publisher{}
		srv := preview.NewServer(frames, renderer, cat, logger)
		go func() {
			if err := srv.ListenAndServe(ctx, settings.PreviewAddr); err != nil {
				slog.Error("preview server failed", "error", err)
			}
		}()
	}

	m := initialModel(ctx, session, settings, renderer, frames)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}

// openStore uses Redis when configured and reachable, the designs file
// otherwise.
func openStore(s *Settings) (store.Store, func()) {
	if s.RedisAddr != "" {
		client, err := store.ConnectRedis(s.RedisAddr, s.RedisPassword, s.RedisDB)
		if err == nil {
			return store.NewRedis(client, s.RedisKey), func() { client.Close() }
		}
		slog.Warn("redis unavailable, saving designs to file", "error", err, "file", s.DesignsFile)
	}
	return store.NewFile(s.DesignsFile), func() {}
}

func initialModel(ctx context.Context, session *editor.Session, settings *Settings, renderer editor.Rasterizer, frames *preview.Publisher) model {
	var templates []catalog.Template
	for _, g := range catalog.TemplateCategories(session.Catalogs().Templates) {
		templates = append(templates, g.Templates...)
	}
	m := model{
		ctx:       ctx,
		session:   session,
		keys:      editor.DefaultKeymap(),
		settings:  settings,
		renderer:  renderer,
		frames:    frames,
		mode:      ModeNormal,
		templates: templates,
	}
	m.publish()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

// publish hands the live design to the browser preview, if one runs.
func (m *model) publish() {
	if m.frames == nil {
		return
	}
	m.frames.Publish(m.session.Current(), m.session.Resolve(), m.session.Playing())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case exportDoneMsg:
		m.exportDone(msg)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case ModeHelp:
			m.handleHelpScroll(msg.String())
			return m, nil
		case ModeTextInput:
			m.handleTextInput(msg)
			return m, nil
		case ModeTemplates:
			m.handleTemplates(msg.String())
			return m, nil
		case ModeDesigns:
			m.handleDesigns(msg.String())
			return m, nil
		}

		action, ok := m.keys.Lookup(msg.String())
		if !ok {
			return m, nil
		}
		m.errorMessage = ""
		m.successMessage = ""
		cmd := m.dispatch(action)
		return m, cmd
	}
	return m, nil
}

func (m *model) dispatch(action editor.Action) tea.Cmd {
	s := m.session
	switch action {
	case editor.ActionExport:
		m.exporting++
		m.successMessage = "Exporting…"
		return m.exportCmd()
	case editor.ActionSurprise:
		s.Surprise()
		m.successMessage = "Surprise! " + s.Current().Name
	case editor.ActionUndo:
		m.undo()
		return nil
	case editor.ActionRedo:
		m.redo()
		return nil
	case editor.ActionTogglePlayback:
		if s.TogglePlayback() {
			m.successMessage = "Playing"
		} else {
			m.successMessage = "Paused"
		}
	case editor.ActionSave:
		if err := s.Save(m.ctx); err != nil {
			m.errorMessage = fmt.Sprintf("Save failed: %v", err)
			return nil
		}
		m.successMessage = "Design saved"
		return nil
	case editor.ActionRandomizeColors:
		s.RandomizeColors()
		m.successMessage = "New colors"
	case editor.ActionRandomizeAnimation:
		s.RandomizeAnimation()
		m.successMessage = "Animation: " + s.Current().AnimationID
	case editor.ActionRandomizeFont:
		s.RandomizeFont()
		if l, ok := s.Current().Layer(s.Selected()); ok {
			m.successMessage = "Font: " + l.FontID
		}
	case editor.ActionNextLayer:
		m.selectLayer(1)
	case editor.ActionPrevLayer:
		m.selectLayer(-1)
	case editor.ActionEditText:
		if l, ok := s.Current().Layer(s.Selected()); ok {
			m.editText = []rune(l.Text)
			m.editCursorPos = len(m.editText)
			m.mode = ModeTextInput
		}
		return nil
	case editor.ActionMoveUp, editor.ActionMoveDown:
		m.nudgeLayer(action)
	case editor.ActionGrow, editor.ActionShrink:
		m.resizeLayer(action)
	case editor.ActionToggleShadow:
		if l, ok := s.Current().Layer(s.Selected()); ok {
			s.UpdateSelected(design.LayerPatch{ShadowEnabled: design.Set(!l.ShadowEnabled)})
		}
	case editor.ActionToggleGlow:
		if l, ok := s.Current().Layer(s.Selected()); ok {
			s.UpdateSelected(design.LayerPatch{GlowEnabled: design.Set(!l.GlowEnabled)})
		}
	case editor.ActionToggleGradient:
		s.Update(design.ConfigPatch{Gradient: design.Set(!s.Current().Gradient)})
	case editor.ActionCycleAnimation:
		m.cycleLayerAnimation()
	case editor.ActionCycleParticles:
		next := cycle(s.Catalogs().Particles.Keys(), s.Current().ParticleID, false)
		s.Update(design.ConfigPatch{ParticleID: design.Set(next)})
		m.successMessage = "Particles: " + next
	case editor.ActionCycleBackground:
		next := cycle(s.Catalogs().Backgrounds.Keys(), s.Current().BackgroundEffectID, true)
		s.Update(design.ConfigPatch{BackgroundEffectID: design.Set(next)})
		if next == "" {
			next = "none"
		}
		m.successMessage = "Background effect: " + next
	case editor.ActionTemplates:
		m.mode = ModeTemplates
		m.listIndex = 0
		for i, t := range m.templates {
			if t.ID == s.Current().ID {
				m.listIndex = i
			}
		}
		return nil
	case editor.ActionDesigns:
		m.openDesigns()
		return nil
	case editor.ActionCopyCSS:
		if err := writeClipboardText(stylesheet(s.Resolve())); err != nil {
			m.errorMessage = fmt.Sprintf("Copy failed: %v", err)
		} else {
			m.successMessage = "Stylesheet copied"
		}
		return nil
	case editor.ActionHelp:
		m.mode = ModeHelp
		return nil
	case editor.ActionQuit:
		return tea.Quit
	}
	m.publish()
	return nil
}

func (m *model) nudgeLayer(action editor.Action) {
	l, ok := m.session.Current().Layer(m.session.Selected())
	if !ok {
		return
	}
	step := positionStep
	if action == editor.ActionMoveUp {
		step = -step
	}
	y := clamp(l.PositionY+step, 0, raster.CanvasHeight)
	m.session.UpdateSelected(design.LayerPatch{PositionY: &y})
}

func (m *model) resizeLayer(action editor.Action) {
	l, ok := m.session.Current().Layer(m.session.Selected())
	if !ok {
		return
	}
	step := fontSizeStep
	if action == editor.ActionShrink {
		step = -step
	}
	size := clamp(l.FontSize+step, minFontSize, maxFontSize)
	m.session.UpdateSelected(design.LayerPatch{FontSize: &size})
	m.successMessage = fmt.Sprintf("Font size %.0fpx", size)
}

// cycleLayerAnimation steps the selected layer through the animation
// catalog, taking each animation's default timing.
func (m *model) cycleLayerAnimation() {
	s := m.session
	l, ok := s.Current().Layer(s.Selected())
	if !ok {
		return
	}
	next := cycle(s.Catalogs().Animations.Keys(), l.AnimationID, true)
	patch := design.LayerPatch{AnimationID: design.Set(next)}
	if anim, ok := s.Catalogs().Animations.Lookup(next); ok {
		patch.AnimationDuration = design.Set(anim.DefaultDuration)
		patch.AnimationDelay = design.Set(anim.DefaultDelay)
		patch.AnimationEasing = design.Set(anim.DefaultEasing)
		m.successMessage = fmt.Sprintf("Animation: %s (%s)", anim.Name, anim.Category)
	} else {
		m.successMessage = "Animation: none"
	}
	s.UpdateSelected(patch)
}

func (m *model) handleTextInput(msg tea.KeyMsg) {
	switch {
	case msg.Type == tea.KeyEscape:
		m.mode = ModeNormal
		m.editText = nil
		m.editCursorPos = 0
	case msg.Type == tea.KeyEnter:
		text := string(m.editText)
		m.mode = ModeNormal
		m.editText = nil
		m.editCursorPos = 0
		if l, ok := m.session.Current().Layer(m.session.Selected()); ok && l.Text != text {
			m.session.UpdateSelected(design.LayerPatch{Text: &text})
			m.successMessage = "Text updated"
			m.publish()
		}
	case msg.Type == tea.KeyCtrlV:
		pasted, err := readClipboardText()
		if err != nil {
			m.errorMessage = fmt.Sprintf("Paste failed: %v", err)
			return
		}
		m.insert([]rune(singleLine(pasted)))
	case msg.String() == "left":
		if m.editCursorPos > 0 {
			m.editCursorPos--
		}
	case msg.String() == "right":
		if m.editCursorPos < len(m.editText) {
			m.editCursorPos++
		}
	case msg.Type == tea.KeyHome:
		m.editCursorPos = 0
	case msg.Type == tea.KeyEnd:
		m.editCursorPos = len(m.editText)
	case msg.Type == tea.KeyBackspace:
		if m.editCursorPos > 0 {
			m.editText = append(m.editText[:m.editCursorPos-1], m.editText[m.editCursorPos:]...)
			m.editCursorPos--
		}
	case msg.Type == tea.KeyDelete:
		if m.editCursorPos < len(m.editText) {
			m.editText = append(m.editText[:m.editCursorPos], m.editText[m.editCursorPos+1:]...)
		}
	case msg.Type == tea.KeyRunes:
		m.insert(msg.Runes)
	case msg.String() == " ":
		m.insert([]rune{' '})
	}
}

func (m *model) insert(r []rune) {
	if len(r) == 0 {
		return
	}
	text := make([]rune, 0, len(m.editText)+len(r))
	text = append(text, m.editText[:m.editCursorPos]...)
	text = append(text, r...)
	text = append(text, m.editText[m.editCursorPos:]...)
	m.editText = text
	m.editCursorPos += len(r)
}

func (m *model) handleTemplates(key string) {
	if m.handleListMove(key) {
		return
	}
	switch key {
	case "esc", "q", "t":
		m.mode = ModeNormal
	case "enter":
		if m.listIndex < 0 || m.listIndex >= len(m.templates) {
			return
		}
		t := m.templates[m.listIndex]
		if m.session.ApplyTemplate(t.ID) {
			m.successMessage = "Template: " + t.Name
			m.errorMessage = ""
			m.publish()
		}
		m.mode = ModeNormal
	}
}

func (m *model) openDesigns() {
	designs, err := m.session.Saved(m.ctx)
	if err != nil {
		m.errorMessage = fmt.Sprintf("Cannot list designs: %v", err)
		return
	}
	m.designs = designs
	if m.mode != ModeDesigns {
		m.listIndex = 0
	}
	if m.listIndex >= len(designs) {
		m.listIndex = max(len(designs)-1, 0)
	}
	m.mode = ModeDesigns
}

func (m *model) handleDesigns(key string) {
	if m.handleListMove(key) {
		return
	}
	switch key {
	case "esc", "q", "o":
		m.mode = ModeNormal
	case "enter":
		if m.listIndex >= len(m.designs) {
			return
		}
		if err := m.session.Load(m.ctx, m.listIndex); err != nil {
			m.errorMessage = fmt.Sprintf("Load failed: %v", err)
			m.successMessage = ""
			return
		}
		m.errorMessage = ""
		m.successMessage = "Design loaded"
		m.mode = ModeNormal
		m.publish()
	case "x":
		if m.listIndex >= len(m.designs) {
			return
		}
		if err := m.session.Delete(m.ctx, m.listIndex); err != nil {
			m.errorMessage = fmt.Sprintf("Delete failed: %v", err)
			return
		}
		m.successMessage = "Design deleted"
		m.errorMessage = ""
		m.openDesigns()
	}
}
