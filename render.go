package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"profilecraft/internal/raster"
	"profilecraft/internal/style"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A78BFA"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	panelStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#374151")).
			Padding(0, 1)
)

var (
	black = colorful.Color{}
	white = colorful.Color{R: 1, G: 1, B: 1}
)

func hexOr(hex string, fallback colorful.Color) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	return c
}

type cell struct {
	r    rune
	bg   colorful.Color
	fg   colorful.Color
	bold bool
	mark bool
	// skip is set on the second column of a wide rune.
	skip bool
}

// canvasView draws the resolved canvas as a cols x canvasRows block of
// colored cells. Layers land on the row matching their vertical position;
// a layer whose row is taken moves to the next free one.
func canvasView(res style.Result, cols, selected int) string {
	c := res.Canvas
	opacity := clamp(c.Opacity, 0, 1)
	grid := make([][]cell, canvasRows)
	for y := range grid {
		grid[y] = make([]cell, cols)
		for x := range grid[y] {
			bg := backgroundAt(c, x, y, cols).BlendRgb(black, 1-opacity)
			grid[y][x] = cell{r: ' ', bg: bg}
		}
	}

	if p := c.Particles; p != nil {
		dots := min(p.Count/3+1, cols*canvasRows/8)
		fg := hexOr(p.Color, white)
		for i := 0; i < dots; i++ {
			x, y := (i*37+11)%cols, (i*61+7)%canvasRows
			grid[y][x].r = '·'
			grid[y][x].fg = grid[y][x].bg.BlendRgb(fg, 0.6*opacity)
		}
	}

	taken := make([]bool, canvasRows)
	for i, l := range res.Layers {
		row := freeRow(taken, int(l.Top/raster.CanvasHeight*canvasRows))
		if row < 0 {
			break
		}
		taken[row] = true

		text := runewidth.Truncate(l.Text, cols, "…")
		x := (cols - runewidth.StringWidth(text)) / 2
		fg := hexOr(l.Color, white)
		alpha := clamp(l.Opacity, 0, 1) * opacity
		for _, r := range text {
			w := runewidth.RuneWidth(r)
			if w == 0 || x+w > cols {
				continue
			}
			cur := &grid[row][x]
			cur.r = r
			cur.fg = cur.bg.BlendRgb(fg, alpha)
			cur.bold = l.FontWeight >= 700
			cur.mark = i == selected
			for k := 1; k < w; k++ {
				grid[row][x+k].skip = true
			}
			x += w
		}
	}

	lines := make([]string, canvasRows)
	for y, row := range grid {
		var b strings.Builder
		for _, cl := range row {
			if cl.skip {
				continue
			}
			st := lipgloss.NewStyle().
				Background(lipgloss.Color(cl.bg.Hex())).
				Foreground(lipgloss.Color(cl.fg.Hex())).
				Bold(cl.bold).
				Underline(cl.mark)
			b.WriteString(st.Render(string(cl.r)))
		}
		lines[y] = b.String()
	}
	block := strings.Join(lines, "\n")

	if c.BorderWidth <= 0 {
		return block
	}
	border := lipgloss.NormalBorder()
	if c.BorderRadius > 0 {
		border = lipgloss.RoundedBorder()
	}
	if c.BorderWidth >= 4 {
		border = lipgloss.ThickBorder()
	}
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(lipgloss.Color(hexOr(c.BorderColor, white).Hex())).
		Render(block)
}

// backgroundAt samples the canvas background at a cell, following the
// gradient across the full banner geometry.
func backgroundAt(c style.CanvasStyle, x, y, cols int) colorful.Color {
	from := hexOr(c.Color, black)
	if !c.Gradient {
		return from
	}
	to := hexOr(c.Color2, from)
	w, h := float64(raster.CanvasWidth), float64(raster.CanvasHeight)
	px := (float64(x) + 0.5) / float64(cols) * w
	py := (float64(y) + 0.5) / canvasRows * h

	x0, y0, x1, y1 := raster.GradientLine(c.GradientAngle, w, h)
	dx, dy := x1-x0, y1-y0
	length := dx*dx + dy*dy
	if length == 0 {
		return from
	}
	t := clamp(((px-x0)*dx+(py-y0)*dy)/length, 0, 1)
	return from.BlendRgb(to, t)
}

func freeRow(taken []bool, want int) int {
	if want < 0 {
		want = 0
	}
	if want >= len(taken) {
		want = len(taken) - 1
	}
	for i := 0; i < len(taken); i++ {
		for _, r := range []int{want + i, want - i} {
			if r >= 0 && r < len(taken) && !taken[r] {
				return r
			}
		}
	}
	return -1
}

func (m model) canvasCols() int {
	cols := m.width - 4
	if cols > maxCanvasCol {
		cols = maxCanvasCol
	}
	if cols < minCanvasCol {
		cols = minCanvasCol
	}
	return cols
}

func (m model) View() string {
	if m.mode == ModeHelp {
		return m.helpView()
	}

	cfg := m.session.Current()
	res := m.session.Resolve()

	var b strings.Builder
	play := "⏸ paused"
	if m.session.Playing() {
		play = "▶ playing"
	}
	b.WriteString(titleStyle.Render("profilecraft"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %s · %s · %s", cfg.Name, cfg.Category, play)))
	b.WriteString("\n\n")
	b.WriteString(canvasView(res, m.canvasCols(), m.session.Selected()))
	b.WriteString("\n")

	switch m.mode {
	case ModeTemplates:
		b.WriteString(m.templateList())
	case ModeDesigns:
		b.WriteString(m.designList())
	default:
		b.WriteString(m.detailsView(res))
	}
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m model) detailsView(res style.Result) string {
	cfg := m.session.Current()
	sel := m.session.Selected()
	l, ok := cfg.Layer(sel)
	if !ok {
		return panelStyle.Render("no layers")
	}
	ls := res.Layers[sel]

	anim := "none"
	if l.AnimationID != "" {
		anim = fmt.Sprintf("%s %.1fs %s", l.AnimationID, l.AnimationDuration, l.AnimationEasing)
	}
	bg := cfg.BackgroundColor
	if cfg.Gradient {
		bg = fmt.Sprintf("%s → %s @ %.0f°", cfg.BackgroundColor, cfg.GradientColor2, cfg.GradientAngle)
	}
	particles := "none"
	if p := res.Canvas.Particles; p != nil {
		particles = fmt.Sprintf("%s ×%d", p.EffectID, p.Count)
	}
	effect := cfg.BackgroundEffectID
	if effect == "" {
		effect = "none"
	}

	lines := []string{
		fmt.Sprintf("Layer %d/%d  %q", sel+1, len(cfg.Layers), l.Text),
		fmt.Sprintf("Font       %s (%s, %d) %.0fpx", l.FontID, ls.FontFamily, ls.FontWeight, l.FontSize),
		fmt.Sprintf("Color      %s  opacity %.2f  y %.0f", l.Color, l.Opacity, l.PositionY),
		fmt.Sprintf("Effect     %s", ls.Effect.CSS()),
		fmt.Sprintf("Animation  %s", anim),
		"",
		fmt.Sprintf("Background %s", bg),
		fmt.Sprintf("Overlay    %s   Particles %s", effect, particles),
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m model) templateList() string {
	var lines []string
	category := ""
	for i, t := range m.templates {
		if t.Category != category {
			category = t.Category
			lines = append(lines, dimStyle.Render(strings.ToUpper(category)))
		}
		line := fmt.Sprintf("  %s", t.Name)
		if i == m.listIndex {
			line = selectedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m model) designList() string {
	if len(m.designs) == 0 {
		return panelStyle.Render(dimStyle.Render("No saved designs. Press w in the editor to save one."))
	}
	lines := make([]string, len(m.designs))
	for i, d := range m.designs {
		line := "  " + d.Label()
		if d.Err != nil {
			line = errorStyle.Render(line)
		}
		if i == m.listIndex {
			line = selectedStyle.Render(line)
		}
		lines[i] = line
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m model) statusLine() string {
	h := m.session.History()
	status := fmt.Sprintf("Mode: %s | History %d/%d", m.modeString(), h.Cursor()+1, h.Len())
	if m.exporting > 0 {
		status += " | exporting…"
	}

	switch m.mode {
	case ModeTextInput:
		before := string(m.editText[:m.editCursorPos])
		after := string(m.editText[m.editCursorPos:])
		status += fmt.Sprintf(" | Text: %s█%s | Enter=apply, Ctrl+V=paste, Esc=cancel", before, after)
	case ModeTemplates:
		status += " | ↑/↓=choose, Enter=apply, Esc=back"
	case ModeDesigns:
		status += " | ↑/↓=choose, Enter=load, x=delete, Esc=back"
	}

	switch {
	case m.errorMessage != "":
		status += " | " + errorStyle.Render("ERROR: "+m.errorMessage)
	case m.successMessage != "":
		status += " | " + successStyle.Render(m.successMessage)
	case m.mode == ModeNormal:
		status += " | ? for help | q to quit"
	}
	return status
}

func (m model) modeString() string {
	switch m.mode {
	case ModeNormal:
		return "NORMAL"
	case ModeTextInput:
		return "TEXT"
	case ModeTemplates:
		return "TEMPLATES"
	case ModeDesigns:
		return "DESIGNS"
	case ModeHelp:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

func (m model) helpLines() []string {
	lines := []string{
		"profilecraft help",
		"=================",
		"",
	}
	for _, b := range m.keys.Bindings() {
		key := b.Key
		if key == " " {
			key = "space"
		}
		lines = append(lines, fmt.Sprintf("  %-12s %s", key, b.Action))
	}
	lines = append(lines,
		"",
		"Text input:",
		"  Enter applies the text, Ctrl+V pastes, Esc cancels.",
		"",
		"Saved designs:",
		"  Enter loads the design as a new undo step, x deletes it.",
	)
	if m.settings != nil && m.settings.PreviewAddr != "" {
		lines = append(lines, "", "Live preview: http://"+m.settings.PreviewAddr+"/")
	}
	lines = append(lines, "", "Press ?, q or Esc to close.")
	return lines
}

func (m model) helpView() string {
	lines := m.helpLines()
	start := m.helpScroll
	if start >= len(lines) {
		start = len(lines) - 1
	}
	end := len(lines)
	if m.height > 1 && end-start > m.height-1 {
		end = start + m.height - 1
	}
	return strings.Join(lines[start:end], "\n")
}
