package main

import "fmt"

func (m *model) selectLayer(delta int) {
	n := len(m.session.Current().Layers)
	if n == 0 {
		return
	}
	next := (m.session.Selected() + delta + n) % n
	m.session.SelectLayer(next)
	m.successMessage = fmt.Sprintf("Layer %d/%d", next+1, n)
}

func (m *model) listLen() int {
	switch m.mode {
	case ModeTemplates:
		return len(m.templates)
	case ModeDesigns:
		return len(m.designs)
	}
	return 0
}

// handleListMove moves the list cursor, wrapping at both ends.
func (m *model) handleListMove(key string) bool {
	n := m.listLen()
	if n == 0 {
		return false
	}
	switch key {
	case "k", "up":
		m.listIndex = (m.listIndex - 1 + n) % n
	case "j", "down":
		m.listIndex = (m.listIndex + 1) % n
	case "g", "home":
		m.listIndex = 0
	case "G", "end":
		m.listIndex = n - 1
	default:
		return false
	}
	return true
}

func (m *model) handleHelpScroll(key string) {
	switch key {
	case "esc", "q", "?":
		m.mode = ModeNormal
		m.helpScroll = 0
	case "j", "down":
		if m.helpScroll < len(m.helpLines())-1 {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	}
}
