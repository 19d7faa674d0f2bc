package main

import "fmt"

func (m *model) undo() {
	if !m.session.Undo() {
		m.successMessage = "Nothing to undo"
		return
	}
	h := m.session.History()
	m.successMessage = fmt.Sprintf("Undo (%d/%d)", h.Cursor()+1, h.Len())
	m.publish()
}

func (m *model) redo() {
	if !m.session.Redo() {
		m.successMessage = "Nothing to redo"
		return
	}
	h := m.session.History()
	m.successMessage = fmt.Sprintf("Redo (%d/%d)", h.Cursor()+1, h.Len())
	m.publish()
}
