package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// exportCmd snapshots the design now and waits for the image off the
// update loop.
func (m *model) exportCmd() tea.Cmd {
	results := m.session.Export(m.ctx, m.renderer)
	settings := m.settings
	return func() tea.Msg {
		res := <-results
		if res.Err != nil {
			return exportDoneMsg{result: res, err: res.Err}
		}
		path, err := writeExport(settings, res.Filename, res.Data)
		return exportDoneMsg{path: path, result: res, err: err}
	}
}

func writeExport(settings *Settings, filename string, data []byte) (string, error) {
	path, err := settings.exportPath(filename)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

func (m *model) exportDone(msg exportDoneMsg) {
	m.exporting--
	if msg.err != nil {
		m.errorMessage = fmt.Sprintf("Export failed: %v", msg.err)
		m.successMessage = ""
		return
	}
	m.errorMessage = ""
	m.successMessage = fmt.Sprintf("Exported %s", msg.path)
}
