package main

import (
	"context"

	"profilecraft/internal/catalog"
	"profilecraft/internal/editor"
	"profilecraft/internal/preview"
)

type model struct {
	ctx      context.Context
	width    int
	height   int
	session  *editor.Session
	keys     *editor.Keymap
	settings *Settings
	renderer editor.Rasterizer
	frames   *preview.Publisher

	mode       Mode
	helpScroll int

	editText      []rune
	editCursorPos int

	listIndex int
	templates []catalog.Template
	designs   []editor.SavedDesign

	exporting      int
	errorMessage   string
	successMessage string
}

// exportDoneMsg reports a finished export.
type exportDoneMsg struct {
	path   string
	result editor.ExportResult
	err    error
}
