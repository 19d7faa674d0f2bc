package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeTextInput
	ModeTemplates
	ModeDesigns
	ModeHelp
)

const (
	positionStep = 5.0
	fontSizeStep = 2.0
	minFontSize  = 8.0
	maxFontSize  = 200.0

	canvasRows   = 10
	minCanvasCol = 20
	maxCanvasCol = 96
)
