package main

import (
	_ "embed"

	"github.com/charmbracelet/glamour"
)

//go:embed help.md
var helpMarkdown string

// renderHelp renders the embedded keybinding table for the help modal.
// Rendering failures fall back to the raw markdown rather than an error.
func renderHelp(style string, width int) string {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMarkdown
	}
	rendered, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return rendered
}
