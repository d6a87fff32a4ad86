package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — warm and appetizing, easy on dark terminals
var (
	Primary   = lipgloss.Color("#10B981") // Emerald
	Secondary = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#EAB308") // Yellow
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Lesson statuses
var (
	Completed = lipgloss.NewStyle().
			Foreground(Success)

	Current = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	Available = lipgloss.NewStyle().
			Foreground(Text)

	Locked = lipgloss.NewStyle().
		Foreground(TextDim)
)

// Plate check reactions
var (
	Perfect = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Meh = lipgloss.NewStyle().
		Foreground(Warning).
		Bold(true)

	Oops = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)
