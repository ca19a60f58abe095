package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, readable on dark terminals
var (
	Primary = lipgloss.Color("#8B5CF6") // Vivid Purple
	Star    = lipgloss.Color("#FACC15") // Gold
	Rating  = lipgloss.Color("#38BDF8") // Sky
	Streak  = lipgloss.Color("#F97316") // Orange
	Success = lipgloss.Color("#22C55E") // Green
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Border  = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Counters
var (
	Stars = lipgloss.NewStyle().
		Foreground(Star).
		Bold(true)

	Points = lipgloss.NewStyle().
		Foreground(Rating)

	Days = lipgloss.NewStyle().
		Foreground(Streak)
)

// States
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Locked = lipgloss.NewStyle().
		Foreground(TextDim)

	Equipped = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
)

// Card frames a block of output.
var Card = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(0, 1)
