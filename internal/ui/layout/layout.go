package layout

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/starquest/internal/profile"
	"github.com/abhisek/starquest/internal/ui/theme"
)

const (
	// DefaultWidth is used when the output is not a terminal.
	DefaultWidth = 60

	avatarGlyph = "☺"
)

// RenderHeader renders the status bar for p: avatar, name and handle on the
// left, stars, rating and streak on the right.
func RenderHeader(p profile.UserProfile, width int) string {
	avatar := p.Avatar.Symbol
	if p.Avatar.IsImage() || utf8.RuneCountInString(avatar) != 1 {
		avatar = avatarGlyph // named symbols and images have no terminal form
	}
	left := avatar + " " + theme.Title.Render(p.DisplayName()) +
		" " + theme.Hint.Render(p.Handle)

	right := theme.Stars.Render(fmt.Sprintf("★ %d", p.Stars)) + "   " +
		theme.Points.Render(fmt.Sprintf("▲ %d", p.RatingPoints)) + "   " +
		theme.Days.Render(fmt.Sprintf("🔥 %d", p.Streak))

	innerWidth := width - 4 // border and padding
	gap := innerWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return theme.Card.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

// RenderCard frames body under a title.
func RenderCard(title, body string, width int) string {
	content := theme.Title.Render(title) + "\n\n" + strings.TrimRight(body, "\n")
	return theme.Card.Width(width).Render(content)
}
