package home

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordcards/internal/ui/theme"
)

// MascotVariant picks the card mascot's mood on the home screen.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota
	MascotCelebrating               // strong recent session
	MascotAlert                     // hard queue is piling up
)

type mascot struct {
	art string
	fg  color.Color
}

var mascots = map[MascotVariant]mascot{
	MascotIdle: {fg: theme.Primary, art: "" +
		"╭───────╮\n" +
		"│ ◉   ◉ │\n" +
		"│   ‿   │\n" +
		"│ A · a │\n" +
		"╰───────╯"},
	MascotCelebrating: {fg: theme.Highlight, art: "" +
		"╭───────╮\n" +
		"│ ★   ★ │\n" +
		"│   ▽   │\n" +
		"│ A · a │\n" +
		"╰─╥───╥─╯\n" +
		"  ╚═══╝"},
	MascotAlert: {fg: theme.Accent, art: "" +
		"╭───────╮\n" +
		"│ ◉   ◉ │ !\n" +
		"│   ○   │\n" +
		"│ A · a │\n" +
		"╰───────╯"},
}

// RenderMascot returns the colored art for v; unknown variants fall back to idle.
func RenderMascot(v MascotVariant) string {
	m, ok := mascots[v]
	if !ok {
		m = mascots[MascotIdle]
	}
	return lipgloss.NewStyle().Foreground(m.fg).Render(m.art)
}
