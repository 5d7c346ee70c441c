package welcome

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordcards/internal/ui/theme"
)

var glyphs = map[rune][]string{
	'W': {
		"██╗    ██╗",
		"██║    ██║",
		"██║ █╗ ██║",
		"██║███╗██║",
		"╚███╔███╔╝",
		" ╚══╝╚══╝ ",
	},
	'O': {
		" ██████╗ ",
		"██╔═══██╗",
		"██║   ██║",
		"██║   ██║",
		"╚██████╔╝",
		" ╚═════╝ ",
	},
	'R': {
		"██████╗ ",
		"██╔══██╗",
		"██████╔╝",
		"██╔══██╗",
		"██║  ██║",
		"╚═╝  ╚═╝",
	},
	'D': {
		"██████╗ ",
		"██╔══██╗",
		"██║  ██║",
		"██║  ██║",
		"██████╔╝",
		"╚═════╝ ",
	},
	'C': {
		" ██████╗",
		"██╔════╝",
		"██║     ",
		"██║     ",
		"╚██████╗",
		" ╚═════╝",
	},
	'A': {
		" █████╗ ",
		"██╔══██╗",
		"███████║",
		"██╔══██║",
		"██║  ██║",
		"╚═╝  ╚═╝",
	},
	'S': {
		"███████╗",
		"██╔════╝",
		"███████╗",
		"╚════██║",
		"███████║",
		"╚══════╝",
	},
}

const (
	bannerWord    = "WORDCARDS"
	bannerCompact = "W O R D C A R D S"

	// bannerMinWidth is the narrowest terminal that fits the block letters.
	bannerMinWidth = 80
)

// bannerArt joins the block glyphs for word row by row.
func bannerArt(word string) string {
	rows := make([]string, 6)
	for _, r := range word {
		g := glyphs[r]
		for i := range rows {
			rows[i] += g[i]
		}
	}
	return strings.Join(rows, "\n")
}

// RenderBanner returns the WORDCARDS banner styled in the primary color.
// Uses a compact fallback for narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt(bannerWord))
}
