package notice

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordcards/internal/router"
)

func TestNotice_View(t *testing.T) {
	n := New("Last Results", "No results yet.")
	if n.Title() != "Last Results" {
		t.Errorf("Title = %q", n.Title())
	}
	if !strings.Contains(n.View(80, 20), "No results yet.") {
		t.Error("message should be rendered")
	}
}

func TestNotice_AnyKeyPops(t *testing.T) {
	n := New("Last Results", "No results yet.")
	_, cmd := n.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd == nil {
		t.Fatal("expected command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
