package ui

import (
	"image/color"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/appengine-ltd/invview/internal/game"
	"github.com/appengine-ltd/invview/internal/preview"
	"github.com/appengine-ltd/invview/internal/view"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func testModel(t *testing.T) Model {
	t.Helper()
	w, err := game.Generate(5, 2, 6, nil, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return newModel(Options{World: w})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTerminalLayoutFitsCells(t *testing.T) {
	l := terminalLayout(120, 40)
	if l.SlotSize != 1 || l.Self.Width != 3 || l.Self.Height != 8 {
		t.Fatalf("unexpected layout %+v", l.Self)
	}
	tiny := terminalLayout(10, 5)
	if tiny.Self.Width != 1 || tiny.Self.Height != 1 {
		t.Fatalf("expected at least one cell, got %+v", tiny.Self)
	}
}

func TestModelStartsWithInventoryOpen(t *testing.T) {
	m := testModel(t)
	if m.session.View().State() != view.StateNormal {
		t.Fatalf("expected normal state, got %s", m.session.View().State())
	}
	if out := m.View(); !strings.Contains(out, "Hero") {
		t.Fatalf("expected player panel title in view")
	}
}

func TestInventoryKeyTogglesView(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(runes("i"))
	got := next.(Model)
	if got.session.View().State() != view.StateDisabled {
		t.Fatalf("expected view closed, got %s", got.session.View().State())
	}
	if !strings.Contains(got.View(), "Inventory closed") {
		t.Fatalf("expected closed hint")
	}
}

func TestLootKeyOpensTwoPanels(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(runes("o"))
	got := next.(Model)
	frame := got.session.Frame()
	if frame.State != view.StateLoot || len(frame.Panels) != 2 {
		t.Fatalf("expected two panels in loot, got %s/%d", frame.State, len(frame.Panels))
	}
	next, _ = got.Update(tea.KeyMsg{Type: tea.KeyTab})
	got = next.(Model)
	if got.session.View().Focus() != view.PanelOther {
		t.Fatalf("expected tab to focus the other panel")
	}
}

func TestConsoleRunsCommands(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(runes("/"))
	got := next.(Model)
	if !got.input.Focused() {
		t.Fatalf("expected console focus")
	}
	got.input.SetValue("help")
	next, _ = got.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got = next.(Model)
	if got.input.Focused() {
		t.Fatalf("expected console to close after enter")
	}
	last := got.messages[len(got.messages)-1]
	if !strings.HasPrefix(last, "commands:") {
		t.Fatalf("expected help reply, got %q", last)
	}
}

func TestEscapeQuitsWhenClosed(t *testing.T) {
	m := testModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil {
		t.Fatalf("first escape should only close the view")
	}
	_, cmd = next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("expected quit command on second escape")
	}
}

func TestPreviewRendersHalfBlocks(t *testing.T) {
	it := game.TplBroadSword.Item()
	out := renderPreviewANSI(it, 0.5, preview.DefaultOptions(), color.RGBA{R: 200, G: 200, B: 200, A: 255}, 20, 8)
	if !strings.Contains(out, "▀") {
		t.Fatalf("expected half-block pixels in preview")
	}
	if lines := strings.Count(out, "\n") + 1; lines != 8 {
		t.Fatalf("expected 8 rows, got %d", lines)
	}
	if renderPreviewANSI(it, 0, preview.DefaultOptions(), color.RGBA{}, 2, 1) != "" {
		t.Fatalf("expected empty output for a tiny pane")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Essence of Healing", 8); got != "Essence…" {
		t.Fatalf("unexpected truncate %q", got)
	}
	if got := truncate("Gold", 8); got != "Gold" {
		t.Fatalf("unexpected truncate %q", got)
	}
}
