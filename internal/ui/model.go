// Package ui is the terminal client of the inventory view. It drives the
// same session as the window client and draws the frame as a lipgloss slot
// grid.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	rl "github.com/gen2brain/raylib-go/raylib"
	zone "github.com/lrstanley/bubblezone"

	"github.com/appengine-ltd/invview/internal/game"
	"github.com/appengine-ltd/invview/internal/item"
	"github.com/appengine-ltd/invview/internal/logging"
	"github.com/appengine-ltd/invview/internal/preview"
	"github.com/appengine-ltd/invview/internal/view"
)

const (
	cellWidth  = 16
	cellHeight = 3
	// reservedRows holds the titles, the detail pane and the footer.
	reservedRows = 16
	previewCols  = 20
	previewRows  = 8
	tickInterval = 50 * time.Millisecond
	maxMessages  = 40
)

type Options struct {
	World *game.World
	// Loot opens this container at start when set.
	Loot      item.EntityID
	Preview   preview.Options
	SpinSpeed float32
	Logger    *logging.Logger
}

type tickMsg time.Time

type Model struct {
	session *game.Session
	log     *logging.Logger
	preview preview.Options
	keys    keyMap
	help    help.Model
	input   textinput.Model

	width, height int
	last          time.Time
	messages      []string
	quitting      bool
}

func newModel(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	if opts.Preview.SelectedScale == 0 {
		opts.Preview = preview.DefaultOptions()
	}
	session := game.NewSession(opts.World, view.Options{
		Layout:    terminalLayout(120, 40),
		Preview:   opts.Preview,
		SpinSpeed: opts.SpinSpeed,
		Logger:    log,
	})

	ti := textinput.New()
	ti.Placeholder = "take gold, show weapons, help…"
	ti.Prompt = "> "
	ti.CharLimit = 120
	ti.Width = 48
	ti.Blur()

	m := Model{
		session: session,
		log:     log,
		preview: opts.Preview,
		keys:    defaultKeyMap(),
		help:    help.New(),
		input:   ti,
		width:   120,
		height:  40,
	}
	if opts.Loot != item.NoEntity {
		if err := session.Loot(opts.Loot); err != nil {
			m.appendMessage(err.Error())
		}
	} else if err := session.ToggleInventory(); err != nil {
		m.appendMessage(err.Error())
	}
	m.step(0)
	return m
}

// Run blocks until the user quits.
func Run(opts Options) error {
	if opts.World == nil {
		return fmt.Errorf("tui: no world")
	}
	zone.NewGlobal()
	p := tea.NewProgram(newModel(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// terminalLayout measures panels in cells with one slot per cell.
func terminalLayout(width, height int) view.Layout {
	cols := max(1, (width/2-2)/cellWidth)
	rows := max(1, (height-reservedRows)/cellHeight)
	rect := rl.NewRectangle(0, 0, float32(cols), float32(rows))
	return view.Layout{SlotSize: 1, Self: rect, Other: rect, ItemPadding: 0.1}
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), textinput.Blink)
}

func (m *Model) step(dt float64) {
	before := m.session.Status()
	if _, err := m.session.Step(dt); err != nil {
		m.log.Error("tui: %v", err)
	}
	if status := m.session.Status(); status != before {
		m.appendMessage(status)
	}
}

func (m *Model) appendMessage(message string) {
	line := strings.TrimSpace(message)
	if line == "" {
		return
	}
	m.messages = append(m.messages, line)
	if len(m.messages) > maxMessages {
		m.messages = m.messages[len(m.messages)-maxMessages:]
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.session.View().SetLayout(terminalLayout(msg.Width, msg.Height))
		m.step(0)
		return m, nil
	case tickMsg:
		now := time.Time(msg)
		dt := 0.0
		if !m.last.IsZero() {
			dt = max(now.Sub(m.last).Seconds(), 0)
		}
		m.last = now
		m.step(dt)
		return m, tickCmd()
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.KeyMsg:
		if m.input.Focused() {
			return m.updateConsole(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateConsole(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.input.Blur()
		m.input.SetValue("")
		return m, nil
	case tea.KeyEnter:
		line := strings.TrimSpace(m.input.Value())
		m.input.SetValue("")
		m.input.Blur()
		if line == "" {
			return m, nil
		}
		m.appendMessage("> " + line)
		if _, err := m.session.Execute(line); err != nil {
			m.appendMessage(err.Error())
		}
		m.step(0)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v := m.session.View()
	var err error
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Close):
		if v.State() == view.StateDisabled {
			m.quitting = true
			return m, tea.Quit
		}
		err = m.session.Close()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Console):
		m.input.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Inventory):
		err = m.session.ToggleInventory()
	case key.Matches(msg, m.keys.Loot):
		err = m.session.CycleLoot()
	case key.Matches(msg, m.keys.Filter):
		m.session.CycleFilter(v.Focus())
	case key.Matches(msg, m.keys.Up):
		v.AddDelta(-1, 0)
	case key.Matches(msg, m.keys.Down):
		v.AddDelta(1, 0)
	case key.Matches(msg, m.keys.Left):
		v.AddDelta(0, -1)
	case key.Matches(msg, m.keys.Right):
		v.AddDelta(0, 1)
	case key.Matches(msg, m.keys.Use):
		v.Trigger(view.ActionUse)
	case key.Matches(msg, m.keys.Drop):
		v.Trigger(view.ActionDrop)
	case key.Matches(msg, m.keys.Alternate):
		v.Trigger(view.ActionAlternate)
	case key.Matches(msg, m.keys.Switch):
		v.Trigger(view.ActionSwitchPanel)
	default:
		return m, nil
	}
	if err != nil {
		m.appendMessage(err.Error())
	}
	m.step(0)
	return m, nil
}

func slotZoneID(p view.Panel, slot int) string {
	return fmt.Sprintf("slot_%s_%d", p, slot)
}

// updateMouse selects the clicked slot; a right click also uses it.
func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease {
		return m, nil
	}
	if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonRight {
		return m, nil
	}
	for _, pf := range m.session.Frame().Panels {
		for i := range pf.Slots {
			if !zone.Get(slotZoneID(pf.Panel, i)).InBounds(msg) {
				continue
			}
			if m.session.View().SelectSlot(pf.Panel, i) && msg.Button == tea.MouseButtonRight {
				m.session.View().Trigger(view.ActionUse)
			}
			m.step(0)
			return m, nil
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	frame := m.session.Frame()
	var sections []string
	if !frame.Visible() {
		sections = append(sections, hiddenPanelStyle.Render("Inventory closed. Press i to open it or o to loot."))
	} else {
		var panels []string
		// The other party sits on the left, as in the window client.
		for _, p := range []view.Panel{view.PanelOther, view.PanelSelf} {
			if pf, ok := frame.Panel(p); ok {
				panels = append(panels, m.renderPanel(frame, pf))
			}
		}
		spaced := make([]string, 0, 2*len(panels))
		for i, p := range panels {
			if i > 0 {
				spaced = append(spaced, "  ")
			}
			spaced = append(spaced, p)
		}
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, spaced...))
		sections = append(sections, m.renderDetails(frame))
	}
	sections = append(sections, m.renderFooter())
	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderPanel(frame view.Frame, pf view.PanelFrame) string {
	focused := pf.Panel == frame.Focus
	title := m.session.World().Name(pf.Owner)
	if f := m.session.View().Filter(pf.Panel); f.Active() {
		title += " " + describeFilter(f.Query, len(f.Buckets))
	}
	header := titleStyle.Render(title)
	if focused {
		header = titleFocusStyle.Render(title)
	}

	cols := max(1, pf.Grid.Columns)
	rows := make([]string, 0, len(pf.Slots)/cols+1)
	var row []string
	for i, slot := range pf.Slots {
		row = append(row, zone.Mark(slotZoneID(pf.Panel, i), renderCell(pf, slot.Empty, slot.Item.Index, focused && slot.Item.Index == pf.Cursor.ItemIndex)))
		if len(row) == cols {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	more := ""
	if total := len(pf.List); total > pf.Cursor.NumVisibleItems {
		more = hiddenPanelStyle.Render(fmt.Sprintf("%d-%d of %d", pf.Cursor.OffsetItems+1, pf.Cursor.OffsetItems+pf.Cursor.NumVisibleItems, total))
	}
	return lipgloss.JoinVertical(lipgloss.Left, append(append([]string{header}, rows...), more)...)
}

func describeFilter(query string, buckets int) string {
	switch {
	case query != "":
		return fmt.Sprintf("[%q]", query)
	case buckets > 0:
		return "[filtered]"
	default:
		return ""
	}
}

func renderCell(pf view.PanelFrame, empty bool, index int, selected bool) string {
	style := slotEmptyStyle
	label := ""
	if !empty && index >= 0 && index < len(pf.List) {
		it := pf.List[index]
		label = truncate(it.Label(), cellWidth-2)
		switch {
		case selected:
			style = slotFocusStyle
		case it.Equipped():
			style = slotEquipStyle
		default:
			style = slotStyle
		}
	}
	return style.Width(cellWidth - 2).Height(cellHeight - 2).Render(label)
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}

// renderDetails shows the focused selection: its info lines and a spinning
// wireframe of its bounds.
func (m Model) renderDetails(frame view.Frame) string {
	pf, ok := frame.Panel(frame.Focus)
	if !ok {
		return ""
	}
	it, ok := pf.Selected()
	if !ok {
		return hiddenPanelStyle.Render("Nothing here.")
	}
	lines := it.InfoLines()
	text := []string{tooltipTitle.Render(lines[0])}
	for _, l := range lines[1:] {
		text = append(text, tooltipLine.Render(l))
	}
	tint := bucketTint(m.session.World().Policy().Bucket(it))
	art := renderPreviewANSI(it, frame.Phase, m.preview, tint, previewCols, previewRows)
	return tooltipStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, art, "  ", strings.Join(text, "\n")))
}

func (m Model) renderFooter() string {
	var out []string
	if m.input.Focused() {
		out = append(out, m.input.View())
	} else if n := len(m.messages); n > 0 {
		out = append(out, statusStyle.Render(m.messages[n-1]))
	}
	out = append(out, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}
