package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Use       key.Binding
	Drop      key.Binding
	Alternate key.Binding
	Switch    key.Binding
	Inventory key.Binding
	Loot      key.Binding
	Filter    key.Binding
	Console   key.Binding
	Close     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑/w", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓/s", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "a", "h"), key.WithHelp("←/a", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "d", "l"), key.WithHelp("→/d", "right")),
		Use:       key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "use/take/put")),
		Drop:      key.NewBinding(key.WithKeys("q", "backspace"), key.WithHelp("q", "drop")),
		Alternate: key.NewBinding(key.WithKeys(" ", "r"), key.WithHelp("space", "drop one")),
		Switch:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch panel")),
		Inventory: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "inventory")),
		Loot:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "loot next")),
		Filter:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		Console:   key.NewBinding(key.WithKeys("/", ":"), key.WithHelp("/", "console")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Use, k.Switch, k.Inventory, k.Loot, k.Console, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Use, k.Drop, k.Alternate, k.Switch},
		{k.Inventory, k.Loot, k.Filter, k.Console},
		{k.Close, k.Help, k.Quit},
	}
}
