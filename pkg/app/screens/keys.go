package screens

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	NextPage key.Binding
	Enter    key.Binding
	Back     key.Binding
	Search   key.Binding
	Tab      key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "row up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "row down")),
	Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev")),
	Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
	NextPage: key.NewBinding(key.WithKeys(" ", "n"), key.WithHelp("space", "next page")),
	Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
	Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch view")),
	PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp returns short help key bindings (for help.Model)
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPage, k.Enter, k.Back, k.Search, k.Help, k.Quit}
}

// FullHelp returns full help key bindings
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.NextPage, k.Enter, k.Back},
		{k.PageUp, k.PageDown, k.Search, k.Tab},
		{k.Help, k.Quit},
	}
}
