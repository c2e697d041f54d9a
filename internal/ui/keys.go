package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap documents the playground bindings. Dispatch lives in the input
// modes; these feed the help views.
type keyMap struct {
	Up, Down            key.Binding
	ChipLeft, ChipRight key.Binding
	Toggle, All, Clear  key.Binding
	Add, Label, Remove  key.Binding
	Delete              key.Binding
	Active, Protected   key.Binding
	State, Mode         key.Binding
	Private             key.Binding
	Save, Help, Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		ChipLeft:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous selector")),
		ChipRight: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next selector")),
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle selection")),
		All:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		Clear:     key.NewBinding(key.WithKeys("esc", "A"), key.WithHelp("esc/A", "clear selection")),
		Add:       key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "add selector to selection")),
		Label:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit selector label")),
		Remove:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove selector from selection")),
		Delete:    key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete selector everywhere")),
		Active:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle active")),
		Protected: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "toggle protected")),
		State:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "cycle state")),
		Mode:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "components/rules first")),
		Private:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "show private selectors")),
		Save:      key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "save document")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Add, k.Remove, k.State, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.All, k.Clear},
		{k.ChipLeft, k.ChipRight, k.Add, k.Label, k.Remove, k.Delete},
		{k.Active, k.Protected, k.State, k.Mode, k.Private},
		{k.Save, k.Help, k.Quit},
	}
}
