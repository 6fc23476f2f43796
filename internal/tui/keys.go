package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Activate  key.Binding
	DrillUp   key.Binding
	Prev      key.Binding
	Next      key.Binding
	PrevYear  key.Binding
	NextYear  key.Binding
	Today     key.Binding
	Focus     key.Binding
	Opener    key.Binding
	Outside   key.Binding
	Clear     key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Activate:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "pick / drill down")),
		DrillUp:   key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "drill up")),
		Prev:      key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous page")),
		Next:      key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next page")),
		PrevYear:  key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "previous year")),
		NextYear:  key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "next year")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Focus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Opener:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open/close")),
		Outside:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
		Clear:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "done")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate, k.Prev, k.Next, k.Focus, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Activate, k.DrillUp, k.Today},
		{k.Prev, k.Next, k.PrevYear, k.NextYear},
		{k.Focus, k.Opener, k.Outside, k.Clear},
		{k.Help, k.Quit},
	}
}
