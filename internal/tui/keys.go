package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Play      key.Binding
	Reset     key.Binding
	Objective key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:      key.NewBinding(key.WithKeys("right", "n", " "), key.WithHelp("→/n", "next pivot")),
		Prev:      key.NewBinding(key.WithKeys("left", "p"), key.WithHelp("←/p", "previous pivot")),
		Play:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "autoplay")),
		Reset:     key.NewBinding(key.WithKeys("r", "home"), key.WithHelp("r", "restart")),
		Objective: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "objective line")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Play, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Reset},
		{k.Play, k.Objective},
		{k.Help, k.Quit},
	}
}
