package tui

import "github.com/charmbracelet/bubbles/key"

type listKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	Compose key.Binding
	Delete  key.Binding
	Clear   key.Binding
	Quit    key.Binding
}

type detailKeyMap struct {
	NextField key.Binding
	Save      key.Binding
	Back      key.Binding
	Quit      key.Binding
}

var listKeys = listKeyMap{
	Up:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
	Down:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
	Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Compose: key.NewBinding(key.WithKeys("n", "+"), key.WithHelp("n/+", "new")),
	Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Clear:   key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var detailKeys = detailKeyMap{
	NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch field")),
	Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

func (k listKeyMap) help() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Compose, k.Delete, k.Clear, k.Quit}
}

func (k detailKeyMap) help() []key.Binding {
	return []key.Binding{k.NextField, k.Save, k.Back}
}
