package main

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/b/tmux-tabline/pkg/config"
)

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Rename key.Binding
	Quit   key.Binding
}

func newKeyMap(b config.Bindings) keyMap {
	return keyMap{
		Next:   key.NewBinding(key.WithKeys(b.NextTab, "right"), key.WithHelp(b.NextTab, "next tab")),
		Prev:   key.NewBinding(key.WithKeys(b.PrevTab, "left"), key.WithHelp(b.PrevTab, "previous tab")),
		Rename: key.NewBinding(key.WithKeys(b.Rename), key.WithHelp(b.Rename, "rename tab")),
		Quit:   key.NewBinding(key.WithKeys(b.Quit, "ctrl+c"), key.WithHelp(b.Quit, "quit")),
	}
}
