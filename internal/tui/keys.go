package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	digit     key.Binding
	delete    key.Binding
	biometric key.Binding
	dismiss   key.Binding
	enter     key.Binding
	lock      key.Binding
	change    key.Binding
	version   key.Binding
	quit      key.Binding
}

var keys = keyMap{
	digit:     key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9")),
	delete:    key.NewBinding(key.WithKeys("backspace")),
	biometric: key.NewBinding(key.WithKeys("b")),
	dismiss:   key.NewBinding(key.WithKeys("esc")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	lock:      key.NewBinding(key.WithKeys("l")),
	change:    key.NewBinding(key.WithKeys("c")),
	version:   key.NewBinding(key.WithKeys("v")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
}
