package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	buildInfo key.Binding
	signup    key.Binding
	filter    key.Binding
	refresh   key.Binding
	delete    key.Binding
	copy      key.Binding
	helpful   key.Binding
	unhelpful key.Binding
}

// Page-level bindings use ctrl chords where a text input may have focus.
var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up")),
	down:      key.NewBinding(key.WithKeys("down")),
	left:      key.NewBinding(key.WithKeys("left")),
	right:     key.NewBinding(key.WithKeys("right")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	buildInfo: key.NewBinding(key.WithKeys("f1")),
	signup:    key.NewBinding(key.WithKeys("ctrl+n")),
	filter:    key.NewBinding(key.WithKeys("f")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	delete:    key.NewBinding(key.WithKeys("ctrl+d")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y")),
	helpful:   key.NewBinding(key.WithKeys("ctrl+t")),
	unhelpful: key.NewBinding(key.WithKeys("ctrl+f")),
}
