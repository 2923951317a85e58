package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	DragUp     key.Binding
	DragDown   key.Binding
	Grab       key.Binding
	SwipeLeft  key.Binding
	SwipeRight key.Binding
	Reset      key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		DragUp:     key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("K", "move up")),
		DragDown:   key.NewBinding(key.WithKeys("shift+down", "J"), key.WithHelp("J", "move down")),
		Grab:       key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "grab/drop")),
		SwipeLeft:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "swipe left")),
		SwipeRight: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "swipe right")),
		Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{k.Grab, k.DragUp, k.DragDown, k.SwipeLeft, k.SwipeRight, k.Reset}
}
