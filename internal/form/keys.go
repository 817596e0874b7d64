package form

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings the toolkit reacts to.
type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Open   key.Binding
	Pick   key.Binding
	Close  key.Binding
	Cycle  key.Binding
	Reveal key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Open:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "choose")),
		Pick:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Cycle:  key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "cycle")),
		Reveal: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "show/hide")),
	}
}
