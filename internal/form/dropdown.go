package form

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Option is one dropdown entry.
type Option struct {
	Value string
	Label string
}

func (o Option) Title() string       { return o.Label }
func (o Option) Description() string { return o.Value }
func (o Option) FilterValue() string { return o.Label }

// Dropdown picks one value out of a fixed option list. While open it shows
// a list popup; while closed left/right cycle through the options.
type Dropdown struct {
	options  []Option
	value    string
	focused  bool
	open     bool
	list     list.Model
	keys     KeyMap
	onChange func(value string) tea.Cmd
}

func NewDropdown() *Dropdown {
	return &Dropdown{keys: DefaultKeyMap()}
}

// AddOptions appends opts in order.
func (d *Dropdown) AddOptions(opts []Option) *Dropdown {
	d.options = append(d.options, opts...)
	return d
}

// SetValue sets the current value without firing OnChange.
func (d *Dropdown) SetValue(v string) *Dropdown {
	d.value = v
	return d
}

func (d *Dropdown) OnChange(fn func(value string) tea.Cmd) *Dropdown {
	d.onChange = fn
	return d
}

func (d *Dropdown) Value() string { return d.value }

func (d *Dropdown) Options() []Option {
	out := make([]Option, len(d.options))
	copy(out, d.options)
	return out
}

// Label returns the label of the current value, or the raw value when it
// is not among the options.
func (d *Dropdown) Label() string {
	if i := d.index(d.value); i >= 0 {
		return d.options[i].Label
	}
	return d.value
}

// Select commits v. Unknown values and the current value are ignored.
func (d *Dropdown) Select(v string) tea.Cmd {
	if v == d.value || d.index(v) < 0 {
		return nil
	}
	d.value = v
	if d.onChange == nil {
		return nil
	}
	return d.onChange(v)
}

// IsOpen reports whether the option popup is showing.
func (d *Dropdown) IsOpen() bool { return d.open }

func (d *Dropdown) Open() {
	if len(d.options) == 0 {
		return
	}
	items := make([]list.Item, 0, len(d.options))
	width := 0
	for _, o := range d.options {
		items = append(items, o)
		if w := lipgloss.Width(o.Label); w > width {
			width = w
		}
	}
	del := list.NewDefaultDelegate()
	del.ShowDescription = false
	del.SetSpacing(0)
	lst := list.New(items, del, 0, 0)
	lst.SetFilteringEnabled(false)
	lst.SetShowFilter(false)
	lst.SetShowTitle(false)
	lst.SetShowStatusBar(false)
	lst.SetShowHelp(false)
	lst.SetShowPagination(false)
	lst.KeyMap.Quit.SetEnabled(false)
	lst.KeyMap.ForceQuit.SetEnabled(false)
	// sized last: the page size is computed from the chrome left visible
	lst.SetSize(width+4, len(items)*del.Height())
	if i := d.index(d.value); i >= 0 {
		lst.Select(i)
	}
	d.list = lst
	d.open = true
}

func (d *Dropdown) Close() { d.open = false }

func (d *Dropdown) Focus() tea.Cmd {
	d.focused = true
	return nil
}

func (d *Dropdown) Blur() {
	d.focused = false
	d.Close()
}

func (d *Dropdown) Focused() bool { return d.focused }

func (d *Dropdown) Update(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if d.open {
		switch {
		case key.Matches(k, d.keys.Pick):
			d.Close()
			if it, ok := d.list.SelectedItem().(Option); ok {
				return d.Select(it.Value)
			}
			return nil
		case key.Matches(k, d.keys.Close):
			d.Close()
			return nil
		}
		var cmd tea.Cmd
		d.list, cmd = d.list.Update(msg)
		return cmd
	}
	switch {
	case key.Matches(k, d.keys.Open):
		d.Open()
	case key.Matches(k, d.keys.Cycle):
		step := 1
		if k.String() == "left" {
			step = -1
		}
		return d.cycle(step)
	}
	return nil
}

func (d *Dropdown) cycle(step int) tea.Cmd {
	n := len(d.options)
	if n == 0 {
		return nil
	}
	i := d.index(d.value)
	if i < 0 {
		i = 0
	} else {
		i = (i + step + n) % n
	}
	return d.Select(d.options[i].Value)
}

// PopupView renders the open option list.
func (d *Dropdown) PopupView() string {
	return d.list.View()
}

func (d *Dropdown) View() string {
	return valueStyle.Render(d.Label() + " ▾")
}

func (d *Dropdown) index(v string) int {
	for i, o := range d.options {
		if o.Value == v {
			return i
		}
	}
	return -1
}
