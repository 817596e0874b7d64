package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Control is an interactive widget hosted by a Row.
type Control interface {
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Update(msg tea.Msg) tea.Cmd
	View() string
}

// popup is implemented by controls that draw over the form while open.
type popup interface {
	IsOpen() bool
	Close()
	PopupView() string
}

// mouseHandler is implemented by controls with click targets.
type mouseHandler interface {
	HandleMouse(msg tea.MouseMsg) (tea.Cmd, bool)
}

// Row is a labelled setting line.
type Row struct {
	Name    string
	Desc    string
	Control Control
}

type Section struct {
	Title string
	rows  []*Row
}

// AddSetting appends a row and returns it.
func (s *Section) AddSetting(name, desc string, c Control) *Row {
	r := &Row{Name: name, Desc: desc, Control: c}
	s.rows = append(s.rows, r)
	return r
}

func (s *Section) Rows() []*Row { return s.rows }

// Container is the root of a form.
type Container struct {
	title    string
	sections []*Section
	focus    int
	keys     KeyMap
}

func NewContainer() *Container {
	return &Container{keys: DefaultKeyMap()}
}

// Empty drops every section and the title.
func (c *Container) Empty() {
	c.title = ""
	c.sections = nil
	c.focus = 0
}

func (c *Container) SetTitle(t string) { c.title = t }
func (c *Container) Title() string     { return c.title }

func (c *Container) AddSection(title string) *Section {
	s := &Section{Title: title}
	c.sections = append(c.sections, s)
	return s
}

func (c *Container) Sections() []*Section { return c.sections }

// Controls returns every control in display order.
func (c *Container) Controls() []Control {
	var out []Control
	for _, s := range c.sections {
		for _, r := range s.rows {
			out = append(out, r.Control)
		}
	}
	return out
}

// FocusIndex moves focus to the i-th control, blurring the rest.
func (c *Container) FocusIndex(i int) tea.Cmd {
	ctrls := c.Controls()
	if len(ctrls) == 0 {
		return nil
	}
	if i < 0 || i >= len(ctrls) {
		i = 0
	}
	c.focus = i
	var cmd tea.Cmd
	for j, ctrl := range ctrls {
		if j == i {
			cmd = ctrl.Focus()
			continue
		}
		ctrl.Blur()
	}
	return cmd
}

func (c *Container) Focused() Control {
	ctrls := c.Controls()
	if c.focus < 0 || c.focus >= len(ctrls) {
		return nil
	}
	return ctrls[c.focus]
}

// PopupOpen reports whether the focused control is showing a popup.
func (c *Container) PopupOpen() bool {
	return c.openPopup() != nil
}

func (c *Container) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case tea.KeyMsg:
		if c.PopupOpen() {
			return c.Focused().Update(m)
		}
		n := len(c.Controls())
		switch {
		case n == 0:
			return nil
		case key.Matches(m, c.keys.Next):
			return c.FocusIndex((c.focus + 1) % n)
		case key.Matches(m, c.keys.Prev):
			return c.FocusIndex((c.focus - 1 + n) % n)
		}
	case tea.MouseMsg:
		// a click anywhere dismisses an open popup; targets under it are hidden
		if p := c.openPopup(); p != nil {
			if m.Action == tea.MouseActionRelease {
				p.Close()
			}
			return nil
		}
		for i, ctrl := range c.Controls() {
			mh, ok := ctrl.(mouseHandler)
			if !ok {
				continue
			}
			if cmd, hit := mh.HandleMouse(m); hit {
				return tea.Batch(c.FocusIndex(i), cmd)
			}
		}
		return nil
	}
	if f := c.Focused(); f != nil {
		return f.Update(msg)
	}
	return nil
}

func (c *Container) View(width, height int) string {
	var b strings.Builder
	if c.title != "" {
		b.WriteString(titleStyle.Render(c.title))
		b.WriteString("\n")
	}
	idx, anchor := 0, -1
	for _, s := range c.sections {
		if s.Title != "" {
			b.WriteString("\n")
			b.WriteString(sectionStyle.Render(s.Title))
			b.WriteString("\n")
		}
		for _, r := range s.rows {
			marker := "  "
			if idx == c.focus {
				marker = markerStyle.Render("▶ ")
				anchor = strings.Count(b.String(), "\n") + 1
			}
			label := nameStyle.Render(r.Name)
			if r.Desc != "" {
				label += "\n" + descStyle.Render(r.Desc)
			}
			label = lipgloss.NewStyle().Width(labelWidth).Render(label)
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, marker, label, r.Control.View()))
			b.WriteString("\n")
			idx++
		}
	}
	base := strings.TrimRight(b.String(), "\n")
	if p := c.openPopup(); p != nil && width > 0 && height > 0 {
		// drop down from the control column, just below its value line
		return RenderPopup(base, p.PopupView(), 2+labelWidth, anchor, width, height)
	}
	return base
}

func (c *Container) openPopup() popup {
	p, ok := c.Focused().(popup)
	if !ok || !p.IsOpen() {
		return nil
	}
	return p
}
