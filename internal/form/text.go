package form

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TextField is a single-line text control.
type TextField struct {
	input    textinput.Model
	onChange func(value string) tea.Cmd
}

func NewTextField() *TextField {
	in := textinput.New()
	in.Prompt = ""
	in.Width = 32
	in.CharLimit = 256
	return &TextField{input: in}
}

func (t *TextField) SetValue(v string) *TextField {
	t.input.SetValue(v)
	return t
}

// OnChange registers fn to run after every edit that changes the value.
func (t *TextField) OnChange(fn func(value string) tea.Cmd) *TextField {
	t.onChange = fn
	return t
}

func (t *TextField) Value() string { return t.input.Value() }

func (t *TextField) EchoMode() textinput.EchoMode { return t.input.EchoMode }

func (t *TextField) setEchoMode(m textinput.EchoMode) { t.input.EchoMode = m }

func (t *TextField) Focus() tea.Cmd { return t.input.Focus() }
func (t *TextField) Blur()          { t.input.Blur() }
func (t *TextField) Focused() bool  { return t.input.Focused() }

func (t *TextField) Update(msg tea.Msg) tea.Cmd {
	before := t.input.Value()
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	if after := t.input.Value(); after != before && t.onChange != nil {
		return tea.Batch(cmd, t.onChange(after))
	}
	return cmd
}

func (t *TextField) View() string {
	return t.input.View()
}
