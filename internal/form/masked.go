package form

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	zone "github.com/lrstanley/bubblezone"
)

// Visibility is the presentation state of a MaskedField.
type Visibility int

const (
	Hidden Visibility = iota
	Visible
)

func (v Visibility) String() string {
	if v == Visible {
		return "visible"
	}
	return "hidden"
}

// Icon is the glyph state shown next to a masked input.
type Icon int

const (
	IconEyeOff Icon = iota
	IconEye
)

// MaskedField wraps a TextField so it renders obscured until revealed.
// It owns presentation only; value and change callbacks stay on the
// wrapped TextField.
type MaskedField struct {
	*TextField
	state  Visibility
	zoneID string
	zones  *zone.Manager
	reveal key.Binding
}

// WrapMasked puts t into password echo mode. zones may be nil, in which
// case the icon is not clickable and only the Reveal key toggles.
func WrapMasked(t *TextField, zones *zone.Manager) *MaskedField {
	m := &MaskedField{
		TextField: t,
		state:     Hidden,
		zoneID:    "masked-" + uuid.NewString(),
		zones:     zones,
		reveal:    DefaultKeyMap().Reveal,
	}
	t.setEchoMode(textinput.EchoPassword)
	return m
}

func (m *MaskedField) State() Visibility { return m.state }

func (m *MaskedField) Icon() Icon {
	if m.state == Visible {
		return IconEye
	}
	return IconEyeOff
}

// Toggle flips between Hidden and Visible and gives focus back to the input.
func (m *MaskedField) Toggle() tea.Cmd {
	if m.state == Hidden {
		m.state = Visible
		m.setEchoMode(textinput.EchoNormal)
	} else {
		m.state = Hidden
		m.setEchoMode(textinput.EchoPassword)
	}
	return m.TextField.Focus()
}

func (m *MaskedField) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.reveal) {
		return m.Toggle()
	}
	return m.TextField.Update(msg)
}

// HandleMouse toggles on a left click released over the icon.
func (m *MaskedField) HandleMouse(msg tea.MouseMsg) (tea.Cmd, bool) {
	if m.zones == nil {
		return nil, false
	}
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return nil, false
	}
	z := m.zones.Get(m.zoneID)
	if z == nil || !z.InBounds(msg) {
		return nil, false
	}
	return m.Toggle(), true
}

func (m *MaskedField) View() string {
	icon := iconStyle.Render(Glyph(m.Icon()))
	if m.zones != nil {
		icon = m.zones.Mark(m.zoneID, icon)
	}
	return m.TextField.View() + " " + icon
}
