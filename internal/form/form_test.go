package form

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
)

func keyRunes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestTextFieldOnChangeOncePerEdit(t *testing.T) {
	var got []string
	tf := NewTextField().SetValue("ab").OnChange(func(v string) tea.Cmd {
		got = append(got, v)
		return nil
	})
	tf.Focus()

	tf.Update(keyRunes("c"))
	tf.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	// cursor movement does not change the value
	tf.Update(tea.KeyMsg{Type: tea.KeyLeft})

	require.Equal(t, []string{"abc", "ab"}, got)
	require.Equal(t, "ab", tf.Value())
}

func TestTextFieldIgnoresInputWhenBlurred(t *testing.T) {
	calls := 0
	tf := NewTextField().OnChange(func(string) tea.Cmd { calls++; return nil })
	tf.Update(keyRunes("x"))
	require.Zero(t, calls)
	require.Empty(t, tf.Value())
}

func TestDropdownSelect(t *testing.T) {
	var changes []string
	dd := NewDropdown().
		AddOptions([]Option{{Value: "a", Label: "Alpha"}, {Value: "b", Label: "Beta"}}).
		SetValue("a").
		OnChange(func(v string) tea.Cmd { changes = append(changes, v); return nil })

	require.Equal(t, "Alpha", dd.Label())
	dd.Select("a")  // current value: no change
	dd.Select("zz") // unknown: ignored
	dd.Select("b")
	require.Equal(t, []string{"b"}, changes)
	require.Equal(t, "b", dd.Value())
}

func TestDropdownCycle(t *testing.T) {
	var changes []string
	dd := NewDropdown().
		AddOptions([]Option{{Value: "a", Label: "A"}, {Value: "b", Label: "B"}, {Value: "c", Label: "C"}}).
		SetValue("a").
		OnChange(func(v string) tea.Cmd { changes = append(changes, v); return nil })
	dd.Focus()

	dd.Update(tea.KeyMsg{Type: tea.KeyLeft})
	dd.Update(tea.KeyMsg{Type: tea.KeyRight})
	dd.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, []string{"c", "a", "b"}, changes)
}

func TestDropdownOpenPickClose(t *testing.T) {
	var changes []string
	dd := NewDropdown().
		AddOptions([]Option{{Value: "a", Label: "Alpha"}, {Value: "b", Label: "Beta"}}).
		SetValue("a").
		OnChange(func(v string) tea.Cmd { changes = append(changes, v); return nil })
	dd.Focus()

	dd.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, dd.IsOpen())
	view := dd.PopupView()
	require.Contains(t, view, "Alpha")
	require.Contains(t, view, "Beta")

	// "q" must not quit the program while the list is open
	if cmd := dd.Update(keyRunes("q")); cmd != nil {
		_, quit := cmd().(tea.QuitMsg)
		require.False(t, quit)
	}
	require.True(t, dd.IsOpen())

	dd.Update(tea.KeyMsg{Type: tea.KeyDown})
	dd.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, dd.IsOpen())
	require.Equal(t, []string{"b"}, changes)

	dd.Update(tea.KeyMsg{Type: tea.KeySpace})
	require.True(t, dd.IsOpen())
	dd.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, dd.IsOpen())
	require.Equal(t, []string{"b"}, changes)
}

func TestMaskedFieldStateMachine(t *testing.T) {
	tf := NewTextField().SetValue("s3cret")
	m := WrapMasked(tf, nil)

	require.Equal(t, Hidden, m.State())
	require.Equal(t, IconEyeOff, m.Icon())
	require.Contains(t, m.View(), Glyph(IconEyeOff))
	require.NotContains(t, m.View(), "s3cret")

	m.Toggle()
	require.Equal(t, Visible, m.State())
	require.Equal(t, IconEye, m.Icon())
	require.True(t, m.Focused())
	require.Contains(t, m.View(), "s3cret")
	require.Contains(t, m.View(), Glyph(IconEye))

	m.Blur()
	m.Toggle()
	require.Equal(t, Hidden, m.State())
	require.Equal(t, IconEyeOff, m.Icon())
	require.True(t, m.Focused())
	require.NotContains(t, m.View(), "s3cret")

	require.Equal(t, "s3cret", m.Value())
}

func TestMaskedFieldRevealKey(t *testing.T) {
	changes := 0
	tf := NewTextField().OnChange(func(string) tea.Cmd { changes++; return nil })
	m := WrapMasked(tf, nil)
	m.Focus()

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	require.Equal(t, Visible, m.State())
	m.Update(keyRunes("k"))
	require.Equal(t, "k", m.Value())
	require.Equal(t, 1, changes)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	require.Equal(t, Hidden, m.State())
}

func TestMaskedFieldMouseWithoutZones(t *testing.T) {
	m := WrapMasked(NewTextField(), nil)
	cmd, hit := m.HandleMouse(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	require.Nil(t, cmd)
	require.False(t, hit)
	require.Equal(t, Hidden, m.State())
}

func newTestContainer() (*Container, *Dropdown, *MaskedField) {
	c := NewContainer()
	c.SetTitle("Settings")
	dd := NewDropdown().AddOptions([]Option{{Value: "a", Label: "Alpha"}, {Value: "b", Label: "Beta"}}).SetValue("a")
	mf := WrapMasked(NewTextField(), nil)
	sec := c.AddSection("Engine")
	sec.AddSetting("Engine", "which one", dd)
	sec.AddSetting("Key", "", mf)
	c.FocusIndex(0)
	return c, dd, mf
}

func TestContainerFocusCycle(t *testing.T) {
	c, dd, mf := newTestContainer()
	require.Len(t, c.Controls(), 2)
	require.True(t, dd.Focused())

	c.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, mf.Focused())
	require.False(t, dd.Focused())

	c.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, dd.Focused())

	c.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	require.True(t, mf.Focused())

	c.Update(keyRunes("z"))
	require.Equal(t, "z", mf.Value())
}

func TestContainerRoutesKeysToOpenPopup(t *testing.T) {
	c, dd, mf := newTestContainer()
	c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, c.PopupOpen())

	// down moves inside the list instead of changing focus
	c.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.True(t, dd.Focused())
	require.False(t, mf.Focused())
	c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, c.PopupOpen())
	require.Equal(t, "b", dd.Value())
}

func TestContainerView(t *testing.T) {
	c, _, _ := newTestContainer()
	view := ansi.Strip(c.View(80, 20))
	require.Contains(t, view, "Settings")
	require.Contains(t, view, "Engine")
	require.Contains(t, view, "which one")
	require.Contains(t, view, "Alpha")
	require.Contains(t, view, "▶")

	c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	withPopup := strings.Split(ansi.Strip(c.View(80, 20)), "\n")
	require.Len(t, withPopup, 20)
	// title, blank, section, then the dropdown row; the card starts below it
	require.Contains(t, withPopup[3], "Alpha ▾")
	require.Equal(t, 2+labelWidth, strings.Index(withPopup[4], "╭"))
	require.Contains(t, withPopup[5], "Alpha")
	require.Contains(t, withPopup[6], "Beta")
	require.Contains(t, withPopup[4], "which one")
}

func TestDropdownPopupShowsEveryOption(t *testing.T) {
	for _, n := range []int{1, 3, 9} {
		var opts []Option
		for i := range n {
			opts = append(opts, Option{Value: fmt.Sprint(i), Label: fmt.Sprintf("opt-%d", i)})
		}
		dd := NewDropdown().AddOptions(opts).SetValue(opts[n-1].Value)
		dd.Focus()
		dd.Update(tea.KeyMsg{Type: tea.KeyEnter})
		view := ansi.Strip(dd.PopupView())
		for _, o := range opts {
			require.Contains(t, view, o.Label, "%d options", n)
		}
		require.Equal(t, n, lipgloss.Height(view))
	}
}

func TestContainerClickClosesPopup(t *testing.T) {
	c, dd, mf := newTestContainer()
	c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, c.PopupOpen())

	cmd := c.Update(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	require.Nil(t, cmd)
	require.False(t, c.PopupOpen())
	require.True(t, dd.Focused())
	require.Equal(t, "a", dd.Value())
	require.Equal(t, Hidden, mf.State())
}

func TestContainerEmpty(t *testing.T) {
	c, _, _ := newTestContainer()
	c.Empty()
	require.Empty(t, c.Sections())
	require.Empty(t, c.Title())
	require.Nil(t, c.Focused())
	require.Nil(t, c.Update(tea.KeyMsg{Type: tea.KeyTab}))
}

func TestRenderPopup(t *testing.T) {
	row := strings.Repeat("x", 20)
	base := strings.Repeat(row+"\n", 9) + row
	out := RenderPopup(base, "hi", 3, 2, 20, 10)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 10)
	for _, l := range lines {
		require.Equal(t, 20, ansi.StringWidth(l))
	}
	require.Equal(t, row, lines[1])
	require.Equal(t, "xxx╭────╮xxxxxxxxxxx", ansi.Strip(lines[2]))
	require.Equal(t, "xxx│ hi │xxxxxxxxxxx", ansi.Strip(lines[3]))
	require.Equal(t, "xxx╰────╯xxxxxxxxxxx", ansi.Strip(lines[4]))
	require.Equal(t, row, lines[5])

	require.Empty(t, RenderPopup(base, "hi", 0, 0, 0, 10))
}

func TestRenderPopupStaysInside(t *testing.T) {
	out := RenderPopup("short", "hi", 18, 9, 20, 10)
	lines := strings.Split(ansi.Strip(out), "\n")
	require.Len(t, lines, 10)
	require.Equal(t, "short", strings.TrimRight(lines[0], " "))
	require.True(t, strings.HasSuffix(lines[9], "╰────╯"))
	require.True(t, strings.HasSuffix(lines[8], "│ hi │"))
}

func TestRenderPopupKeepsZoneMarkers(t *testing.T) {
	zm := zone.New()
	t.Cleanup(zm.Close)

	icon := zm.Mark("icon", "Z")
	under := zm.Mark("under", "Q")
	base := strings.Join([]string{"top", "ab" + icon, "cdefghijkl" + under}, "\n")
	out := RenderPopup(base, "p", 4, 2, 20, 5)

	lines := strings.Split(out, "\n")
	// a line the card does not reach is passed through verbatim
	require.Equal(t, "ab"+icon, lines[1])
	// cells right of the card keep their content and markers
	require.Equal(t, "cdef╭───╮lQ", ansi.Strip(lines[2]))
	require.Contains(t, lines[2], under)
}
