package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jask/dictionary/internal/engines"
	"github.com/jask/dictionary/internal/form"
	"github.com/jask/dictionary/internal/settings"
)

// TranslateFunc looks up a localized display string.
type TranslateFunc func(key string, vars map[string]string) string

// SaveFunc durably stores a settings snapshot.
type SaveFunc func(ctx context.Context, s settings.Settings) error

// SettingsSavedMsg reports a completed save.
type SettingsSavedMsg struct{}

// SaveFailedMsg carries a save error to the host.
type SaveFailedMsg struct{ Err error }

func (m SaveFailedMsg) Error() string { return m.Err.Error() }

// SettingsPanel is the form bound to a settings record.
type SettingsPanel struct {
	ctx       context.Context
	settings  *settings.Settings
	t         TranslateFunc
	save      SaveFunc
	zones     *zone.Manager
	container *form.Container
	rendered  engines.Key
}

// NewSettingsPanel binds a panel to s. Edits mutate s in place and each
// one is handed to save as a snapshot. zones may be nil.
func NewSettingsPanel(ctx context.Context, s *settings.Settings, t TranslateFunc, save SaveFunc, zones *zone.Manager) *SettingsPanel {
	return &SettingsPanel{
		ctx:       ctx,
		settings:  s,
		t:         t,
		save:      save,
		zones:     zones,
		container: form.NewContainer(),
	}
}

func (p *SettingsPanel) i18n(key string) string { return p.t(key, nil) }

// Render clears the form and rebuilds it from the current settings.
func (p *SettingsPanel) Render() {
	c := p.container
	c.Empty()
	c.SetTitle(p.i18n("settings_title"))

	sec := c.AddSection(p.i18n("engines_chooser_div_title"))
	sec.AddSetting(p.i18n("translate_engine"), p.i18n("translate_engine_desc"),
		form.NewDropdown().
			AddOptions(p.GetEnginesOptions()).
			SetValue(string(p.settings.Engine)).
			OnChange(func(v string) tea.Cmd {
				p.settings.SelectEngine(engines.Key(v))
				return p.persist()
			}))

	sec.AddSetting(p.i18n("target_language"), p.i18n("target_language_desc"),
		form.NewDropdown().
			AddOptions(p.languageOptions()).
			SetValue(string(p.settings.Lang)).
			OnChange(func(v string) tea.Cmd {
				p.settings.Lang = settings.Lang(v)
				return p.persist()
			}))

	if d, ok := engines.Lookup(p.settings.Engine); ok {
		for _, f := range d.Fields {
			name := p.i18n(fmt.Sprintf("%s_%s", d.Key, f))
			text := form.NewTextField().
				SetValue(p.settings.DisplayCredential(f)).
				OnChange(func(v string) tea.Cmd {
					if err := p.settings.SetCredential(f, v); err != nil {
						return func() tea.Msg { return SaveFailedMsg{Err: err} }
					}
					return p.persist()
				})
			sec.AddSetting(name, name, form.WrapMasked(text, p.zones))
		}
	}
	p.rendered = p.settings.Engine
}

// GetEnginesOptions returns one option per supported engine, in order.
func (p *SettingsPanel) GetEnginesOptions() []form.Option {
	sup := engines.Supported()
	opts := make([]form.Option, 0, len(sup))
	for _, d := range sup {
		opts = append(opts, form.Option{Value: string(d.Key), Label: p.i18n(string(d.Key))})
	}
	return opts
}

func (p *SettingsPanel) languageOptions() []form.Option {
	langs := settings.Languages()
	opts := make([]form.Option, 0, len(langs))
	for _, l := range langs {
		opts = append(opts, form.Option{Value: string(l), Label: p.i18n("lang_" + string(l))})
	}
	return opts
}

// persist snapshots the record now and saves it off the event loop.
func (p *SettingsPanel) persist() tea.Cmd {
	snap := p.settings.Clone()
	return func() tea.Msg {
		if err := p.save(p.ctx, snap); err != nil {
			return SaveFailedMsg{Err: fmt.Errorf("persist settings: %w", err)}
		}
		return SettingsSavedMsg{}
	}
}

// Container exposes the underlying form.
func (p *SettingsPanel) Container() *form.Container { return p.container }

// Init renders the form and focuses the engine selector.
func (p *SettingsPanel) Init() tea.Cmd {
	p.Render()
	return p.container.FocusIndex(0)
}

// Update routes msg to the form. A changed engine rebuilds the rows so the
// credential fields match the new engine.
func (p *SettingsPanel) Update(msg tea.Msg) tea.Cmd {
	cmd := p.container.Update(msg)
	if p.settings.Engine != p.rendered {
		p.Render()
		return tea.Batch(cmd, p.container.FocusIndex(0))
	}
	return cmd
}

// View draws the form, with any open popup, in a width by height area.
func (p *SettingsPanel) View(width, height int) string {
	return p.container.View(width, height)
}
