package tui

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jask/dictionary/internal/form"
	"github.com/jask/dictionary/internal/settings"
)

// App is the root model hosting the settings panel.
type App struct {
	panel  *SettingsPanel
	t      TranslateFunc
	zones  *zone.Manager
	logger *slog.Logger
	keys   appKeys
	help   help.Model
	status string
	failed bool
	width  int
	height int
}

type appKeys struct {
	quit   key.Binding
	esc    key.Binding
	footer []key.Binding
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
)

// New builds the app. zones may be nil to disable mouse targets.
func New(ctx context.Context, s *settings.Settings, t TranslateFunc, save SaveFunc, zones *zone.Manager, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	fk := form.DefaultKeyMap()
	fk.Next.SetHelp("tab", t("help_next", nil))
	fk.Prev.SetHelp("shift+tab", t("help_prev", nil))
	fk.Open.SetHelp("enter", t("help_open", nil))
	fk.Reveal.SetHelp("ctrl+r", t("help_reveal", nil))
	quit := key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("esc/ctrl+c", t("help_quit", nil)))

	return &App{
		panel:  NewSettingsPanel(ctx, s, t, save, zones),
		t:      t,
		zones:  zones,
		logger: logger,
		keys: appKeys{
			quit:   quit,
			esc:    key.NewBinding(key.WithKeys("esc")),
			footer: []key.Binding{fk.Next, fk.Prev, fk.Open, fk.Reveal, quit},
		},
		help: help.New(),
	}
}

func (a *App) Panel() *SettingsPanel { return a.panel }

func (a *App) Status() string { return a.status }

func (a *App) Init() tea.Cmd {
	return a.panel.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		return a, nil
	case tea.KeyMsg:
		if key.Matches(m, a.keys.quit) {
			return a, tea.Quit
		}
		if key.Matches(m, a.keys.esc) && !a.panel.Container().PopupOpen() {
			return a, tea.Quit
		}
	case SettingsSavedMsg:
		a.status, a.failed = a.t("saved", nil), false
		return a, nil
	case SaveFailedMsg:
		a.logger.Error("save settings", "error", m.Err)
		a.status = a.t("save_failed", map[string]string{"error": m.Err.Error()})
		a.failed = true
		return a, nil
	}
	return a, a.panel.Update(msg)
}

func (a *App) View() string {
	footer := a.help.ShortHelpView(a.keys.footer)
	if a.status != "" {
		style := statusStyle
		if a.failed {
			style = errorStyle
		}
		footer += "\n" + style.Render(a.status)
	}
	bodyHeight := a.height - lipgloss.Height(footer) - 1
	body := a.panel.View(a.width, bodyHeight)
	out := strings.Join([]string{body, "", footer}, "\n")
	if a.zones != nil {
		return a.zones.Scan(out)
	}
	return out
}
