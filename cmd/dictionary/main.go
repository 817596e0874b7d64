package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jask/dictionary/internal/config"
	"github.com/jask/dictionary/internal/i18n"
	"github.com/jask/dictionary/internal/secrets"
	"github.com/jask/dictionary/internal/tui"
)

func main() {
	ctx := context.Background()

	logger, closeLog, err := newLogger()
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer closeLog()

	path := config.Path()
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	sec, err := secrets.NewStore(cfg.Secrets.Dir)
	if err != nil {
		log.Fatalf("secrets: %v", err)
	}
	store := config.NewStore(path, cfg, sec, logger)

	st, err := store.Load(ctx)
	if err != nil {
		log.Fatalf("load settings: %v", err)
	}

	tr, err := i18n.New(cfg.UI.Locale)
	if err != nil {
		log.Fatalf("i18n: %v", err)
	}
	if want := i18n.Resolve(cfg.UI.Locale); !slices.Contains(tr.Locales(), want) {
		logger.Warn("no strings for locale, using fallback", "want", want, "have", tr.Locales())
	}
	logger.Info("starting", "config", path, "locale", tr.Locale(), "engine", st.Engine)

	zones := zone.New()
	defer zones.Close()

	app := tui.New(ctx, &st, tr.T, store.Save, zones, logger)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes to DICTIONARY_DEBUG when set; the terminal belongs to the UI.
func newLogger() (*slog.Logger, func(), error) {
	path := os.Getenv("DICTIONARY_DEBUG")
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := tea.LogToFile(path, "dictionary")
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}
