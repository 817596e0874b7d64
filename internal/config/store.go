package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jask/dictionary/internal/engines"
	"github.com/jask/dictionary/internal/secrets"
	"github.com/jask/dictionary/internal/settings"
)

// SecretStore is the subset of secrets.Store used for credentials.
type SecretStore interface {
	Put(name, value string) error
	Get(name string) (string, error)
	Delete(name string) error
}

// Store persists settings.Settings: engine and language go to the TOML
// config file, credentials to the secret store.
type Store struct {
	mu      sync.Mutex
	path    string
	cfg     Config
	secrets SecretStore
	logger  *slog.Logger
}

// NewStore returns a store writing to path. cfg is the effective config,
// env overrides included; Load reads engine and language from it.
func NewStore(path string, cfg Config, sec SecretStore, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{path: path, cfg: cfg, secrets: sec, logger: logger}
}

// Load builds the settings record from the config and the secret store.
// Credentials that were never saved come back empty.
func (s *Store) Load(ctx context.Context) (settings.Settings, error) {
	if err := ctx.Err(); err != nil {
		return settings.Settings{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	engine, err := engines.Parse(s.cfg.Translate.Engine)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("translate.engine: %w", err)
	}
	lang, err := settings.ParseLang(s.cfg.Translate.Lang)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("translate.lang: %w", err)
	}
	d, _ := engines.Lookup(engine)

	out := settings.Settings{Engine: engine, Lang: lang, Config: d.New()}
	for _, f := range d.Fields {
		v, err := s.secrets.Get(secrets.Name(string(engine), string(f)))
		switch {
		case errors.Is(err, secrets.ErrNotFound):
			continue
		case err != nil:
			return settings.Settings{}, fmt.Errorf("load %s %s: %w", engine, f, err)
		}
		out.Config.Set(f, v)
	}
	s.logger.Debug("settings loaded", "engine", engine, "lang", lang)
	return out, nil
}

// Save persists st. It is safe to call from concurrent tea.Cmds; the last
// call to acquire the lock wins.
func (s *Store) Save(ctx context.Context, st settings.Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if st.Config != nil {
		d, ok := engines.Lookup(st.Config.Engine())
		if !ok {
			return fmt.Errorf("save settings: %w %q", engines.ErrUnknownEngine, st.Config.Engine())
		}
		for _, f := range d.Fields {
			name := secrets.Name(string(d.Key), string(f))
			v, _ := st.Config.Get(f)
			var err error
			if v == "" {
				err = s.secrets.Delete(name)
			} else {
				err = s.secrets.Put(name, v)
			}
			if err != nil {
				return fmt.Errorf("save %s %s: %w", d.Key, f, err)
			}
		}
	}

	// env overrides stay out of the file
	cfg, err := LoadFile(s.path)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	cfg.Translate.Engine = string(st.Engine)
	cfg.Translate.Lang = string(st.Lang)
	if err := Save(s.path, cfg); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	s.cfg.Translate = cfg.Translate
	s.logger.Debug("settings saved", "engine", st.Engine, "lang", st.Lang, "path", s.path)
	return nil
}
