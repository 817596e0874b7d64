package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/dictionary/internal/engines"
)

// Lang is a target language code, or LangAuto.
type Lang string

const LangAuto Lang = "auto"

// Missing is displayed for a credential the record does not hold.
const Missing = "undefined"

var ErrUnknownLang = errors.New("unknown language")

var languages = []Lang{LangAuto, "en", "zh", "ja", "ko", "fr", "de", "es", "ru"}

// Languages returns the selectable languages, LangAuto first.
func Languages() []Lang {
	out := make([]Lang, len(languages))
	copy(out, languages)
	return out
}

// ParseLang validates s against Languages.
func ParseLang(s string) (Lang, error) {
	l := Lang(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range languages {
		if l == known {
			return l, nil
		}
	}
	for _, known := range languages {
		if levenshtein.ComputeDistance(string(l), string(known)) == 1 && len(l) > 1 {
			return "", fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownLang, s, known)
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownLang, s)
}

// Settings is the persisted plugin configuration.
type Settings struct {
	Engine engines.Key
	Lang   Lang
	Config engines.Config
}

// Default returns the settings used when nothing has been saved yet.
func Default() Settings {
	return Settings{
		Engine: engines.Youdao,
		Lang:   LangAuto,
		Config: &engines.YoudaoConfig{},
	}
}

// Clone returns a deep copy so a snapshot can be persisted while the
// panel keeps editing the original.
func (s Settings) Clone() Settings {
	cp := s
	if s.Config != nil {
		cp.Config = s.Config.Clone()
	}
	return cp
}

// SelectEngine switches the engine. The config is replaced by the new
// engine's default when its variant belongs to another engine.
func (s *Settings) SelectEngine(k engines.Key) {
	s.Engine = k
	if s.Config != nil && s.Config.Engine() == k {
		return
	}
	s.Config = engines.NewConfig(k)
}

// Credential returns the stored value of f, or false when the config is
// absent or has no such field.
func (s *Settings) Credential(f engines.Field) (string, bool) {
	if s.Config == nil {
		return "", false
	}
	return s.Config.Get(f)
}

// DisplayCredential is Credential with Missing in place of an absent value.
func (s *Settings) DisplayCredential(f engines.Field) string {
	v, ok := s.Credential(f)
	if !ok {
		return Missing
	}
	return v
}

// SetCredential overwrites f. A missing or mismatched config is reshaped
// to the selected engine's default first.
func (s *Settings) SetCredential(f engines.Field, v string) error {
	if s.Config == nil || s.Config.Engine() != s.Engine {
		s.Config = engines.NewConfig(s.Engine)
	}
	if s.Config == nil {
		return fmt.Errorf("set %s: %w %q", f, engines.ErrUnknownEngine, s.Engine)
	}
	if !s.Config.Set(f, v) {
		return fmt.Errorf("engine %s has no field %s", s.Engine, f)
	}
	return nil
}
