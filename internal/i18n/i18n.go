// Package i18n looks up localized UI strings from embedded TOML tables.
package i18n

import (
	"embed"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Auto resolves the locale from the environment.
const Auto = "auto"

const fallback = "en"

//go:embed locales/*.toml
var localeFS embed.FS

// Translator resolves keys against one locale, falling back to English
// and then to the key itself.
type Translator struct {
	locale string
	tables map[string]map[string]string
}

// New loads the embedded tables. locale may be Auto.
func New(locale string) (*Translator, error) {
	tables, err := loadTables()
	if err != nil {
		return nil, err
	}
	loc := Resolve(locale)
	if _, ok := tables[loc]; !ok {
		loc = fallback
	}
	return &Translator{locale: loc, tables: tables}, nil
}

// Locale returns the locale in use after resolution.
func (t *Translator) Locale() string { return t.locale }

// Locales lists the embedded locales.
func (t *Translator) Locales() []string {
	out := make([]string, 0, len(t.tables))
	for k := range t.tables {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// T returns the string for key with {{name}} placeholders replaced from vars.
func (t *Translator) T(key string, vars map[string]string) string {
	s, ok := t.tables[t.locale][key]
	if !ok {
		s, ok = t.tables[fallback][key]
	}
	if !ok {
		s = key
	}
	if len(vars) == 0 {
		return s
	}
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{{"+k+"}}", v)
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// Resolve maps Auto to a two letter code from LC_ALL, LC_MESSAGES or LANG.
func Resolve(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if locale != "" && locale != Auto {
		return normalize(locale)
	}
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(env); v != "" && v != "C" && v != "POSIX" {
			return normalize(v)
		}
	}
	return fallback
}

// normalize turns "zh_CN.UTF-8" into "zh".
func normalize(v string) string {
	v = strings.ToLower(v)
	if i := strings.IndexAny(v, "_.-@"); i > 0 {
		v = v[:i]
	}
	return v
}

func loadTables() (map[string]map[string]string, error) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	tables := make(map[string]map[string]string, len(entries))
	for _, e := range entries {
		name := e.Name()
		data, err := localeFS.ReadFile(path.Join("locales", name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		var table map[string]string
		if _, err := toml.Decode(string(data), &table); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		tables[strings.TrimSuffix(name, path.Ext(name))] = table
	}
	return tables, nil
}
