package engines

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Key identifies a translation backend.
type Key string

const (
	Youdao Key = "youdao"
	Baidu  Key = "baidu"
	DeepL  Key = "deepl"
)

// Field names one credential of an engine config.
type Field string

const (
	FieldAppKey    Field = "appKey"
	FieldAppSecret Field = "appSecret"
	FieldAppID     Field = "appId"
	FieldAuthKey   Field = "authKey"
)

// ErrUnknownEngine is returned by Parse for keys outside the supported set.
var ErrUnknownEngine = errors.New("unknown translate engine")

// Descriptor describes one supported engine.
type Descriptor struct {
	Key    Key
	Fields []Field
	New    func() Config
}

var supported = []Descriptor{
	{Key: Youdao, Fields: []Field{FieldAppKey, FieldAppSecret}, New: func() Config { return &YoudaoConfig{} }},
	{Key: Baidu, Fields: []Field{FieldAppID, FieldAppSecret}, New: func() Config { return &BaiduConfig{} }},
	{Key: DeepL, Fields: []Field{FieldAuthKey}, New: func() Config { return &DeepLConfig{} }},
}

// Supported returns the engines in display order. The slice is a copy.
func Supported() []Descriptor {
	out := make([]Descriptor, len(supported))
	copy(out, supported)
	return out
}

// Lookup returns the descriptor for k.
func Lookup(k Key) (Descriptor, bool) {
	for _, d := range supported {
		if d.Key == k {
			return d, true
		}
	}
	return Descriptor{}, false
}

// NewConfig returns the default (empty) config for k, or nil if k is not supported.
func NewConfig(k Key) Config {
	d, ok := Lookup(k)
	if !ok {
		return nil
	}
	return d.New()
}

// Parse normalizes s and checks it against the supported set. The error
// carries the closest supported key when one is near enough.
func Parse(s string) (Key, error) {
	k := Key(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := Lookup(k); ok {
		return k, nil
	}
	if hint := suggest(string(k)); hint != "" {
		return "", fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownEngine, s, hint)
	}
	return "", fmt.Errorf("%w %q", ErrUnknownEngine, s)
}

func suggest(s string) string {
	if s == "" {
		return ""
	}
	best, bestDist := "", 3
	for _, d := range supported {
		if dist := levenshtein.ComputeDistance(s, string(d.Key)); dist < bestDist {
			best, bestDist = string(d.Key), dist
		}
	}
	return best
}
