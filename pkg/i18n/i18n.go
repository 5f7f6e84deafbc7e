// Package i18n renders semantic log keys into human-readable strings in the
// caller's locale. The scheduler core only emits keys and parameters; message
// text lives in embedded YAML catalogs.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localesFS embed.FS

// DefaultLocale is used when the requested locale has no catalog
const DefaultLocale = "en"

// Translator formats message keys for one locale
type Translator struct {
	locale   string
	messages map[string]string
	fallback map[string]string
}

// Args holds named parameters substituted into {placeholders}
type Args map[string]any

var (
	catalogs  map[string]map[string]string
	supported []language.Tag
	matcher   language.Matcher
)

func init() {
	var err error
	catalogs, err = loadCatalogs()
	if err != nil {
		panic(fmt.Sprintf("i18n: failed to load embedded catalogs: %v", err))
	}

	// Default locale first so the matcher falls back to it
	supported = append(supported, language.MustParse(DefaultLocale))
	for locale := range catalogs {
		if locale != DefaultLocale {
			supported = append(supported, language.MustParse(locale))
		}
	}
	matcher = language.NewMatcher(supported)
}

func loadCatalogs() (map[string]map[string]string, error) {
	entries, err := fs.ReadDir(localesFS, "locales")
	if err != nil {
		return nil, err
	}

	loaded := make(map[string]map[string]string, len(entries))
	for _, entry := range entries {
		locale := strings.TrimSuffix(entry.Name(), ".yaml")

		data, err := fs.ReadFile(localesFS, path.Join("locales", entry.Name()))
		if err != nil {
			return nil, err
		}

		messages := make(map[string]string)
		if err := yaml.Unmarshal(data, &messages); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", entry.Name(), err)
		}
		loaded[locale] = messages
	}
	return loaded, nil
}

// NewTranslator returns a translator for the requested locale. Unknown or
// malformed locales fall back to the default catalog.
func NewTranslator(locale string) *Translator {
	resolved := DefaultLocale
	if _, ok := catalogs[locale]; ok {
		resolved = locale
	} else if tag, err := language.Parse(locale); err == nil {
		_, idx, conf := matcher.Match(tag)
		if conf > language.No {
			resolved = supported[idx].String()
		}
	}

	if _, ok := catalogs[resolved]; !ok {
		resolved = DefaultLocale
	}

	return &Translator{
		locale:   resolved,
		messages: catalogs[resolved],
		fallback: catalogs[DefaultLocale],
	}
}

// Locale returns the resolved locale
func (t *Translator) Locale() string {
	return t.locale
}

// Message renders a key with named arguments. Missing keys fall back to the
// default catalog and then to the key itself, so a typo never drops a log
// line silently.
func (t *Translator) Message(key string, args Args) string {
	template, ok := t.messages[key]
	if !ok {
		template, ok = t.fallback[key]
	}
	if !ok {
		return key
	}

	if len(args) == 0 {
		return template
	}

	pairs := make([]string, 0, len(args)*2)
	for name, value := range args {
		pairs = append(pairs, "{"+name+"}", fmt.Sprint(value))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
