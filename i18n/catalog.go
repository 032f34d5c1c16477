package i18n

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v2"
)

// ============================================================================
// I18N — Embedded message catalogs for statistic labels
// ============================================================================
// Catalog keys are the English format strings used by the engine, so an
// unregistered locale still renders readable English.
// ============================================================================

const (
	// BaseLocale is the canonical source locale for catalogs.
	BaseLocale = "en-US"
)

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle contains all locale catalogs loaded from disk.
type Bundle struct {
	locales map[string]map[string]string
	matcher language.Matcher
	tags    []language.Tag
}

//go:embed locales/*/*.yaml
var embeddedCatalogFS embed.FS

var defaultBundle = mustLoadAndRegisterEmbedded()

// Default returns the process-wide embedded catalog bundle.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded loads catalog files embedded in this package.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedCatalogFS)
}

// LoadFromFS loads catalog files from the provided filesystem.
func LoadFromFS(catalogFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(catalogFS, "locales/*/*.yaml")
	if err != nil {
		return nil, errors.Wrap(err, "glob locale catalogs")
	}
	if len(paths) == 0 {
		return nil, errors.New("no catalog files found")
	}
	sort.Strings(paths)

	bundle := &Bundle{locales: map[string]map[string]string{}}
	for _, p := range paths {
		data, err := fs.ReadFile(catalogFS, p)
		if err != nil {
			return nil, errors.Wrapf(err, "read catalog %s", p)
		}
		var file catalogFile
		if err := yaml.UnmarshalStrict(data, &file); err != nil {
			return nil, errors.Wrapf(err, "parse catalog %s", p)
		}
		if err := bundle.addFile(p, file); err != nil {
			return nil, err
		}
	}

	if !bundle.HasLocale(BaseLocale) {
		return nil, errors.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}

	// Base locale first so the matcher falls back to it.
	bundle.tags = append(bundle.tags, language.MustParse(BaseLocale))
	for _, locale := range bundle.Locales() {
		if locale == BaseLocale {
			continue
		}
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, errors.Wrapf(err, "parse locale tag %q", locale)
		}
		bundle.tags = append(bundle.tags, tag)
	}
	bundle.matcher = language.NewMatcher(bundle.tags)
	return bundle, nil
}

func (b *Bundle) addFile(p string, file catalogFile) error {
	localeFromPath := path.Base(path.Dir(p))

	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return errors.Errorf("catalog %s: locale is required", p)
	}
	if locale != localeFromPath {
		return errors.Errorf("catalog %s: locale %q must match path locale %q", p, locale, localeFromPath)
	}
	if strings.TrimSpace(file.Namespace) == "" {
		return errors.Errorf("catalog %s: namespace is required", p)
	}
	if len(file.Messages) == 0 {
		return errors.Errorf("catalog %s: messages map is required", p)
	}

	messages, ok := b.locales[locale]
	if !ok {
		messages = map[string]string{}
		b.locales[locale] = messages
	}
	for key, value := range file.Messages {
		if strings.TrimSpace(key) == "" {
			return errors.Errorf("catalog %s: message key cannot be blank", p)
		}
		if _, exists := messages[key]; exists {
			return errors.Errorf("catalog %s: duplicate key %q in locale %q", p, key, locale)
		}
		messages[key] = value
	}
	return nil
}

// Register registers all catalog messages with x/text/message.
// Each locale is also registered under its base language ("de" for "de-DE").
func (b *Bundle) Register() error {
	if b == nil {
		return nil
	}
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return errors.Wrapf(err, "parse locale tag %q", locale)
		}
		tags := []language.Tag{tag}
		if base, conf := tag.Base(); conf != language.No {
			if baseTag, err := language.Parse(base.String()); err == nil && baseTag.String() != tag.String() {
				tags = append(tags, baseTag)
			}
		}
		messages := b.locales[locale]
		for key, value := range messages {
			for _, registerTag := range tags {
				if err := message.SetString(registerTag, key, value); err != nil {
					return errors.Wrapf(err, "register %q for %s", key, registerTag)
				}
			}
		}
	}
	return nil
}

// HasLocale reports whether the locale exists in this bundle.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Locales returns all available locale identifiers, sorted.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Message returns one message value with base-locale fallback.
func (b *Bundle) Message(locale, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	if messages, ok := b.locales[strings.TrimSpace(locale)]; ok {
		if value, exists := messages[key]; exists {
			return value, true
		}
	}
	value, ok := b.locales[BaseLocale][key]
	return value, ok
}

// Match resolves user input ("de", "de_CH", "pt-BR") to the closest
// supported tag. Unparseable input resolves to the base locale.
func (b *Bundle) Match(locale string) language.Tag {
	base := language.MustParse(BaseLocale)
	if b == nil || b.matcher == nil {
		return base
	}
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
	if err != nil {
		return base
	}
	_, idx, conf := b.matcher.Match(tag)
	if conf == language.No {
		return base
	}
	return b.tags[idx]
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

func mustLoadAndRegisterEmbedded() *Bundle {
	bundle, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	if err := bundle.Register(); err != nil {
		panic(err)
	}
	return bundle
}
