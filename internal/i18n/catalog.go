// Package i18n renders the bot's mutator messages in the session's locale
package i18n

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"

	dnderr "github.com/KirkDiggler/dnd-bot-mutators/internal/errors"
)

// BaseLocale is the locale every other catalog falls back to
const BaseLocale = "en-US"

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

// Bundle holds the messages of every loaded locale
type Bundle struct {
	messages map[string]map[string]string // locale -> key -> format
	tags     []language.Tag
	locales  []string
	builder  *catalog.Builder
	matcher  language.Matcher
}

// LoadEmbedded loads the catalogs shipped with the bot
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads every locales/<locale>/<namespace>.yaml file in the
// filesystem. The base locale must be present.
func LoadFromFS(catalogFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(catalogFS, "locales/*/*.yaml")
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list locale catalogs")
	}
	if len(paths) == 0 {
		return nil, dnderr.New(dnderr.CodeNotFound, "no locale catalogs found")
	}
	sort.Strings(paths)

	b := &Bundle{messages: make(map[string]map[string]string)}
	for _, p := range paths {
		data, err := fs.ReadFile(catalogFS, p)
		if err != nil {
			return nil, dnderr.Wrapf(err, "failed to read catalog %s", p)
		}
		if err := b.add(p, data); err != nil {
			return nil, err
		}
	}

	if _, ok := b.messages[BaseLocale]; !ok {
		return nil, dnderr.Validationf("base locale %s is not defined in catalogs", BaseLocale)
	}

	if err := b.build(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bundle) add(p string, data []byte) error {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeValidation, "failed to parse catalog").WithMeta("file", p)
	}

	locale := strings.TrimSpace(file.Locale)
	fromPath := path.Base(path.Dir(p))
	if locale != fromPath {
		return dnderr.Validationf("catalog %s: locale %q must match path locale %q", p, locale, fromPath)
	}
	if len(file.Messages) == 0 {
		return dnderr.Validationf("catalog %s: messages are required", p)
	}

	messages, ok := b.messages[locale]
	if !ok {
		messages = make(map[string]string)
		b.messages[locale] = messages
	}
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return dnderr.Validationf("catalog %s: message key cannot be blank", p)
		}
		if _, exists := messages[key]; exists {
			return dnderr.Validationf("catalog %s: duplicate key %q in locale %q", p, key, locale)
		}
		messages[key] = value
	}
	return nil
}

// build registers every message with an x/text catalog. The base locale is
// listed first so the matcher falls back to it.
func (b *Bundle) build() error {
	b.locales = make([]string, 0, len(b.messages))
	for locale := range b.messages {
		if locale != BaseLocale {
			b.locales = append(b.locales, locale)
		}
	}
	sort.Strings(b.locales)
	b.locales = append([]string{BaseLocale}, b.locales...)

	b.builder = catalog.NewBuilder(catalog.Fallback(language.MustParse(BaseLocale)))
	b.tags = make([]language.Tag, 0, len(b.locales))
	for _, locale := range b.locales {
		tag, err := language.Parse(locale)
		if err != nil {
			return dnderr.WrapWithCode(err, dnderr.CodeValidation, "invalid locale tag").WithMeta("locale", locale)
		}
		b.tags = append(b.tags, tag)

		for key, format := range b.messages[locale] {
			if err := b.builder.SetString(tag, key, format); err != nil {
				return dnderr.Wrapf(err, "failed to register %s for %s", key, locale)
			}
		}
	}
	b.matcher = language.NewMatcher(b.tags)
	return nil
}

// Locales lists the loaded locales, base locale first
func (b *Bundle) Locales() []string {
	return append([]string(nil), b.locales...)
}

// Message returns the raw format of a key, falling back to the base locale
func (b *Bundle) Message(locale, key string) (string, bool) {
	if msg, ok := b.messages[strings.TrimSpace(locale)][key]; ok {
		return msg, true
	}
	msg, ok := b.messages[BaseLocale][key]
	return msg, ok
}

// Localizer returns a Localizer for the closest loaded locale
func (b *Bundle) Localizer(locale string) *Localizer {
	tag := b.tags[0]
	if requested, err := language.Parse(strings.TrimSpace(locale)); err == nil {
		if _, index, confidence := b.matcher.Match(requested); confidence != language.No {
			tag = b.tags[index]
		}
	}

	return &Localizer{
		locale:  tag.String(),
		printer: message.NewPrinter(tag, message.Catalog(b.builder)),
	}
}
