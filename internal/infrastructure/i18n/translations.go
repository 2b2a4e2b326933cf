package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"krushi/internal/ports/output"
)

//go:embed active.*.toml site.*.toml
var localeFS embed.FS

var _ output.T = (*Translator)(nil)

// Translator renders the flat API messages (envelope messages, validation
// texts) from the embedded active.<lang>.toml bundles.
type Translator struct {
	bundle     *i18n.Bundle
	fallback   string
	logger     *slog.Logger
	localizers sync.Map // locale -> *i18n.Localizer
}

// NewTranslator loads every active.*.toml bundle. A bundle that fails to
// parse is a startup error.
func NewTranslator(defaultLocale string, logger *slog.Logger) (*Translator, error) {
	if logger == nil {
		logger = slog.Default()
	}
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("parse default locale %q: %w", defaultLocale, err)
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(localeFS, "active.*.toml")
	if err != nil {
		return nil, fmt.Errorf("list message files: %w", err)
	}
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("load message file %s: %w", file, err)
		}
	}
	return &Translator{bundle: bundle, fallback: tag.String(), logger: logger}, nil
}

// Languages returns the tags the bundle has messages for.
func (t *Translator) Languages() []language.Tag {
	return t.bundle.LanguageTags()
}

// T renders key for locale, then for the default locale, then returns key.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	msg, err := t.localizer(locale).Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		var notFound *i18n.MessageNotFoundErr
		if errors.As(err, &notFound) {
			t.logger.Debug("i18n: message not found", "key", key, "locale", locale)
		} else {
			t.logger.Warn("i18n: render failed", "key", key, "locale", locale, "error", err)
		}
		return key
	}
	return msg
}

func (t *Translator) localizer(locale string) *i18n.Localizer {
	if l, ok := t.localizers.Load(locale); ok {
		return l.(*i18n.Localizer)
	}
	langs := []string{t.fallback}
	if locale != "" {
		langs = []string{locale, t.fallback}
	}
	l, _ := t.localizers.LoadOrStore(locale, i18n.NewLocalizer(t.bundle, langs...))
	return l.(*i18n.Localizer)
}
