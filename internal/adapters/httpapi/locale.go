package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"

	"krushi/internal/domain/translation"
	"krushi/internal/ports/output"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "krushi_lang"
)

var (
	supportedTags = []language.Tag{language.English, language.Marathi}
	matcher       = language.NewMatcher(supportedTags)
)

type languageKey struct{}

// LanguageFromContext returns the language resolved for the request, or the
// default language.
func LanguageFromContext(ctx context.Context) string {
	if lang, ok := ctx.Value(languageKey{}).(string); ok {
		return lang
	}
	return translation.DefaultLanguage
}

func withLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, languageKey{}, lang)
}

// supported reports whether lang is one of the site languages.
func supported(lang string) bool {
	return lang == translation.English || lang == translation.Marathi
}

// normalize maps "mr-IN", "MR" and similar to a supported base code.
func normalize(value string) (string, bool) {
	tag, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	code := base.String()
	return code, supported(code)
}

// resolveLanguage picks the request language from the lang query parameter,
// then the preference cookie, then Accept-Language. The bool reports whether
// the query parameter selected it and should be persisted.
func resolveLanguage(r *http.Request, fallback string) (string, bool) {
	if v := r.URL.Query().Get(LangParam); v != "" {
		if lang, ok := normalize(v); ok {
			return lang, true
		}
	}
	if c, err := r.Cookie(LangCookieName); err == nil {
		if lang, ok := normalize(c.Value); ok {
			return lang, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, idx, conf := matcher.Match(tags...)
			if conf != language.No {
				base, _ := supportedTags[idx].Base()
				return base.String(), false
			}
		}
	}
	return fallback, false
}

// cookieStore is the output.LanguageStore of one request/response pair.
type cookieStore struct {
	w http.ResponseWriter
	r *http.Request
}

var _ output.LanguageStore = cookieStore{}

func (s cookieStore) Load() (string, bool) {
	c, err := s.r.Cookie(LangCookieName)
	if err != nil {
		return "", false
	}
	return normalize(c.Value)
}

func (s cookieStore) Save(lang string) error {
	http.SetCookie(s.w, &http.Cookie{
		Name:     LangCookieName,
		Value:    lang,
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
