package output

// T renders localized text. Both the go-i18n API message bundle and the site
// catalog (translation.Table) satisfy it, so callers can swap one for the
// other. A miss returns key unchanged.
type T interface {
	T(locale, key string, data map[string]any) string
}
