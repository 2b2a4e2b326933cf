package output

// LanguageStore persists the visitor's language choice.
type LanguageStore interface {
	Load() (string, bool)
	Save(language string) error
}
