package application

import (
	"sync"

	"krushi/internal/domain"
	"krushi/internal/ports/output"
)

// LanguagePreference holds the visitor's selected language. The stored value
// is read once at construction; Set writes through to the store.
type LanguagePreference struct {
	mu        sync.RWMutex
	store     output.LanguageStore
	supported func(string) bool
	current   string
}

// NewLanguagePreference loads the stored choice, falling back to fallback when
// nothing is stored or the stored value is not supported.
func NewLanguagePreference(store output.LanguageStore, supported func(string) bool, fallback string) *LanguagePreference {
	p := &LanguagePreference{store: store, supported: supported, current: fallback}
	if store == nil {
		return p
	}
	if lang, ok := store.Load(); ok && supported(lang) {
		p.current = lang
	}
	return p
}

// Language returns the current language code.
func (p *LanguagePreference) Language() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Set changes and persists the language.
func (p *LanguagePreference) Set(lang string) error {
	if !p.supported(lang) {
		return domain.ErrUnsupportedLanguage
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.store != nil {
		if err := p.store.Save(lang); err != nil {
			return err
		}
	}
	p.current = lang
	return nil
}
