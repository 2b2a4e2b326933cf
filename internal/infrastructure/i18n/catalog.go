package i18n

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"krushi/internal/domain/translation"
)

var catalogFiles = map[string]string{
	translation.English: "site.en.toml",
	translation.Marathi: "site.mr.toml",
}

// LoadCatalog decodes the embedded site.<lang>.toml files into the
// translation table served to the site and used by the contact form.
func LoadCatalog(defaultLanguage string) (*translation.Table, error) {
	trees := make(map[string]map[string]any, len(catalogFiles))
	for lang, file := range catalogFiles {
		raw, err := localeFS.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", file, err)
		}
		var tree map[string]any
		if err := toml.Unmarshal(raw, &tree); err != nil {
			return nil, fmt.Errorf("decode catalog %s: %w", file, err)
		}
		trees[lang] = tree
	}
	return translation.NewTable(trees, defaultLanguage)
}
