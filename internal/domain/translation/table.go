// Package translation resolves dotted keys against nested per-language
// string trees.
package translation

import (
	"fmt"
	"sort"
	"strings"
)

// Supported language codes.
const (
	English = "en"
	Marathi = "mr"

	DefaultLanguage = English
)

// node is one level of a language tree. Values are either string leaves or
// nested nodes.
type node map[string]any

// Table is an immutable language -> tree mapping. The zero value is unusable;
// build one with NewTable.
type Table struct {
	trees           map[string]node
	defaultLanguage string
}

// NewTable copies trees into a new Table. Nested values may be any of
// map[string]any, map[string]string or string; anything else is rejected so
// a malformed catalog fails at startup instead of at lookup time.
func NewTable(trees map[string]map[string]any, defaultLanguage string) (*Table, error) {
	if defaultLanguage == "" {
		defaultLanguage = DefaultLanguage
	}
	t := &Table{
		trees:           make(map[string]node, len(trees)),
		defaultLanguage: defaultLanguage,
	}
	for lang, tree := range trees {
		n, err := copyTree(lang, tree)
		if err != nil {
			return nil, err
		}
		t.trees[lang] = n
	}
	return t, nil
}

// MustNewTable is NewTable that panics on error. Intended for static tables.
func MustNewTable(trees map[string]map[string]any, defaultLanguage string) *Table {
	t, err := NewTable(trees, defaultLanguage)
	if err != nil {
		panic(err)
	}
	return t
}

func copyTree(path string, src map[string]any) (node, error) {
	out := make(node, len(src))
	for k, v := range src {
		p := path + "." + k
		switch val := v.(type) {
		case string:
			out[k] = val
		case map[string]string:
			child := make(node, len(val))
			for ck, cv := range val {
				child[ck] = cv
			}
			out[k] = child
		case map[string]any:
			child, err := copyTree(p, val)
			if err != nil {
				return nil, err
			}
			out[k] = child
		default:
			return nil, fmt.Errorf("translation: %s: unsupported value type %T", p, v)
		}
	}
	return out, nil
}

// DefaultLanguage returns the fallback language of the table.
func (t *Table) DefaultLanguage() string {
	return t.defaultLanguage
}

// Languages returns the table's language codes, sorted.
func (t *Table) Languages() []string {
	out := make([]string, 0, len(t.trees))
	for lang := range t.trees {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// Has reports whether language has a tree in the table.
func (t *Table) Has(language string) bool {
	_, ok := t.trees[language]
	return ok
}

// Lookup walks the tree of a single language. ok is false when a segment is
// missing, when an intermediate value is a leaf, or when the walk ends on a
// mapping rather than a string.
func (t *Table) Lookup(language, key string) (string, bool) {
	root, ok := t.trees[language]
	if !ok {
		return "", false
	}
	var cur any = root
	for _, seg := range strings.Split(key, ".") {
		n, ok := cur.(node)
		if !ok {
			return "", false
		}
		cur, ok = n[seg]
		if !ok {
			return "", false
		}
	}
	s, ok := cur.(string)
	return s, ok
}

// Resolve returns the string at key for language, else the string at key in
// the default language, else key itself.
func (t *Table) Resolve(language, key string) string {
	if s, ok := t.Lookup(language, key); ok {
		return s
	}
	if s, ok := t.Lookup(t.defaultLanguage, key); ok {
		return s
	}
	return key
}

// ResolveWith resolves key and substitutes {{name}} placeholders from params.
func (t *Table) ResolveWith(language, key string, params map[string]any) string {
	return Interpolate(t.Resolve(language, key), params)
}

// T implements the output.T translator port.
func (t *Table) T(locale, key string, data map[string]any) string {
	return t.ResolveWith(locale, key, data)
}

// Subtree returns a deep copy of the tree for language as plain maps, or nil
// if the language is unknown.
func (t *Table) Subtree(language string) map[string]any {
	root, ok := t.trees[language]
	if !ok {
		return nil
	}
	return exportNode(root)
}

func exportNode(n node) map[string]any {
	out := make(map[string]any, len(n))
	for k, v := range n {
		if child, ok := v.(node); ok {
			out[k] = exportNode(child)
			continue
		}
		out[k] = v
	}
	return out
}
