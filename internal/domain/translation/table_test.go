package translation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable(t *testing.T) *Table {
	t.Helper()
	table, err := NewTable(map[string]map[string]any{
		English: {
			"nav": map[string]any{
				"home":  "Home",
				"about": "About Us",
			},
			"contact": map[string]any{
				"form": map[string]any{
					"name":     "Full Name",
					"greeting": "Hello {{name}}",
				},
				"onlyEnglish": "English only",
			},
			"empty": "",
		},
		Marathi: {
			"nav": map[string]string{
				"home": "मुख्यपृष्ठ",
			},
			"contact": map[string]any{
				"form": "not a mapping here",
			},
		},
	}, English)
	require.NoError(t, err)
	return table
}

func TestResolveExactness(t *testing.T) {
	table := testTable(t)

	cases := []struct {
		lang, key, want string
	}{
		{English, "nav.home", "Home"},
		{English, "nav.about", "About Us"},
		{English, "contact.form.name", "Full Name"},
		{Marathi, "nav.home", "मुख्यपृष्ठ"},
		{Marathi, "contact.form", "not a mapping here"},
		{English, "empty", ""},
	}
	for _, tc := range cases {
		t.Run(tc.lang+"/"+tc.key, func(t *testing.T) {
			assert.Equal(t, tc.want, table.Resolve(tc.lang, tc.key))
		})
	}
}

func TestResolveFallsBackToDefaultLanguage(t *testing.T) {
	table := testTable(t)

	for _, key := range []string{"nav.about", "contact.onlyEnglish"} {
		assert.Equal(t, table.Resolve(English, key), table.Resolve(Marathi, key), key)
	}
	// The Marathi walk hits a leaf where a mapping is expected.
	assert.Equal(t, "Full Name", table.Resolve(Marathi, "contact.form.name"))
}

func TestResolveUnknownLanguageUsesDefault(t *testing.T) {
	table := testTable(t)
	assert.Equal(t, "Home", table.Resolve("fr", "nav.home"))
	assert.Equal(t, "Home", table.Resolve("", "nav.home"))
}

func TestResolveMissReturnsKey(t *testing.T) {
	table := testTable(t)

	for _, lang := range []string{English, Marathi, "de"} {
		for _, key := range []string{"nav.missing", "does.not.exist", "nav", "contact.form", "nav.home.deeper", ""} {
			if lang == Marathi && key == "contact.form" {
				continue
			}
			assert.Equal(t, key, table.Resolve(lang, key), "%s/%s", lang, key)
		}
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	table := testTable(t)
	for _, key := range []string{"nav.home", "nav.about", "missing.key"} {
		first := table.Resolve(Marathi, key)
		assert.Equal(t, first, table.Resolve(Marathi, key))
	}
}

func TestLookupDoesNotFallBack(t *testing.T) {
	table := testTable(t)

	_, ok := table.Lookup(Marathi, "nav.about")
	assert.False(t, ok)

	got, ok := table.Lookup(English, "nav.about")
	assert.True(t, ok)
	assert.Equal(t, "About Us", got)

	_, ok = table.Lookup(English, "nav")
	assert.False(t, ok, "intermediate mapping is not a hit")
}

func TestResolveWithInterpolation(t *testing.T) {
	table := testTable(t)

	assert.Equal(t, "Hello Raj", table.ResolveWith(English, "contact.form.greeting", map[string]any{"name": "Raj"}))
	assert.Equal(t, "Hello {{name}}", table.ResolveWith(English, "contact.form.greeting", map[string]any{"other": "x"}))
	assert.Equal(t, "Hello {{name}}", table.ResolveWith(English, "contact.form.greeting", nil))
	assert.Equal(t, "Hello Raj", table.T(Marathi, "contact.form.greeting", map[string]any{"name": "Raj"}))
}

func TestInterpolate(t *testing.T) {
	assert.Equal(t, "Hello Raj, Hello Raj", Interpolate("Hello {{name}}, Hello {{name}}", map[string]any{"name": "Raj"}))
	assert.Equal(t, "min 10 chars", Interpolate("min {{min}} chars", map[string]any{"min": 10}))
	assert.Equal(t, "{{ name }}", Interpolate("{{ name }}", map[string]any{"name": "Raj"}))
}

func TestNewTableCopiesInput(t *testing.T) {
	nav := map[string]any{"home": "Home"}
	table, err := NewTable(map[string]map[string]any{English: {"nav": nav}}, "")
	require.NoError(t, err)

	nav["home"] = "Changed"
	assert.Equal(t, "Home", table.Resolve(English, "nav.home"))
	assert.Equal(t, DefaultLanguage, table.DefaultLanguage())
}

func TestNewTableRejectsUnsupportedValues(t *testing.T) {
	_, err := NewTable(map[string]map[string]any{
		English: {"nav": map[string]any{"items": []any{"a", "b"}}},
	}, English)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "en.nav.items")
}

func TestSubtreeIsDeepCopy(t *testing.T) {
	table := testTable(t)

	tree := table.Subtree(English)
	require.NotNil(t, tree)
	nav, ok := tree["nav"].(map[string]any)
	require.True(t, ok)
	nav["home"] = "Mutated"

	assert.Equal(t, "Home", table.Resolve(English, "nav.home"))
	assert.Nil(t, table.Subtree("fr"))
	assert.Equal(t, []string{English, Marathi}, table.Languages())
	assert.True(t, table.Has(Marathi))
}

func TestLocaleTag(t *testing.T) {
	assert.Equal(t, "mr-IN", LocaleTag(Marathi))
	assert.Equal(t, "en-IN", LocaleTag(English))
	assert.Equal(t, "en-IN", LocaleTag("fr"))
	assert.Equal(t, "ltr", Direction(Marathi))
}
