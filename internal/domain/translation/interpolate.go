package translation

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Interpolate replaces every {{name}} in s with fmt.Sprint(params[name]).
// Placeholders without a matching param are left as they are. Params are
// applied in key order so the result does not depend on map iteration.
func Interpolate(s string, params map[string]any) string {
	if len(params) == 0 || !strings.Contains(s, "{{") {
		return s
	}
	for _, name := range slices.Sorted(maps.Keys(params)) {
		s = strings.ReplaceAll(s, "{{"+name+"}}", fmt.Sprint(params[name]))
	}
	return s
}

// LocaleTag maps a language code to the regional tag used for formatting.
func LocaleTag(language string) string {
	if language == Marathi {
		return "mr-IN"
	}
	return "en-IN"
}

// Direction returns the text direction of language. Both supported
// languages are left-to-right.
func Direction(string) string {
	return "ltr"
}
