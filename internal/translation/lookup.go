package translation

import (
	"sort"
	"strings"
)

// LookupTitle finds the product whose handle field defaults to handle in
// locale and returns its translated title.
func (t *Table) LookupTitle(handle, locale string) (string, bool) {
	if t == nil {
		return "", false
	}
	for _, k := range t.keys {
		if k.Type != TypeProduct || k.Locale != locale || k.Field != "handle" {
			continue
		}
		if t.entries[k].Default != handle {
			continue
		}
		title, ok := t.entries[Key{Type: TypeProduct, ID: k.ID, Locale: locale, Field: "title"}]
		if !ok {
			return "", false
		}
		return title.Translated, true
	}
	return "", false
}

// lookupTitleByDefault matches on the untranslated title instead of the
// handle, for exports whose handle rows are missing or inconsistent.
func (t *Table) lookupTitleByDefault(defaultName, locale string) (string, bool) {
	for _, k := range t.keys {
		if k.Type != TypeProduct || k.Locale != locale || k.Field != "title" {
			continue
		}
		c := t.entries[k]
		if strings.EqualFold(c.Default, defaultName) && c.Translated != "" {
			return c.Translated, true
		}
	}
	return "", false
}

// AvailableLocales returns every locale in the table, sorted.
func (t *Table) AvailableLocales() []string {
	if t == nil {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, k := range t.keys {
		if !seen[k.Locale] {
			seen[k.Locale] = true
			out = append(out, k.Locale)
		}
	}
	sort.Strings(out)
	return out
}

// BuildMultilingualName joins the product name in each requested language
// with a single space. DefaultLanguage and "" stand for defaultName.
// Languages without a translation are left out.
func (t *Table) BuildMultilingualName(handle, defaultName string, languages []string) string {
	if len(languages) == 0 {
		return defaultName
	}

	var parts []string
	for _, lang := range languages {
		if lang == DefaultLanguage || lang == "" {
			parts = append(parts, defaultName)
			continue
		}
		if name, ok := t.LookupTitle(handle, lang); ok && name != "" {
			parts = append(parts, name)
			continue
		}
		if t == nil {
			continue
		}
		if name, ok := t.lookupTitleByDefault(defaultName, lang); ok {
			parts = append(parts, name)
		}
	}
	if len(parts) == 0 {
		return defaultName
	}
	return strings.Join(parts, " ")
}
