// Package translation indexes a translation export by entity, locale and
// field, and resolves translated product names.
package translation

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/javajack/pricebook/internal/tabular"
)

// Column names of the translation export.
const (
	ColType              = "Type"
	ColIdentification    = "Identification"
	ColField             = "Field"
	ColLocale            = "Locale"
	ColDefaultContent    = "Default content"
	ColTranslatedContent = "Translated content"
)

// Entity types used by the lookups.
const (
	TypeProduct        = "PRODUCT"
	TypeProductVariant = "PRODUCT_VARIANT"
	TypeCollection     = "COLLECTION"
)

// DefaultLanguage selects the untranslated source content.
const DefaultLanguage = "default"

// ErrNotFound is returned by Load when the export does not exist.
var ErrNotFound = errors.New("translation export not found")

// Key addresses one translated field.
type Key struct {
	Type   string
	ID     string
	Locale string
	Field  string
}

// Content is the source and translated text of one field.
type Content struct {
	Default    string
	Translated string
}

// Table holds every translated field. A nil *Table is an empty table.
type Table struct {
	entries map[Key]Content
	keys    []Key // first-insertion order
}

// Load reads the translation export at path.
func Load(path string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat %q: %w", path, err)
	}
	records, err := tabular.Read(path)
	if err != nil {
		return nil, err
	}
	return Extract(records), nil
}

// Extract builds a table from records. Rows without a type or an
// identification are skipped; a repeated key keeps the last row.
func Extract(records []tabular.Record) *Table {
	t := &Table{entries: make(map[Key]Content)}
	for _, rec := range records {
		typ := rec.Get(ColType)
		ident := rec.Get(ColIdentification)
		if typ == "" || ident == "" {
			continue
		}
		k := Key{
			Type:   typ,
			ID:     entityID(ident),
			Locale: rec.Get(ColLocale),
			Field:  rec.Get(ColField),
		}
		if _, ok := t.entries[k]; !ok {
			t.keys = append(t.keys, k)
		}
		t.entries[k] = Content{
			Default:    rec.Get(ColDefaultContent),
			Translated: rec.Get(ColTranslatedContent),
		}
	}
	return t
}

// entityID takes the first comma-separated part of an identification and
// strips one layer of quoting, e.g. "'8123456,extra" -> "8123456".
func entityID(ident string) string {
	id, _, _ := strings.Cut(ident, ",")
	id = strings.TrimSpace(id)
	if len(id) >= 2 && (id[0] == '\'' || id[0] == '"') && id[len(id)-1] == id[0] {
		return id[1 : len(id)-1]
	}
	id = strings.TrimPrefix(id, "'")
	return strings.TrimSuffix(id, "'")
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Get returns the content stored under k.
func (t *Table) Get(k Key) (Content, bool) {
	if t == nil {
		return Content{}, false
	}
	c, ok := t.entries[k]
	return c, ok
}

// Fields returns every field translated for one entity and locale.
func (t *Table) Fields(typ, id, locale string) map[string]Content {
	out := make(map[string]Content)
	if t == nil {
		return out
	}
	for _, k := range t.keys {
		if k.Type == typ && k.ID == id && k.Locale == locale {
			out[k.Field] = t.entries[k]
		}
	}
	return out
}
