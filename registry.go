package lingo

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/pitabwire/util"
)

// Table maps a language code to that language's translations. Translation
// values are loosely typed: strings resolve verbatim while any other value is
// rendered to its compact JSON form on lookup.
type Table map[string]map[string]any

// Registry holds the supported language codes, the translation table and the
// currently selected language. One registry instance is shared by reference
// between the piece that switches languages and every piece that resolves
// keys, so the current selection sits behind a read/write mutex. The language
// list and the table are never mutated after construction.
type Registry struct {
	languages []string
	table     Table

	mu      sync.RWMutex
	current string
}

// New creates a registry from the supported language codes and an already
// parsed translation table. The first supplied code becomes the current
// language. At least one code is required; the table may be empty or omit
// entries for supported languages.
func New(languages []string, table Table) (*Registry, error) {
	if len(languages) == 0 {
		return nil, ErrNoSupportedLanguages
	}

	return &Registry{
		languages: slices.Clone(languages),
		table:     table,
		current:   languages[0],
	}, nil
}

// Languages returns the supported language codes in the order they were
// supplied at construction.
func (r *Registry) Languages() []string {
	return slices.Clone(r.languages)
}

// Language returns the currently selected language code.
func (r *Registry) Language() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Supports reports whether code is one of the supported language codes.
func (r *Registry) Supports(code string) bool {
	return slices.Contains(r.languages, code)
}

// SetLanguage switches the current language to code. Codes outside the
// supported set are rejected with an UnsupportedLanguageError and leave the
// current selection untouched. Re-selecting the current language succeeds and
// changes nothing.
func (r *Registry) SetLanguage(code string) error {
	if !r.Supports(code) {
		return &UnsupportedLanguageError{Code: code}
	}

	r.mu.Lock()
	r.current = code
	r.mu.Unlock()

	return nil
}

// Translate resolves key against the current language's table. A missing key
// or a missing language table degrades to a placeholder string rather than an
// error so render paths can use the result directly without checking.
func (r *Registry) Translate(key string) string {
	return r.TranslateContext(context.Background(), key)
}

// TranslateContext is Translate for call sites carrying a request context;
// misses are logged against it.
func (r *Registry) TranslateContext(ctx context.Context, key string) string {
	lang := r.Language()

	value, ok := r.table[lang][key]
	if !ok {
		util.Log(ctx).WithField("key", key).WithField("language", lang).Debug("translation miss")
		return fmt.Sprintf("Unable to find the key '%s' in the language '%s'", key, lang)
	}

	return renderValue(value)
}

// renderValue turns a translation value into a displayable string. Non-string
// values keep their compact JSON form so structured entries still render
// inline instead of failing the lookup.
func renderValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}

	return string(data)
}
