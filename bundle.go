package lingo

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Bundle exports the registry's table as a go-i18n bundle so localizer based
// consumers can resolve the same catalog. Non-string entries are rendered the
// same way Translate renders them. The default language of the bundle is the
// registry's first supported code.
func (r *Registry) Bundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.Make(r.languages[0]))

	for _, lang := range r.languages {
		entries := r.table[lang]
		if len(entries) == 0 {
			continue
		}

		messages := make([]*i18n.Message, 0, len(entries))
		for key, value := range entries {
			messages = append(messages, &i18n.Message{ID: key, Other: renderValue(value)})
		}

		err := bundle.AddMessages(language.Make(lang), messages...)
		if err != nil {
			return nil, err
		}
	}

	return bundle, nil
}
