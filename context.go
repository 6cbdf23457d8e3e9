package lingo

import (
	"context"
	"strings"
)

type contextKey string

func (c contextKey) String() string {
	return "lingo/" + string(c)
}

const (
	ctxKeyStore    = contextKey("storeKey")
	ctxKeyLanguage = contextKey("languageKey")
)

// ToContext adds the translation store to the current supplied context.
func ToContext(ctx context.Context, store *Store) context.Context {
	return context.WithValue(ctx, ctxKeyStore, store)
}

// FromContext extracts the translation store from the supplied context if any exist.
func FromContext(ctx context.Context) *Store {
	store, ok := ctx.Value(ctxKeyStore).(*Store)
	if !ok {
		return nil
	}

	return store
}

// LanguageToContext adds the caller's preferred language codes to the current
// supplied context.
func LanguageToContext(ctx context.Context, lang []string) context.Context {
	return context.WithValue(ctx, ctxKeyLanguage, lang)
}

// LanguageFromContext extracts preferred language codes from the supplied
// context if any exist.
func LanguageFromContext(ctx context.Context) []string {
	languages, ok := ctx.Value(ctxKeyLanguage).([]string)
	if !ok {
		return nil
	}

	return languages
}

func LanguageToMap(m map[string]string, lang []string) map[string]string {
	m["lang"] = strings.Join(lang, ",")
	return m
}

func LanguageFromMap(m map[string]string) []string {
	lang, ok := m["lang"]
	if !ok {
		return nil
	}
	return strings.Split(lang, ",")
}
