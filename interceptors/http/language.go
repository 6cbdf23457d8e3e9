package http

import (
	"net/http"

	"github.com/pitabwire/lingo"
)

// LanguageHTTPMiddleware is an HTTP middleware that extracts the caller's
// language preference and sets it in the request context.
func LanguageHTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := lingo.LanguageFromHTTPRequest(r)

		ctx := lingo.LanguageToContext(r.Context(), l)
		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
	})
}

// SwitchHandler returns a handler for a language picker's change action: it
// reads the lang form value and switches the store to it. Unsupported codes
// are rejected with a 400 and leave the selection unchanged.
func SwitchHandler(store *lingo.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code := r.FormValue("lang")

		err := store.SetLanguage(code)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}
