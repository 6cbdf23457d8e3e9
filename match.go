package lingo

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"google.golang.org/grpc/metadata"
)

// Match resolves the caller's preferred language codes against the supported
// set and returns the best supported code. Preferences that match nothing
// leave the current selection as the answer.
func (r *Registry) Match(preferred ...string) string {
	desired, _, err := language.ParseAcceptLanguage(strings.Join(preferred, ","))
	if err != nil || len(desired) == 0 {
		return r.Language()
	}

	tags := make([]language.Tag, 0, len(r.languages))
	for _, code := range r.languages {
		tags = append(tags, language.Make(code))
	}

	_, index, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No {
		return r.Language()
	}

	return r.languages[index]
}

// LanguageFromHTTPRequest gathers the caller's language preference from the
// lang form value followed by the Accept-Language header.
func LanguageFromHTTPRequest(req *http.Request) []string {
	lang := req.FormValue("lang")

	acceptedLang := LanguageFromHTTPHeader(req.Header)

	var languages []string
	if lang != "" {
		languages = append(languages, lang)
	}

	return append(languages, acceptedLang...)
}

// LanguageFromHTTPHeader splits the Accept-Language header into its codes.
func LanguageFromHTTPHeader(h http.Header) []string {
	acceptLanguageHeader := h.Get("Accept-Language")
	return splitCodes(acceptLanguageHeader)
}

// LanguageFromGrpcRequest extracts the accept-language metadata supplied on an
// incoming grpc request.
func LanguageFromGrpcRequest(ctx context.Context) []string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil
	}

	header, ok := md["accept-language"]
	if !ok || len(header) == 0 {
		return nil
	}

	return splitCodes(header[0])
}

func splitCodes(list string) []string {
	var codes []string
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		codes = append(codes, part)
	}
	return codes
}
