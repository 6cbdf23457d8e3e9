package connect

import (
	"context"

	"connectrpc.com/connect"

	"github.com/pitabwire/lingo"
)

// LanguageInterceptor implements connect.Interceptor for ensuring the
// caller's language preference is available in the context.
type LanguageInterceptor struct {
}

// NewLanguageInterceptor creates a new language interceptor with default options.
func NewLanguageInterceptor() (*LanguageInterceptor, error) {
	return &LanguageInterceptor{}, nil
}

// WrapUnary extracts the language preference for unary requests.
func (l *LanguageInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		lang := lingo.LanguageFromHTTPHeader(req.Header())

		ctx = lingo.LanguageToContext(ctx, lang)

		return next(ctx, req)
	}
}

// WrapStreamingClient is a pass-through for server-side language extraction.
func (l *LanguageInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

// WrapStreamingHandler extracts the language preference for streaming handlers.
func (l *LanguageInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		lang := lingo.LanguageFromHTTPHeader(conn.RequestHeader())

		ctx = lingo.LanguageToContext(ctx, lang)

		return next(ctx, conn)
	}
}
