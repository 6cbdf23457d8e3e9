package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/pitabwire/lingo"
)

// LanguageUnaryInterceptor Simple grpc interceptor to extract the language supplied via metadata.
func LanguageUnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any,
		_ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		l := lingo.LanguageFromGrpcRequest(ctx)
		if l != nil {
			ctx = lingo.LanguageToContext(ctx, l)
		}

		return handler(ctx, req)
	}
}

// LanguageStreamInterceptor extracts the language supplied via metadata for server streams.
func LanguageStreamInterceptor() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx := ss.Context()
		l := lingo.LanguageFromGrpcRequest(ctx)
		if l == nil {
			return handler(srv, ss)
		}

		ctx = lingo.LanguageToContext(ctx, l)

		// Wrap the original stream so handlers always receive a stream carrying the enriched context.
		languageStream := &serverStreamWrapper{ctx, ss}

		return handler(srv, languageStream)
	}
}

// serverStreamWrapper carries the language enriched context for the server stream.
type serverStreamWrapper struct {
	ctx context.Context
	grpc.ServerStream
}

// Context returns the language enriched stream context.
func (s *serverStreamWrapper) Context() context.Context {
	return s.ctx
}
