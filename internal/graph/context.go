package graph

import (
	"context"

	"github.com/storebench/ecommerce-api/internal/auth"
)

type contextKey string

const claimsContextKey contextKey = "session-claims"

// WithClaims anexa a identidade verificada ao contexto da requisição
func WithClaims(ctx context.Context, claims auth.Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFrom extrai a identidade verificada do contexto, se presente
func ClaimsFrom(ctx context.Context) (auth.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(auth.Claims)
	return claims, ok
}
