package graph

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/storebench/ecommerce-api/internal/auth"
)

// NewRouter monta o servidor HTTP do serviço GraphQL
func NewRouter(schema graphql.Schema, authUC *auth.UseCase) *chi.Mux {
	gqlHandler := handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: true,
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"healthy","service":"graphql-api"}`))
	})

	r.Handle("/graphql", otelhttp.NewHandler(sessionMiddleware(authUC)(gqlHandler), "graphql"))

	return r
}

// sessionMiddleware verifica o bearer token, quando presente, e injeta a
// identidade no contexto. Requisição sem identidade segue adiante: é a
// resolução de checkout que falha com Token inválido.
func sessionMiddleware(authUC *auth.UseCase) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if strings.HasPrefix(header, "Bearer ") {
				token := strings.TrimPrefix(header, "Bearer ")
				if claims, err := authUC.Verify(token); err == nil {
					r = r.WithContext(WithClaims(r.Context(), claims))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
