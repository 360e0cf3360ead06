package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"github.com/storebench/ecommerce-api/internal/auth"
	"github.com/storebench/ecommerce-api/internal/catalog"
	"github.com/storebench/ecommerce-api/internal/checkout"
	"github.com/storebench/ecommerce-api/internal/config"
	"github.com/storebench/ecommerce-api/internal/graph"
	"github.com/storebench/ecommerce-api/internal/telemetry"
	"github.com/storebench/ecommerce-api/internal/users"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load("4000", "graphql-api")
	ctx := context.Background()

	tp, err := telemetry.InitTracer(ctx, cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	mp, err := telemetry.InitMetrics(ctx, cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}
	defer func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			log.Printf("Error shutting down meter: %v", err)
		}
	}()

	// Dependências: tudo em memória, o processo é a única fonte de estado
	catalogRepo := catalog.NewMemoryRepository()
	userRepo := users.NewMemoryRepository()

	usersUC := users.NewUseCase(userRepo)
	authUC := auth.NewUseCase(userRepo, cfg.JWTSecret)
	checkoutUC := checkout.NewUseCase(catalogRepo)

	resolver := graph.NewResolver(usersUC, authUC, checkoutUC)
	schema, err := graph.NewSchema(resolver)
	if err != nil {
		log.Fatalf("Failed to build GraphQL schema: %v", err)
	}
	router := graph.NewRouter(schema, authUC)

	log.Printf("🚀 GraphQL API listening on port %s", cfg.Port)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  30 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
