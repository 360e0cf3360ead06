package config

import "os"

// Config reúne a configuração lida do ambiente
type Config struct {
	Port         string
	JWTSecret    string
	ServiceName  string
	OTLPEndpoint string
}

// Load monta a configuração a partir das variáveis de ambiente, com os
// defaults do serviço chamador
func Load(defaultPort, defaultServiceName string) Config {
	return Config{
		Port:         getEnv("PORT", defaultPort),
		JWTSecret:    getEnv("JWT_SECRET", "supersecret"),
		ServiceName:  getEnv("SERVICE_NAME", defaultServiceName),
		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
