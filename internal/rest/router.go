package rest

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// NewRouter monta o router da superfície REST com as rotas da API
func NewRouter(handler *Handler, serviceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(otelgin.Middleware(serviceName))

	r.GET("/health", handler.HealthCheck)
	r.POST("/api/users/register", handler.Register)
	r.POST("/api/users/login", handler.Login)
	r.POST("/api/checkout", handler.Checkout)

	return r
}
