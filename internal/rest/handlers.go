package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/storebench/ecommerce-api/internal/auth"
	"github.com/storebench/ecommerce-api/internal/catalog"
	"github.com/storebench/ecommerce-api/internal/checkout"
	"github.com/storebench/ecommerce-api/internal/users"
)

// RegisterRequest representa a requisição de registro de conta
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CheckoutRequest representa a requisição de checkout
type CheckoutRequest struct {
	Items         []checkout.Item    `json:"items" binding:"required"`
	Freight       float64            `json:"freight"`
	PaymentMethod string             `json:"paymentMethod" binding:"required"`
	CardData      *checkout.CardData `json:"cardData"`
}

// CheckoutResponse espelha o resultado do checkout com o campo valorFinal
// adicional, como na superfície de referência
type CheckoutResponse struct {
	ValorFinal    float64         `json:"valorFinal"`
	UserID        int             `json:"userId"`
	Items         []checkout.Item `json:"items"`
	Freight       float64         `json:"freight"`
	PaymentMethod string          `json:"paymentMethod"`
	Total         float64         `json:"total"`
}

// Handler contém os handlers HTTP da superfície REST
type Handler struct {
	users     *users.UseCase
	auth      *auth.UseCase
	checkout  *checkout.UseCase
	tracer    trace.Tracer
	checkouts metric.Int64Counter
}

// NewHandler cria uma nova instância de Handler
func NewHandler(usersUC *users.UseCase, authUC *auth.UseCase, checkoutUC *checkout.UseCase, tracer trace.Tracer, meter metric.Meter) *Handler {
	checkouts, _ := meter.Int64Counter("checkout.requests")

	return &Handler{
		users:     usersUC,
		auth:      authUC,
		checkout:  checkoutUC,
		tracer:    tracer,
		checkouts: checkouts,
	}
}

// Register registra uma nova conta
func (h *Handler) Register(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "register_user")
	defer span.End()

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	span.SetAttributes(attribute.String("user.email", user.Email))
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// Login autentica as credenciais e devolve o token de sessão
func (h *Handler) Login(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "login_user")
	defer span.End()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.auth.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		span.RecordError(err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Checkout computa o total de um pedido para a conta autenticada.
// O token é verificado antes de qualquer leitura do corpo ou cálculo.
func (h *Handler) Checkout(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "checkout")
	defer span.End()

	claims, err := h.auth.Verify(bearerToken(c))
	if err != nil {
		span.RecordError(err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.checkout.Checkout(ctx, claims.UserID, req.Items, req.Freight, req.PaymentMethod, req.CardData)
	if err != nil {
		span.RecordError(err)
		status := http.StatusBadRequest
		if !errors.Is(err, checkout.ErrCardDataRequired) && !errors.Is(err, catalog.ErrProductNotFound) {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	h.checkouts.Add(ctx, 1, metric.WithAttributes(
		attribute.String("payment.method", result.PaymentMethod),
	))
	span.SetAttributes(
		attribute.Int("user.id", result.UserID),
		attribute.Float64("checkout.total", result.Total),
	)

	c.JSON(http.StatusOK, CheckoutResponse{
		ValorFinal:    result.Total,
		UserID:        result.UserID,
		Items:         result.Items,
		Freight:       result.Freight,
		PaymentMethod: result.PaymentMethod,
		Total:         result.Total,
	})
}

// HealthCheck verifica a saúde do serviço
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "rest-api",
	})
}

// bearerToken extrai o token do cabeçalho Authorization
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
