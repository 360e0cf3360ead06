package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/storebench/ecommerce-api/internal/auth"
	"github.com/storebench/ecommerce-api/internal/catalog"
	"github.com/storebench/ecommerce-api/internal/checkout"
	"github.com/storebench/ecommerce-api/internal/users"
)

// countingCatalog registra quantas resoluções de produto aconteceram
type countingCatalog struct {
	inner catalog.Repository
	calls int
}

func (c *countingCatalog) FindByID(ctx context.Context, productID int) (*catalog.Product, error) {
	c.calls++
	return c.inner.FindByID(ctx, productID)
}

func newTestRouter(t *testing.T) (*gin.Engine, *countingCatalog) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalogRepo := &countingCatalog{inner: catalog.NewMemoryRepository()}
	userRepo := users.NewMemoryRepository()

	handler := NewHandler(
		users.NewUseCase(userRepo),
		auth.NewUseCase(userRepo, "test-secret"),
		checkout.NewUseCase(catalogRepo),
		otel.Tracer("test"),
		otel.Meter("test"),
	)
	return NewRouter(handler, "rest-api-test"), catalogRepo
}

func doJSON(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func registerAndLogin(t *testing.T, router *gin.Engine) string {
	t.Helper()

	rec := doJSON(router, http.MethodPost, "/api/users/register", "",
		`{"name":"warlley","email":"warlley.freitas@live.com","password":"123456"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(router, http.MethodPost, "/api/users/login", "",
		`{"email":"warlley.freitas@live.com","password":"123456"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

func TestRegister(t *testing.T) {
	// Arrange
	router, _ := newTestRouter(t)

	// Act
	rec := doJSON(router, http.MethodPost, "/api/users/register", "",
		`{"name":"warlley","email":"warlley.freitas@live.com","password":"123456"}`)

	// Assert
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		User users.PublicUser `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "warlley", body.User.Name)
	assert.Equal(t, "warlley.freitas@live.com", body.User.Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	// Arrange
	router, _ := newTestRouter(t)
	payload := `{"name":"warlley","email":"warlley.freitas@live.com","password":"123456"}`
	doJSON(router, http.MethodPost, "/api/users/register", "", payload)

	// Act
	rec := doJSON(router, http.MethodPost, "/api/users/register", "", payload)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Email já cadastrado"}`, rec.Body.String())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	// Arrange
	router, _ := newTestRouter(t)
	doJSON(router, http.MethodPost, "/api/users/register", "",
		`{"name":"warlley","email":"warlley.freitas@live.com","password":"123456"}`)

	// Act
	rec := doJSON(router, http.MethodPost, "/api/users/login", "",
		`{"email":"warlley.freitas@live.com","password":"senha-errada"}`)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Credenciais inválidas"}`, rec.Body.String())
}

func TestCheckout_Boleto(t *testing.T) {
	// Arrange
	router, _ := newTestRouter(t)
	token := registerAndLogin(t, router)

	// Act
	rec := doJSON(router, http.MethodPost, "/api/checkout", token,
		`{"items":[{"productId":1,"quantity":10}],"freight":10,"paymentMethod":"boleto"}`)

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)

	var body CheckoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1010.0, body.ValorFinal)
	assert.Equal(t, 1010.0, body.Total)
	assert.Equal(t, 1, body.UserID)
	assert.Equal(t, "boleto", body.PaymentMethod)
}

func TestCheckout_CreditCardDiscount(t *testing.T) {
	// Arrange
	router, _ := newTestRouter(t)
	token := registerAndLogin(t, router)

	// Act
	rec := doJSON(router, http.MethodPost, "/api/checkout", token,
		`{"items":[{"productId":1,"quantity":10}],"freight":0,"paymentMethod":"credit_card",
		  "cardData":{"number":"12345678","name":"Warlley Freitas","expiry":"12/30","cvv":"545"}}`)

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)

	var body CheckoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 950.0, body.ValorFinal)
}

func TestCheckout_InvalidToken(t *testing.T) {
	// Arrange
	router, catalogRepo := newTestRouter(t)
	token := registerAndLogin(t, router)
	catalogRepo.calls = 0

	// Act
	tampered := doJSON(router, http.MethodPost, "/api/checkout", token+"x",
		`{"items":[{"productId":1,"quantity":10}],"freight":10,"paymentMethod":"boleto"}`)
	missing := doJSON(router, http.MethodPost, "/api/checkout", "",
		`{"items":[{"productId":1,"quantity":10}],"freight":10,"paymentMethod":"boleto"}`)

	// Assert: 401 antes de qualquer resolução de produto
	assert.Equal(t, http.StatusUnauthorized, tampered.Code)
	assert.JSONEq(t, `{"error":"Token inválido"}`, tampered.Body.String())
	assert.Equal(t, http.StatusUnauthorized, missing.Code)
	assert.Zero(t, catalogRepo.calls, "autorização inválida não pode disparar cálculo de preço")
}

func TestCheckout_UnknownProduct(t *testing.T) {
	// Arrange
	router, _ := newTestRouter(t)
	token := registerAndLogin(t, router)

	// Act
	rec := doJSON(router, http.MethodPost, "/api/checkout", token,
		`{"items":[{"productId":999,"quantity":10}],"freight":50,"paymentMethod":"boleto"}`)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Produto não encontrado"}`, rec.Body.String())
}

func TestCheckout_CardDataRequired(t *testing.T) {
	// Arrange
	router, _ := newTestRouter(t)
	token := registerAndLogin(t, router)

	// Act
	rec := doJSON(router, http.MethodPost, "/api/checkout", token,
		`{"items":[{"productId":1,"quantity":10}],"freight":10,"paymentMethod":"credit_card"}`)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Dados do cartão obrigatórios para pagamento com cartão"}`, rec.Body.String())
}
