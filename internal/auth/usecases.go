package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/storebench/ecommerce-api/internal/users"
)

// ErrInvalidCredentials indica email desconhecido ou senha incorreta
var ErrInvalidCredentials = errors.New("Credenciais inválidas")

// ErrInvalidToken indica token malformado, com assinatura inválida ou expirado
var ErrInvalidToken = errors.New("Token inválido")

// tokenTTL é a janela de validade de um token de sessão
const tokenTTL = time.Hour

// Claims representa a identidade embutida em um token de sessão válido
type Claims struct {
	UserID int
	Email  string
}

// sessionClaims é o formato interno usado na assinatura e no parse do JWT
type sessionClaims struct {
	jwt.RegisteredClaims
	UserID int    `json:"id"`
	Email  string `json:"email"`
}

// UseCase emite e verifica tokens de sessão. Os tokens são stateless:
// não há tabela de sessões, a assinatura e a expiração são a autoridade.
type UseCase struct {
	repository users.Repository
	secret     []byte
	now        func() time.Time
}

// NewUseCase cria uma nova instância de UseCase com a chave de assinatura
// do processo
func NewUseCase(repository users.Repository, secret string) *UseCase {
	return &UseCase{
		repository: repository,
		secret:     []byte(secret),
		now:        time.Now,
	}
}

// Authenticate valida as credenciais e emite um token de sessão com 1h de
// validade, junto com a visão pública da conta autenticada
func (uc *UseCase) Authenticate(ctx context.Context, email, password string) (string, users.PublicUser, error) {
	user, err := uc.repository.FindByEmail(ctx, email)
	if err != nil || user.Password != password {
		return "", users.PublicUser{}, ErrInvalidCredentials
	}

	now := uc.now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		UserID: user.ID,
		Email:  user.Email,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.secret)
	if err != nil {
		return "", users.PublicUser{}, fmt.Errorf("signing session token: %w", err)
	}

	return token, user.Public(), nil
}

// Verify valida um token de sessão e extrai a identidade embutida.
// A operação é idempotente e sem efeitos colaterais: o mesmo token produz
// o mesmo resultado até expirar.
func (uc *UseCase) Verify(tokenString string) (Claims, error) {
	var parsed sessionClaims
	_, err := jwt.ParseWithClaims(tokenString, &parsed, func(t *jwt.Token) (any, error) {
		return uc.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(uc.now),
	)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	return Claims{UserID: parsed.UserID, Email: parsed.Email}, nil
}
