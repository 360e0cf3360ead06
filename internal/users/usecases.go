package users

import (
	"context"
	"log"
)

// UseCase encapsula a lógica de negócio do diretório de contas
type UseCase struct {
	repository Repository
}

// NewUseCase cria uma nova instância de UseCase
func NewUseCase(repository Repository) *UseCase {
	return &UseCase{repository: repository}
}

// Register registra uma nova conta e retorna sua visão pública.
// Retorna ErrEmailTaken quando o email já está em uso, sem nenhuma mutação.
func (uc *UseCase) Register(ctx context.Context, name, email, password string) (PublicUser, error) {
	user, err := uc.repository.Insert(ctx, name, email, password)
	if err != nil {
		return PublicUser{}, err
	}

	log.Printf("✅ User registered: id=%d email=%s", user.ID, user.Email)
	return user.Public(), nil
}

// ListUsers retorna a visão pública de todas as contas registradas
func (uc *UseCase) ListUsers(ctx context.Context) ([]PublicUser, error) {
	all, err := uc.repository.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]PublicUser, 0, len(all))
	for i := range all {
		out = append(out, all[i].Public())
	}
	return out, nil
}
