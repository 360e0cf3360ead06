package users

import (
	"context"
	"errors"
	"sync"
)

// ErrEmailTaken indica tentativa de registro com um email já cadastrado
var ErrEmailTaken = errors.New("Email já cadastrado")

// ErrUserNotFound indica que nenhuma conta corresponde ao email consultado
var ErrUserNotFound = errors.New("usuário não encontrado")

// Repository define as operações do diretório de contas
type Repository interface {
	// FindByEmail busca uma conta pelo email (comparação exata, sensível a caixa)
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Insert registra uma nova conta, alocando o próximo ID sequencial.
	// Retorna ErrEmailTaken se o email já estiver em uso.
	Insert(ctx context.Context, name, email, password string) (*User, error)

	// List retorna todas as contas registradas
	List(ctx context.Context) ([]User, error)

	// Count retorna o número de contas registradas
	Count(ctx context.Context) (int, error)
}

// MemoryRepository implementa Repository em memória. O mutex garante que a
// checagem de unicidade e a inserção aconteçam na mesma seção crítica,
// preservando a unicidade de email sob requisições concorrentes.
type MemoryRepository struct {
	mu     sync.Mutex
	users  []User
	nextID int
}

// NewMemoryRepository cria um diretório de contas vazio
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

// FindByEmail busca uma conta pelo email
func (r *MemoryRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Email == email {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

// Insert registra uma nova conta
func (r *MemoryRepository) Insert(ctx context.Context, name, email, password string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Email == email {
			return nil, ErrEmailTaken
		}
	}

	user := User{
		ID:       r.nextID,
		Name:     name,
		Email:    email,
		Password: password,
	}
	r.nextID++
	r.users = append(r.users, user)

	return &user, nil
}

// List retorna todas as contas registradas
func (r *MemoryRepository) List(ctx context.Context) ([]User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]User, len(r.users))
	copy(out, r.users)
	return out, nil
}

// Count retorna o número de contas registradas
func (r *MemoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.users), nil
}
