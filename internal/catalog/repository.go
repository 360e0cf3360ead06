package catalog

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrProductNotFound indica que um produto referenciado não existe no catálogo
var ErrProductNotFound = errors.New("Produto não encontrado")

// Repository define a interface de consulta ao catálogo de produtos
type Repository interface {
	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, productID int) (*Product, error)
}

// MemoryRepository implementa Repository com os dados de referência em memória.
// O catálogo é carregado na construção e imutável pelo resto do processo.
type MemoryRepository struct {
	products []Product
}

// NewMemoryRepository cria o catálogo com os produtos de referência
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		products: []Product{
			{ID: 1, Price: decimal.NewFromInt(100)},
			{ID: 2, Price: decimal.NewFromInt(200)},
		},
	}
}

// FindByID busca um produto pelo ID
func (r *MemoryRepository) FindByID(ctx context.Context, productID int) (*Product, error) {
	for i := range r.products {
		if r.products[i].ID == productID {
			product := r.products[i]
			return &product, nil
		}
	}
	return nil, ErrProductNotFound
}
