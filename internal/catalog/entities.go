package catalog

import "github.com/shopspring/decimal"

// Product representa um produto do catálogo com seu preço unitário
type Product struct {
	ID    int             `json:"id"`
	Price decimal.Decimal `json:"price"`
}
